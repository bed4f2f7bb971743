package day05

import (
	"strings"

	"github.com/povarna/aoc2022/internal/puzzle"
	"github.com/povarna/aoc2022/internal/utils"
	"github.com/rs/zerolog"
)

const Title = "Supply Stacks"

// Parse splits the input into the starting stacks and the move list.
func Parse(input string) (Stacks, []Instruction, error) {
	lines := utils.Lines(input)

	stacks, consumed, err := ParseDiagram(lines)
	if err != nil {
		return nil, nil, err
	}

	var instructions []Instruction
	for i := consumed; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], " ")
		if line == "" {
			continue
		}
		ins, err := ParseInstruction(line)
		if err != nil {
			return nil, nil, &utils.LineError{Line: i + 1, Text: lines[i], Err: err}
		}
		instructions = append(instructions, ins)
	}
	return stacks, instructions, nil
}

type Solver struct {
	logger *zerolog.Logger
}

func NewSolver(logger *zerolog.Logger) *Solver {
	return &Solver{logger: logger}
}

// Rearrange applies every instruction to stacks in place.
func (s *Solver) Rearrange(stacks Stacks, instructions []Instruction, kind MoveKind) error {
	s.logger.Debug().Str("kind", kind.String()).Msgf("starting stacks\n%s", stacks)

	for n, ins := range instructions {
		if err := stacks.Apply(ins, kind); err != nil {
			s.logger.Error().Err(err).Int("step", n+1).Msg("rearrangement stopped")
			return err
		}
		if e := s.logger.Debug(); e.Enabled() {
			e.Int("step", n+1).Stringer("instruction", ins).Msgf("stacks\n%s", stacks)
		}
	}
	return nil
}

func (s *Solver) Solve(input string) (puzzle.Answer, error) {
	stacks, instructions, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	single := stacks.Clone()
	if err := s.Rearrange(single, instructions, SingleMove); err != nil {
		return puzzle.Answer{}, err
	}

	bulk := stacks.Clone()
	if err := s.Rearrange(bulk, instructions, BulkMove); err != nil {
		return puzzle.Answer{}, err
	}

	s.logger.Info().
		Int("stacks", len(stacks)).
		Int("instructions", len(instructions)).
		Msg("rearrangement complete")
	return puzzle.Strings(single.Tops(), bulk.Tops()), nil
}
