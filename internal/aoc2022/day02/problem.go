package day02

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/aoc2022/internal/puzzle"
	"github.com/povarna/aoc2022/internal/utils"
)

const Title = "Rock Paper Scissors"

var ErrUnknownToken = errors.New("unknown token")

type Shape int

const (
	Rock Shape = iota + 1
	Paper
	Scissors
)

func (s Shape) String() string {
	switch s {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Value is the score for playing the shape.
func (s Shape) Value() int {
	return int(s)
}

// beats returns the shape s wins against.
func (s Shape) beats() Shape {
	switch s {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

// losesTo returns the shape that wins against s.
func (s Shape) losesTo() Shape {
	switch s {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	default:
		return Rock
	}
}

type Outcome int

const (
	Loss Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

func (o Outcome) Value() int {
	return int(o)
}

func ParseOpponent(token string) (Shape, error) {
	switch token {
	case "A":
		return Rock, nil
	case "B":
		return Paper, nil
	case "C":
		return Scissors, nil
	}
	return 0, fmt.Errorf("opponent %q: %w", token, ErrUnknownToken)
}

// ParseResponse reads the second column as the shape to play.
func ParseResponse(token string) (Shape, error) {
	switch token {
	case "X":
		return Rock, nil
	case "Y":
		return Paper, nil
	case "Z":
		return Scissors, nil
	}
	return 0, fmt.Errorf("response %q: %w", token, ErrUnknownToken)
}

// ParseStrategy reads the second column as the outcome the round must end in.
func ParseStrategy(token string) (Outcome, error) {
	switch token {
	case "X":
		return Loss, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Win, nil
	}
	return 0, fmt.Errorf("strategy %q: %w", token, ErrUnknownToken)
}

// ShapeFor picks the shape that produces the wanted outcome against opponent.
func ShapeFor(opponent Shape, want Outcome) Shape {
	switch want {
	case Loss:
		return opponent.beats()
	case Win:
		return opponent.losesTo()
	default:
		return opponent
	}
}

type Round struct {
	Opponent Shape
	Mine     Shape
}

func (r Round) Outcome() Outcome {
	switch {
	case r.Mine == r.Opponent:
		return Draw
	case r.Mine.beats() == r.Opponent:
		return Win
	default:
		return Loss
	}
}

func (r Round) Score() int {
	return r.Mine.Value() + r.Outcome().Value()
}

func splitTokens(line string) (string, string, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("expected two tokens, got %d", len(fields))
	}
	return fields[0], fields[1], nil
}

// RoundAsShapes parses a line where both columns name a shape.
func RoundAsShapes(line string) (Round, error) {
	a, b, err := splitTokens(line)
	if err != nil {
		return Round{}, err
	}
	opponent, err := ParseOpponent(a)
	if err != nil {
		return Round{}, err
	}
	mine, err := ParseResponse(b)
	if err != nil {
		return Round{}, err
	}
	return Round{Opponent: opponent, Mine: mine}, nil
}

// RoundAsStrategy parses a line where the second column names the outcome.
func RoundAsStrategy(line string) (Round, error) {
	a, b, err := splitTokens(line)
	if err != nil {
		return Round{}, err
	}
	opponent, err := ParseOpponent(a)
	if err != nil {
		return Round{}, err
	}
	want, err := ParseStrategy(b)
	if err != nil {
		return Round{}, err
	}
	return Round{Opponent: opponent, Mine: ShapeFor(opponent, want)}, nil
}

// TotalScore sums the score of every non-blank line parsed with parse.
func TotalScore(input string, parse func(string) (Round, error)) (int, error) {
	total := 0
	for i, line := range utils.Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		round, err := parse(line)
		if err != nil {
			return 0, &utils.LineError{Line: i + 1, Text: line, Err: err}
		}
		total += round.Score()
	}
	return total, nil
}

func Solve(input string) (puzzle.Answer, error) {
	part1, err := TotalScore(input, RoundAsShapes)
	if err != nil {
		return puzzle.Answer{}, err
	}
	part2, err := TotalScore(input, RoundAsStrategy)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Ints(part1, part2), nil
}
