// Package runner loads a day's input, runs its solver and reports the answers.
package runner

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/aoc2022/internal/input"
	"github.com/povarna/aoc2022/internal/puzzle"
	"github.com/rs/zerolog"
)

var ErrUnknownDay = errors.New("no solver registered for day")

type Report struct {
	RunID   string
	Day     int
	Title   string
	Answer  puzzle.Answer
	Elapsed time.Duration
}

type Runner struct {
	registry *puzzle.Registry
	source   input.Source
	logger   *zerolog.Logger
}

func NewRunner(registry *puzzle.Registry, source input.Source, logger *zerolog.Logger) *Runner {
	return &Runner{
		registry: registry,
		source:   source,
		logger:   logger,
	}
}

func (r *Runner) Days() []int {
	return r.registry.Days()
}

func (r *Runner) Title(day int) (string, bool) {
	entry, ok := r.registry.Lookup(day)
	return entry.Title, ok
}

// Run solves a single day. Each call reads the input afresh.
func (r *Runner) Run(day int) (Report, error) {
	entry, ok := r.registry.Lookup(day)
	if !ok {
		return Report{}, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}

	runID := uuid.NewString()
	logger := r.logger.With().Str("run_id", runID).Int("day", day).Logger()

	text, err := r.source.Read(day)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load input")
		return Report{}, fmt.Errorf("day %d: %w", day, err)
	}

	start := time.Now()
	answer, err := entry.Solver.Solve(text)
	elapsed := time.Since(start)
	if err != nil {
		logger.Error().Err(err).Dur("elapsed", elapsed).Msg("solver failed")
		return Report{}, fmt.Errorf("day %d: %w", day, err)
	}

	logger.Info().
		Str("title", entry.Title).
		Dur("elapsed", elapsed).
		Msg("day solved")

	return Report{
		RunID:   runID,
		Day:     day,
		Title:   entry.Title,
		Answer:  answer,
		Elapsed: elapsed,
	}, nil
}

// RunAll solves every registered day in order and stops at the first failure.
func (r *Runner) RunAll() ([]Report, error) {
	return r.RunDays(r.registry.Days())
}

func (r *Runner) RunDays(days []int) ([]Report, error) {
	reports := make([]Report, 0, len(days))
	for _, day := range days {
		report, err := r.Run(day)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
