// Package aoc2022 wires the 2022 daily solvers into a puzzle registry.
package aoc2022

import (
	"github.com/povarna/aoc2022/internal/aoc2022/day01"
	"github.com/povarna/aoc2022/internal/aoc2022/day02"
	"github.com/povarna/aoc2022/internal/aoc2022/day03"
	"github.com/povarna/aoc2022/internal/aoc2022/day04"
	"github.com/povarna/aoc2022/internal/aoc2022/day05"
	"github.com/povarna/aoc2022/internal/aoc2022/day06"
	"github.com/povarna/aoc2022/internal/aoc2022/day07"
	"github.com/povarna/aoc2022/internal/puzzle"
	"github.com/rs/zerolog"
)

func NewRegistry(logger *zerolog.Logger) *puzzle.Registry {
	r := puzzle.NewRegistry()
	r.Register(1, day01.Title, puzzle.SolverFunc(day01.Solve))
	r.Register(2, day02.Title, puzzle.SolverFunc(day02.Solve))
	r.Register(3, day03.Title, puzzle.SolverFunc(day03.Solve))
	r.Register(4, day04.Title, puzzle.SolverFunc(day04.Solve))
	r.Register(5, day05.Title, day05.NewSolver(logger))
	r.Register(6, day06.Title, puzzle.SolverFunc(day06.Solve))
	r.Register(7, day07.Title, puzzle.SolverFunc(day07.Solve))
	return r
}
