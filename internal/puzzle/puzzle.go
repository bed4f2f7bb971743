// Package puzzle defines the contract every daily solver implements and the
// registry the runner looks solvers up in.
package puzzle

import (
	"fmt"
	"slices"
	"strconv"
)

// Answer holds the two answers of a day, already formatted for output.
type Answer struct {
	Part1 string
	Part2 string
}

func Ints(part1, part2 int) Answer {
	return Answer{Part1: strconv.Itoa(part1), Part2: strconv.Itoa(part2)}
}

func Strings(part1, part2 string) Answer {
	return Answer{Part1: part1, Part2: part2}
}

type Solver interface {
	Solve(input string) (Answer, error)
}

// SolverFunc adapts a plain function to the Solver interface.
type SolverFunc func(input string) (Answer, error)

func (f SolverFunc) Solve(input string) (Answer, error) {
	return f(input)
}

type Entry struct {
	Day    int
	Title  string
	Solver Solver
}

type Registry struct {
	entries map[int]Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[int]Entry)}
}

// Register adds a solver for a day. Registering outside 1..25 or twice for the
// same day is a wiring bug and panics.
func (r *Registry) Register(day int, title string, solver Solver) {
	if day < 1 || day > 25 {
		panic(fmt.Sprintf("puzzle: day %d out of range", day))
	}
	if _, exists := r.entries[day]; exists {
		panic(fmt.Sprintf("puzzle: day %d registered twice", day))
	}
	r.entries[day] = Entry{Day: day, Title: title, Solver: solver}
}

func (r *Registry) Lookup(day int) (Entry, bool) {
	e, ok := r.entries[day]
	return e, ok
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.entries))
	for d := range r.entries {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}
