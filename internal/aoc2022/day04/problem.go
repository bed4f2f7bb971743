package day04

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/povarna/aoc2022/internal/puzzle"
	"github.com/povarna/aoc2022/internal/utils"
)

const Title = "Camp Cleanup"

var ErrInvalidRange = errors.New("invalid range")

// Set is the set of section IDs an elf is assigned to.
type Set map[int]struct{}

// NewSet materialises the inclusive range lo..hi.
func NewSet(lo, hi int) Set {
	s := make(Set, max(hi-lo+1, 0))
	for i := lo; i <= hi; i++ {
		s[i] = struct{}{}
	}
	return s
}

func SetOf(ids ...int) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// IsSubset reports whether every element of s is in other.
func (s Set) IsSubset(other Set) bool {
	if len(s) > len(other) {
		return false
	}
	for id := range s {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

func (s Set) IsSuperset(other Set) bool {
	return other.IsSubset(s)
}

func (s Set) IsDisjoint(other Set) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for id := range small {
		if large.Contains(id) {
			return false
		}
	}
	return true
}

func (s Set) Sorted() []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func ParseRange(s string) (Set, error) {
	var lo, hi int
	var rest string
	n, _ := fmt.Sscanf(s, "%d-%d%s", &lo, &hi, &rest)
	if n != 2 {
		return nil, fmt.Errorf("%q: %w", s, ErrInvalidRange)
	}
	if lo > hi {
		return nil, fmt.Errorf("%q: lower bound above upper bound: %w", s, ErrInvalidRange)
	}
	return NewSet(lo, hi), nil
}

// ParsePair parses an "a-b,c-d" line into two section sets.
func ParsePair(line string) (Set, Set, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(line), ",")
	if !ok {
		return nil, nil, fmt.Errorf("%q: missing comma: %w", line, ErrInvalidRange)
	}
	first, err := ParseRange(left)
	if err != nil {
		return nil, nil, err
	}
	second, err := ParseRange(right)
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

// FullyContains reports whether one set contains the other.
func FullyContains(a, b Set) bool {
	return a.IsSuperset(b) || a.IsSubset(b)
}

func Overlaps(a, b Set) bool {
	return !a.IsDisjoint(b)
}

func Solve(input string) (puzzle.Answer, error) {
	contained, overlapping := 0, 0

	for i, line := range utils.Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		a, b, err := ParsePair(line)
		if err != nil {
			return puzzle.Answer{}, &utils.LineError{Line: i + 1, Text: line, Err: err}
		}
		if FullyContains(a, b) {
			contained++
		}
		if Overlaps(a, b) {
			overlapping++
		}
	}

	return puzzle.Ints(contained, overlapping), nil
}
