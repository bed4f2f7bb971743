package day03

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/aoc2022/internal/puzzle"
	"github.com/povarna/aoc2022/internal/utils"
)

const Title = "Rucksack Reorganization"

const groupSize = 3

var (
	ErrNoCommonItem = errors.New("no common item")
	ErrNotAnItem    = errors.New("not an item")
)

// Priority maps a-z to 1..26 and A-Z to 27..52.
func Priority(r rune) (int, error) {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 1, nil
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 27, nil
	}
	return 0, fmt.Errorf("%q: %w", r, ErrNotAnItem)
}

// CommonInHalves returns the item found in both compartments of a rucksack.
func CommonInHalves(line string) (rune, error) {
	if len(line)%2 != 0 {
		return 0, fmt.Errorf("odd number of items (%d)", len(line))
	}
	half := len(line) / 2
	return CommonInGroup(line[:half], line[half:])
}

// CommonInGroup returns the first item of lines[0] present in every other line.
func CommonInGroup(lines ...string) (rune, error) {
	if len(lines) == 0 {
		return 0, ErrNoCommonItem
	}
	for _, c := range lines[0] {
		shared := true
		for _, other := range lines[1:] {
			if !strings.ContainsRune(other, c) {
				shared = false
				break
			}
		}
		if shared {
			return c, nil
		}
	}
	return 0, ErrNoCommonItem
}

func rucksacks(input string) []string {
	var out []string
	for _, line := range utils.Lines(input) {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func part1(sacks []string) (int, error) {
	total := 0
	for i, sack := range sacks {
		c, err := CommonInHalves(sack)
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %w", i+1, err)
		}
		p, err := Priority(c)
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %w", i+1, err)
		}
		total += p
	}
	return total, nil
}

func part2(sacks []string) (int, error) {
	if len(sacks)%groupSize != 0 {
		return 0, fmt.Errorf("%d rucksacks do not split into groups of %d", len(sacks), groupSize)
	}

	total := 0
	for i := 0; i < len(sacks); i += groupSize {
		c, err := CommonInGroup(sacks[i : i+groupSize]...)
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", i/groupSize+1, err)
		}
		p, err := Priority(c)
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", i/groupSize+1, err)
		}
		total += p
	}
	return total, nil
}

func Solve(input string) (puzzle.Answer, error) {
	sacks := rucksacks(input)

	p1, err := part1(sacks)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p2, err := part2(sacks)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Ints(p1, p2), nil
}
