package day01

import (
	"fmt"
	"slices"
	"strings"

	"github.com/povarna/aoc2022/internal/puzzle"
	"github.com/povarna/aoc2022/internal/utils"
)

const Title = "Calorie Counting"

func Solve(input string) (puzzle.Answer, error) {
	groups, err := ParseGroups(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(groups) == 0 {
		return puzzle.Answer{}, fmt.Errorf("no calorie groups in input")
	}

	sums := GroupSums(groups)
	return puzzle.Ints(MaxSum(sums), TopSum(sums, 3)), nil
}

// ParseGroups splits blank-line separated blocks of numbers into groups.
func ParseGroups(input string) ([][]int, error) {
	groups := [][]int{}
	current := []int{}

	for i, line := range utils.Lines(input) {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				groups = append(groups, current)
				current = []int{}
			}
			continue
		}

		c, err := utils.ToInt(line)
		if err != nil {
			return nil, &utils.LineError{Line: i + 1, Text: line, Err: err}
		}
		current = append(current, c)
	}

	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups, nil
}

func GroupSums(groups [][]int) []int {
	acc := make([]int, 0, len(groups))
	for _, group := range groups {
		total := 0
		for _, c := range group {
			total += c
		}
		acc = append(acc, total)
	}
	return acc
}

func MaxSum(sums []int) int {
	if len(sums) == 0 {
		return 0
	}
	return slices.Max(sums)
}

// TopSum adds up the n largest sums, or all of them when there are fewer.
func TopSum(sums []int, n int) int {
	sorted := slices.Clone(sums)
	slices.SortFunc(sorted, func(a int, b int) int {
		return b - a
	})

	total := 0
	for _, s := range sorted[:min(n, len(sorted))] {
		total += s
	}
	return total
}
