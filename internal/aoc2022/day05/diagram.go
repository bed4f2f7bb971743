package day05

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const fieldWidth = 4

var ErrNoDiagram = errors.New("no crate diagram")

// Crate is a single labelled crate. The zero value marks an empty slot.
type Crate rune

const hole Crate = 0

func (c Crate) String() string {
	if c == hole {
		return " "
	}
	return string(rune(c))
}

// parseSlot reads one 3-character field: "[X]" or blanks. A blank field cut
// short at the end of the line is still a hole.
func parseSlot(field string) (Crate, bool) {
	if strings.TrimLeft(field, " ") == "" {
		return hole, true
	}
	if len(field) == 3 && field[0] == '[' && field[2] == ']' && field[1] != ' ' {
		return Crate(field[1]), true
	}
	return hole, false
}

// ParseCrateLine parses one diagram row into its slots, left to right. Fields
// are 3 characters wide and separated by a single space; a trailing space is
// tolerated. It reports false when the line is not a diagram row; a line
// made only of holes is not a row either.
func ParseCrateLine(line string) ([]Crate, bool) {
	if len(line) < 3 {
		return nil, false
	}

	var row []Crate
	crates := 0
	for start := 0; start < len(line); start += fieldWidth {
		end := min(start+3, len(line))
		slot, ok := parseSlot(line[start:end])
		if !ok {
			return nil, false
		}
		row = append(row, slot)
		if slot != hole {
			crates++
		}

		if end == len(line) {
			break
		}
		if line[end] != ' ' {
			return nil, false
		}
	}
	return row, crates > 0
}

// parseLabelLine recognises the stack number line below the diagram
// (" 1   2   3 ") and returns how many stacks it names.
func parseLabelLine(line string) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n != i+1 {
			return 0, false
		}
	}
	return len(fields), true
}

// ParseDiagram reads diagram rows from the start of lines until the first line
// that is not a row. A stack number line right after the rows is consumed as
// well. It returns the stacks bottom to top and the number of lines consumed.
func ParseDiagram(lines []string) (Stacks, int, error) {
	var rows [][]Crate
	consumed := 0
	for _, line := range lines {
		row, ok := ParseCrateLine(line)
		if !ok {
			break
		}
		rows = append(rows, row)
		consumed++
	}

	width := 0
	labelled := false
	if consumed < len(lines) {
		if n, ok := parseLabelLine(lines[consumed]); ok {
			width = n
			labelled = true
			consumed++
		}
	}

	if len(rows) == 0 {
		return nil, consumed, ErrNoDiagram
	}

	for _, row := range rows {
		if len(row) > width {
			if labelled {
				return nil, consumed, fmt.Errorf("row has %d stacks but the label line names %d", len(row), width)
			}
			width = len(row)
		}
	}

	return transposeRev(rows, width), consumed, nil
}

// transposeRev turns top-to-bottom rows into bottom-to-top columns. Column
// order is preserved, holes are dropped and short rows count as holes.
func transposeRev(rows [][]Crate, width int) Stacks {
	stacks := make(Stacks, width)
	for col := range width {
		stack := []Crate{}
		for r := len(rows) - 1; r >= 0; r-- {
			if col < len(rows[r]) && rows[r][col] != hole {
				stack = append(stack, rows[r][col])
			}
		}
		stacks[col] = stack
	}
	return stacks
}
