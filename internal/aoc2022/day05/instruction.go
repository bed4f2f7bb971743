package day05

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadInstruction = errors.New("malformed instruction")

// Instruction moves Count crates from stack From to stack To. Indices are
// 0-based; the text form is 1-based.
type Instruction struct {
	Count int
	From  int
	To    int
}

func (i Instruction) String() string {
	return fmt.Sprintf("move %d from %d to %d", i.Count, i.From+1, i.To+1)
}

func parseNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// ParseInstruction parses exactly "move <count> from <src> to <dst>".
func ParseInstruction(line string) (Instruction, error) {
	parts := strings.Split(line, " ")
	if len(parts) != 6 || parts[0] != "move" || parts[2] != "from" || parts[4] != "to" {
		return Instruction{}, fmt.Errorf("%q: %w", line, ErrBadInstruction)
	}

	count, okCount := parseNumber(parts[1])
	from, okFrom := parseNumber(parts[3])
	to, okTo := parseNumber(parts[5])
	if !okCount || !okFrom || !okTo {
		return Instruction{}, fmt.Errorf("%q: %w", line, ErrBadInstruction)
	}
	if from == 0 || to == 0 {
		return Instruction{}, fmt.Errorf("%q: stacks are numbered from 1: %w", line, ErrBadInstruction)
	}

	return Instruction{Count: count, From: from - 1, To: to - 1}, nil
}
