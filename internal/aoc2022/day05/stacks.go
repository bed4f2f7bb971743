package day05

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrInvalidMove = errors.New("invalid move")

// MoveKind selects how a multi-crate move is carried out.
type MoveKind int

const (
	// SingleMove moves crates one at a time, reversing their order.
	SingleMove MoveKind = iota
	// BulkMove moves the whole block at once, keeping its order.
	BulkMove
)

func (k MoveKind) String() string {
	switch k {
	case SingleMove:
		return "single"
	case BulkMove:
		return "bulk"
	}
	return fmt.Sprintf("MoveKind(%d)", int(k))
}

// Stacks holds every stack bottom to top; the last element is the top crate.
type Stacks [][]Crate

func (s Stacks) Clone() Stacks {
	out := make(Stacks, len(s))
	for i, stack := range s {
		out[i] = slices.Clone(stack)
	}
	return out
}

func (s Stacks) check(ins Instruction) error {
	switch {
	case ins.Count < 0:
		return fmt.Errorf("%s: negative count: %w", ins, ErrInvalidMove)
	case ins.From < 0 || ins.From >= len(s):
		return fmt.Errorf("%s: no source stack %d: %w", ins, ins.From+1, ErrInvalidMove)
	case ins.To < 0 || ins.To >= len(s):
		return fmt.Errorf("%s: no destination stack %d: %w", ins, ins.To+1, ErrInvalidMove)
	case ins.From == ins.To:
		return fmt.Errorf("%s: source and destination are the same stack: %w", ins, ErrInvalidMove)
	case len(s[ins.From]) < ins.Count:
		return fmt.Errorf("%s: stack %d holds only %d crates: %w", ins, ins.From+1, len(s[ins.From]), ErrInvalidMove)
	}
	return nil
}

// MoveOne moves ins.Count crates one by one. On error the stacks are unchanged.
func (s Stacks) MoveOne(ins Instruction) error {
	if err := s.check(ins); err != nil {
		return err
	}
	for range ins.Count {
		src := s[ins.From]
		top := src[len(src)-1]
		s[ins.From] = src[:len(src)-1]
		s[ins.To] = append(s[ins.To], top)
	}
	return nil
}

// MoveBulk moves the top ins.Count crates as one block. On error the stacks
// are unchanged.
func (s Stacks) MoveBulk(ins Instruction) error {
	if err := s.check(ins); err != nil {
		return err
	}
	src := s[ins.From]
	cut := len(src) - ins.Count
	block := slices.Clone(src[cut:])
	s[ins.From] = src[:cut]
	s[ins.To] = append(s[ins.To], block...)
	return nil
}

func (s Stacks) Apply(ins Instruction, kind MoveKind) error {
	switch kind {
	case SingleMove:
		return s.MoveOne(ins)
	case BulkMove:
		return s.MoveBulk(ins)
	}
	return fmt.Errorf("unknown move kind %d", int(kind))
}

// Tops concatenates the top crate of every non-empty stack.
func (s Stacks) Tops() string {
	var b strings.Builder
	for _, stack := range s {
		if len(stack) > 0 {
			b.WriteRune(rune(stack[len(stack)-1]))
		}
	}
	return b.String()
}

func (s Stacks) String() string {
	var b strings.Builder
	for i, stack := range s {
		fmt.Fprintf(&b, "%d:", i+1)
		for _, c := range stack {
			fmt.Fprintf(&b, " %s", c)
		}
		if i < len(s)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
