package day06

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/aoc2022/internal/puzzle"
)

const Title = "Tuning Trouble"

const (
	PacketMarker  = 4
	MessageMarker = 14
)

var ErrNoMarker = errors.New("no marker found")

// StartOfMarker returns the 1-based position right after the first run of k
// pairwise distinct characters, and false if the stream has none.
func StartOfMarker(stream string, k int) (int, bool) {
	if k <= 0 {
		return 0, false
	}

	w := NewWindow[rune](k)
	pos := 0
	for _, c := range stream {
		pos++
		w.Push(c)
		if w.Full() && w.Distinct() {
			return pos, true
		}
	}
	return 0, false
}

func Solve(input string) (puzzle.Answer, error) {
	stream := strings.TrimSpace(input)

	packet, ok := StartOfMarker(stream, PacketMarker)
	if !ok {
		return puzzle.Answer{}, fmt.Errorf("start-of-packet (%d): %w", PacketMarker, ErrNoMarker)
	}
	message, ok := StartOfMarker(stream, MessageMarker)
	if !ok {
		return puzzle.Answer{}, fmt.Errorf("start-of-message (%d): %w", MessageMarker, ErrNoMarker)
	}
	return puzzle.Ints(packet, message), nil
}
