package day07

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/aoc2022/internal/utils"
)

var ErrUnknownLine = errors.New("unknown terminal line")

// Line is one line of the terminal session: a command or a listing entry.
type Line interface {
	isLine()
}

type Cd struct {
	Target string
}

type Ls struct{}

type DirEntry struct {
	Name string
}

type FileEntry struct {
	Name string
	Size int
}

func (Cd) isLine()        {}
func (Ls) isLine()        {}
func (DirEntry) isLine()  {}
func (FileEntry) isLine() {}

func ParseLine(line string) (Line, error) {
	switch {
	case line == "$ ls":
		return Ls{}, nil
	case strings.HasPrefix(line, "$ cd "):
		target := strings.TrimPrefix(line, "$ cd ")
		if target == "" || strings.ContainsRune(target, ' ') {
			return nil, fmt.Errorf("%q: %w", line, ErrUnknownLine)
		}
		return Cd{Target: target}, nil
	case strings.HasPrefix(line, "dir "):
		name := strings.TrimPrefix(line, "dir ")
		if name == "" {
			return nil, fmt.Errorf("%q: %w", line, ErrUnknownLine)
		}
		return DirEntry{Name: name}, nil
	case strings.HasPrefix(line, "$"):
		return nil, fmt.Errorf("%q: %w", line, ErrUnknownLine)
	}

	sizeStr, name, ok := strings.Cut(line, " ")
	if !ok || name == "" {
		return nil, fmt.Errorf("%q: %w", line, ErrUnknownLine)
	}
	size, err := utils.ToInt(sizeStr)
	if err != nil || size < 0 {
		return nil, fmt.Errorf("%q: %w", line, ErrUnknownLine)
	}
	return FileEntry{Name: name, Size: size}, nil
}
