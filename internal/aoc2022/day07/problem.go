package day07

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/povarna/aoc2022/internal/puzzle"
	"github.com/povarna/aoc2022/internal/utils"
)

const Title = "No Space Left On Device"

const (
	smallDirLimit  = 100000
	totalDiskSpace = 70000000
	requiredSpace  = 30000000
)

var ErrNothingToDelete = errors.New("no directory frees enough space")

type Node struct {
	Name     string
	IsDir    bool
	Size     int
	Parent   *Node
	Children map[string]*Node
}

func NewDir(name string, parent *Node) *Node {
	return &Node{
		Name:     name,
		IsDir:    true,
		Parent:   parent,
		Children: make(map[string]*Node),
	}
}

func NewFile(name string, size int, parent *Node) *Node {
	return &Node{
		Name:   name,
		Size:   size,
		Parent: parent,
	}
}

func (n *Node) TotalSize() int {
	if !n.IsDir {
		return n.Size
	}

	total := 0
	for _, child := range n.Children {
		total += child.TotalSize()
	}
	return total
}

// Walk visits n and every directory below it.
func (n *Node) Walk(visit func(dir *Node)) {
	if !n.IsDir {
		return
	}
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// childDir returns the named subdirectory of n, creating it if missing.
func (n *Node) childDir(name string) (*Node, error) {
	child, exists := n.Children[name]
	if !exists {
		child = NewDir(name, n)
		n.Children[name] = child
	}
	if !child.IsDir {
		return nil, fmt.Errorf("%s is a file", name)
	}
	return child, nil
}

// BuildTree replays a terminal session into a directory tree rooted at "/".
func BuildTree(input string) (*Node, error) {
	root := NewDir("/", nil)
	current := root

	for i, text := range utils.Lines(input) {
		if strings.TrimSpace(text) == "" {
			continue
		}
		line, err := ParseLine(text)
		if err != nil {
			return nil, &utils.LineError{Line: i + 1, Text: text, Err: err}
		}

		switch l := line.(type) {
		case Cd:
			switch l.Target {
			case "/":
				current = root
			case "..":
				if current.Parent != nil {
					current = current.Parent
				}
			default:
				current, err = current.childDir(l.Target)
			}
		case Ls:
		case DirEntry:
			_, err = current.childDir(l.Name)
		case FileEntry:
			if existing, ok := current.Children[l.Name]; ok && existing.IsDir {
				err = fmt.Errorf("%s is a directory", l.Name)
			} else {
				current.Children[l.Name] = NewFile(l.Name, l.Size, current)
			}
		}
		if err != nil {
			return nil, &utils.LineError{Line: i + 1, Text: text, Err: err}
		}
	}
	return root, nil
}

func SumSmallDirectories(root *Node, limit int) int {
	total := 0
	root.Walk(func(dir *Node) {
		if size := dir.TotalSize(); size <= limit {
			total += size
		}
	})
	return total
}

// SmallestToDelete returns the size of the smallest directory of at least
// minSize, or false if there is none.
func SmallestToDelete(root *Node, minSize int) (int, bool) {
	smallest := math.MaxInt
	root.Walk(func(dir *Node) {
		if size := dir.TotalSize(); size >= minSize && size < smallest {
			smallest = size
		}
	})
	return smallest, smallest != math.MaxInt
}

func Solve(input string) (puzzle.Answer, error) {
	root, err := BuildTree(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	part1 := SumSmallDirectories(root, smallDirLimit)

	currentlyFree := totalDiskSpace - root.TotalSize()
	needToFree := requiredSpace - currentlyFree
	if needToFree <= 0 {
		return puzzle.Ints(part1, 0), nil
	}

	part2, ok := SmallestToDelete(root, needToFree)
	if !ok {
		return puzzle.Answer{}, fmt.Errorf("need %d more bytes: %w", needToFree, ErrNothingToDelete)
	}
	return puzzle.Ints(part1, part2), nil
}
