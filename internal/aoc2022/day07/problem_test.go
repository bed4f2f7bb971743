package day07

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/povarna/aoc2022/internal/utils"
)

const sample = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want Line
	}{
		{line: "$ ls", want: Ls{}},
		{line: "$ cd /", want: Cd{Target: "/"}},
		{line: "$ cd ..", want: Cd{Target: ".."}},
		{line: "$ cd a.b", want: Cd{Target: "a.b"}},
		{line: "dir e", want: DirEntry{Name: "e"}},
		{line: "584 i", want: FileEntry{Name: "i", Size: 584}},
		{line: "62596 h.lst", want: FileEntry{Name: "h.lst", Size: 62596}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLine_Unknown(t *testing.T) {
	for _, line := range []string{"$ rm -rf", "$ cd", "$ cd a b", "dir ", "abc def", "-5 x", "12"} {
		t.Run(line, func(t *testing.T) {
			if _, err := ParseLine(line); !errors.Is(err, ErrUnknownLine) {
				t.Errorf("ParseLine(%q) error = %v, want ErrUnknownLine", line, err)
			}
		})
	}
}

func TestBuildTree(t *testing.T) {
	root, err := BuildTree(sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sizes := map[string]int{}
	root.Walk(func(dir *Node) {
		sizes[dir.Name] = dir.TotalSize()
	})

	want := map[string]int{"/": 48381165, "a": 94853, "d": 24933642, "e": 584}
	if diff := cmp.Diff(want, sizes); diff != "" {
		t.Errorf("directory sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTree_CdAboveRootStaysAtRoot(t *testing.T) {
	root, err := BuildTree("$ cd ..\n$ ls\n10 x\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Children["x"] == nil || root.TotalSize() != 10 {
		t.Errorf("expected x at the root, got size %d", root.TotalSize())
	}
}

func TestBuildTree_Errors(t *testing.T) {
	_, err := BuildTree("$ cd /\n$ ls\n10 x\n$ cd x\n")
	var lineErr *utils.LineError
	if !errors.As(err, &lineErr) || lineErr.Line != 4 {
		t.Errorf("expected line 4 error, got %v", err)
	}

	_, err = BuildTree("$ cd /\n$ pwd\n")
	if !errors.Is(err, ErrUnknownLine) {
		t.Errorf("expected ErrUnknownLine, got %v", err)
	}
}

func TestSolve(t *testing.T) {
	answer, err := Solve(sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.Part1 != "95437" {
		t.Errorf("Part1 = %s, want 95437", answer.Part1)
	}
	if answer.Part2 != "24933642" {
		t.Errorf("Part2 = %s, want 24933642", answer.Part2)
	}
}

func TestSolve_EnoughFreeSpace(t *testing.T) {
	answer, err := Solve("$ cd /\n$ ls\n100 a\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.Part1 != "100" || answer.Part2 != "0" {
		t.Errorf("got %+v, want 100 / 0", answer)
	}
}

func TestSmallestToDelete_None(t *testing.T) {
	root := NewDir("/", nil)
	if _, ok := SmallestToDelete(root, 1); ok {
		t.Error("expected no candidate in an empty tree")
	}
}
