package day01

import (
	"errors"
	"strconv"
	"testing"

	"github.com/povarna/aoc2022/internal/utils"
)

const sample = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func TestParseGroups(t *testing.T) {
	groups, err := ParseGroups("100\n200\n\n300\n400\n500\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [][]int{{100, 200}, {300, 400, 500}}
	if len(groups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(groups), len(want))
	}
	for i := range want {
		if len(groups[i]) != len(want[i]) {
			t.Fatalf("group %d = %v, want %v", i, groups[i], want[i])
		}
		for j := range want[i] {
			if groups[i][j] != want[i][j] {
				t.Errorf("group %d = %v, want %v", i, groups[i], want[i])
			}
		}
	}
}

func TestParseGroups_ExtraBlankLines(t *testing.T) {
	groups, err := ParseGroups("\n\n1\n\n\n\n2\n\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Errorf("got %d groups, want 2", len(groups))
	}
}

func TestParseGroups_MalformedLine(t *testing.T) {
	_, err := ParseGroups("100\nabc\n")

	var lineErr *utils.LineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("expected LineError, got %v", err)
	}
	if lineErr.Line != 2 {
		t.Errorf("line = %d, want 2", lineErr.Line)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("expected wrapped strconv.ErrSyntax")
	}
}

func TestSums(t *testing.T) {
	tests := []struct {
		name    string
		sums    []int
		n       int
		wantMax int
		wantTop int
	}{
		{name: "sums strings", sums: []int{600}, n: 3, wantMax: 600, wantTop: 600},
		{name: "top three", sums: []int{6000, 4000, 11000, 24000, 10000}, n: 3, wantMax: 24000, wantTop: 45000},
		{name: "empty", sums: nil, n: 3, wantMax: 0, wantTop: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxSum(tt.sums); got != tt.wantMax {
				t.Errorf("MaxSum() = %d, want %d", got, tt.wantMax)
			}
			if got := TopSum(tt.sums, tt.n); got != tt.wantTop {
				t.Errorf("TopSum() = %d, want %d", got, tt.wantTop)
			}
		})
	}
}

func TestTopSum_DoesNotReorderInput(t *testing.T) {
	sums := []int{1, 3, 2}
	TopSum(sums, 2)
	if sums[0] != 1 || sums[1] != 3 || sums[2] != 2 {
		t.Errorf("TopSum reordered its input: %v", sums)
	}
}

func TestSolve(t *testing.T) {
	answer, err := Solve(sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.Part1 != "24000" {
		t.Errorf("Part1 = %s, want 24000", answer.Part1)
	}
	if answer.Part2 != "45000" {
		t.Errorf("Part2 = %s, want 45000", answer.Part2)
	}

	again, _ := Solve(sample)
	if again != answer {
		t.Errorf("second run = %+v, first run = %+v", again, answer)
	}
}

func TestSolve_EmptyInput(t *testing.T) {
	if _, err := Solve(""); err == nil {
		t.Error("expected error for empty input")
	}
}
