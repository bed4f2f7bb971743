package utils

import (
	"errors"
	"strconv"
	"testing"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plain", input: "1000", want: 1000},
		{name: "surrounding spaces", input: " 42 ", want: 42},
		{name: "negative", input: "-7", want: -7},
		{name: "letters", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInt(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToInt(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ToInt(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	if got := Lines(""); got != nil {
		t.Errorf("Lines(\"\") = %q, want nil", got)
	}

	got := Lines("a\nb\n\nc\n")
	want := []string{"a", "b", "", "c"}
	if len(got) != len(want) {
		t.Fatalf("Lines() returned %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLineError(t *testing.T) {
	_, cause := strconv.Atoi("x")
	err := &LineError{Line: 3, Text: "x", Err: cause}

	if err.Error() != `line 3 "x": `+cause.Error() {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("expected LineError to unwrap to strconv.ErrSyntax")
	}
}
