package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
	answerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
)

// Renderer prints reports as plain lines, styled when w is a terminal.
type Renderer struct {
	w      io.Writer
	styled bool
}

func NewRenderer(w io.Writer) *Renderer {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Renderer{w: w, styled: styled}
}

func (r *Renderer) Render(report Report) error {
	header := fmt.Sprintf("Day %d: %s", report.Day, report.Title)
	part1 := fmt.Sprintf("Day %d Part 1:", report.Day)
	part2 := fmt.Sprintf("Day %d Part 2:", report.Day)
	a1, a2 := report.Answer.Part1, report.Answer.Part2

	if r.styled {
		header = headerStyle.Render(header)
		part1, part2 = labelStyle.Render(part1), labelStyle.Render(part2)
		a1, a2 = answerStyle.Render(a1), answerStyle.Render(a2)
	}

	_, err := fmt.Fprintf(r.w, "%s\n%s %s\n%s %s\n", header, part1, a1, part2, a2)
	return err
}

func (r *Renderer) RenderAll(reports []Report) error {
	for _, report := range reports {
		if err := r.Render(report); err != nil {
			return err
		}
	}
	return nil
}
