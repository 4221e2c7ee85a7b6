package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/taigrr/colorhash"
)

// renderer prints command results, styled when w is a color terminal.
type renderer struct {
	w      io.Writer
	lg     *lipgloss.Renderer
	branch lipgloss.Style
	count  lipgloss.Style
	issue  lipgloss.Style
}

func newRenderer(w io.Writer) *renderer {
	lg := lipgloss.NewRenderer(w)
	return &renderer{
		w:      w,
		lg:     lg,
		branch: lg.NewStyle().Foreground(lipgloss.Color("242")),
		count:  lg.NewStyle().Foreground(lipgloss.Color("245")),
		issue:  lg.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// title styles a comic path in a color derived from its file name, so the
// same comic keeps its color across runs.
func (r *renderer) title(path string) string {
	h := colorhash.HashString(filepath.Base(path))
	if h < 0 {
		h = -h
	}
	color := lipgloss.Color(fmt.Sprint(17 + h%214))
	return r.lg.NewStyle().Bold(true).Foreground(color).Render(path)
}

// results prints a path header followed by one branch line per result.
func (r *renderer) results(path string, results []string) {
	var sb strings.Builder
	sb.WriteString(r.title(path))
	sb.WriteString(" ")
	sb.WriteString(r.count.Render(fmt.Sprintf("(%d)", len(results))))
	sb.WriteString("\n")
	for _, res := range results {
		sb.WriteString(r.branch.Render("|_ "))
		sb.WriteString(res)
		sb.WriteString("\n")
	}
	fmt.Fprint(r.w, sb.String())
}

// issues prints a path header followed by its validation problems.
func (r *renderer) issues(path string, problems []string) {
	var sb strings.Builder
	sb.WriteString(r.title(path))
	sb.WriteString("\n")
	for _, p := range problems {
		sb.WriteString(r.issue.Render("  - " + p))
		sb.WriteString("\n")
	}
	fmt.Fprint(r.w, sb.String())
}

func (r *renderer) blank() {
	fmt.Fprintln(r.w)
}
