// Package observability provides logging setup and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// maxLineWidth bounds a single summary line
	maxLineWidth = 72
)

var (
	colorDim    = lipgloss.Color("#928374")
	colorHeader = lipgloss.Color("#fe8019")
	colorGreen  = lipgloss.Color("#8ec07c")

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			PaddingLeft(1).
			PaddingRight(1)
	headerStyle = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(colorGreen)
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a bordered box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = truncate(line)
	}
	inner := headerStyle.Render(strings.ToUpper(title)) + "\n\n" + strings.Join(lines, "\n")
	fmt.Fprintln(p.out, boxStyle.Render(inner))
}

// PrintResume outputs a human-readable summary of a built resume.
func (p *Printer) PrintResume(r *types.Resume) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", r.Name))
	sb.WriteString(fmt.Sprintf("Contact:   %s\n", joinNonEmpty(" | ", r.Email, r.Phone, r.Location)))
	sb.WriteString(fmt.Sprintf("Template:  %s\n", r.TemplateChoice))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Education (%d):\n", len(r.Education)))
	for i, e := range r.Education {
		if i == maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Education)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", joinNonEmpty(", ", e.Degree, e.Institution)))
	}

	sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(r.Experience)))
	for i, e := range r.Experience {
		if i == maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Experience)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  • %s (%d bullets)\n", joinNonEmpty(" @ ", e.Role, e.Company), len(e.Details)))
	}

	sb.WriteString(fmt.Sprintf("Projects (%d):\n", len(r.Projects)))
	for i, e := range r.Projects {
		if i == maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Projects)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", e.Name))
	}

	for _, g := range r.Skills {
		sb.WriteString(fmt.Sprintf("%s: %s\n", g.Label, strings.Join(g.Items, ", ")))
	}

	p.printBox("Resume", sb.String())
}

// PrintWrittenFiles outputs the list of files a command produced.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWrittenFiles(paths []string) {
	if len(paths) == 0 {
		return
	}
	for _, path := range paths {
		fmt.Fprintf(p.out, "%s %s\n", okStyle.Render("✓"), path)
	}
}

// PrintSectionCounts outputs the number of live entries per form section.
func (p *Printer) PrintSectionCounts(counts map[string]int, order []string) {
	if len(order) == 0 {
		return
	}
	var sb strings.Builder
	for _, name := range order {
		sb.WriteString(fmt.Sprintf("%-12s %d\n", name+":", counts[name]))
	}
	p.printBox("Form entries", sb.String())
}

func truncate(line string) string {
	runes := []rune(line)
	if len(runes) <= maxLineWidth {
		return line
	}
	return string(runes[:maxLineWidth-3]) + "..."
}

func joinNonEmpty(sep string, values ...string) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return strings.Join(out, sep)
}
