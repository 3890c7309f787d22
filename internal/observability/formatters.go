// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/XenFolio/cv-ai/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCVAnalysis outputs a human-readable summary of a CV analysis.
func (p *Printer) PrintCVAnalysis(a *types.CVAnalysis) {
	if a == nil {
		return
	}

	s := a.Sections
	p.printAnalysis("CV ANALYSIS", a.OverallScore, [][2]any{
		{"Structure", s.Structure},
		{"Content", s.Content},
		{"Skills", s.Skills},
		{"Experience", s.Experience},
	}, a.Strengths, a.Weaknesses, a.Keywords, a.Improvements)
}

// PrintLetterAnalysis outputs a human-readable summary of a cover-letter analysis.
func (p *Printer) PrintLetterAnalysis(a *types.LetterAnalysis) {
	if a == nil {
		return
	}

	s := a.Sections
	p.printAnalysis("COVER LETTER ANALYSIS", a.OverallScore, [][2]any{
		{"Structure", s.Structure},
		{"Content", s.Content},
		{"Skills", s.Skills},
		{"Experience", s.Experience},
		{"Hook", s.Hook},
		{"Call to action", s.CallToAction},
	}, a.Strengths, a.Weaknesses, a.Keywords, a.Improvements)
}

func (p *Printer) printAnalysis(
	title string,
	overall int,
	sections [][2]any,
	strengths, weaknesses []string,
	keywords types.Keywords,
	improvements []types.Improvement,
) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall score: %d/100\n\n", overall))
	for _, sec := range sections {
		sb.WriteString(fmt.Sprintf("  %-16s %3d\n", sec[0], sec[1]))
	}
	sb.WriteString("\n")

	writeList(&sb, "Strengths", strengths)
	writeList(&sb, "Weaknesses", weaknesses)

	if n := len(keywords.Found) + len(keywords.Missing) + len(keywords.Suggestions); n > 0 {
		sb.WriteString(fmt.Sprintf("Keywords: %d found, %d missing, %d suggested\n",
			len(keywords.Found), len(keywords.Missing), len(keywords.Suggestions)))
		if len(keywords.Missing) > 0 {
			sb.WriteString(fmt.Sprintf("  Missing: %s\n", strings.Join(keywords.Missing, ", ")))
		}
		sb.WriteString("\n")
	}

	if len(improvements) > 0 {
		sb.WriteString("Improvements:\n")
		count := min(len(improvements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", strings.ToUpper(string(improvements[i].Priority)), improvements[i].Title))
		}
		if len(improvements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(improvements)-maxItemsToShow))
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCorrections outputs the detected errors of a correction result.
func (p *Printer) PrintCorrections(r *types.CorrectionResult) {
	if r == nil {
		return
	}

	if len(r.Errors) == 0 {
		p.printBox("NO ERRORS FOUND", "The text needs no correction.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d error(s):\n\n", len(r.Errors)))

	count := min(len(r.Errors), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := r.Errors[i]
		sb.WriteString(fmt.Sprintf("%d-%d  %s → %s\n", e.Span.Start, e.Span.End, e.Original, e.Correction))
		sb.WriteString(fmt.Sprintf("    %s, %s\n", e.Kind, e.Severity))
	}
	if len(r.Errors) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more errors", len(r.Errors)-maxItemsToShow))
	}

	p.printBox("GRAMMAR CORRECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}

// pad right-pads s with spaces to the inner box width, counting runes.
func pad(s string) string {
	if n := utf8.RuneCountInString(s); n < boxWidth-4 {
		return s + strings.Repeat(" ", boxWidth-4-n)
	}
	return s
}
