// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mfreitag/cvgen/internal/sources"
	"github.com/mfreitag/cvgen/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

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
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSources outputs which logical sources were found in the data folder.
func (p *Printer) PrintSources(set sources.Set) {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found: %d\n", len(names)))
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  - %s\n", name))
	}

	p.printBox("Sources", strings.TrimRight(sb.String(), "\n"))
}

// PrintDocument outputs a human-readable summary of the resolved document.
func (p *Printer) PrintDocument(doc *types.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:           %s\n", doc.Contact.Name))
	sb.WriteString(fmt.Sprintf("Email:          %s\n", doc.Contact.Email))
	sb.WriteString(fmt.Sprintf("Skills:         %d categories\n", len(doc.Skills)))
	sb.WriteString(fmt.Sprintf("Languages:      %d\n", len(doc.Languages)))
	sb.WriteString(fmt.Sprintf("Certifications: %d\n", len(doc.Certifications)))

	keys := make([]string, 0, len(doc.Sections))
	for key := range doc.Sections {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	sb.WriteString("Sections:\n")
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf("  - %s\n", key))
	}

	p.printBox("Resolved Document", strings.TrimRight(sb.String(), "\n"))
}

// PrintCompilation outputs the run ID of a finished PDF compilation.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCompilation(runID, outputPath string) {
	content := fmt.Sprintf("Run:    %s\nOutput: %s", runID, outputPath)
	p.printBox("PDF Compilation", content)
}
