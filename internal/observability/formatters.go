// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobpost-studio/internal/session"
	"github.com/jonathan/jobpost-studio/internal/types"
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
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJob outputs a human-readable summary of the canonical job.
func (p *Printer) PrintJob(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:     %s\n", job.JobTitle))
	sb.WriteString(fmt.Sprintf("Headline:  %s\n", job.Headline))
	sb.WriteString(fmt.Sprintf("Keyword:   %s\n", job.ImageKeyword))
	sb.WriteString(fmt.Sprintf("Closing:   %s\n", job.ClosingDate))

	writeList(&sb, "Tasks", job.Tasks)
	writeList(&sb, "Qualifications", job.Qualifications)
	writeList(&sb, "Benefits", job.Benefits)

	sb.WriteString("\nContact:\n")
	sb.WriteString(fmt.Sprintf("  %s\n", job.ContactDetails.ContactPerson))
	sb.WriteString(fmt.Sprintf("  %s\n", job.ContactDetails.Email))
	sb.WriteString(fmt.Sprintf("  %s", job.ContactDetails.Phone))

	p.printBox("NORMALIZED JOB POST", sb.String())
}

// PrintVoice outputs the voice-over fields of the job.
func (p *Printer) PrintVoice(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tone:     %s\n", job.VoiceTone))
	sb.WriteString(fmt.Sprintf("CTA:      %s\n", job.VoiceCTA))
	sb.WriteString(fmt.Sprintf("Location: %s\n", job.VoiceLocation))

	script := job.VoiceScript
	if len(script) > 120 {
		script = script[:117] + "..."
	}
	sb.WriteString(fmt.Sprintf("\n%s", script))

	p.printBox("VOICE SCRIPT", sb.String())
}

// PrintFlows outputs the status of every request lifecycle.
func (p *Printer) PrintFlows(flows session.Flows) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Creation:    %s\n", flowLine(flows.Creation)))
	sb.WriteString(fmt.Sprintf("Refinement:  %s\n", flowLine(flows.Refinement)))
	sb.WriteString(fmt.Sprintf("Image:       %s\n", flowLine(flows.Image)))
	sb.WriteString(fmt.Sprintf("Translation: %s", flowLine(flows.Translation)))

	p.printBox("REQUEST FLOWS", sb.String())
}

// writeList appends a truncated bullet list for one job list field.
func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}

	sb.WriteString(fmt.Sprintf("\n%s:\n", label))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > boxWidth-10 {
			item = item[:boxWidth-13] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// flowLine renders one lifecycle as a single status line.
func flowLine(state session.State) string {
	if state.Error != "" {
		return fmt.Sprintf("%s (%s)", state.Status, state.Error)
	}
	return string(state.Status)
}
