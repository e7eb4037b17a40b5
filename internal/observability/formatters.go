// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-board/internal/schemas"
	"github.com/jonathan/job-board/internal/types"
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
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJob outputs a human-readable summary of a job record.
func (p *Printer) PrintJob(job types.Job) {
	if job == nil {
		return
	}
	base := job.Base()

	var sb strings.Builder
	writeField(&sb, "Title", base.JobTitle)
	writeField(&sb, "Type", base.JobType)

	switch v := job.(type) {
	case *types.PrivateJob:
		writeField(&sb, "Company", v.CompanyName)
		writeField(&sb, "Industry", v.Industry)
		if v.VacancyCount != nil {
			writeField(&sb, "Vacancies", fmt.Sprint(*v.VacancyCount))
		}
		writeField(&sb, "Salary", v.SalaryRange)
		writeList(&sb, "Skills", v.SkillsRequired)
	case *types.GovernmentJob:
		writeField(&sb, "Department", v.NameOfDepartment)
		writeField(&sb, "Government", v.GovernmentType)
		writeField(&sb, "Vacancies", fmt.Sprint(v.VacancyCount))
		writeField(&sb, "Age limit", v.AgeLimit)
		writeField(&sb, "Exam", dateString(v.ExamDate))
		writeList(&sb, "Selection", v.SelectionProcess)
	}

	writeField(&sb, "Locations", strings.Join(types.Locations(job), ", "))
	writeField(&sb, "Education", base.Education)
	writeField(&sb, "Apply from", dateString(base.ApplicationStartingDate))
	writeField(&sb, "Apply by", dateString(base.ApplicationEndDate))
	writeField(&sb, "Info", base.InformationLink)
	writeField(&sb, "ID", base.ID)

	p.printBox(strings.ToUpper(string(job.Category()))+" JOB", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintIssues outputs schema issues found in a drafted record.
//
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) PrintIssues(issues []schemas.FieldError) {
	if len(issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ DRAFT MATCHES SCHEMA")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues:\n\n", len(issues)))

	for i, issue := range issues {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", issue.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", issue.Message))
		if i < len(issues)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("DRAFT ISSUES", strings.TrimSuffix(sb.String(), "\n"))
}

func writeField(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	sb.WriteString(fmt.Sprintf("%-11s %s\n", label+":", value))
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func dateString(d *types.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
