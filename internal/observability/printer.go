// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of the analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Words:      %d\n", result.WordCount))
	sb.WriteString(fmt.Sprintf("Experience: %d/10 (rough estimate)\n", result.ExperienceEstimate))

	if len(result.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(result.Skills), maxItemsToShow)
		for _, skill := range result.Skills[:count] {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
		if len(result.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Skills)-maxItemsToShow))
		}
	}

	if len(result.MostCommonWords) > 0 {
		sb.WriteString("\nTop words:\n")
		count := min(len(result.MostCommonWords), maxItemsToShow)
		for _, wc := range result.MostCommonWords[:count] {
			sb.WriteString(fmt.Sprintf("  %-20s %d\n", wc.Word, wc.Count))
		}
	}

	p.printBox("Resume Analysis", strings.TrimRight(sb.String(), "\n"))

	p.printContactInfo(result.ContactInfo)
	p.printTimeline(result.ExperienceTimeline)
	p.printSkillsMatch(result.SkillsMatch)
}

func (p *Printer) printContactInfo(info types.ContactInfo) {
	if len(info.Emails) == 0 && len(info.Phones) == 0 {
		return
	}

	var sb strings.Builder
	for _, email := range info.Emails {
		sb.WriteString(fmt.Sprintf("Email: %s\n", email))
	}
	for _, phone := range info.Phones {
		sb.WriteString(fmt.Sprintf("Phone: %s\n", phone))
	}
	p.printBox("Contact Info", strings.TrimRight(sb.String(), "\n"))
}

func (p *Printer) printTimeline(timeline *types.Timeline) {
	if timeline == nil {
		return
	}

	var sb strings.Builder
	for _, job := range timeline.Jobs {
		sb.WriteString(fmt.Sprintf("%s — %s\n", job.Title, job.Company))
		sb.WriteString(fmt.Sprintf("  %s to %s", job.StartDate, job.EndDate))
		if job.GapBeforeMonths > 0 {
			sb.WriteString(fmt.Sprintf(" (%d month gap before)", job.GapBeforeMonths))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("\nTotal experience: %.1f years\n", timeline.TotalExperienceYears))
	sb.WriteString(fmt.Sprintf("Employment gaps:  %d (longest %d months)", timeline.EmploymentGapsCount, timeline.LongestGapMonths))
	p.printBox("Employment Timeline", sb.String())
}

func (p *Printer) printSkillsMatch(match *types.SkillsMatch) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score: %d%%\n", match.MatchScore))
	if len(match.MatchingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nMatching (%d):\n", match.MatchingSkillsCount))
		for _, skill := range match.MatchingSkills {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", skill))
		}
	}
	if len(match.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nMissing (%d):\n", match.MissingSkillsCount))
		for _, skill := range match.MissingSkills {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", skill))
		}
	}
	p.printBox("Skills Match", strings.TrimRight(sb.String(), "\n"))
}
