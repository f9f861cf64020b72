package twlint

import (
	"fmt"
	"io"
	"sort"
)

// VerboseReporter handles detailed statistics output
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Class Linter Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Files Discovered:   %d\n", result.ScanStats.FilesDiscovered)
	fmt.Fprintf(r.w, "Files Scanned:      %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:      %d\n", result.ScanStats.FilesSkipped)
	fmt.Fprintf(r.w, "Class Attributes:   %d\n", result.AttrsFound)
	fmt.Fprintf(r.w, "Class Tokens:       %d\n", result.ClassesFound)
	fmt.Fprintf(r.w, "Errors:             %d\n", result.ErrorCount)
	fmt.Fprintf(r.w, "Warnings:           %d\n", result.WarningCount)
}

// PrintBreakdown shows issue counts per analysis
func (r *VerboseReporter) PrintBreakdown(result LintResult) {
	if len(result.IssuesByCategory) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Issues by Analysis", r.useColors))
	fmt.Fprintln(r.w, "--------------------")

	categories := make([]string, 0, len(result.IssuesByCategory))
	for category := range result.IssuesByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Fprintf(r.w, "%-12s %d\n", category, len(result.IssuesByCategory[category]))
	}
}

// PrintFixes lists the concrete rewrites attached to issues
func (r *VerboseReporter) PrintFixes(result LintResult) {
	var fixable int
	for _, issue := range result.Issues {
		if issue.Replacement != nil {
			fixable++
		}
	}
	if fixable == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Suggested Rewrites", r.useColors))
	fmt.Fprintln(r.w, "--------------------")

	shown := 0
	for _, issue := range result.Issues {
		if issue.Replacement == nil {
			continue
		}
		if shown >= 10 {
			fmt.Fprintf(r.w, "... and %d more\n", fixable-shown)
			break
		}
		shown++
		fmt.Fprintf(r.w, "%d. %s:%d → %q\n",
			shown, issue.Pos.Filename, issue.Pos.Line, issue.Replacement.NewText)
	}
}

// PrintWarnings shows linter warnings
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "----------")
	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "- %s\n", warning)
	}
}
