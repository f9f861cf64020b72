package twlint

import (
	"io"
)

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics without individual issues
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues plus statistics
	OutputFull OutputFormat = "full"
	// OutputJSON emits a machine-readable report
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit --quiet flag wins (exit code only)
	if quiet {
		return OutputIssues // Issues only, suppressed by the caller
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}

	// golangci-lint's UX: issues only by default
	return OutputIssues
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		verboseReporter := NewVerboseReporter(w, shouldUseColors(config))
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintBreakdown(*result)
		verboseReporter.PrintWarnings(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		verboseReporter := NewVerboseReporter(w, reporter.UseColors())
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintBreakdown(*result)
		verboseReporter.PrintFixes(*result)
		verboseReporter.PrintWarnings(*result)

	case OutputJSON:
		// Encoding errors surface on stderr in the CLI; the report
		// itself is best-effort.
		_ = WriteJSON(w, result)
	}
}
