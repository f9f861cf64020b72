package twlint

import (
	"fmt"
	"strings"
)

// Checks selects which analyses run.
type Checks struct {
	Order      bool `koanf:"order"`
	Duplicates bool `koanf:"duplicates"`
	Conflicts  bool `koanf:"conflicts"`
	Shorthand  bool `koanf:"shorthand"`
}

// AllChecks enables every analysis.
func AllChecks() Checks {
	return Checks{Order: true, Duplicates: true, Conflicts: true, Shorthand: true}
}

// enabled reports whether any analysis is selected; a zero value means the
// caller didn't choose, which enables everything.
func (c Checks) enabled() Checks {
	if !c.Order && !c.Duplicates && !c.Conflicts && !c.Shorthand {
		return AllChecks()
	}
	return c
}

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths []string    // Patterns to scan (e.g., "web/**/*.{templ,html}")
	Theme     ThemeConfig // Theme the grammar is parameterized by
	Checks    Checks      // Analyses to run (zero value = all)
	Verbose   bool
	Strict    bool // Exit with code 1 if issues found

	// golangci-style output configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	ShowStats          bool // Show statistics summary (auto-enabled with Verbose)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (twlint) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)
}

// LintResult contains linting analysis results
type LintResult struct {
	// Issues in golangci-lint format
	Issues           []Issue
	IssuesByCategory map[string][]Issue // Grouped by analysis for stats

	FilesScanned   int
	AttrsFound     int // Class attributes scanned
	ClassesFound   int // Individual class tokens seen
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues removed due to limits

	ScanStats ScanStats
	Warnings  []string
}

// Lint scans the configured paths and runs the enabled analyses over every
// class attribute found.
func Lint(config LintConfig) (*LintResult, error) {
	analyzer := NewAnalyzer(config.Theme)

	attrs, stats, err := ScanFiles(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	result := analyzeAttrs(analyzer, attrs, config.Checks.enabled())
	result.ScanStats = stats
	result.FilesScanned = stats.FilesScanned

	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	return result, nil
}

// analyzeAttrs runs the enabled analyses over each attribute and converts
// findings to issues.
func analyzeAttrs(analyzer *Analyzer, attrs []ClassAttr, checks Checks) *LintResult {
	result := &LintResult{
		IssuesByCategory: make(map[string][]Issue),
	}

	for _, attr := range attrs {
		result.AttrsFound++
		result.ClassesFound += len(strings.Fields(attr.Value))

		// Deprecation is a parse-level finding, reported regardless of
		// which analyses are selected.
		for _, tok := range analyzer.Parse(attr.Value) {
			if tok.Deprecated {
				issue := attrIssue(attr, fmt.Sprintf(IssueDeprecated, tok.Name), SeverityWarning, tok.Name)
				result.addIssue("deprecated", issue)
			}
		}

		if checks.Order || checks.Duplicates {
			order := analyzer.SortClassText(attr.Value)

			if checks.Duplicates {
				for _, dup := range order.Duplicates {
					issue := attrIssue(attr, fmt.Sprintf(IssueDuplicate, dup), SeverityWarning, dup)
					result.addIssue("duplicates", issue)
				}
			}

			// Removed duplicates already have their own issue, so
			// skip the ordering report when that check covers them.
			suppressed := checks.Duplicates && len(order.Duplicates) > 0
			if checks.Order && order.Changed && !suppressed {
				issue := attrIssue(attr, fmt.Sprintf(IssueOrder, order.Sorted), SeverityWarning, "")
				issue.Replacement = &Replacement{
					NewText:      order.Sorted,
					InlineLength: len(attr.Value),
				}
				result.addIssue("order", issue)
			}
		}

		if checks.Conflicts {
			for _, group := range analyzer.Conflicts(attr.Value) {
				issue := attrIssue(attr, fmt.Sprintf(IssueConflict, quoteJoin(group.Classes)), SeverityError, group.Classes[0])
				result.addIssue("conflicts", issue)
			}
		}

		if checks.Shorthand {
			collapsed := analyzer.CollapseShorthand(attr.Value)
			for _, c := range collapsed.Collapses {
				issue := attrIssue(attr, fmt.Sprintf(IssueShorthand, quoteJoin(c.Originals), c.Replacement), SeverityWarning, c.Originals[0])
				issue.Replacement = &Replacement{
					NewText:      collapsed.Text,
					InlineLength: len(attr.Value),
				}
				result.addIssue("shorthand", issue)
			}
		}
	}

	return result
}

func (r *LintResult) addIssue(category string, issue Issue) {
	r.Issues = append(r.Issues, issue)
	r.IssuesByCategory[category] = append(r.IssuesByCategory[category], issue)
}

// attrIssue builds an issue anchored at the attribute, or at a specific
// class within it when anchor is non-empty.
func attrIssue(attr ClassAttr, text, severity, anchor string) Issue {
	column := attr.Location.Column
	if anchor != "" {
		if col := findClassColumn(attr.Location.Text, anchor); col > 0 {
			column = col
		}
	}

	return Issue{
		FromLinter:  linterName,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{attr.Location.Text},
		Pos: IssuePos{
			Filename: attr.Location.File,
			Line:     attr.Location.Line,
			Column:   column,
		},
	}
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return strings.Join(quoted, ", ")
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	truncatedCount := originalCount - len(issues)
	return issues, truncatedCount
}

// deduplicateSameIssues caps how many times an identical message repeats
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
