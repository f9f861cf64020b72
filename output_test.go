package twlint

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() *LintResult {
	issues := []Issue{
		{
			FromLinter:  "twlint",
			Text:        `duplicate class "p-4"`,
			Severity:    SeverityWarning,
			SourceLines: []string{`<div class="p-4 p-4">`},
			Pos:         IssuePos{Filename: "web/page.html", Line: 3, Column: 13},
		},
		{
			FromLinter:  "twlint",
			Text:        `classes "p-2", "p-4" apply to the same CSS property`,
			Severity:    SeverityError,
			SourceLines: []string{`<div class="p-2 p-4">`},
			Pos:         IssuePos{Filename: "web/page.html", Line: 7, Column: 13},
			Replacement: &Replacement{NewText: "p-4"},
		},
	}

	return &LintResult{
		Issues: issues,
		IssuesByCategory: map[string][]Issue{
			"duplicates": {issues[0]},
			"conflicts":  {issues[1]},
		},
		FilesScanned: 1,
		AttrsFound:   2,
		ClassesFound: 4,
		ErrorCount:   1,
		WarningCount: 1,
		ScanStats:    ScanStats{FilesDiscovered: 2, FilesScanned: 1, FilesSkipped: 1},
	}
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
	}{
		{name: "default is issues", formatFlag: "", expected: OutputIssues},
		{name: "explicit issues", formatFlag: "issues", expected: OutputIssues},
		{name: "summary", formatFlag: "summary", expected: OutputSummary},
		{name: "full", formatFlag: "full", expected: OutputFull},
		{name: "json", formatFlag: "json", expected: OutputJSON},
		{name: "unknown falls back to issues", formatFlag: "bogus", expected: OutputIssues},
		{name: "quiet wins over format", formatFlag: "full", quiet: true, expected: OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag, tt.quiet))
		})
	}
}

func TestReporterPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, LintConfig{PrintIssuedLines: true, PrintLinterName: true})
	result := testResult()

	reporter.PrintIssues(result.Issues)
	out := buf.String()

	assert.Contains(t, out, "web/page.html:3:13:")
	assert.Contains(t, out, `duplicate class "p-4"`)
	assert.Contains(t, out, "(twlint)")
	assert.Contains(t, out, `<div class="p-2 p-4">`)
	assert.Contains(t, out, "^")

	// Sorted by file position: line 3 before line 7.
	assert.Less(t,
		bytes.Index(buf.Bytes(), []byte(":3:13:")),
		bytes.Index(buf.Bytes(), []byte(":7:13:")))
}

func TestReporterPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, LintConfig{})

	reporter.PrintSummary(*testResult())
	out := buf.String()

	assert.Contains(t, out, "2 issues (1 error, 1 warning):")
	assert.Contains(t, out, "* conflicts: 1")
	assert.Contains(t, out, "* duplicates: 1")
	assert.Contains(t, out, "Hint:")
}

func TestReporterPrintSummaryTruncated(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, LintConfig{})

	result := testResult()
	result.TruncatedCount = 3
	reporter.PrintSummary(*result)

	assert.Contains(t, buf.String(), "3 issues truncated")
}

func TestBuildCaretIndicator(t *testing.T) {
	r := &Reporter{}

	tests := []struct {
		name   string
		line   string
		column int
		want   string
	}{
		{name: "column one", line: "abc", column: 1, want: "^"},
		{name: "mid line", line: `<div class="p-4">`, column: 13, want: strings.Repeat(" ", 12) + "^"},
		{name: "tabs preserved", line: "\t\t<div>", column: 4, want: "\t\t ^"},
		{name: "zero column", line: "abc", column: 0, want: "^"},
		{name: "past end of line", line: "ab", column: 10, want: "  ^"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.buildCaretIndicator(tt.line, tt.column))
		})
	}
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "2 issues", pluralizeCount(2, "issue", "issues"))
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
}

func TestVerboseReporter(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewVerboseReporter(&buf, false)
	result := testResult()

	reporter.PrintStatistics(*result)
	reporter.PrintBreakdown(*result)
	reporter.PrintFixes(*result)
	out := buf.String()

	assert.Contains(t, out, "Files Discovered:   2")
	assert.Contains(t, out, "Files Scanned:      1")
	assert.Contains(t, out, "Class Attributes:   2")
	assert.Contains(t, out, "Class Tokens:       4")
	assert.Contains(t, out, "conflicts    1")
	assert.Contains(t, out, "duplicates   1")
	assert.Contains(t, out, `"p-4"`)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testResult()))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	assert.NotEmpty(t, out.Timestamp)
	assert.Equal(t, 2, out.Summary.TotalIssues)
	assert.Equal(t, 1, out.Summary.Errors)
	assert.Equal(t, 1, out.Summary.Warnings)
	assert.Equal(t, 1, out.Summary.FilesScanned)
	assert.Equal(t, 2, out.Stats.FilesDiscovered)
	assert.Equal(t, map[string]int{"conflicts": 1, "duplicates": 1}, out.Stats.ByAnalysis)

	require.Len(t, out.Issues, 2)
	assert.Equal(t, "web/page.html", out.Issues[0].File)
	assert.Equal(t, 3, out.Issues[0].Line)
	assert.Equal(t, "warning", out.Issues[0].Severity)
	assert.Equal(t, "twlint", out.Issues[0].Linter)
	assert.Empty(t, out.Issues[0].Replacement)
	assert.Equal(t, "p-4", out.Issues[1].Replacement)
}
