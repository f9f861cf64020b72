package twlint

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains scan statistics and per-analysis counts
type JSONStats struct {
	FilesDiscovered int            `json:"files_discovered"`
	FilesSkipped    int            `json:"files_skipped"`
	ClassAttributes int            `json:"class_attributes"`
	ClassTokens     int            `json:"class_tokens"`
	ByAnalysis      map[string]int `json:"by_analysis"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Linter      string `json:"linter"`
	Source      string `json:"source,omitempty"`      // Optional source line
	Replacement string `json:"replacement,omitempty"` // Optional fix text
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		replacement := ""
		if issue.Replacement != nil {
			replacement = issue.Replacement.NewText
		}
		jsonIssues[i] = JSONIssue{
			File:        issue.Pos.Filename,
			Line:        issue.Pos.Line,
			Column:      issue.Pos.Column,
			Severity:    issue.Severity,
			Message:     issue.Text,
			Linter:      issue.FromLinter,
			Source:      source,
			Replacement: replacement,
		}
	}

	byAnalysis := make(map[string]int, len(result.IssuesByCategory))
	for category, issues := range result.IssuesByCategory {
		byAnalysis[category] = len(issues)
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			FilesDiscovered: result.ScanStats.FilesDiscovered,
			FilesSkipped:    result.ScanStats.FilesSkipped,
			ClassAttributes: result.AttrsFound,
			ClassTokens:     result.ClassesFound,
			ByAnalysis:      byAnalysis,
		},
		Issues: jsonIssues,
	}
}
