package twlint

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "twlint"
	Text        string       `json:"Text"`        // "duplicate class \"p-4\""
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	LineRange   *LineRange   `json:"LineRange"`   // Optional range
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, exact start of the class attribute
}

// LineRange specifies a range of lines
type LineRange struct {
	From int `json:"From"`
	To   int `json:"To"`
}

// Replacement provides an automated fix suggestion (used by --fix)
type Replacement struct {
	NewText      string // the corrected class attribute value
	InlineLength int    // Length of text to replace
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue message templates, one per analysis
const (
	IssueOrder      = "invalid class order, expected %q"
	IssueDuplicate  = "duplicate class %q"
	IssueConflict   = "classes %s apply to the same CSS property"
	IssueShorthand  = "classes %s can be replaced by shorthand %q"
	IssueDeprecated = "class %q uses a deprecated utility"
)

// linterName is the FromLinter value stamped on every issue.
const linterName = "twlint"
