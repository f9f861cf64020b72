// Package twlint lints utility-class strings in template files: it checks
// class ordering, duplicate classes, classes that contradict each other,
// and class sets that a single shorthand utility can replace.
//
// The grammar behind the analyses is theme-parameterized: a Tailwind-style
// theme config controls which values each utility accepts, and patterns are
// compiled and memoized per theme snapshot. Build an Analyzer from a
// ThemeConfig to run the analyses directly, or call Lint to scan files and
// collect golangci-lint style issues.
package twlint
