package twlint

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ClassAttr represents one class attribute value found in a template file.
type ClassAttr struct {
	Value       string       // Full attribute value: "mt-4 mb-4 text-center"
	Location    FileLocation // Where it was found
	LineContent string       // The full line for context
}

// FileLocation tracks where a class attribute was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column (exact start of the attribute value)
	Text   string // Full line content for source display
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// scanPattern represents a regex pattern for finding class attributes
type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	// Patterns for finding class attributes across template dialects.
	// Ordered from most specific to least specific.
	patterns = []scanPattern{
		{
			name:  "class attribute with double quotes",
			regex: regexp.MustCompile(`class="([^"]+)"`),
		},
		{
			name:  "class attribute with single quotes",
			regex: regexp.MustCompile(`class='([^']+)'`),
		},
		{
			name:  "className attribute with double quotes",
			regex: regexp.MustCompile(`className="([^"]+)"`),
		},
		{
			name:  "className attribute with single quotes",
			regex: regexp.MustCompile(`className='([^']+)'`),
		},
		{
			name:  "class with string literal in braces",
			regex: regexp.MustCompile(`class=\{\s*"([^"]+)"`),
		},
		{
			name:  "templ.Classes with string",
			regex: regexp.MustCompile(`templ\.Classes\(\s*"([^"]+)"`),
		},
		{
			name:  "templ.KV with string",
			regex: regexp.MustCompile(`templ\.KV\(\s*"([^"]+)"`),
		},
	}

	// Comment patterns to skip
	commentPattern = regexp.MustCompile(`^\s*(//|<!--|{/\*)`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isGenerated checks for generated template artifacts that should never be
// linted: templ output and minified bundles.
func isGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go") ||
		strings.Contains(filepath.Base(path), ".min.")
}

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			// Gracefully degrade - no .gitignore is fine
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning
//
// Two-layer filtering:
// 1. Pattern check (fast): skip generated/minified files
// 2. Gitignore check: skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	if isGenerated(path) {
		return true
	}

	// Only apply gitignore to relative paths (paths within the project).
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given glob patterns for class
// attributes.
func ScanFiles(scanPatterns []string) ([]ClassAttr, ScanStats, error) {
	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	var attrs []ClassAttr
	for _, file := range files {
		fileAttrs, err := scanFile(file)
		if err != nil {
			// Unreadable files are skipped, not fatal
			continue
		}
		attrs = append(attrs, fileAttrs...)
	}

	return attrs, stats, nil
}

// expandGlobPatterns expands glob patterns to actual file paths and tracks
// statistics
func expandGlobPatterns(globs []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range globs {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			seen[match] = true
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file for class attributes
func scanFile(filePath string) ([]ClassAttr, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var attrs []ClassAttr
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		attrs = append(attrs, extractAttrsFromLine(line, lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return attrs, nil
}

// extractAttrsFromLine extracts all class attribute values from a line
func extractAttrsFromLine(line string, lineNum int, file string) []ClassAttr {
	// Skip comments
	if commentPattern.MatchString(line) {
		return nil
	}

	var attrs []ClassAttr
	claimed := make([]bool, len(line))

	for _, pattern := range patterns {
		matches := pattern.regex.FindAllStringSubmatchIndex(line, -1)
		for _, match := range matches {
			if len(match) < 4 {
				continue
			}
			// Later, less specific patterns must not re-report a value
			// already captured by an earlier one.
			if claimed[match[2]] {
				continue
			}
			for i := match[2]; i < match[3]; i++ {
				claimed[i] = true
			}

			attrs = append(attrs, ClassAttr{
				Value: line[match[2]:match[3]],
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: match[2] + 1, // 1-indexed
					Text:   strings.TrimRight(line, " \t"),
				},
				LineContent: strings.TrimSpace(line),
			})
		}
	}

	return attrs
}

// findClassColumn locates the exact column where className starts within
// line. For multi-class strings, the first token is the anchor.
func findClassColumn(line string, fullClassString string) int {
	tokens := strings.Fields(fullClassString)
	searchTarget := fullClassString
	if len(tokens) > 0 {
		searchTarget = tokens[0]
	}

	// Prefer a match inside a class= / className= attribute.
	for _, attr := range []string{"class=", "className="} {
		attrIdx := strings.Index(line, attr)
		if attrIdx == -1 {
			continue
		}
		quoteIdx := strings.IndexAny(line[attrIdx:], `"'`)
		if quoteIdx == -1 {
			continue
		}
		searchStart := attrIdx + quoteIdx + 1

		classesStr := line[searchStart:]
		if endQuote := strings.IndexAny(classesStr, `"'`); endQuote != -1 {
			classesStr = classesStr[:endQuote]
		}

		if idx := strings.Index(classesStr, searchTarget); idx != -1 {
			return searchStart + idx + 1 // 1-based column
		}
	}

	// Quoted literal anywhere on the line.
	if idx := strings.Index(line, `"`+searchTarget+`"`); idx != -1 {
		return idx + 2 // +1 for 1-based, +1 to skip quote
	}

	// Direct search.
	if idx := strings.Index(line, searchTarget); idx != -1 {
		return idx + 1
	}

	return 0
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
