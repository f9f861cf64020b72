package twlint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindClassColumn(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		className string
		wantCol   int
	}{
		{
			name:      "single class",
			line:      `<div class="mt-4">`,
			className: "mt-4",
			wantCol:   13, // Position of 'm' in "mt-4"
		},
		{
			name:      "multiple classes - second",
			line:      `<div class="mt-4 text-center">`,
			className: "text-center",
			wantCol:   18,
		},
		{
			name:      "with leading spaces",
			line:      `  <div class="p-2 overflow-x-auto">`,
			className: "overflow-x-auto",
			wantCol:   19,
		},
		{
			name:      "single quotes",
			line:      `<div class='gap-2 gap-x-4'>`,
			className: "gap-x-4",
			wantCol:   19,
		},
		{
			name:      "className attribute",
			line:      `<div className="px-2 py-2">`,
			className: "py-2",
			wantCol:   22,
		},
		{
			name:      "multi-class string anchors on first token",
			line:      `<div class="mt-4 mb-4">`,
			className: "mt-4 mb-4",
			wantCol:   13,
		},
		{
			name:      "class not found",
			line:      `<div class="mt-4">`,
			className: "nonexistent",
			wantCol:   0, // Returns 0 to signal fallback needed
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findClassColumn(tt.line, tt.className)
			require.Equal(t, tt.wantCol, got)
		})
	}
}

func TestIsGenerated(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "templ generated (_templ.go)", path: "web/sidebar_templ.go", expected: true},
		{name: "templ generated (.templ.go)", path: "web/sidebar.templ.go", expected: true},
		{name: "minified bundle", path: "assets/app.min.js", expected: true},
		{name: "templ source", path: "web/sidebar.templ", expected: false},
		{name: "regular html", path: "web/index.html", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isGenerated(tt.path))
		})
	}
}

func TestExtractAttrsFromLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "html class attribute",
			line: `<div class="mt-4 mb-4 text-center">`,
			want: []string{"mt-4 mb-4 text-center"},
		},
		{
			name: "two attributes on one line",
			line: `<div class="p-2"><span class="font-bold"></span></div>`,
			want: []string{"p-2", "font-bold"},
		},
		{
			name: "jsx className",
			line: `return <div className="flex-none w-4 h-4" />`,
			want: []string{"flex-none w-4 h-4"},
		},
		{
			name: "templ classes call",
			line: `<div class={ templ.Classes("mt-4 mb-4") }>`,
			want: []string{"mt-4 mb-4"},
		},
		{
			name: "comment line is skipped",
			line: `// <div class="mt-4">`,
			want: nil,
		},
		{
			name: "html comment is skipped",
			line: `<!-- <div class="mt-4"> -->`,
			want: nil,
		},
		{
			name: "no class attribute",
			line: `<div id="header">`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := extractAttrsFromLine(tt.line, 1, "test.html")
			var values []string
			for _, attr := range attrs {
				values = append(values, attr.Value)
			}
			assert.Equal(t, tt.want, values)
		})
	}
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()

	page := `<html>
<body>
	<div class="mt-4 mb-4">
		<span class="font-bold text-center">hi</span>
	</div>
</body>
</html>
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.html"), []byte(page), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widget_templ.go"), []byte(`var x = "class=\"p-4\""`), 0644))

	attrs, stats, err := ScanFiles([]string{filepath.Join(dir, "*")})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FilesDiscovered)
	assert.Equal(t, 1, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped)

	require.Len(t, attrs, 2)
	assert.Equal(t, "mt-4 mb-4", attrs[0].Value)
	assert.Equal(t, 3, attrs[0].Location.Line)
	assert.Equal(t, "font-bold text-center", attrs[1].Value)
	assert.Equal(t, 4, attrs[1].Location.Line)
}
