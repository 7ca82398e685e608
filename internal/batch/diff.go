package batch

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// DefaultDiffMaxLines is the default maximum number of diff lines shown per file.
const DefaultDiffMaxLines = 40

// DiffPreview is a user-facing, per-file diff shown in dry-run mode.
type DiffPreview struct {
	Path        string
	UnifiedDiff string
	Truncated   bool
}

// Empty reports whether the strip changed nothing in this file.
func (p DiffPreview) Empty() bool {
	return strings.TrimSpace(p.UnifiedDiff) == ""
}

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

// buildDiffPreview diffs the XML before and after stripping, capped at
// maxLines so a fully stripped submarine does not flood the console.
func buildDiffPreview(path string, before []byte, after []byte, maxLines int) DiffPreview {
	maxLines = normalizeDiffMaxLines(maxLines)
	unified := udiff.Unified(path+" (input)", path+" (stripped)", string(before), string(after))

	lines := strings.Split(strings.TrimRight(unified, "\n"), "\n")
	truncated := false
	if unified != "" && len(lines) > maxLines {
		lines = lines[:maxLines]
		truncated = true
	}
	preview := ""
	if unified != "" {
		preview = strings.Join(lines, "\n") + "\n"
	}
	return DiffPreview{
		Path:        path,
		UnifiedDiff: preview,
		Truncated:   truncated,
	}
}
