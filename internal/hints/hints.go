// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os/exec"
	"strings"
)

// lookPath is swappable in tests.
var lookPath = exec.LookPath

// ForPandocMissing returns hints when the converter binary cannot be resolved.
func ForPandocMissing(binary string) string {
	var hints []string

	if _, err := lookPath(binary); err != nil {
		hints = append(hints, "install pandoc (https://pandoc.org/installing.html)")
		if binary != "pandoc" {
			hints = append(hints, "or check the pandoc.binary config value")
		}
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2rst/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2rst") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForMissingSource returns hints when no README source can be read.
func ForMissingSource(markdownPath string) string {
	return format("create " + markdownPath + " or point --readme at the Markdown source")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
