package pipeline

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// ErrMalformedDocument indicates the sanitizer ran out of lines before
// finding a stable first content line.
var ErrMalformedDocument = errors.New("document contains only blank lines and badges")

// badgeMarker opens a badge image line, e.g. [![Build](...)](...).
const badgeMarker = "[!["

// Precompiled regex patterns for link removal.
// Both allow escaped closing brackets (\]) inside their segments.
var (
	// Reference-style links, e.g. [hello][url-to-hello] or [hello][]
	referenceLinkPattern = regexp.MustCompile(
		`\[((?:[^\]]|\\\])+)\]` + // link text
			`\[((?:[^\]]|\\\])*)\]`, // link name
	)

	// Inline links, e.g. [example.com](http://www.example.com)
	inlineLinkPattern = regexp.MustCompile(
		`\[((?:[^\]]|\\\])+)\]` + // link text
			`\(((?:[^\]]|\\\])*)\)`, // link url
	)
)

// MarkdownSanitizer defines the contract for markdown sanitization.
type MarkdownSanitizer interface {
	Sanitize(ctx context.Context, content string) (string, error)
}

// PyPISanitizer prepares Markdown for conversion to package-index RST.
type PyPISanitizer struct{}

// Sanitize applies all transformations, whole-document, in a fixed order:
// boilerplate chopping first, then link removal.
func (s *PyPISanitizer) Sanitize(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content, err := StripLeadingBoilerplate(content)
	if err != nil {
		return "", err
	}
	return StripLinks(content), nil
}

// StripLeadingBoilerplate removes leading lines while they are blank or begin
// with a badge-image marker, stopping at the first line that is neither.
// Returns ErrMalformedDocument if no such line exists.
func StripLeadingBoilerplate(content string) (string, error) {
	lines := strings.Split(content, "\n")
	for len(lines) > 0 {
		first := lines[0]
		if strings.TrimSpace(first) != "" && !strings.HasPrefix(first, badgeMarker) {
			return strings.Join(lines, "\n"), nil
		}
		lines = lines[1:]
	}
	return "", ErrMalformedDocument
}

// StripLinks removes link syntax, keeping only the visible text. Package
// indexes reject external links in long descriptions, so they are dropped
// textually: reference-style [text][ref] first, then inline [text](url).
// Bytes outside matched spans pass through unchanged.
func StripLinks(content string) string {
	content = referenceLinkPattern.ReplaceAllString(content, "$1")
	content = inlineLinkPattern.ReplaceAllString(content, "$1")
	return content
}
