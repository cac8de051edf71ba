package md2rst

import "context"

// Default paths and binary, relative to the process working directory.
const (
	DefaultMarkdownPath  = "README.md"
	DefaultRSTPath       = "README.rst"
	DefaultWorkspacePath = "pandoc"
)

// RSTConverter abstracts the external Markdown to RST conversion capability.
// The production implementation shells out to pandoc; tests inject fakes.
type RSTConverter interface {
	ToRST(ctx context.Context, content string) (string, error)
}

// converterConfig holds internal configuration for Converter.
// Flags are read-only within a single run: options set them at construction
// and nothing mutates them afterwards.
type converterConfig struct {
	version       string
	createRST     bool
	markdownPath  string
	rstPath       string
	workspacePath string
	pandocBinary  string
}

// Option configures a Converter.
type Option func(*Converter)

// WithVersion sets the package version string. It is opaque: carried for the
// packaging layer, never validated.
func WithVersion(version string) Option {
	return func(c *Converter) {
		c.cfg.version = version
	}
}

// WithCreateRST controls whether generated RST is persisted to disk (true)
// or any existing artifact is deleted instead (false). Defaults to true.
func WithCreateRST(create bool) Option {
	return func(c *Converter) {
		c.cfg.createRST = create
	}
}

// WithMarkdownPath sets the Markdown source path.
func WithMarkdownPath(path string) Option {
	return func(c *Converter) {
		c.cfg.markdownPath = path
	}
}

// WithRSTPath sets the RST artifact path.
func WithRSTPath(path string) Option {
	return func(c *Converter) {
		c.cfg.rstPath = path
	}
}

// WithWorkspacePath sets the generation workspace marker: a path whose
// presence as a symlink resolving to a directory triggers regeneration.
func WithWorkspacePath(path string) Option {
	return func(c *Converter) {
		c.cfg.workspacePath = path
	}
}

// WithPandocBinary sets the executable name or path for the external converter.
func WithPandocBinary(binary string) Option {
	return func(c *Converter) {
		c.cfg.pandocBinary = binary
	}
}

// WithRSTConverter injects a Markdown to RST conversion backend, replacing
// the pandoc invocation (e.g., by tests).
func WithRSTConverter(rc RSTConverter) Option {
	return func(c *Converter) {
		c.rstConverter = rc
	}
}

// WithLogf sets a progress logger for resolution decisions.
// The default discards all messages.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(c *Converter) {
		if logf != nil {
			c.logf = logf
		}
	}
}
