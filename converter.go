package md2rst

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-md2rst/internal/fileutil"
	"github.com/alnah/go-md2rst/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownSanitizer = (*pipeline.PyPISanitizer)(nil)
	_ pipeline.RSTConverter      = (*pipeline.PandocConverter)(nil)
	_ pipeline.HTMLConverter     = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CommandRunner     = (*pipeline.ExecRunner)(nil)
	_ RSTConverter               = (*pipeline.PandocConverter)(nil)
)

// Converter resolves and generates the package's long-form description.
// Create with New(), then call Resolve() once per packaging run.
type Converter struct {
	cfg           converterConfig
	sanitizer     pipeline.MarkdownSanitizer
	rstConverter  RSTConverter
	htmlConverter pipeline.HTMLConverter
	logf          func(format string, args ...any)
}

// New creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithCreateRST, WithPandocBinary).
func New(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			createRST:     true,
			markdownPath:  DefaultMarkdownPath,
			rstPath:       DefaultRSTPath,
			workspacePath: DefaultWorkspacePath,
			pandocBinary:  pipeline.DefaultPandocBinary,
		},
		sanitizer:     &pipeline.PyPISanitizer{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		logf:          func(string, ...any) {},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create the pandoc boundary if not injected (e.g., by tests)
	if c.rstConverter == nil {
		c.rstConverter = pipeline.NewPandocConverter(c.cfg.pandocBinary)
	}

	return c
}

// Version returns the opaque package version string.
func (c *Converter) Version() string {
	return c.cfg.version
}

// Resolve decides which document variant to return for packaging metadata.
// When the generation workspace is present it regenerates RST from Markdown;
// otherwise it returns an existing RST artifact, then the raw Markdown source
// as a degraded fallback. ErrSourceNotFound is returned only when no
// candidate can be read.
func (c *Converter) Resolve(ctx context.Context) (string, error) {
	if c.workspacePresent() {
		c.logf("Generating %s from %s", c.cfg.rstPath, c.cfg.markdownPath)
		return c.Generate(ctx)
	}

	if fileutil.FileExists(c.cfg.rstPath) {
		c.logf("Reading %s", c.cfg.rstPath)
		data, err := os.ReadFile(c.cfg.rstPath) // #nosec G304 -- path is caller configuration
		if err != nil {
			return "", fmt.Errorf("%w: reading %s: %v", ErrFilesystem, c.cfg.rstPath, err)
		}
		return string(data), nil
	}

	// Degraded fallback: the caller receives Markdown where RST was expected.
	c.logf("No %s found, falling back to %s", c.cfg.rstPath, c.cfg.markdownPath)
	data, err := os.ReadFile(c.cfg.markdownPath) // #nosec G304 -- path is caller configuration
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceNotFound, err)
	}
	return string(data), nil
}

// Generate runs the full pipeline: read Markdown, sanitize, convert to RST,
// prepend the provenance header, persist or discard the artifact, and return
// the finalized text.
func (c *Converter) Generate(ctx context.Context) (string, error) {
	data, err := os.ReadFile(c.cfg.markdownPath) // #nosec G304 -- path is caller configuration
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceNotFound, err)
	}

	sanitized, err := c.sanitizer.Sanitize(ctx, string(data))
	if err != nil {
		return "", err
	}

	rst, err := c.rstConverter.ToRST(ctx, sanitized)
	if err != nil {
		return "", fmt.Errorf("converting to RST: %w", err)
	}

	finalized := pipeline.PrependProvenance(rst)
	return pipeline.PersistOrDiscard(finalized, c.cfg.rstPath, c.cfg.createRST)
}

// PreviewHTML renders the sanitized Markdown source as a standalone HTML5
// document, so the effect of sanitization can be inspected before upload.
// Never part of the RST path.
func (c *Converter) PreviewHTML(ctx context.Context) (string, error) {
	data, err := os.ReadFile(c.cfg.markdownPath) // #nosec G304 -- path is caller configuration
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceNotFound, err)
	}

	sanitized, err := c.sanitizer.Sanitize(ctx, string(data))
	if err != nil {
		return "", err
	}

	return c.htmlConverter.ToHTML(ctx, sanitized)
}

// workspacePresent reports whether the generation workspace marker exists:
// the configured path must itself be a symlink and resolve to a directory.
func (c *Converter) workspacePresent() bool {
	return fileutil.IsSymlink(c.cfg.workspacePath) && fileutil.IsDir(c.cfg.workspacePath)
}
