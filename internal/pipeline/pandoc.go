package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/alnah/go-md2rst/internal/fileutil"
)

// Sentinel errors for RST conversion failures.
var (
	ErrEmptyContent = errors.New("markdown content cannot be empty")
	ErrConversion   = errors.New("RST conversion failed")
)

// DefaultPandocBinary is the executable name used when none is configured.
const DefaultPandocBinary = "pandoc"

// RSTConverter abstracts Markdown to RST conversion to allow different backends.
type RSTConverter interface {
	ToRST(ctx context.Context, content string) (string, error)
}

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", "", fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("starting command: %w", err)
	}

	stderrContent, err := io.ReadAll(stderrPipe)
	if err != nil {
		return "", "", fmt.Errorf("reading stderr: %w", err)
	}

	err = cmd.Wait()
	return stdout.String(), string(stderrContent), err
}

// PandocConverter converts Markdown to RST by invoking the pandoc CLI.
type PandocConverter struct {
	Binary string
	Runner CommandRunner
}

// NewPandocConverter creates a PandocConverter with a real command runner.
// An empty binary name falls back to DefaultPandocBinary.
func NewPandocConverter(binary string) *PandocConverter {
	if binary == "" {
		binary = DefaultPandocBinary
	}
	return &PandocConverter{Binary: binary, Runner: &ExecRunner{}}
}

// ToRST converts GitHub-flavored Markdown content to reStructuredText.
// Failures are reported, never retried: pandoc may have side effects and
// a blind retry is not safe.
func (c *PandocConverter) ToRST(ctx context.Context, content string) (string, error) {
	if content == "" {
		return "", ErrEmptyContent
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(content, "md")
	if err != nil {
		return "", err
	}
	defer cleanup()

	stdout, stderr, err := c.Runner.Run(ctx, c.Binary, tmpPath, "-f", "gfm", "-t", "rst")
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrConversion, stderr, err)
	}

	return stdout, nil
}
