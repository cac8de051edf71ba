package main

import (
	"context"
	"errors"
	"fmt"

	md2rst "github.com/alnah/go-md2rst"
	"github.com/alnah/go-md2rst/internal/config"
	"github.com/alnah/go-md2rst/internal/fileutil"
	"github.com/alnah/go-md2rst/internal/hints"
)

// runGenerate resolves the long description and prints it to stdout.
// Side effects (writing or deleting the RST artifact) follow the create-RST
// flag; the printed text is for capture by the packaging layer.
func runGenerate(flags *cliFlags, env *Environment) int {
	cfg, code := loadConfig(flags, env)
	if code != ExitSuccess {
		return code
	}
	applyFlagOverrides(cfg, flags)

	opts := []md2rst.Option{
		md2rst.WithVersion(cfg.Version),
		md2rst.WithCreateRST(cfg.CreateRST),
		md2rst.WithMarkdownPath(cfg.Readme.Markdown),
		md2rst.WithRSTPath(cfg.Readme.RST),
		md2rst.WithWorkspacePath(cfg.Workspace.Path),
		md2rst.WithPandocBinary(cfg.Pandoc.Binary),
	}
	if flags.verbose {
		opts = append(opts, md2rst.WithLogf(func(format string, args ...any) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	}
	conv := md2rst.New(opts...)

	ctx := context.Background()

	text, err := conv.Resolve(ctx)
	if err != nil {
		reportError(env, cfg, err)
		return exitCodeFor(err)
	}

	if flags.preview != "" {
		html, err := conv.PreviewHTML(ctx)
		if err != nil {
			reportError(env, cfg, err)
			return exitCodeFor(err)
		}
		if err := fileutil.ReplaceFile(flags.preview, html); err != nil {
			reportError(env, cfg, err)
			return exitCodeFor(err)
		}
		if flags.verbose {
			fmt.Fprintf(env.Stderr, "Wrote preview %s\n", flags.preview)
		}
	}

	if !flags.quiet {
		fmt.Fprint(env.Stdout, text)
	}
	return ExitSuccess
}

// loadConfig returns the effective config: the file named by --config, or the
// environment's defaults when the flag is absent.
func loadConfig(flags *cliFlags, env *Environment) (*config.Config, int) {
	if flags.config == "" {
		return env.Config, ExitSuccess
	}

	cfg, err := config.LoadConfig(flags.config)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, config.ErrConfigNotFound) {
			msg += hints.ForConfigNotFound(nil)
		}
		fmt.Fprintln(env.Stderr, msg)
		return nil, exitCodeFor(err)
	}
	return cfg, ExitSuccess
}

// applyFlagOverrides layers explicit flags over the config file values.
func applyFlagOverrides(cfg *config.Config, flags *cliFlags) {
	if flags.versionString != "" {
		cfg.Version = flags.versionString
	}
	if flags.createRSTSet {
		cfg.CreateRST = flags.createRST
	}
	if flags.readme != "" {
		cfg.Readme.Markdown = flags.readme
	}
	if flags.rstOut != "" {
		cfg.Readme.RST = flags.rstOut
	}
	if flags.workspace != "" {
		cfg.Workspace.Path = flags.workspace
	}
	if flags.pandoc != "" {
		cfg.Pandoc.Binary = flags.pandoc
	}
}

// reportError prints the error with an actionable hint where one exists.
func reportError(env *Environment, cfg *config.Config, err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, md2rst.ErrConversion):
		msg += hints.ForPandocMissing(cfg.Pandoc.Binary)
	case errors.Is(err, md2rst.ErrSourceNotFound):
		msg += hints.ForMissingSource(cfg.Readme.Markdown)
	}
	fmt.Fprintln(env.Stderr, msg)
}
