package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line flags.
type cliFlags struct {
	config        string
	versionString string
	createRST     bool
	readme        string
	rstOut        string
	workspace     string
	pandoc        string
	preview       string
	quiet         bool
	verbose       bool

	// createRSTSet records whether --create-rst was given explicitly,
	// so an untouched flag does not override the config file value.
	createRSTSet bool
}

// parseFlags parses args (without the program name) and returns the flags
// and remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("md2rst", flag.ContinueOnError)
	fs.StringVarP(&flags.config, "config", "c", "", "config file name or path")
	fs.StringVar(&flags.versionString, "version-string", "", "opaque package version string")
	fs.BoolVar(&flags.createRST, "create-rst", true, "persist generated RST (false deletes the artifact)")
	fs.StringVar(&flags.readme, "readme", "", "Markdown source path")
	fs.StringVar(&flags.rstOut, "rst-out", "", "RST artifact path")
	fs.StringVar(&flags.workspace, "workspace", "", "generation workspace symlink path")
	fs.StringVar(&flags.pandoc, "pandoc", "", "pandoc executable name or path")
	fs.StringVar(&flags.preview, "preview", "", "also write an HTML preview of the sanitized Markdown")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress the resolved text on stdout")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "log resolution decisions to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	flags.createRSTSet = fs.Changed("create-rst")
	return flags, fs.Args(), nil
}
