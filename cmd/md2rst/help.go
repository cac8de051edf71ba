package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2rst [flags] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Prepare a package's long description: resolve or regenerate a")
	fmt.Fprintln(w, "PyPI-compatible README.rst from README.md and print it to stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  doctor     Diagnose the environment (pandoc, temp dir); --json for JSON")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show this message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "      --version-string <s>   Opaque package version string")
	fmt.Fprintln(w, "      --create-rst           Persist generated RST (default true;")
	fmt.Fprintln(w, "                             --create-rst=false deletes the artifact)")
	fmt.Fprintln(w, "      --readme <path>        Markdown source (default README.md)")
	fmt.Fprintln(w, "      --rst-out <path>       RST artifact (default README.rst)")
	fmt.Fprintln(w, "      --workspace <path>     Generation workspace symlink (default pandoc)")
	fmt.Fprintln(w, "      --pandoc <name>        Converter executable (default pandoc)")
	fmt.Fprintln(w, "      --preview <file>       Also write an HTML preview of the sanitized source")
	fmt.Fprintln(w, "  -q, --quiet                Suppress the resolved text on stdout")
	fmt.Fprintln(w, "  -v, --verbose              Log resolution decisions to stderr")
}
