// Package md2rst prepares a package's long-form description for distribution
// by converting a Markdown README into a sanitized, package-index-compatible
// reStructuredText document.
//
// # Quick Start
//
// Create a converter and resolve the description text:
//
//	conv := md2rst.New(md2rst.WithVersion("1.0.2"))
//	text, err := conv.Resolve(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Resolve picks the document variant the packaging layer should use:
//
//  1. If the generation workspace is present (a symlink resolving to a
//     directory, "pandoc" by default), the full pipeline runs: the Markdown
//     source is sanitized, converted to RST via the pandoc binary, finalized
//     with a provenance header, and persisted or discarded according to the
//     create-RST flag. The finalized text is returned.
//  2. Otherwise, an existing README.rst is returned as-is.
//  3. Otherwise, the raw README.md content is returned unmodified. This is an
//     accepted degraded fallback, not an error: the caller receives Markdown
//     where RST was expected.
//
// # Conversion Pipeline
//
// Generation follows these stages:
//
//  1. Sanitization: leading blank and badge lines are chopped, then link
//     syntax is removed (package indexes reject external links).
//  2. Markdown to RST conversion via the external pandoc binary
//     (GitHub-flavored Markdown in, reStructuredText out).
//  3. Finalization: a fixed provenance comment becomes the first line.
//  4. Persist-or-discard: the artifact is written via a non-atomic
//     delete-then-write, or deleted when persistence is disabled.
//
// The pipeline is single-shot and synchronous. Nothing is retried, and
// concurrent invocations targeting the same artifact path are unsafe;
// callers must serialize builds.
package md2rst
