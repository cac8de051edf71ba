// Package pipeline implements the Markdown-to-RST conversion stages.
//
// This package handles sanitization, format conversion, and finalization:
//   - Markdown sanitization for package-index compatibility (boilerplate
//     chopping, link removal)
//   - Markdown to RST conversion via the external pandoc binary
//   - RST finalization (provenance header, persist-or-discard)
//   - Markdown to HTML preview via Goldmark (pure Go)
//
// Source resolution is handled separately by the root md2rst package, which
// decides whether to run these stages at all or to return an existing
// document as-is.
package pipeline
