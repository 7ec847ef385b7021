// Package markdown renders Markdown help documents into HTML fragments and
// writes them to a single output directory. Rendering follows GitHub flavoured
// Markdown with soft line wraps; output names keep the source file name up to
// its first dot.
package markdown
