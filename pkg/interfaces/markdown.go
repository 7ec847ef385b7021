package interfaces

import "context"

// MarkdownParser converts raw Markdown bytes into an HTML fragment.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown rendering. The zero value renders GFM with
// soft line wraps, raw HTML passthrough and generated heading ids.
type ParseOptions struct {
	// Extensions names the goldmark extensions to enable. Empty selects the
	// GFM set (tables, strikethrough, linkify, task lists).
	Extensions []string
	// HardWraps turns every soft line break into <br>.
	HardWraps bool
	// SafeMode drops raw HTML from the output.
	SafeMode bool
	// DisableHeadingIDs stops the renderer from emitting id attributes on headings.
	DisableHeadingIDs bool
	// StripFrontMatter removes a leading YAML/TOML front matter block before rendering.
	StripFrontMatter bool
}

// DocConverter renders Markdown help documents into HTML fragment files.
type DocConverter interface {
	// ConvertAll processes paths in order and stops at the first failure.
	ConvertAll(ctx context.Context, paths []string) ([]ConversionResult, error)
	// ConvertFile processes a single path.
	ConvertFile(ctx context.Context, path string) (ConversionResult, error)
}

// ConversionJob describes one source file and where its HTML lands. Jobs are
// built per input path and discarded once the output is written.
type ConversionJob struct {
	SourcePath  string
	OutputDir   string
	DerivedName string
}

// ConversionResult reports a written HTML fragment.
type ConversionResult struct {
	SourcePath string
	OutputPath string
	Bytes      int
}
