package markdown

import (
	"os"
	"strings"

	"github.com/goliatone/go-helpdoc/pkg/interfaces"
)

const htmlExtension = ".html"

// DeriveName maps a source path onto its HTML file name: the final path
// segment, cut at the first ".", plus ".html". "notes.v2.md" becomes
// "notes.html" and "README" becomes "README.html". An empty final segment
// yields an empty name.
func DeriveName(path string) string {
	segment := finalSegment(path)
	if segment == "" {
		return ""
	}
	if idx := strings.IndexByte(segment, '.'); idx >= 0 {
		segment = segment[:idx]
	}
	return segment + htmlExtension
}

// NewJob builds the conversion job for a single source path.
func NewJob(sourcePath, outputDir string) interfaces.ConversionJob {
	return interfaces.ConversionJob{
		SourcePath:  sourcePath,
		OutputDir:   outputDir,
		DerivedName: DeriveName(sourcePath),
	}
}

func finalSegment(path string) string {
	trimmed := strings.TrimRight(path, "/"+string(os.PathSeparator))
	if idx := strings.LastIndexAny(trimmed, "/"+string(os.PathSeparator)); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
