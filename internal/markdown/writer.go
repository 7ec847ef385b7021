package markdown

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const defaultFileMode os.FileMode = 0o644

// WriteRequest describes an HTML fragment routed through an ArtifactWriter.
type WriteRequest struct {
	// Name is the output file name, relative to the writer root.
	Name string
	// Content holds the rendered HTML.
	Content []byte
	// SourcePath is the Markdown file the content was rendered from.
	SourcePath string
}

// ArtifactWriter stores rendered fragments and reports where they landed.
type ArtifactWriter interface {
	WriteFile(ctx context.Context, req WriteRequest) (string, error)
}

// NewFSWriter returns a writer that stores fragments under root. The root
// directory is never created: a missing directory surfaces as a write error.
func NewFSWriter(root string) ArtifactWriter {
	return &fsWriter{root: root, mode: defaultFileMode}
}

type fsWriter struct {
	root string
	mode os.FileMode
}

func (w *fsWriter) WriteFile(_ context.Context, req WriteRequest) (string, error) {
	if strings.TrimSpace(req.Name) == "" {
		return "", errors.New("markdown writer: write requires name")
	}
	if strings.ContainsAny(req.Name, "/"+string(os.PathSeparator)) {
		return "", errors.New("markdown writer: name must not contain path separators")
	}

	target := filepath.Join(w.root, req.Name)
	if err := os.WriteFile(target, req.Content, w.mode); err != nil {
		return target, err
	}
	return target, nil
}
