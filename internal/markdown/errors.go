package markdown

import (
	"errors"
	"fmt"
	"io/fs"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeReadFailed   = "HELPDOC_READ_FAILED"
	textCodeRenderFailed = "HELPDOC_RENDER_FAILED"
	textCodeWriteFailed  = "HELPDOC_WRITE_FAILED"
)

// ErrOutputDirRequired is returned when a converter is built without an output directory.
var ErrOutputDirRequired = errors.New("markdown converter: output directory is required")

// The wrapped errors keep the original *fs.PathError in the chain so callers
// can still match fs.ErrNotExist or fs.ErrPermission.

func readError(path string, err error) error {
	category := goerrors.CategoryOperation
	if errors.Is(err, fs.ErrNotExist) {
		category = goerrors.CategoryNotFound
	}
	return goerrors.Wrap(err, category, fmt.Sprintf("read source %s", path)).
		WithTextCode(textCodeReadFailed).
		WithMetadata(map[string]any{"path": path})
}

func renderError(path string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, fmt.Sprintf("render source %s", path)).
		WithTextCode(textCodeRenderFailed).
		WithMetadata(map[string]any{"path": path})
}

func writeError(path, target string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryOperation, fmt.Sprintf("write %s", target)).
		WithTextCode(textCodeWriteFailed).
		WithMetadata(map[string]any{
			"path":        path,
			"output_path": target,
		})
}
