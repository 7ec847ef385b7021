package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// StripFrontMatter removes a leading front matter block (YAML or TOML) and
// returns the remaining Markdown body. Sources without front matter are
// returned unchanged.
func StripFrontMatter(source []byte) ([]byte, error) {
	var meta map[string]any

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return body, nil
}
