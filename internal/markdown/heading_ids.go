package markdown

import (
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/goliatone/go-slug"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/text/unicode/norm"
)

const fallbackHeadingID = "section"

// headingIDs generates slug based anchors for headings, suffixing repeats with
// -1, -2, ... in document order.
type headingIDs struct {
	used map[string]struct{}
}

var _ parser.IDs = (*headingIDs)(nil)

func newHeadingIDs() *headingIDs {
	return &headingIDs{used: map[string]struct{}{}}
}

func (h *headingIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	base := headingSlug(string(value))

	candidate := base
	for i := 1; ; i++ {
		if _, taken := h.used[candidate]; !taken {
			break
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
	h.used[candidate] = struct{}{}
	return []byte(candidate)
}

// Put records ids supplied explicitly through attribute syntax.
func (h *headingIDs) Put(value []byte) {
	h.used[string(value)] = struct{}{}
}

var slugCharMap = sync.OnceValues(slug.GetCharMap)

func headingSlug(text string) string {
	normalized, err := slug.Normalize(transliterate(strings.TrimSpace(text)))
	if err != nil {
		return fallbackHeadingID
	}
	normalized = strings.Trim(normalized, "-_")
	if normalized == "" {
		return fallbackHeadingID
	}
	return normalized
}

// transliterate folds non-ASCII letters onto their go-slug replacements
// ("Ü" to "U", "ß" to "ss") so accented headings keep their words. Runes
// without a replacement pass through and are dropped by the slugger.
func transliterate(text string) string {
	charMap, err := slugCharMap()
	if err != nil {
		return text
	}

	text = norm.NFC.String(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
			continue
		}
		if replacement, ok := charMap[string(r)]; ok {
			b.WriteString(replacement)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
