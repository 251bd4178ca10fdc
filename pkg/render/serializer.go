package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/htmlcomp/pkg/dom"
)

// Serialize converts a value to markup text. Elements serialize as tags,
// fragments as the bare concatenation of their children, and scalars as
// their natural textual representation. Serialize works on both pre- and
// post-render trees; rendering first is the caller's business (or use
// Renderer.HTML).
func Serialize(v any) (string, error) {
	var buf strings.Builder
	if err := WriteTo(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteTo streams the serialized form of v to w.
func WriteTo(w io.Writer, v any) error {
	switch val := v.(type) {
	case nil:
		return nil
	case *dom.Element:
		return writeElement(w, val)
	case string:
		_, err := io.WriteString(w, escapeText(val))
		return err
	default:
		_, err := io.WriteString(w, escapeText(scalarString(val)))
		return err
	}
}

// rawTextTags are elements whose content the markup tokenizer reads as raw
// text without decoding entity references. Their string children are emitted
// verbatim, so raw-text content survives a serialize/parse round trip. The
// set matches the tokenizer's raw-text tag list.
var rawTextTags = map[string]bool{
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
	"script":    true,
	"style":     true,
	"textarea":  true,
	"title":     true,
	"xmp":       true,
}

func writeElement(w io.Writer, el *dom.Element) error {
	if el == nil {
		return nil
	}
	if el.IsFragment() {
		return writeChildren(w, el, false)
	}

	if _, err := io.WriteString(w, "<"+el.Name); err != nil {
		return err
	}
	if err := writeAttrs(w, el); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	// Void tags have no children and no closing tag.
	if dom.IsVoid(el.Name) {
		return nil
	}

	if err := writeChildren(w, el, rawTextTags[el.Name]); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</"+el.Name+">")
	return err
}

func writeChildren(w io.Writer, el *dom.Element, raw bool) error {
	for _, child := range el.Children {
		if raw {
			if s, ok := child.(string); ok {
				if _, err := io.WriteString(w, s); err != nil {
					return err
				}
				continue
			}
		}
		if err := WriteTo(w, child); err != nil {
			return err
		}
	}
	return nil
}

// writeAttrs emits attributes sorted by key for deterministic output. The
// class attribute emits its tokens sorted and space-joined, and is omitted
// entirely when the set is empty.
func writeAttrs(w io.Writer, el *dom.Element) error {
	keys := make([]string, 0, len(el.Attrs))
	for key := range el.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := el.Attrs[key]
		if cs, ok := value.(dom.ClassSet); ok && key == dom.ClassAttr {
			if cs.Len() == 0 {
				continue
			}
			value = cs.String()
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(scalarString(value))); err != nil {
			return err
		}
	}
	return nil
}

// scalarString converts a scalar to its textual representation.
func scalarString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
