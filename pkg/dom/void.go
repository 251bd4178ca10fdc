package dom

import "strings"

// voidElements are elements that never have children or a closing tag.
// Taken from the HTML spec:
// https://html.spec.whatwg.org/multipage/syntax.html#void-elements
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoid returns true if the tag names a void element.
func IsVoid(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}
