package parse

import "fmt"

// ParseError reports malformed markup: unterminated tags, mismatched or
// unmatched end tags, or a tokenizer failure. No partial tree accompanies a
// ParseError.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse: %s: %v", e.Msg, e.Err)
	}
	return "parse: " + e.Msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// CoercionError reports an attribute parse hook rejecting its raw input.
type CoercionError struct {
	Tag  string
	Attr string
	Raw  string
	Err  error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("parse: attribute %q on <%s>: cannot coerce %q: %v", e.Attr, e.Tag, e.Raw, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }
