// Package parse turns markup text into a dom.Element tree.
//
// The tokenizer from golang.org/x/net/html does the lexing: it lowercases
// tag and attribute names and decodes entity references in text and
// attribute values. Tree construction is a plain stack descent with strict
// error reporting; the parser never guesses structure to recover from
// malformed input.
package parse

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/htmlcomp/pkg/component"
	"github.com/vango-dev/htmlcomp/pkg/dom"
)

// Parse parses markup text against the given registry and returns the
// top-level nodes wrapped in a fragment, so a single root element and a
// multi-node document share one return shape.
//
// Attributes on tags whose name resolves in the registry run through the
// component's parse hooks and pick up the component's default attributes.
// The "class" attribute is coerced to a dom.ClassSet on every tag,
// registered or not; that invariant belongs to the tree model, not to any
// component. All other attributes of unregistered tags stay raw strings.
func Parse(reg *component.Registry, input string) (*dom.Element, error) {
	p := &parser{
		tz:  html.NewTokenizer(strings.NewReader(input)),
		reg: reg,
	}
	p.root = dom.Fragment()
	p.stack = []*dom.Element{p.root}
	return p.run()
}

// parser holds the tokenizer, the registry consulted for attribute hooks and
// voidness, and the stack of open elements. stack[0] is the root fragment
// and is never popped.
type parser struct {
	tz    *html.Tokenizer
	reg   *component.Registry
	root  *dom.Element
	stack []*dom.Element
}

func (p *parser) top() *dom.Element { return p.stack[len(p.stack)-1] }

func (p *parser) run() (*dom.Element, error) {
	for {
		switch p.tz.Next() {
		case html.ErrorToken:
			err := p.tz.Err()
			if err != io.EOF {
				return nil, &ParseError{Msg: "malformed markup", Err: err}
			}
			if unclosed := len(p.stack) - 1; unclosed > 0 {
				return nil, &ParseError{Msg: fmt.Sprintf("%d unclosed tag(s)", unclosed)}
			}
			return p.root, nil

		case html.TextToken:
			p.top().With(p.tz.Token().Data)

		case html.StartTagToken:
			tok := p.tz.Token()
			el, err := p.element(tok)
			if err != nil {
				return nil, err
			}
			p.top().With(el)
			if !p.reg.Void(tok.Data) {
				p.stack = append(p.stack, el)
			}

		case html.SelfClosingTagToken:
			tok := p.tz.Token()
			el, err := p.element(tok)
			if err != nil {
				return nil, err
			}
			p.top().With(el)

		case html.EndTagToken:
			if err := p.closeTag(p.tz.Token().Data); err != nil {
				return nil, err
			}

		case html.CommentToken, html.DoctypeToken:
			// Skipped: neither has a place in the tree model.
		}
	}
}

// element builds an element for a start tag, applying the registry's
// attribute parse hooks and default attributes when the name is registered.
func (p *parser) element(tok html.Token) (*dom.Element, error) {
	el := dom.New(tok.Data)
	desc, registered := p.reg.Lookup(tok.Data)

	for _, attr := range tok.Attr {
		if attr.Key == dom.ClassAttr {
			el.Attrs[dom.ClassAttr] = dom.ParseClasses(attr.Val)
			continue
		}

		var value any = attr.Val
		if registered {
			if hook, ok := desc.ParseAttr[attr.Key]; ok {
				parsed, err := hook(attr.Val)
				if err != nil {
					return nil, &CoercionError{Tag: tok.Data, Attr: attr.Key, Raw: attr.Val, Err: err}
				}
				value = parsed
			}
		}
		el.Attrs[attr.Key] = value
	}

	if registered {
		component.ApplyDefaults(el, desc)
	}
	return el, nil
}

// closeTag pops the stack for an end tag. End tags naming void elements are
// ignored; a void element never opened anything to close. A name that does
// not match the open element is a hard parse error.
func (p *parser) closeTag(name string) error {
	if p.reg.Void(name) {
		return nil
	}
	top := p.top()
	if top == p.root {
		return &ParseError{Msg: fmt.Sprintf("end tag %q has no matching start tag", name)}
	}
	if top.Name != name {
		return &ParseError{Msg: fmt.Sprintf("end tag %q does not match start tag %q", name, top.Name)}
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}
