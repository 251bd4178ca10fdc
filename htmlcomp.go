// Package htmlcomp is the public API for the htmlcomp markup library.
//
// htmlcomp models documents as a mutable element tree, parses markup text
// into that tree, resolves tag names against a registry of components, and
// renders component transforms down to plain markup:
//
//	htmlcomp.Register(htmlcomp.NewComponent("excited",
//	    func(children []any, attrs map[string]any) (any, error) {
//	        n, _ := attrs["excitement"].(int)
//	        return el.Strong(children, strings.Repeat("!", n)), nil
//	    }))
//
//	root, err := htmlcomp.Parse(`<excited excitement="3">hi</excited>`)
//	out, err := htmlcomp.HTML(root) // <strong>hi!!!</strong>
//
// The top-level functions operate on DefaultRegistry. Code that needs
// isolated component sets (independent pipelines, tests) builds its own
// component.Registry and uses the parse and render packages directly.
package htmlcomp

import (
	"github.com/vango-dev/htmlcomp/pkg/component"
	"github.com/vango-dev/htmlcomp/pkg/dom"
	"github.com/vango-dev/htmlcomp/pkg/parse"
	"github.com/vango-dev/htmlcomp/pkg/render"
)

// Core tree types, re-exported from pkg/dom.
type (
	Element  = dom.Element
	Attr     = dom.Attr
	ClassSet = dom.ClassSet
)

// Component types, re-exported from pkg/component.
type (
	Registry   = component.Registry
	Descriptor = component.Descriptor
	Transform  = component.Transform
	ParseFunc  = component.ParseFunc
)

// Tree construction helpers.
var (
	New          = dom.New
	Fragment     = dom.Fragment
	A            = dom.A
	Classes      = dom.Classes
	ParseClasses = dom.ParseClasses
	Equal        = dom.Equal
)

// NewRegistry creates an empty component registry.
var NewRegistry = component.NewRegistry

// NewComponent creates a descriptor with just a name and a transform.
var NewComponent = component.Func

// DefaultRegistry is the registry used by the top-level Register, Parse,
// Render, and HTML functions.
var DefaultRegistry = component.NewRegistry()

// Register adds a component descriptor to DefaultRegistry.
func Register(d *Descriptor) { DefaultRegistry.Register(d) }

// NewElement constructs an element and fills in any defaults DefaultRegistry
// declares for its tag. Unregistered tags behave exactly like dom.New.
func NewElement(name string, args ...any) *Element {
	return DefaultRegistry.NewElement(name, args...)
}

// Parse parses markup text against DefaultRegistry. The result is always a
// fragment element wrapping the top-level nodes.
func Parse(input string) (*Element, error) {
	return parse.Parse(DefaultRegistry, input)
}

// Render reduces a tree to a terminal value using DefaultRegistry.
func Render(v any) (any, error) {
	return render.NewRenderer(DefaultRegistry).Render(v)
}

// HTML renders a tree against DefaultRegistry and serializes the result.
func HTML(v any) (string, error) {
	return render.NewRenderer(DefaultRegistry).HTML(v)
}

// Serialize converts a tree or scalar to markup text without rendering. It
// never consults any registry.
var Serialize = render.Serialize
