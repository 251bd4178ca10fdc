// Package component maps tag names to the descriptors that give them
// behavior: a transform applied during rendering, per-attribute parse hooks
// applied during parsing, and default attributes.
//
// Registries are explicit values, not ambient process state, so independent
// registries can coexist (one per test, one per document pipeline). Tag name
// matching is case-insensitive; the canonical stored name is lowercase.
package component

import (
	"sort"
	"strings"

	"github.com/vango-dev/htmlcomp/pkg/dom"
)

// Transform produces a component's render result from its children and
// attributes. Children are passed verbatim, not pre-rendered, so a transform
// can inspect its raw subtree. The result may be another element (including
// another component, which the renderer keeps evaluating), a scalar, or nil
// to indicate that no transformation is necessary and the element should
// render as a plain tree.
type Transform func(children []any, attrs map[string]any) (any, error)

// ParseFunc converts a raw markup attribute string into a typed value. It is
// consulted only while parsing, never during direct construction. A non-nil
// error aborts the parse of the whole document.
type ParseFunc func(raw string) (any, error)

// Descriptor describes one registered component.
type Descriptor struct {
	// Name is the tag name; matching is case-insensitive.
	Name string

	// Void marks the component as a leaf: no children, no closing tag.
	Void bool

	// Transform is applied during rendering. Nil means the component is
	// never transformed and renders as a plain element.
	Transform Transform

	// ParseAttr maps attribute names to parse hooks.
	ParseAttr map[string]ParseFunc

	// Defaults supplies attributes filled in when a parsed or constructed
	// element of this type does not set them explicitly.
	Defaults func() map[string]any
}

// Func creates a descriptor with just a name and a transform.
func Func(name string, t Transform) *Descriptor {
	return &Descriptor{Name: name, Transform: t}
}

// Registry maps lowercase tag names to descriptors.
type Registry struct {
	descriptors map[string]*Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]*Descriptor)}
}

// Register stores a descriptor under its lowercased name. Registering a name
// twice replaces the earlier descriptor: last registration wins.
func (r *Registry) Register(d *Descriptor) {
	r.descriptors[strings.ToLower(d.Name)] = d
}

// Lookup resolves a tag name case-insensitively.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.descriptors[strings.ToLower(name)]
	return d, ok
}

// Void reports whether the tag is a leaf, either via the fixed HTML void
// element list or via a registered descriptor's Void flag.
func (r *Registry) Void(name string) bool {
	if dom.IsVoid(name) {
		return true
	}
	d, ok := r.Lookup(name)
	return ok && d.Void
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.descriptors))
	for name := range r.descriptors {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// NewElement constructs an element of the given name and fills in the
// component's default attributes, if the name is registered.
func (r *Registry) NewElement(name string, args ...any) *dom.Element {
	el := dom.New(name, args...)
	if d, ok := r.Lookup(name); ok {
		ApplyDefaults(el, d)
	}
	return el
}

// ApplyDefaults merges the descriptor's default attributes into el for every
// key el does not already carry. The "class" attribute is always present, so
// a class default never applies.
func ApplyDefaults(el *dom.Element, d *Descriptor) {
	if d.Defaults == nil {
		return
	}
	for key, value := range d.Defaults() {
		if !el.HasAttr(key) {
			el.Attrs[key] = value
		}
	}
}
