package render

import (
	"fmt"

	"github.com/vango-dev/htmlcomp/pkg/component"
	"github.com/vango-dev/htmlcomp/pkg/dom"
)

// Renderer evaluates component transforms over an element tree, reducing it
// to a terminal value: an element whose name is not a registered component,
// or a non-element scalar.
type Renderer struct {
	reg *component.Registry
}

// NewRenderer creates a Renderer bound to the given registry.
func NewRenderer(reg *component.Registry) *Renderer {
	return &Renderer{reg: reg}
}

// TransformError reports a component transform failing during rendering.
type TransformError struct {
	Tag string
	Err error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("render: transform for <%s>: %v", e.Tag, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

// Render evaluates v to a terminal value. The input tree is never mutated;
// given pure transforms, repeated calls produce the same logical result.
//
// Transform application is an explicit trampoline: while the current value
// is an element resolving to a component with a transform, the transform's
// result replaces the value and the loop continues. Control-stack depth
// stays constant no matter how many components chain into one another, so a
// transform chain that never reaches a terminal spins this loop forever;
// termination is the caller's obligation.
func (r *Renderer) Render(v any) (any, error) {
	for {
		el, ok := v.(*dom.Element)
		if !ok {
			return v, nil
		}
		if el == nil {
			return nil, nil
		}

		desc, registered := r.reg.Lookup(el.Name)
		if !registered || desc.Transform == nil {
			return r.renderElement(el)
		}

		// Transforms see copies of the child list and attribute map, so a
		// transform that mutates its arguments cannot alter the input tree.
		arg := el.Copy()
		out, err := desc.Transform(arg.Children, arg.Attrs)
		if err != nil {
			return nil, &TransformError{Tag: el.Name, Err: err}
		}
		if out == nil {
			// No transformation necessary; the element is terminal.
			return r.renderElement(el)
		}
		v = out
	}
}

// renderElement renders a terminal element: a shallow copy gets each element
// child rendered in place, then fragment results are spliced into the child
// list and adjacent strings merged. Recursion here is bounded by tree depth,
// not by transform chain length.
func (r *Renderer) renderElement(el *dom.Element) (any, error) {
	out := el.Copy()
	for i, child := range out.Children {
		if _, ok := child.(*dom.Element); !ok {
			continue
		}
		rendered, err := r.Render(child)
		if err != nil {
			return nil, err
		}
		out.Children[i] = rendered
	}
	out.ShallowNormalize()
	return out, nil
}

// HTML renders v and serializes the result to markup text. This is the one
// convenience coupling between rendering and serialization; Serialize alone
// never consults the registry.
func (r *Renderer) HTML(v any) (string, error) {
	rendered, err := r.Render(v)
	if err != nil {
		return "", err
	}
	return Serialize(rendered)
}
