package dom

import (
	"reflect"
	"strings"
)

// ClassAttr is the reserved attribute key whose value is always a ClassSet.
const ClassAttr = "class"

// Element is the universal tree node. Name is the lowercase tag name, or ""
// for a fragment. Children holds *Element and scalar values in document
// order. Attrs maps attribute names to values; Attrs[ClassAttr] is always
// present and always a ClassSet.
type Element struct {
	Name     string
	Attrs    map[string]any
	Children []any
}

// Attr is a single attribute to apply during construction.
type Attr struct {
	Key   string
	Value any
}

// A creates an Attr with the given key and value.
func A(key string, value any) Attr { return Attr{Key: key, Value: value} }

// New creates an element with the given tag name. The name is lowercased.
// Arguments can be: nil (skipped), Attr, []Attr, *Element, []*Element,
// []any, or any scalar (appended as a child).
//
// New panics with *AttributeContractError if the "class" attribute is
// supplied with a value that is not a ClassSet; malformed construction is a
// programmer error, not a runtime condition.
func New(name string, args ...any) *Element {
	e := &Element{
		Name:     strings.ToLower(name),
		Attrs:    map[string]any{ClassAttr: ClassSet{}},
		Children: make([]any, 0),
	}
	return e.With(args...)
}

// Fragment creates an element with the empty name.
func Fragment(args ...any) *Element { return New("", args...) }

// With appends children and adds or overwrites attributes, then returns the
// same element so calls chain. The "class" attribute is unioned with the
// existing token set rather than overwritten. Argument handling matches New.
func (e *Element) With(args ...any) *Element {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			e.mergeAttr(v.Key, v.Value)
		case []Attr:
			for _, a := range v {
				e.mergeAttr(a.Key, a.Value)
			}
		case *Element:
			if v != nil {
				e.Children = append(e.Children, v)
			}
		case []*Element:
			for _, child := range v {
				if child != nil {
					e.Children = append(e.Children, child)
				}
			}
		case []any:
			e.With(v...)
		default:
			e.Children = append(e.Children, v)
		}
	}
	return e
}

// mergeAttr applies one attribute with With's merge semantics.
func (e *Element) mergeAttr(key string, value any) {
	if key != ClassAttr {
		e.Attrs[key] = value
		return
	}
	cs, ok := value.(ClassSet)
	if !ok {
		panic(&AttributeContractError{Key: key, Value: value})
	}
	e.Attrs[ClassAttr] = e.classes().Union(cs)
}

// classes returns the element's ClassSet. The class invariant guarantees the
// key is present and well typed for any element built through this package.
func (e *Element) classes() ClassSet {
	cs, _ := e.Attrs[ClassAttr].(ClassSet)
	if cs == nil {
		cs = ClassSet{}
		e.Attrs[ClassAttr] = cs
	}
	return cs
}

// IsFragment reports whether this element is a fragment.
func (e *Element) IsFragment() bool { return e.Name == "" }

// Copy returns a shallow copy: the attribute map and child slice are fresh,
// but child elements and attribute values are shared. The class token set is
// cloned so class mutation on the copy does not leak into the original.
func (e *Element) Copy() *Element {
	out := &Element{
		Name:     e.Name,
		Attrs:    make(map[string]any, len(e.Attrs)),
		Children: make([]any, len(e.Children)),
	}
	for k, v := range e.Attrs {
		if cs, ok := v.(ClassSet); ok && k == ClassAttr {
			v = cs.Clone()
		}
		out.Attrs[k] = v
	}
	copy(out.Children, e.Children)
	return out
}

// Each calls fn for every child in order.
func (e *Element) Each(fn func(child any)) {
	for _, child := range e.Children {
		fn(child)
	}
}

// Equal reports deep structural equality of two child values. Elements
// compare by name, attributes, and children; ClassSet attributes compare as
// sets; everything else compares with reflect.DeepEqual.
func Equal(a, b any) bool {
	ea, aok := a.(*Element)
	eb, bok := b.(*Element)
	if aok || bok {
		if aok != bok {
			return false
		}
		if ea == nil || eb == nil {
			return ea == eb
		}
		return equalElements(ea, eb)
	}
	return reflect.DeepEqual(a, b)
}

func equalElements(a, b *Element) bool {
	if a.Name != b.Name || len(a.Attrs) != len(b.Attrs) || len(a.Children) != len(b.Children) {
		return false
	}
	for k, va := range a.Attrs {
		vb, ok := b.Attrs[k]
		if !ok || !attrEqual(va, vb) {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func attrEqual(a, b any) bool {
	ca, aok := a.(ClassSet)
	cb, bok := b.(ClassSet)
	if aok || bok {
		return aok && bok && ca.Equal(cb)
	}
	return Equal(a, b)
}
