package dom

// Child and slice accessors follow sequence-indexing conventions: a negative
// index counts back from the end, an index outside the child list panics
// with *RangeError, and slice bounds are clamped rather than checked.

// Len returns the number of children.
func (e *Element) Len() int { return len(e.Children) }

// Child returns the child at index i.
func (e *Element) Child(i int) any { return e.Children[e.index(i)] }

// SetChild replaces the child at index i.
func (e *Element) SetChild(i int, v any) { e.Children[e.index(i)] = v }

// RemoveChild deletes the child at index i, shifting later children down.
func (e *Element) RemoveChild(i int) {
	i = e.index(i)
	e.Children = append(e.Children[:i], e.Children[i+1:]...)
}

// Slice returns a copy of the children in the half-open range [i, j).
func (e *Element) Slice(i, j int) []any {
	i, j = e.bounds(i, j)
	out := make([]any, j-i)
	copy(out, e.Children[i:j])
	return out
}

// SetSlice replaces the children in [i, j) with repl, which may differ in
// length.
func (e *Element) SetSlice(i, j int, repl ...any) {
	i, j = e.bounds(i, j)
	out := make([]any, 0, len(e.Children)-(j-i)+len(repl))
	out = append(out, e.Children[:i]...)
	out = append(out, repl...)
	out = append(out, e.Children[j:]...)
	e.Children = out
}

// RemoveSlice deletes the children in [i, j).
func (e *Element) RemoveSlice(i, j int) { e.SetSlice(i, j) }

// GetAttr returns the attribute value for key and whether it is present.
func (e *Element) GetAttr(key string) (any, bool) {
	v, ok := e.Attrs[key]
	return v, ok
}

// SetAttr replaces the attribute value for key. Assigning the "class" key a
// value that is not a ClassSet returns *AttributeContractError.
func (e *Element) SetAttr(key string, v any) error {
	if key == ClassAttr {
		if _, ok := v.(ClassSet); !ok {
			return &AttributeContractError{Key: key, Value: v}
		}
	}
	e.Attrs[key] = v
	return nil
}

// DelAttr removes an attribute. Deleting the "class" key resets it to an
// empty ClassSet instead; the class attribute is never truly absent.
func (e *Element) DelAttr(key string) {
	if key == ClassAttr {
		e.Attrs[ClassAttr] = ClassSet{}
		return
	}
	delete(e.Attrs, key)
}

// HasAttr reports whether the attribute key is present. The "class" key is
// always present.
func (e *Element) HasAttr(key string) bool {
	_, ok := e.Attrs[key]
	return ok
}

// index resolves a possibly negative child index or panics with *RangeError.
func (e *Element) index(i int) int {
	n := len(e.Children)
	resolved := i
	if resolved < 0 {
		resolved += n
	}
	if resolved < 0 || resolved >= n {
		panic(&RangeError{Index: i, Len: n})
	}
	return resolved
}

// bounds resolves and clamps slice bounds.
func (e *Element) bounds(i, j int) (int, int) {
	n := len(e.Children)
	if i < 0 {
		i += n
	}
	if j < 0 {
		j += n
	}
	i = clamp(i, n)
	j = clamp(j, n)
	if j < i {
		j = i
	}
	return i, j
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
