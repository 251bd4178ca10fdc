package dom

// ShallowNormalize normalizes this element's direct child list in place:
// fragment children are replaced by their own children spliced at the same
// position, runs of adjacent string children are concatenated, and empty
// strings are dropped. Non-fragment children and their subtrees are left
// untouched; use Normalize to clean an entire subtree.
func (e *Element) ShallowNormalize() {
	flattened := make([]any, 0, len(e.Children))
	for _, child := range e.Children {
		if el, ok := child.(*Element); ok && el.IsFragment() {
			flattened = append(flattened, el.Children...)
		} else {
			flattened = append(flattened, child)
		}
	}

	normalized := make([]any, 0, len(flattened))
	for _, child := range flattened {
		s, ok := child.(string)
		if !ok {
			normalized = append(normalized, child)
			continue
		}
		if s == "" {
			continue
		}
		if n := len(normalized); n > 0 {
			if prev, ok := normalized[n-1].(string); ok {
				normalized[n-1] = prev + s
				continue
			}
		}
		normalized = append(normalized, s)
	}

	e.Children = normalized
}

// Normalize recursively normalizes the whole subtree, bottom-up: every
// fragment anywhere below this element is disassembled into its parent and
// adjacent strings are merged at every level. Normalize is idempotent and
// never reorders surviving children.
func (e *Element) Normalize() {
	for _, child := range e.Children {
		if el, ok := child.(*Element); ok {
			el.Normalize()
		}
	}
	e.ShallowNormalize()
}
