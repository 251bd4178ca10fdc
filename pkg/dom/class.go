package dom

import (
	"sort"
	"strings"
)

// ClassSet is the value type of the reserved "class" attribute: an unordered
// set of class tokens with no duplicates.
type ClassSet map[string]struct{}

// Classes creates a ClassSet from the given tokens.
func Classes(tokens ...string) ClassSet {
	cs := make(ClassSet, len(tokens))
	cs.Add(tokens...)
	return cs
}

// ParseClasses splits a raw class attribute string on whitespace.
func ParseClasses(raw string) ClassSet {
	return Classes(strings.Fields(raw)...)
}

// Add inserts tokens into the set. Empty tokens are ignored.
func (c ClassSet) Add(tokens ...string) {
	for _, t := range tokens {
		if t != "" {
			c[t] = struct{}{}
		}
	}
}

// Remove deletes a token from the set.
func (c ClassSet) Remove(token string) { delete(c, token) }

// Has reports whether the set contains the token.
func (c ClassSet) Has(token string) bool {
	_, ok := c[token]
	return ok
}

// Len returns the number of tokens.
func (c ClassSet) Len() int { return len(c) }

// Clone returns an independent copy of the set.
func (c ClassSet) Clone() ClassSet {
	out := make(ClassSet, len(c))
	for t := range c {
		out[t] = struct{}{}
	}
	return out
}

// Union returns a new set containing the tokens of both sets.
func (c ClassSet) Union(other ClassSet) ClassSet {
	out := c.Clone()
	for t := range other {
		out[t] = struct{}{}
	}
	return out
}

// Equal reports whether both sets contain exactly the same tokens.
func (c ClassSet) Equal(other ClassSet) bool {
	if len(c) != len(other) {
		return false
	}
	for t := range c {
		if _, ok := other[t]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the tokens in lexicographic order.
func (c ClassSet) Sorted() []string {
	out := make([]string, 0, len(c))
	for t := range c {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// String returns the tokens sorted and space-joined, the form the attribute
// takes in markup.
func (c ClassSet) String() string { return strings.Join(c.Sorted(), " ") }
