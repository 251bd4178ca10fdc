// Package dom provides the element tree that the rest of htmlcomp operates on.
//
// The tree has a single node type. Element carries a lowercase tag name, an
// ordered child list, and an attribute map. Children are either *Element or
// plain scalars (string, int, float64, bool, ...); child order is significant
// and survives parsing, mutation, and rendering. An Element whose Name is the
// empty string is a fragment: an invisible grouping node with no tag syntax
// of its own.
//
// # Building trees
//
// Elements are created with variadic constructors:
//
//	dom.New("div", dom.A("id", "main"),
//	    dom.New("h1", "Title"),
//	    "plain text",
//	)
//
// With appends further children and merges further attributes into an
// existing element and returns the same element, so calls chain:
//
//	list := dom.New("ul", dom.New("li", "cat"))
//	list.With(dom.New("li", "dog"), dom.A("id", "animals"))
//
// # The class attribute
//
// The "class" attribute is reserved. Its value is always a ClassSet (an
// unordered set of string tokens) and it is present on every element, empty
// by default. Deleting it resets it to an empty set. Assigning any other
// type to it is an attribute contract violation.
//
// Elements are ordinary shared mutable values: mutating one through any
// reference is visible through every reference, and nothing stops a node
// from appearing under two parents. Callers that share trees across
// goroutines must serialize access themselves.
package dom
