// Package render reduces element trees to terminal values and serializes
// them to markup text.
//
// Rendering dispatches each element through a component.Registry: elements
// whose name resolves to a component with a transform are repeatedly
// transformed in an explicit trampoline loop until a terminal value remains,
// then the terminal tree's children are rendered recursively with fragment
// results spliced in place. Serialization is registry-free and works on any
// tree, rendered or not.
package render
