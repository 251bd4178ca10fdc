package dom

import "fmt"

// AttributeContractError reports a value assigned to the reserved "class"
// attribute that is not a ClassSet.
type AttributeContractError struct {
	Key   string
	Value any
}

func (e *AttributeContractError) Error() string {
	return fmt.Sprintf("attribute %q requires a ClassSet value, got %T", e.Key, e.Value)
}

// RangeError reports a child index outside the element's child list.
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("child index %d out of range for %d children", e.Index, e.Len)
}
