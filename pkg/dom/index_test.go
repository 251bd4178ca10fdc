package dom

import "testing"

func testList() *Element {
	return New("p", New("strong", "Lorem ipsum"), " ", New("em", "dolor sit amet"), ".")
}

func TestChildIndexing(t *testing.T) {
	e := testList()

	if e.Len() != 4 {
		t.Fatalf("got %d children, want 4", e.Len())
	}
	if e.Child(1) != " " {
		t.Errorf("got %v at index 1", e.Child(1))
	}
	if e.Child(-1) != "." {
		t.Errorf("got %v at index -1", e.Child(-1))
	}
	if e.Child(-4) != e.Child(0) {
		t.Error("index -4 should equal index 0")
	}
}

func TestSetChild(t *testing.T) {
	e := testList()
	e.SetChild(-1, "!")
	if e.Child(3) != "!" {
		t.Errorf("got %v, want %q", e.Child(3), "!")
	}
}

func TestRemoveChild(t *testing.T) {
	e := testList()
	e.RemoveChild(2)

	if e.Len() != 3 {
		t.Fatalf("got %d children, want 3", e.Len())
	}
	if e.Child(2) != "." {
		t.Errorf("got %v at index 2, want %q", e.Child(2), ".")
	}
	if e.Child(-1) != "." {
		t.Errorf("got %v at index -1, want %q", e.Child(-1), ".")
	}
}

func TestSlice(t *testing.T) {
	e := testList()

	got := e.Slice(1, 3)
	if len(got) != 2 || got[0] != " " {
		t.Errorf("unexpected slice %v", got)
	}

	// Out-of-range bounds clamp instead of panicking.
	if got := e.Slice(2, 99); len(got) != 2 {
		t.Errorf("clamped slice has %d entries, want 2", len(got))
	}
	if got := e.Slice(-2, 99); len(got) != 2 {
		t.Errorf("negative-start slice has %d entries, want 2", len(got))
	}
	if got := e.Slice(3, 1); len(got) != 0 {
		t.Errorf("inverted slice should be empty, got %v", got)
	}
}

func TestSetSlice(t *testing.T) {
	e := testList()
	e.SetSlice(1, 3, "and")

	if e.Len() != 3 {
		t.Fatalf("got %d children, want 3", e.Len())
	}
	if e.Child(1) != "and" {
		t.Errorf("got %v at index 1", e.Child(1))
	}

	// Clearing all children.
	e.SetSlice(0, e.Len())
	if e.Len() != 0 {
		t.Errorf("got %d children after clear, want 0", e.Len())
	}
}

func TestRemoveSlice(t *testing.T) {
	e := testList()
	e.RemoveSlice(0, 2)
	if e.Len() != 2 {
		t.Errorf("got %d children, want 2", e.Len())
	}
}

func TestIndexOutOfRange(t *testing.T) {
	e := New("p", "only")
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for out-of-range index")
		}
		if _, ok := r.(*RangeError); !ok {
			t.Fatalf("expected *RangeError, got %T", r)
		}
	}()
	e.Child(5)
}

func TestAttrOps(t *testing.T) {
	e := New("div")

	if e.HasAttr("id") {
		t.Error("id should be absent")
	}
	if err := e.SetAttr("id", "content"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.HasAttr("id") {
		t.Error("id should be present")
	}
	if v, _ := e.GetAttr("id"); v != "content" {
		t.Errorf("got id %v", v)
	}

	e.DelAttr("id")
	if e.HasAttr("id") {
		t.Error("id should be gone after DelAttr")
	}
}

func TestClassAttrOps(t *testing.T) {
	e := New("div")

	if !e.HasAttr(ClassAttr) {
		t.Fatal("class should always be present")
	}

	if err := e.SetAttr(ClassAttr, Classes("bar")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := e.GetAttr(ClassAttr); !v.(ClassSet).Has("bar") {
		t.Error("class should contain bar")
	}

	// SetAttr replaces rather than unions.
	if err := e.SetAttr(ClassAttr, Classes("baz")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := e.GetAttr(ClassAttr); v.(ClassSet).Has("bar") {
		t.Error("SetAttr should replace the class set")
	}

	// Deleting resets to an empty set, never removes the key.
	e.DelAttr(ClassAttr)
	v, ok := e.GetAttr(ClassAttr)
	if !ok {
		t.Fatal("class should still be present after DelAttr")
	}
	if v.(ClassSet).Len() != 0 {
		t.Errorf("class should be empty after DelAttr, got %v", v)
	}
}

func TestSetAttrClassContract(t *testing.T) {
	e := New("div")
	err := e.SetAttr(ClassAttr, "foo bar")
	if err == nil {
		t.Fatal("expected error assigning a string to class")
	}
	if _, ok := err.(*AttributeContractError); !ok {
		t.Fatalf("expected *AttributeContractError, got %T", err)
	}
}
