package source

import "testing"

func TestInternerReusesIDs(t *testing.T) {
	in := NewInterner()
	a := in.Intern("x")
	b := in.Intern("y")
	c := in.Intern("x")

	if a == NoStringID || b == NoStringID {
		t.Fatalf("expected non-sentinel ids, got %d and %d", a, b)
	}
	if a != c {
		t.Fatalf("expected same id for repeated string, got %d and %d", a, c)
	}
	if a == b {
		t.Fatalf("distinct strings share id %d", a)
	}
	if got := in.MustLookup(b); got != "y" {
		t.Fatalf("lookup: got %q, want %q", got, "y")
	}
	if in.Len() != 3 {
		t.Fatalf("len: got %d, want 3", in.Len())
	}
}

func TestInternerFindDoesNotAllocate(t *testing.T) {
	in := NewInterner()
	if _, ok := in.Find("missing"); ok {
		t.Fatalf("expected Find to miss")
	}
	if in.Len() != 1 {
		t.Fatalf("Find must not intern, len=%d", in.Len())
	}
	id := in.Intern("present")
	got, ok := in.Find("present")
	if !ok || got != id {
		t.Fatalf("Find: got (%d,%v), want (%d,true)", got, ok, id)
	}
}

func TestInternerLookupUnknown(t *testing.T) {
	in := NewInterner()
	if s, ok := in.Lookup(StringID(42)); ok || s != "" {
		t.Fatalf("expected miss for unknown id, got %q %v", s, ok)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("MustLookup should panic on unknown id")
		}
	}()
	in.MustLookup(StringID(42))
}
