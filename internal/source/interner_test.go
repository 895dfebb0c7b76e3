package source

import "testing"

func TestInternerDedup(t *testing.T) {
	in := NewInterner()

	a := in.Intern("call")
	b := in.Intern("call")
	if a != b {
		t.Errorf("expected same ID for repeated intern, got %d and %d", a, b)
	}
	if a == NoStringID {
		t.Error("interned string must not map to NoStringID")
	}

	c := in.Intern("receiver")
	if c == a {
		t.Error("distinct strings must get distinct IDs")
	}
}

func TestInternerLookup(t *testing.T) {
	in := NewInterner()
	id := in.InternBytes([]byte("fn"))

	s, ok := in.Lookup(id)
	if !ok || s != "fn" {
		t.Errorf("Lookup(%d) = %q, %v", id, s, ok)
	}

	if _, ok := in.Lookup(StringID(999)); ok {
		t.Error("expected invalid ID lookup to fail")
	}

	if s, ok := in.Lookup(NoStringID); !ok || s != "" {
		t.Error("NoStringID must resolve to empty string")
	}
}

func TestInternerLen(t *testing.T) {
	in := NewInterner()
	if in.Len() != 1 {
		t.Fatalf("fresh interner Len() = %d, want 1", in.Len())
	}
	in.Intern("x")
	in.Intern("y")
	in.Intern("x")
	if in.Len() != 3 {
		t.Errorf("Len() = %d, want 3", in.Len())
	}
}
