package dnd

import (
	"testing"
)

func TestRegistryIdempotentOperations(t *testing.T) {
	r := NewRegistry()
	s := NewSurface()

	// Unregistering an unknown id is a no-op, not an error
	r.Unregister("missing")
	if r.Len() != 0 {
		t.Errorf("Expected empty registry, got %d entries", r.Len())
	}

	var dropped string
	r.Register("row", s, Handler{OnDrop: func(Payload, int) { dropped = "first" }})
	r.Register("row", s, Handler{OnDrop: func(Payload, int) { dropped = "second" }})
	if r.Len() != 1 {
		t.Fatalf("Expected 1 entry after double registration, got %d", r.Len())
	}

	// Re-registration replaces the handler
	h, ok := r.Handler("row")
	if !ok {
		t.Fatal("Expected handler for row")
	}
	h.OnDrop(Payload{}, 0)
	if dropped != "second" {
		t.Errorf("Expected replaced handler, got %q", dropped)
	}

	r.Unregister("row")
	r.Unregister("row")
	if r.Len() != 0 {
		t.Errorf("Expected empty registry after unregister, got %d", r.Len())
	}
}

func TestRegistryReverseLookup(t *testing.T) {
	r := NewRegistry()
	sa := NewSurface()
	sb := NewSurface()
	r.Register("rowA", sa, Handler{})
	r.Register("rowB", sb, Handler{})

	id, ok := r.IDFor(sb)
	if !ok || id != "rowB" {
		t.Errorf("IDFor(sb) = %q, %v; want rowB, true", id, ok)
	}
	if _, ok := r.IDFor(NewSurface()); ok {
		t.Error("Expected reverse lookup miss for unregistered surface")
	}
}

func TestRegistryDeterministicOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("c", NewSurface(), Handler{})
	r.Register("a", NewSurface(), Handler{})
	r.Register("b", NewSurface(), Handler{})

	// Re-registration keeps the original position
	r.Register("a", NewSurface(), Handler{})

	var order []string
	r.Each(func(id string, s *Surface) bool {
		order = append(order, id)
		return true
	})

	want := []string{"c", "a", "b"}
	if len(order) != len(want) {
		t.Fatalf("Expected %d ids, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestRegistryEachEarlyStop(t *testing.T) {
	r := NewRegistry()
	r.Register("a", NewSurface(), Handler{})
	r.Register("b", NewSurface(), Handler{})

	visits := 0
	r.Each(func(id string, s *Surface) bool {
		visits++
		return false
	})
	if visits != 1 {
		t.Errorf("Expected 1 visit, got %d", visits)
	}
}

func TestRegistryLookupMiss(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Surface("nope"); ok {
		t.Error("Expected surface miss")
	}
	if _, ok := r.Handler("nope"); ok {
		t.Error("Expected handler miss")
	}
}
