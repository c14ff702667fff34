package dnd

import (
	"testing"

	"github.com/lus720/TierMaker-sub001/core"
)

// twoRowSurface builds one container whose children wrap onto two
// visual rows: three cards at y=0..50 and three more at y=100..150
func twoRowSurface() (*Surface, []*Node) {
	s := NewSurface()
	s.SetBounds(core.Rect{X: 0, Y: 0, Width: 300, Height: 150})
	nodes := []*Node{
		card(s, 0, 0, 100, 50),
		card(s, 100, 0, 100, 50),
		card(s, 200, 0, 100, 50),
		card(s, 0, 100, 100, 50),
		card(s, 100, 100, 100, 50),
		card(s, 200, 100, 100, 50),
	}
	return s, nodes
}

func TestResolveEmptyRegistry(t *testing.T) {
	r := &resolver{reg: NewRegistry(), tolerance: 2}
	if _, ok := r.Resolve(10, 10, nil); ok {
		t.Error("Expected no destination with an empty registry")
	}
}

func TestResolveContainerSelection(t *testing.T) {
	reg := NewRegistry()
	top := NewSurface()
	top.SetBounds(core.Rect{X: 0, Y: 0, Width: 100, Height: 50})
	bottom := NewSurface()
	bottom.SetBounds(core.Rect{X: 0, Y: 100, Width: 100, Height: 50})
	reg.Register("top", top, Handler{})
	reg.Register("bottom", bottom, Handler{})
	r := &resolver{reg: reg, tolerance: 2}

	tests := []struct {
		name string
		x, y int
		want string
	}{
		{"Inside top band", 50, 25, "top"},
		{"Far right of top band still selects it", 5000, 25, "top"},
		{"Negative X inside bottom band", -300, 120, "bottom"},
		{"Gap nearer to top", 50, 60, "top"},
		{"Gap nearer to bottom", 50, 95, "bottom"},
		{"Below everything", 50, 400, "bottom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, ok := r.Resolve(tt.x, tt.y, nil)
			if !ok {
				t.Fatal("Expected a destination")
			}
			if slot.SurfaceID != tt.want {
				t.Errorf("Resolved to %q, want %q", slot.SurfaceID, tt.want)
			}
		})
	}
}

func TestResolveContainerTieBreaksByRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	a := NewSurface()
	a.SetBounds(core.Rect{X: 0, Y: 0, Width: 100, Height: 50})
	b := NewSurface()
	b.SetBounds(core.Rect{X: 0, Y: 0, Width: 100, Height: 50})
	reg.Register("first", a, Handler{})
	reg.Register("second", b, Handler{})
	r := &resolver{reg: reg, tolerance: 2}

	slot, ok := r.Resolve(10, 10, nil)
	if !ok || slot.SurfaceID != "first" {
		t.Errorf("Expected deterministic tie-break to first, got %q", slot.SurfaceID)
	}
}

func TestResolveSlotSelection(t *testing.T) {
	reg := NewRegistry()
	s := NewSurface()
	s.SetBounds(core.Rect{X: 0, Y: 0, Width: 300, Height: 50})
	n0 := card(s, 0, 0, 100, 50)
	n1 := card(s, 100, 0, 100, 50)
	n2 := card(s, 200, 0, 100, 50)
	reg.Register("row", s, Handler{})
	r := &resolver{reg: reg, tolerance: 2}

	tests := []struct {
		name string
		x    int
		want *Node // nil = append
	}{
		{"Left of everything", -50, n0},
		{"Left edge of first card", 0, n0},
		{"Near first midpoint", 95, n1},
		{"Near second midpoint", 210, n2},
		{"Past the last card", 320, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, ok := r.Resolve(tt.x, 25, nil)
			if !ok {
				t.Fatal("Expected a destination")
			}
			if slot.Before != tt.want {
				t.Errorf("Before = %p, want %p", slot.Before, tt.want)
			}
		})
	}
}

func TestResolveEndOfNonFinalRow(t *testing.T) {
	reg := NewRegistry()
	s, nodes := twoRowSurface()
	reg.Register("row", s, Handler{})
	r := &resolver{reg: reg, tolerance: 2}

	// Past the right end of the first visual row: the insertion
	// reference is the next sibling of that row's last item, so the
	// drop lands between the rows rather than after the container
	slot, ok := r.Resolve(500, 25, nil)
	if !ok {
		t.Fatal("Expected a destination")
	}
	if slot.Before != nodes[3] {
		t.Errorf("Expected insertion before the second row's first item")
	}

	// Past the right end of the final row appends
	slot, ok = r.Resolve(500, 125, nil)
	if !ok {
		t.Fatal("Expected a destination")
	}
	if slot.Before != nil {
		t.Error("Expected append at the end of the final row")
	}
}

func TestResolveRowIsolation(t *testing.T) {
	reg := NewRegistry()
	s, nodes := twoRowSurface()
	reg.Register("row", s, Handler{})
	r := &resolver{reg: reg, tolerance: 2}

	// A pointer vertically inside the first row must never resolve
	// into the second row's item ordering, regardless of X. The second
	// row's first item is allowed only as the end-of-first-row
	// reference
	for _, x := range []int{-500, 0, 95, 150, 250, 299, 500, 5000} {
		slot, ok := r.Resolve(x, 25, nil)
		if !ok {
			t.Fatalf("x=%d: expected a destination", x)
		}
		if slot.Before == nodes[4] || slot.Before == nodes[5] {
			t.Errorf("x=%d: resolution crossed into the second row", x)
		}
	}
}

func TestResolveEmptyContainer(t *testing.T) {
	reg := NewRegistry()
	s := NewSurface()
	s.SetBounds(core.Rect{X: 0, Y: 50, Width: 200, Height: 20})
	reg.Register("empty", s, Handler{})
	r := &resolver{reg: reg, tolerance: 2}

	slot, ok := r.Resolve(500, 60, nil)
	if !ok {
		t.Fatal("Expected a destination for an empty container")
	}
	if slot.SurfaceID != "empty" || slot.Before != nil {
		t.Errorf("Expected append into empty container, got %q before=%p",
			slot.SurfaceID, slot.Before)
	}
}

func TestResolveExcludesDraggedNode(t *testing.T) {
	reg := NewRegistry()
	s := NewSurface()
	s.SetBounds(core.Rect{X: 0, Y: 0, Width: 300, Height: 50})
	n0 := card(s, 0, 0, 100, 50)
	n1 := card(s, 100, 0, 100, 50)
	n2 := card(s, 200, 0, 100, 50)
	reg.Register("row", s, Handler{})
	r := &resolver{reg: reg, tolerance: 2}

	// With n2 excluded the candidates collapse to n0/n1 geometry
	slot, ok := r.Resolve(95, 25, n2)
	if !ok {
		t.Fatal("Expected a destination")
	}
	if slot.Before != n1 {
		t.Errorf("Expected insertion before n1, got %p (n0=%p n1=%p)", slot.Before, n0, n1)
	}
}
