package dnd

import (
	"github.com/lus720/TierMaker-sub001/core"
)

// Mark flags engine-owned roles on a node (bitmask)
type Mark uint8

const (
	MarkNone        Mark = 0
	MarkGhost       Mark = 1 << 0 // Floating copy tracking the pointer
	MarkPlaceholder Mark = 1 << 1 // Stand-in at the prospective landing slot
	MarkEmptySlot   Mark = 1 << 2 // Designated "drop here" filler in an empty container
	MarkDragSource  Mark = 1 << 3 // Original element, hidden in place during a drag
)

// Stable marker names exposed to the styling layer.
// The presentation layer keys card styles off these without
// depending on engine internals
const (
	MarkerGhostName       = "dnd-ghost"
	MarkerPlaceholderName = "dnd-placeholder"
	MarkerEmptySlotName   = "dnd-empty-slot"
	MarkerDragSourceName  = "dnd-drag-source"
)

// Name returns the stable marker name for a single mark flag
func (m Mark) Name() string {
	switch m {
	case MarkGhost:
		return MarkerGhostName
	case MarkPlaceholder:
		return MarkerPlaceholderName
	case MarkEmptySlot:
		return MarkerEmptySlotName
	case MarkDragSource:
		return MarkerDragSourceName
	default:
		return ""
	}
}

// Node is one visual element participating in drag interactions.
// The owning view lays nodes out and writes Bounds each frame; the
// engine reads geometry and only toggles Hidden and Marks
type Node struct {
	Bounds core.Rect
	Hidden bool
	Marks  Mark
	Ref    any // Opaque view-side identity, forwarded untouched
}

// Is reports whether the node carries mark m
func (n *Node) Is(m Mark) bool {
	return n.Marks&m != 0
}

// countable reports whether the node counts toward drop indices.
// The hidden drag source counts; ghost, placeholder and empty-slot
// markers do not
func (n *Node) countable() bool {
	return n.Marks&(MarkGhost|MarkPlaceholder|MarkEmptySlot) == 0
}

// Surface is the mutable ordered child list of one drop container.
// It is a non-owning stand-in for the container's rendered area: the
// view owns layout and lifetime, the engine inserts and moves the
// placeholder through it
type Surface struct {
	bounds core.Rect
	nodes  []*Node
}

// NewSurface creates an empty surface
func NewSurface() *Surface {
	return &Surface{}
}

// SetBounds updates the surface's bounding rect
func (s *Surface) SetBounds(r core.Rect) {
	s.bounds = r
}

// Bounds returns the surface's bounding rect
func (s *Surface) Bounds() core.Rect {
	return s.bounds
}

// Nodes returns the child list in order. Callers must not mutate it
func (s *Surface) Nodes() []*Node {
	return s.nodes
}

// Len returns the child count
func (s *Surface) Len() int {
	return len(s.nodes)
}

// IndexOf returns the child position of n, or -1
func (s *Surface) IndexOf(n *Node) int {
	for i, c := range s.nodes {
		if c == n {
			return i
		}
	}
	return -1
}

// NextSibling returns the child following n, or nil when n is the
// last child or not a child at all
func (s *Surface) NextSibling(n *Node) *Node {
	i := s.IndexOf(n)
	if i < 0 || i+1 >= len(s.nodes) {
		return nil
	}
	return s.nodes[i+1]
}

// Append adds n at the end of the child list
func (s *Surface) Append(n *Node) {
	s.nodes = append(s.nodes, n)
}

// InsertBefore places n immediately before ref. A nil or foreign ref
// appends. If n is already a child it is moved, not duplicated
func (s *Surface) InsertBefore(n *Node, ref *Node) {
	if n == ref {
		return
	}
	s.Remove(n)
	at := len(s.nodes)
	if ref != nil {
		if i := s.IndexOf(ref); i >= 0 {
			at = i
		}
	}
	s.nodes = append(s.nodes, nil)
	copy(s.nodes[at+1:], s.nodes[at:])
	s.nodes[at] = n
}

// Remove detaches n from the child list. No-op when n is not a child
func (s *Surface) Remove(n *Node) {
	i := s.IndexOf(n)
	if i < 0 {
		return
	}
	s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
}

// Clear drops all children
func (s *Surface) Clear() {
	s.nodes = s.nodes[:0]
}

// CountableIndex returns n's position counting only countable
// siblings before it, or -1 when n is not a child.
// This is the index reported to OnDrop
func (s *Surface) CountableIndex(n *Node) int {
	count := 0
	for _, c := range s.nodes {
		if c == n {
			return count
		}
		if c.countable() {
			count++
		}
	}
	return -1
}

// CountableLen returns the number of countable children
func (s *Surface) CountableLen() int {
	count := 0
	for _, c := range s.nodes {
		if c.countable() {
			count++
		}
	}
	return count
}

// emptySlot returns the first child marked as the empty-container
// filler, or nil
func (s *Surface) emptySlot() *Node {
	for _, c := range s.nodes {
		if c.Is(MarkEmptySlot) {
			return c
		}
	}
	return nil
}
