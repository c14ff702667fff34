package dnd

import (
	"github.com/lus720/TierMaker-sub001/core"
)

// DefaultDragThreshold is the displacement, in cells, a press must
// exceed before it commits to being a drag. Presses that stay within
// it keep plain click semantics
const DefaultDragThreshold = 1

// State identifies the session phase
type State uint8

const (
	StateIdle    State = iota // No gesture in flight
	StatePending              // Pressed, threshold not yet exceeded
	StateActive               // Committed drag: ghost and placeholder live
)

// String returns human-readable state name
func (s State) String() string {
	switch s {
	case StatePending:
		return "Pending"
	case StateActive:
		return "Active"
	default:
		return "Idle"
	}
}

// PointerEvent is the engine's view of a pointer press
type PointerEvent struct {
	X, Y    int
	Primary bool // Main button; only primary presses start a drag
}

// Options configures an Engine. Zero values select defaults
type Options struct {
	DragThreshold int // Cells of displacement before pending becomes active
	RowTolerance  int // Vertical grouping tolerance for visual rows
}

// Engine owns the container registry and at most one drag session.
// All methods are synchronous; the engine is driven entirely from the
// host's pointer and scroll event handlers and never blocks or spawns
// work of its own. Create one per composition root and pass it by
// reference to whatever registers containers or starts drags
type Engine struct {
	reg       *Registry
	res       resolver
	threshold int

	state        State
	anchor       *Node
	anchorBounds core.Rect // Anchor rect at lift time; ghost offsets from it
	sourceID     string
	payload      Payload

	startX, startY int
	lastX, lastY   int

	ghost     *Node
	ph        *Node
	phSurface *Surface

	onAnyStart func()
	onAnyEnd   func()
}

// NewEngine creates an idle engine with its own registry
func NewEngine(opts Options) *Engine {
	if opts.DragThreshold <= 0 {
		opts.DragThreshold = DefaultDragThreshold
	}
	if opts.RowTolerance <= 0 {
		opts.RowTolerance = DefaultRowTolerance
	}
	reg := NewRegistry()
	return &Engine{
		reg:       reg,
		res:       resolver{reg: reg, tolerance: opts.RowTolerance},
		threshold: opts.DragThreshold,
	}
}

// Register adds or replaces a drop container
func (e *Engine) Register(id string, s *Surface, h Handler) {
	e.reg.Register(id, s, h)
}

// Unregister removes a drop container. The resolver simply stops
// considering it; a drag in flight is unaffected
func (e *Engine) Unregister(id string) {
	e.reg.Unregister(id)
}

// Registry exposes the engine's container registry
func (e *Engine) Registry() *Registry {
	return e.reg
}

// SetCallbacks installs global gesture notifications, fired for every
// drag regardless of which container it starts from
func (e *Engine) SetCallbacks(onDragStart, onDragEnd func()) {
	e.onAnyStart = onDragStart
	e.onAnyEnd = onDragEnd
}

// IsDragging reports whether a committed drag is in flight.
// The owning view must not rebuild container children while true
func (e *Engine) IsDragging() bool {
	return e.state == StateActive
}

// State returns the current session phase
func (e *Engine) State() State {
	return e.state
}

// Ghost returns the floating copy while a drag is active.
// The view draws it above everything else
func (e *Engine) Ghost() (*Node, bool) {
	if e.state != StateActive {
		return nil, false
	}
	return e.ghost, true
}

// StartDrag begins a pending session for anchor. Ignored unless the
// engine is idle and the press is the primary button; pointer capture
// is emulated by routing all subsequent motion to this session until
// release or cancellation
func (e *Engine) StartDrag(ev PointerEvent, anchor *Node, p Payload) {
	if e.state != StateIdle || !ev.Primary || anchor == nil {
		return
	}
	e.state = StatePending
	e.anchor = anchor
	e.anchorBounds = anchor.Bounds
	e.payload = p
	e.sourceID = p.SourceID
	e.startX, e.startY = ev.X, ev.Y
	e.lastX, e.lastY = ev.X, ev.Y
}

// PointerMove advances the session. A pending session promotes to
// active once displacement exceeds the threshold; an active session
// tracks the ghost and re-resolves the placeholder slot
func (e *Engine) PointerMove(x, y int) {
	switch e.state {
	case StatePending:
		dx, dy := x-e.startX, y-e.startY
		if dx*dx+dy*dy <= e.threshold*e.threshold {
			return
		}
		e.activate()
		e.track(x, y)
	case StateActive:
		e.track(x, y)
	}
}

// PointerUp finalizes the session. A pending session collapses with
// zero side effects, preserving plain click semantics. An active
// session reports the placeholder's container and index through that
// container's handler, then unwinds
func (e *Engine) PointerUp(x, y int) {
	switch e.state {
	case StatePending:
		e.reset()
	case StateActive:
		e.track(x, y)
		e.finalize(true)
	}
}

// Cancel unwinds any session without invoking OnDrop. Used when a
// competing gesture preempts an in-flight drag. Idempotent and safe
// to call with no session
func (e *Engine) Cancel() {
	switch e.state {
	case StatePending:
		e.reset()
	case StateActive:
		e.finalize(false)
	}
}

// Reposition re-resolves the placeholder at the last known pointer
// position. The host calls this after scroll or resize re-layout,
// when geometry has shifted under an unmoved pointer
func (e *Engine) Reposition() {
	if e.state != StateActive {
		return
	}
	e.resolveSlot(e.lastX, e.lastY)
}

// activate promotes pending to active: creates the ghost and the
// placeholder, hides the anchor in place (child identity stays stable,
// so the owning view is not provoked into a rebuild), and fires
// drag-start notifications
func (e *Engine) activate() {
	e.state = StateActive

	e.ghost = &Node{
		Bounds: e.anchorBounds,
		Marks:  MarkGhost,
		Ref:    e.anchor.Ref,
	}
	e.ph = &Node{
		Bounds: e.anchorBounds,
		Marks:  MarkPlaceholder,
		Ref:    e.anchor.Ref,
	}

	if s, ok := e.reg.Surface(e.sourceID); ok {
		s.InsertBefore(e.ph, e.anchor)
		e.phSurface = s
	} else if s, ok := e.surfaceOf(e.anchor); ok {
		// Payload named a stale source; fall back to the anchor's
		// actual parent
		s.InsertBefore(e.ph, e.anchor)
		e.phSurface = s
	}

	e.anchor.Hidden = true
	e.anchor.Marks |= MarkDragSource

	if h, ok := e.reg.Handler(e.sourceID); ok && h.OnDragStart != nil {
		h.OnDragStart()
	}
	if e.onAnyStart != nil {
		e.onAnyStart()
	}
}

// track moves the ghost by total displacement and re-resolves the slot
func (e *Engine) track(x, y int) {
	e.lastX, e.lastY = x, y
	e.ghost.Bounds = e.anchorBounds.Offset(x-e.startX, y-e.startY)
	e.resolveSlot(x, y)
}

// resolveSlot moves the placeholder to the nearest slot for (x, y).
// With no registered containers the placeholder simply stays put
func (e *Engine) resolveSlot(x, y int) {
	slot, ok := e.res.Resolve(x, y, e.anchor)
	if !ok {
		return
	}
	before := slot.Before
	if before == e.ph {
		return
	}
	if before == nil {
		// Appending into a container that carries a designated empty
		// marker lands just before the marker instead
		if empty := slot.Surface.emptySlot(); empty != nil {
			before = empty
		}
	}
	if e.phSurface != nil && e.phSurface != slot.Surface {
		e.phSurface.Remove(e.ph)
	}
	slot.Surface.InsertBefore(e.ph, before)
	e.phSurface = slot.Surface
}

// finalize unwinds an active session. When drop is true the
// placeholder's container receives OnDrop with the placeholder's
// countable index; cancellation performs identical cleanup without it.
// The placeholder is removed in the same synchronous pass that invokes
// OnDrop, so no at-rest state ever shows both item and placeholder
func (e *Engine) finalize(drop bool) {
	var (
		dropFn    func(Payload, int)
		dropIndex int
	)
	if drop && e.phSurface != nil {
		if id, ok := e.reg.IDFor(e.phSurface); ok {
			if h, ok := e.reg.Handler(id); ok && h.OnDrop != nil {
				if idx := e.phSurface.CountableIndex(e.ph); idx >= 0 {
					dropFn = h.OnDrop
					dropIndex = idx
				}
			}
		}
	}

	if e.phSurface != nil {
		e.phSurface.Remove(e.ph)
	}
	e.anchor.Hidden = false
	e.anchor.Marks &^= MarkDragSource

	if dropFn != nil {
		dropFn(e.payload, dropIndex)
	}
	if h, ok := e.reg.Handler(e.sourceID); ok && h.OnDragEnd != nil {
		h.OnDragEnd()
	}
	if e.onAnyEnd != nil {
		e.onAnyEnd()
	}
	e.reset()
}

// surfaceOf scans the registry for the surface containing n
func (e *Engine) surfaceOf(n *Node) (*Surface, bool) {
	var found *Surface
	e.reg.Each(func(id string, s *Surface) bool {
		if s.IndexOf(n) >= 0 {
			found = s
			return false
		}
		return true
	})
	return found, found != nil
}

// reset collapses the session back to idle
func (e *Engine) reset() {
	e.state = StateIdle
	e.anchor = nil
	e.payload = Payload{}
	e.sourceID = ""
	e.ghost = nil
	e.ph = nil
	e.phSurface = nil
}
