// Package ui renders the tier board and owns the view side of the
// drag contract: it lays out card nodes into drop surfaces, registers
// them with the engine, and applies reported moves to the board.
package ui

import (
	"github.com/lus720/TierMaker-sub001/board"
	"github.com/lus720/TierMaker-sub001/config"
	"github.com/lus720/TierMaker-sub001/core"
	"github.com/lus720/TierMaker-sub001/dnd"
)

// row is one rendered container: a tier or the unranked tray
type row struct {
	id        string
	label     string
	color     string
	surface   *dnd.Surface
	labelRect core.Rect
}

// View renders a board and bridges it to the drag engine
type View struct {
	board  *board.Board
	engine *dnd.Engine
	cfg    config.Config

	rows     []*row
	scroll   int
	width    int
	height   int
	contentH int

	// OnMoved fires after a drop successfully mutated the board
	OnMoved func()
}

// New creates a view over b, wired to e. Call Attach before use
func New(b *board.Board, e *dnd.Engine, cfg config.Config) *View {
	return &View{board: b, engine: e, cfg: cfg}
}

// Attach builds the row containers and registers them with the engine
func (v *View) Attach() {
	v.rows = v.rows[:0]
	for i := range v.board.Tiers {
		t := &v.board.Tiers[i]
		v.rows = append(v.rows, &row{
			id:      t.ID,
			label:   t.Label,
			color:   t.Color,
			surface: dnd.NewSurface(),
		})
	}
	v.rows = append(v.rows, &row{
		id:      board.UnrankedID,
		label:   "POOL",
		color:   "#6e6e6e",
		surface: dnd.NewSurface(),
	})

	for _, r := range v.rows {
		r := r
		v.engine.Register(r.id, r.surface, dnd.Handler{
			OnDrop: func(p dnd.Payload, index int) {
				if _, ok := p.Item.(board.Item); !ok {
					return
				}
				if v.board.Move(p.SourceID, p.Index, r.id, index) && v.OnMoved != nil {
					v.OnMoved()
				}
			},
		})
	}
	v.Resync()
}

// Close unregisters every container. The surfaces die with the view;
// the engine never holds them past this point
func (v *View) Close() {
	for _, r := range v.rows {
		v.engine.Unregister(r.id)
	}
	v.rows = nil
}

// Resync rebuilds the card nodes from the board. Suppressed while a
// drag is active: the gesture owns placeholder position and anchor
// visibility, and rebuilding children mid-gesture would orphan both
func (v *View) Resync() {
	if v.engine.IsDragging() {
		return
	}
	for _, r := range v.rows {
		r.surface.Clear()
		items := v.board.Items(r.id)
		for _, item := range items {
			r.surface.Append(&dnd.Node{Ref: item})
		}
		if len(items) == 0 {
			r.surface.Append(&dnd.Node{Marks: dnd.MarkEmptySlot})
		}
	}
}

// HitTest finds the draggable card under (x, y), returning its node,
// container id, and countable index within the container
func (v *View) HitTest(x, y int) (*dnd.Node, string, int, bool) {
	for _, r := range v.rows {
		if !r.surface.Bounds().Contains(x, y) {
			continue
		}
		for _, n := range r.surface.Nodes() {
			if n.Hidden || n.Marks != dnd.MarkNone {
				continue
			}
			if n.Bounds.Contains(x, y) {
				return n, r.id, r.surface.CountableIndex(n), true
			}
		}
	}
	return nil, "", 0, false
}

// Scroll shifts the viewport by delta cells, clamped to the content,
// and re-lays-out. The caller must follow with Engine.Reposition so an
// in-flight drag re-resolves against the shifted geometry
func (v *View) Scroll(delta int) {
	v.scroll += delta
	v.clampScroll()
	v.Layout(v.width, v.height)
}

func (v *View) clampScroll() {
	max := v.contentH - v.height
	if max < 0 {
		max = 0
	}
	if v.scroll > max {
		v.scroll = max
	}
	if v.scroll < 0 {
		v.scroll = 0
	}
}

// ContentHeight returns the full board height in cells at the current
// width, independent of the viewport
func (v *View) ContentHeight() int {
	return v.contentH
}
