package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lus720/TierMaker-sub001/board"
	"github.com/lus720/TierMaker-sub001/core"
	"github.com/lus720/TierMaker-sub001/dnd"
)

// Draw renders the board onto the screen: labels, cards, placeholder,
// and finally the ghost, which floats above everything in the spirit
// of an overlay layer outside the normal render tree
func (v *View) Draw(s tcell.Screen) {
	fillRect(s, core.Rect{X: 0, Y: 0, Width: v.width, Height: v.height}, styleBackground)

	for _, r := range v.rows {
		fillRect(s, r.labelRect, labelStyle(r.color))
		drawText(s, r.labelRect.X+1, r.labelRect.CenterY(), r.labelRect.Width-2,
			r.label, labelStyle(r.color))

		for _, n := range r.surface.Nodes() {
			if n.Hidden {
				continue
			}
			v.drawCard(s, n)
		}
	}

	if ghost, ok := v.engine.Ghost(); ok {
		v.drawCard(s, ghost)
	}
}

// drawCard renders one node with the style its marker dictates
func (v *View) drawCard(s tcell.Screen, n *dnd.Node) {
	inner := core.Rect{
		X:      n.Bounds.X,
		Y:      n.Bounds.Y,
		Width:  n.Bounds.Width - 1, // One-cell gutter between cards
		Height: n.Bounds.Height,
	}
	if inner.Empty() {
		return
	}

	switch {
	case n.Is(dnd.MarkGhost):
		fillRect(s, inner, styleGhost)
		drawText(s, inner.X+1, inner.CenterY(), inner.Width-2, cardTitle(n), styleGhost)
	case n.Is(dnd.MarkPlaceholder):
		fillRect(s, inner, stylePlaceholder)
		drawText(s, inner.X+1, inner.CenterY(), inner.Width-2, "· · ·", stylePlaceholder)
	case n.Is(dnd.MarkEmptySlot):
		fillRect(s, inner, styleEmptySlot)
		drawText(s, inner.X+1, inner.CenterY(), inner.Width-2, "drop here", styleEmptySlot)
	default:
		fillRect(s, inner, styleCard)
		drawText(s, inner.X+1, inner.CenterY(), inner.Width-2, cardTitle(n), styleCard)
	}
}

// cardTitle extracts the display name from a node's item reference
func cardTitle(n *dnd.Node) string {
	if item, ok := n.Ref.(board.Item); ok {
		return item.Name
	}
	return ""
}

// DrawStatus renders the bottom status line
func DrawStatus(s tcell.Screen, y, width int, text string) {
	fillRect(s, core.Rect{X: 0, Y: y, Width: width, Height: 1}, styleStatus)
	drawText(s, 1, y, width-2, text, styleStatus)
}

// fillRect paints a solid rectangle
func fillRect(s tcell.Screen, r core.Rect, style tcell.Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawText writes a clipped single-line string
func drawText(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	if maxWidth <= 0 {
		return
	}
	i := 0
	for _, r := range text {
		if i >= maxWidth {
			break
		}
		s.SetContent(x+i, y, r, nil, style)
		i++
	}
}
