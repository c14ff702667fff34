package ui

import (
	"github.com/lus720/TierMaker-sub001/core"
)

// Layout positions every row and card for the given viewport size.
// Cards flow left-to-right within a row's body and wrap onto further
// lines when the row is full; a row grows vertically to fit its
// wrapped lines. Hidden nodes (the drag source) take no slot, so the
// remaining cards re-flow around them exactly like the live layout
// the geometry sampler expects to observe
func (v *View) Layout(width, height int) {
	v.width = width
	v.height = height
	v.clampScroll()

	bodyX := v.cfg.LabelWidth + 1
	avail := width - bodyX
	perLine := avail / v.cfg.CardWidth
	if perLine < 1 {
		perLine = 1
	}

	y := -v.scroll
	for _, r := range v.rows {
		slot := 0
		for _, n := range r.surface.Nodes() {
			if n.Hidden {
				continue
			}
			col := slot % perLine
			line := slot / perLine
			n.Bounds = core.Rect{
				X:      bodyX + col*v.cfg.CardWidth,
				Y:      y + line*v.cfg.CardHeight,
				Width:  v.cfg.CardWidth,
				Height: v.cfg.CardHeight,
			}
			slot++
		}

		lines := (slot + perLine - 1) / perLine
		if lines < 1 {
			lines = 1
		}
		rowH := lines * v.cfg.CardHeight

		r.surface.SetBounds(core.Rect{X: 0, Y: y, Width: width, Height: rowH})
		r.labelRect = core.Rect{X: 0, Y: y, Width: v.cfg.LabelWidth, Height: rowH}
		y += rowH + 1
	}
	v.contentH = y + v.scroll
}
