package dnd

import (
	"github.com/lus720/TierMaker-sub001/core"
)

// DefaultRowTolerance is the top-coordinate spread, in cells, within
// which children are grouped into the same visual row. Roughly half a
// card height; captures wrap line breaks without knowing column count
const DefaultRowTolerance = 2

// ItemGeom is the sampled geometry of one child element
type ItemGeom struct {
	Node    *Node
	CenterX int
	Bounds  core.Rect
}

// VisualRow is a run of children occupying the same horizontal band
type VisualRow struct {
	CenterY int
	Items   []ItemGeom
}

// SurfaceGeom is the sampled geometry of one container.
// Ephemeral: rebuilt on every pointer move, never cached, so it always
// reflects the true current layout
type SurfaceGeom struct {
	Bounds core.Rect
	Rows   []VisualRow
}

// Sample groups a surface's live children into visual rows.
//
// Excluded from sampling: the node being dragged, placeholder, ghost
// and empty-slot markers, and hidden nodes (they occupy no layout
// space). A new row starts whenever a child's top differs from the
// running row's reference top by more than tolerance. A surface with
// no sampled children yields exactly one empty row centered on the
// surface itself, so drops into empty containers still resolve
func Sample(s *Surface, tolerance int, exclude *Node) SurfaceGeom {
	geom := SurfaceGeom{Bounds: s.Bounds()}

	var (
		items             []ItemGeom
		refTop            int
		minTop, maxBottom int
		open              bool
	)

	flush := func() {
		if !open {
			return
		}
		geom.Rows = append(geom.Rows, VisualRow{
			// Midpoint of extremes, not an arithmetic mean: rows with
			// mismatched child heights still center correctly
			CenterY: (minTop + maxBottom) / 2,
			Items:   items,
		})
		items = nil
		open = false
	}

	for _, n := range s.Nodes() {
		if n == exclude || n.Hidden || n.Is(MarkPlaceholder|MarkGhost|MarkEmptySlot) {
			continue
		}
		b := n.Bounds
		if open && core.Abs(b.Y-refTop) > tolerance {
			flush()
		}
		if !open {
			open = true
			refTop = b.Y
			minTop = b.Y
			maxBottom = b.Bottom()
		} else {
			if b.Y < minTop {
				minTop = b.Y
			}
			if b.Bottom() > maxBottom {
				maxBottom = b.Bottom()
			}
		}
		items = append(items, ItemGeom{Node: n, CenterX: b.CenterX(), Bounds: b})
	}
	flush()

	if len(geom.Rows) == 0 {
		geom.Rows = append(geom.Rows, VisualRow{CenterY: geom.Bounds.CenterY()})
	}
	return geom
}
