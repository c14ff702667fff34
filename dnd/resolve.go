package dnd

import (
	"math"

	"github.com/lus720/TierMaker-sub001/core"
)

// Slot is a resolved drop destination: a container and the child to
// insert before. A nil Before means append at the end of the container
type Slot struct {
	SurfaceID string
	Surface   *Surface
	Before    *Node
}

// resolver performs the three-stage nearest-neighbor search that maps
// a pointer coordinate to a drop slot. Every stage breaks ties toward
// the earlier candidate in registration or child order, so resolution
// is fully deterministic
type resolver struct {
	reg       *Registry
	tolerance int
}

// Resolve maps pointer (x, y) to the nearest slot among all registered
// containers, excluding the dragged node from geometry. Returns false
// when no containers are registered
func (r *resolver) Resolve(x, y int, exclude *Node) (Slot, bool) {
	id, surface, ok := r.nearestSurface(y)
	if !ok {
		return Slot{}, false
	}

	geom := Sample(surface, r.tolerance, exclude)
	row := nearestRow(geom.Rows, y)
	before := nearestSlotInRow(surface, row, x)

	return Slot{SurfaceID: id, Surface: surface, Before: before}, true
}

// nearestSurface selects the container whose vertical band is closest
// to y. Distance is zero when y falls within [top, bottom) regardless
// of X: lateral reach is deliberately unbounded so a gesture in a
// cramped viewport still lands in the intended row band
func (r *resolver) nearestSurface(y int) (string, *Surface, bool) {
	var (
		bestID   string
		best     *Surface
		bestDist = math.MaxInt
	)
	r.reg.Each(func(id string, s *Surface) bool {
		if d := s.Bounds().VerticalDistance(y); d < bestDist {
			bestDist = d
			bestID = id
			best = s
		}
		return true
	})
	if best == nil {
		return "", nil, false
	}
	return bestID, best, true
}

// nearestRow picks the visual row whose center is closest to y.
// Row assignment depends only on vertical distance, never horizontal:
// a pointer far left or right of every card still lands in a row
func nearestRow(rows []VisualRow, y int) VisualRow {
	best := rows[0]
	bestDist := core.Abs(best.CenterY - y)
	for _, row := range rows[1:] {
		if d := core.Abs(row.CenterY - y); d < bestDist {
			bestDist = d
			best = row
		}
	}
	return best
}

// nearestSlotInRow picks the insertion point within row closest to x:
// one candidate before the first item, one at each midpoint between
// consecutive items, and one after the last item. An end-of-row win on
// a non-final row resolves to the next sibling of the row's last item,
// so the drop lands before the next row's first item rather than after
// the whole container
func nearestSlotInRow(s *Surface, row VisualRow, x int) *Node {
	if len(row.Items) == 0 {
		return nil
	}

	best := row.Items[0].Node
	bestDist := core.Abs(row.Items[0].Bounds.X - x)

	for i := 1; i < len(row.Items); i++ {
		mid := (row.Items[i-1].Bounds.Right() + row.Items[i].Bounds.X) / 2
		if d := core.Abs(mid - x); d < bestDist {
			bestDist = d
			best = row.Items[i].Node
		}
	}

	last := row.Items[len(row.Items)-1]
	if d := core.Abs(last.Bounds.Right() - x); d < bestDist {
		// Next sibling of the row's last item; nil when the item is
		// the container's true last child, which appends
		return s.NextSibling(last.Node)
	}
	return best
}
