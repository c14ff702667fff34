// Package board holds the canonical tier-list data model.
//
// The drag engine never touches this package directly: it reports
// source/destination coordinates through its drop callback, and the
// view applies them here via Move. Moves are the only mutation path a
// gesture can take, and they conserve items: nothing is lost or
// duplicated regardless of the indices reported.
package board

import (
	"github.com/google/uuid"
)

// UnrankedID is the container id of the tray below the tier rows
const UnrankedID = "unranked"

// Item is a single rankable entry
type Item struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// NewItem creates an item with a fresh identity
func NewItem(name string) Item {
	return Item{ID: uuid.NewString(), Name: name}
}

// Tier is one ranked row
type Tier struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	Color string `toml:"color"` // Hex, e.g. "#ff7f7f"
	Items []Item `toml:"items"`
}

// Board is a full tier list: ranked rows plus the unranked tray
type Board struct {
	Title    string `toml:"title"`
	Tiers    []Tier `toml:"tiers"`
	Unranked []Item `toml:"unranked"`
}

// Default returns the classic empty five-tier board
func Default() *Board {
	return &Board{
		Title: "Untitled board",
		Tiers: []Tier{
			{ID: "s", Label: "S", Color: "#ff7f7e"},
			{ID: "a", Label: "A", Color: "#ffbf7f"},
			{ID: "b", Label: "B", Color: "#ffdf80"},
			{ID: "c", Label: "C", Color: "#feff7f"},
			{ID: "d", Label: "D", Color: "#beff7f"},
		},
	}
}

// Tier returns the tier with the given id, or nil
func (b *Board) Tier(id string) *Tier {
	for i := range b.Tiers {
		if b.Tiers[i].ID == id {
			return &b.Tiers[i]
		}
	}
	return nil
}

// list maps a container id to its item slice. The unranked tray is
// addressed like any other container
func (b *Board) list(id string) *[]Item {
	if id == UnrankedID {
		return &b.Unranked
	}
	if t := b.Tier(id); t != nil {
		return &t.Items
	}
	return nil
}

// Items returns the item list for a container id
func (b *Board) Items(id string) []Item {
	if l := b.list(id); l != nil {
		return *l
	}
	return nil
}

// Len returns the total item count across all containers
func (b *Board) Len() int {
	n := len(b.Unranked)
	for i := range b.Tiers {
		n += len(b.Tiers[i].Items)
	}
	return n
}

// AddUnranked appends a new item to the unranked tray
func (b *Board) AddUnranked(name string) Item {
	item := NewItem(name)
	b.Unranked = append(b.Unranked, item)
	return item
}

// Move relocates the item at src[srcIdx] to dst[dstIdx].
//
// dstIdx is interpreted the way the drag engine reports it: an index
// over the destination's children with the lifted item still in place.
// For a same-container move to a later slot the index therefore shifts
// down by one once the item is removed. Destination indices clamp into
// range; an unknown container or out-of-range source index is a no-op.
// Returns whether a move was applied
func (b *Board) Move(srcID string, srcIdx int, dstID string, dstIdx int) bool {
	src := b.list(srcID)
	dst := b.list(dstID)
	if src == nil || dst == nil {
		return false
	}
	if srcIdx < 0 || srcIdx >= len(*src) {
		return false
	}

	if src == dst && srcIdx < dstIdx {
		dstIdx--
	}

	item := (*src)[srcIdx]
	*src = append((*src)[:srcIdx], (*src)[srcIdx+1:]...)

	if dstIdx < 0 {
		dstIdx = 0
	}
	if dstIdx > len(*dst) {
		dstIdx = len(*dst)
	}
	*dst = append(*dst, Item{})
	copy((*dst)[dstIdx+1:], (*dst)[dstIdx:])
	(*dst)[dstIdx] = item
	return true
}

// EnsureIDs assigns fresh ids to any items or tiers that lack one,
// e.g. after loading a hand-written board file
func (b *Board) EnsureIDs() {
	for i := range b.Tiers {
		t := &b.Tiers[i]
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		for j := range t.Items {
			if t.Items[j].ID == "" {
				t.Items[j].ID = uuid.NewString()
			}
		}
	}
	for i := range b.Unranked {
		if b.Unranked[i].ID == "" {
			b.Unranked[i].ID = uuid.NewString()
		}
	}
}
