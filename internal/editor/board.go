// Package editor implements the tier board state machine: an ordered list
// of tiers plus the unplaced-item pool, drag-and-drop move semantics, tier
// management, and a bounded undo/redo history. Every item belongs to
// exactly one container at all times; moves are remove-then-insert, never
// copies.
package editor

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rankmaker/rankmaker/internal/media"
)

// PoolID is the drop id of the unplaced-item pool container.
const PoolID = "pool"

var (
	ErrItemNotFound = errors.New("item not found on board")
	ErrTierNotFound = errors.New("tier not found on board")
)

type Item struct {
	ID            string
	MediaURL      string
	MediaType     media.Type
	CoverImageURL string
	EmbedID       string
	Label         string
}

type Tier struct {
	ID    string
	Name  string
	Color string
	Items []Item
}

type Board struct {
	Tiers    []Tier
	Unplaced []Item
}

// NewBoard returns a board with the classic tier shells and an empty pool.
func NewBoard() Board {
	b := Board{}
	for _, t := range Templates["classic"] {
		b.Tiers = append(b.Tiers, Tier{ID: newID(), Name: t.Name, Color: t.Color})
	}
	return b
}

// Clone deep-copies the board. History snapshots rely on this.
func (b Board) Clone() Board {
	out := Board{
		Tiers:    make([]Tier, len(b.Tiers)),
		Unplaced: append([]Item(nil), b.Unplaced...),
	}
	for i, t := range b.Tiers {
		t.Items = append([]Item(nil), t.Items...)
		out.Tiers[i] = t
	}
	return out
}

// Move applies a drag-and-drop gesture. activeID must be an item id; overID
// may be an item id (insert at that item's index) or a container id (append
// to that container).
func (b *Board) Move(activeID, overID string) error {
	srcContainer, srcIdx, ok := b.locate(activeID)
	if !ok {
		return ErrItemNotFound
	}

	dstContainer := overID
	dstIdx := -1 // append
	if !b.isContainer(overID) {
		var ok bool
		dstContainer, dstIdx, ok = b.locate(overID)
		if !ok {
			return ErrItemNotFound
		}
	}

	if srcContainer == dstContainer {
		items := b.items(srcContainer)
		if dstIdx < 0 {
			dstIdx = len(*items) - 1
		}
		moveIndex(items, srcIdx, dstIdx)
		return nil
	}

	src := b.items(srcContainer)
	item := (*src)[srcIdx]
	*src = append((*src)[:srcIdx], (*src)[srcIdx+1:]...)

	dst := b.items(dstContainer)
	if dstIdx < 0 || dstIdx > len(*dst) {
		dstIdx = len(*dst)
	}
	*dst = append(*dst, Item{})
	copy((*dst)[dstIdx+1:], (*dst)[dstIdx:])
	(*dst)[dstIdx] = item

	return nil
}

// AddTier appends a tier with default name and color.
func (b *Board) AddTier() *Tier {
	b.Tiers = append(b.Tiers, Tier{ID: newID(), Name: "New Tier", Color: defaultTierColor})
	return &b.Tiers[len(b.Tiers)-1]
}

// InsertTierAfter adds a default tier immediately after the given tier.
func (b *Board) InsertTierAfter(tierID string) (*Tier, error) {
	idx := b.tierIndex(tierID)
	if idx < 0 {
		return nil, ErrTierNotFound
	}
	tier := Tier{ID: newID(), Name: "New Tier", Color: defaultTierColor}
	b.Tiers = append(b.Tiers, Tier{})
	copy(b.Tiers[idx+2:], b.Tiers[idx+1:])
	b.Tiers[idx+1] = tier
	return &b.Tiers[idx+1], nil
}

// RemoveTier deletes a tier, moving its items back into the pool first.
// Items are never silently dropped.
func (b *Board) RemoveTier(tierID string) error {
	idx := b.tierIndex(tierID)
	if idx < 0 {
		return ErrTierNotFound
	}
	b.Unplaced = append(b.Unplaced, b.Tiers[idx].Items...)
	b.Tiers = append(b.Tiers[:idx], b.Tiers[idx+1:]...)
	return nil
}

func (b *Board) RenameTier(tierID, name string) error {
	idx := b.tierIndex(tierID)
	if idx < 0 {
		return ErrTierNotFound
	}
	b.Tiers[idx].Name = name
	return nil
}

func (b *Board) RecolorTier(tierID, color string) error {
	idx := b.tierIndex(tierID)
	if idx < 0 {
		return ErrTierNotFound
	}
	b.Tiers[idx].Color = color
	return nil
}

// MoveTierUp swaps the tier with its predecessor; no-op at the top.
func (b *Board) MoveTierUp(tierID string) error {
	idx := b.tierIndex(tierID)
	if idx < 0 {
		return ErrTierNotFound
	}
	if idx > 0 {
		b.Tiers[idx-1], b.Tiers[idx] = b.Tiers[idx], b.Tiers[idx-1]
	}
	return nil
}

// MoveTierDown swaps the tier with its successor; no-op at the bottom.
func (b *Board) MoveTierDown(tierID string) error {
	idx := b.tierIndex(tierID)
	if idx < 0 {
		return ErrTierNotFound
	}
	if idx < len(b.Tiers)-1 {
		b.Tiers[idx], b.Tiers[idx+1] = b.Tiers[idx+1], b.Tiers[idx]
	}
	return nil
}

// ApplyTemplate replaces the tier set with a named template's shells. All
// items held by existing tiers are moved to the pool first.
func (b *Board) ApplyTemplate(name string) error {
	tmpl, ok := Templates[name]
	if !ok {
		return errors.New("unknown template: " + name)
	}
	for i := range b.Tiers {
		b.Unplaced = append(b.Unplaced, b.Tiers[i].Items...)
	}
	b.Tiers = nil
	for _, t := range tmpl {
		b.Tiers = append(b.Tiers, Tier{ID: newID(), Name: t.Name, Color: t.Color})
	}
	return nil
}

// locate finds the container holding an item by linear search across all
// tiers then the pool.
func (b *Board) locate(itemID string) (container string, index int, ok bool) {
	for _, t := range b.Tiers {
		for i, it := range t.Items {
			if it.ID == itemID {
				return t.ID, i, true
			}
		}
	}
	for i, it := range b.Unplaced {
		if it.ID == itemID {
			return PoolID, i, true
		}
	}
	return "", 0, false
}

func (b *Board) isContainer(id string) bool {
	if id == PoolID {
		return true
	}
	return b.tierIndex(id) >= 0
}

func (b *Board) items(container string) *[]Item {
	if container == PoolID {
		return &b.Unplaced
	}
	idx := b.tierIndex(container)
	if idx < 0 {
		return nil
	}
	return &b.Tiers[idx].Items
}

func (b *Board) tierIndex(tierID string) int {
	for i := range b.Tiers {
		if b.Tiers[i].ID == tierID {
			return i
		}
	}
	return -1
}

// moveIndex shifts the element at from to position to, keeping every other
// element's relative order.
func moveIndex(items *[]Item, from, to int) {
	if from == to || from < 0 || from >= len(*items) || to < 0 || to >= len(*items) {
		return
	}
	item := (*items)[from]
	s := append((*items)[:from], (*items)[from+1:]...)
	s = append(s, Item{})
	copy(s[to+1:], s[to:])
	s[to] = item
	*items = s
}

func newID() string { return uuid.NewString() }
