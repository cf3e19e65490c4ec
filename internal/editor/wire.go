package editor

import (
	"github.com/rankmaker/rankmaker/internal/dto"
	"github.com/rankmaker/rankmaker/internal/media"
	"github.com/rankmaker/rankmaker/internal/models"
)

// Flatten converts the board into the tier payload consumed by the tier
// list API: visible tiers in display order, plus one reserved pool tier
// when the unplaced list is non-empty.
func (b Board) Flatten() []dto.TierInput {
	out := make([]dto.TierInput, 0, len(b.Tiers)+1)
	for _, t := range b.Tiers {
		out = append(out, dto.TierInput{
			Name:  t.Name,
			Color: t.Color,
			Items: itemsToWire(t.Items),
		})
	}
	if len(b.Unplaced) > 0 {
		out = append(out, dto.TierInput{
			Name:  models.PoolTierName,
			Items: itemsToWire(b.Unplaced),
		})
	}
	return out
}

// Split rebuilds a board from a saved tier payload, peeling the reserved
// pool tier back out into the unplaced list.
func Split(tiers []dto.TierInput) Board {
	var b Board
	for _, t := range tiers {
		items := itemsFromWire(t.Items)
		if t.Name == models.PoolTierName {
			b.Unplaced = append(b.Unplaced, items...)
			continue
		}
		b.Tiers = append(b.Tiers, Tier{
			ID:    newID(),
			Name:  t.Name,
			Color: t.Color,
			Items: items,
		})
	}
	return b
}

func itemsToWire(items []Item) []dto.TierItemInput {
	out := make([]dto.TierItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, dto.TierItemInput{
			MediaURL:      it.MediaURL,
			MediaType:     string(it.MediaType),
			CoverImageURL: it.CoverImageURL,
			EmbedID:       it.EmbedID,
			Label:         it.Label,
		})
	}
	return out
}

func itemsFromWire(items []dto.TierItemInput) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, Item{
			ID:            newID(),
			MediaURL:      it.MediaURL,
			MediaType:     media.Type(it.MediaType),
			CoverImageURL: it.CoverImageURL,
			EmbedID:       it.EmbedID,
			Label:         it.Label,
		})
	}
	return out
}
