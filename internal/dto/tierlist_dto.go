package dto

import (
	"strings"

	"github.com/rankmaker/rankmaker/internal/apperr"
	"github.com/rankmaker/rankmaker/internal/media"
)

// TierItemInput is one item in a tier payload. Field names follow the wire
// format the editor sends.
type TierItemInput struct {
	MediaURL      string `json:"mediaUrl"`
	MediaType     string `json:"mediaType"`
	CoverImageURL string `json:"coverImageUrl,omitempty"`
	EmbedID       string `json:"embedId,omitempty"`
	Label         string `json:"label,omitempty"`
}

type TierInput struct {
	Name  string          `json:"name"`
	Color string          `json:"color"`
	Items []TierItemInput `json:"items"`
}

// CreateTierListRequest is the full-aggregate create payload. Tier and item
// order is the array order.
type CreateTierListRequest struct {
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	CoverImageURL string      `json:"coverImageUrl"`
	IsPublic      bool        `json:"isPublic"`
	Tiers         []TierInput `json:"tiers"`
	AnonymousID   string      `json:"anonymousId"`
}

func (r *CreateTierListRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return apperr.New(apperr.InvalidInput, "title is required")
	}
	if r.Tiers == nil {
		return apperr.New(apperr.InvalidInput, "tiers must be a list")
	}
	return validateTiers(r.Tiers)
}

// UpdateTierListRequest patches top-level fields with keep-if-absent
// semantics and replaces the tier set wholesale.
type UpdateTierListRequest struct {
	Title         *string     `json:"title"`
	Description   *string     `json:"description"`
	CoverImageURL *string     `json:"coverImageUrl"`
	IsPublic      *bool       `json:"isPublic"`
	Tiers         []TierInput `json:"tiers"`
	AnonymousID   string      `json:"anonymousId"`
}

func (r *UpdateTierListRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return apperr.New(apperr.InvalidInput, "title cannot be empty")
	}
	if r.Tiers == nil {
		return apperr.New(apperr.InvalidInput, "tiers must be a list")
	}
	return validateTiers(r.Tiers)
}

func validateTiers(tiers []TierInput) error {
	for _, t := range tiers {
		if t.Name == "" {
			return apperr.New(apperr.InvalidInput, "tier name is required")
		}
		for _, it := range t.Items {
			if it.MediaURL == "" {
				return apperr.New(apperr.InvalidInput, "item mediaUrl is required")
			}
			if !media.ValidType(it.MediaType) {
				return apperr.New(apperr.InvalidInput, "unknown mediaType: "+it.MediaType)
			}
		}
	}
	return nil
}
