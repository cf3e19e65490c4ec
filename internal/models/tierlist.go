package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PoolTierName is the reserved tier name holding items not yet placed in a
// visible tier. The editor splits it back out of the tier array on load.
const PoolTierName = "__POOL__"

// PoolTierPosition keeps the pool tier sorted after every visible tier.
const PoolTierPosition = 1 << 20

// TierList is the aggregate root for a ranking. Ownership is exactly one of
// UserID (authenticated) or AnonymousID (client-minted capability token), or
// neither for seed templates. An anonymous list can never be public.
type TierList struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title         string         `gorm:"size:255;not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	CoverImageURL string         `gorm:"size:500" json:"coverImageUrl"`
	IsPublic      bool           `gorm:"default:false;index" json:"isPublic"`
	UserID        *uuid.UUID     `gorm:"type:uuid;index" json:"userId"`
	AnonymousID   *string        `gorm:"size:255;index" json:"-"`
	User          *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tiers         []Tier         `gorm:"foreignKey:TierListID;constraint:OnDelete:CASCADE" json:"tiers"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

type Tier struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TierListID uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	Name       string     `gorm:"size:255;not null" json:"name"`
	Color      string     `gorm:"size:7" json:"color"`
	Position   int        `gorm:"not null" json:"order"`
	Items      []TierItem `gorm:"foreignKey:TierID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time  `json:"-"`
}

// TierItem rows are replaced wholesale on every tier list update, item
// identity is only stable within one editing session.
type TierItem struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TierID        uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	MediaURL      string    `gorm:"size:500;not null" json:"mediaUrl"`
	MediaType     string    `gorm:"size:20;not null" json:"mediaType"`
	CoverImageURL string    `gorm:"size:500" json:"coverImageUrl,omitempty"`
	EmbedID       string    `gorm:"size:100" json:"embedId,omitempty"`
	Label         string    `gorm:"size:255" json:"label,omitempty"`
	Position      int       `gorm:"not null" json:"order"`
	CreatedAt     time.Time `json:"-"`
}
