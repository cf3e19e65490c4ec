package models

import (
	"time"

	"github.com/google/uuid"
)

// Vote holds at most one row per identity per tier list; +1 or -1. The
// user-owned pair is guarded by a unique index, the anonymous pair only by
// application logic since AnonymousID is client-supplied.
type Vote struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TierListID  uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_votes_user_list" json:"-"`
	UserID      *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_votes_user_list" json:"userId"`
	AnonymousID *string    `gorm:"size:255;index" json:"-"`
	Value       int        `gorm:"not null" json:"value"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"-"`
}
