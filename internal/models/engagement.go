package models

import (
	"time"

	"github.com/google/uuid"
)

// Like is an authenticated-only toggle guarded by the unique pair index.
type Like struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TierListID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_likes_user_list" json:"tierListId"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_list" json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SavedTierList is an authenticated-only bookmark.
type SavedTierList struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TierListID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_saves_user_list" json:"tierListId"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saves_user_list" json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Comment struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TierListID uuid.UUID `gorm:"type:uuid;not null;index" json:"tierListId"`
	UserID     uuid.UUID `gorm:"type:uuid;not null" json:"-"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	User       User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt  time.Time `json:"createdAt"`
}
