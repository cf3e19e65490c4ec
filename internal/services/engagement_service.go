package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rankmaker/rankmaker/internal/apperr"
	"github.com/rankmaker/rankmaker/internal/models"
	"gorm.io/gorm"
)

// EngagementService handles the authenticated-only like/save/comment rows.
// Like and save are toggles guarded by their unique pair index; the
// constraint violation under a race surfaces as AlreadyExists, never a
// retry.
type EngagementService struct {
	db *gorm.DB
}

func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{db: db}
}

func (s *EngagementService) Like(tierListID, userID uuid.UUID) error {
	if err := s.requireList(tierListID); err != nil {
		return err
	}

	var existing models.Like
	if err := s.db.Where("tier_list_id = ? AND user_id = ?", tierListID, userID).First(&existing).Error; err == nil {
		return apperr.New(apperr.AlreadyExists, "already liked")
	}

	like := models.Like{TierListID: tierListID, UserID: userID}
	if err := s.db.Create(&like).Error; err != nil {
		return apperr.Wrap(apperr.AlreadyExists, "already liked", err)
	}
	return nil
}

func (s *EngagementService) Unlike(tierListID, userID uuid.UUID) error {
	result := s.db.Where("tier_list_id = ? AND user_id = ?", tierListID, userID).Delete(&models.Like{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "not liked")
	}
	return nil
}

func (s *EngagementService) Save(tierListID, userID uuid.UUID) error {
	if err := s.requireList(tierListID); err != nil {
		return err
	}

	var existing models.SavedTierList
	if err := s.db.Where("tier_list_id = ? AND user_id = ?", tierListID, userID).First(&existing).Error; err == nil {
		return apperr.New(apperr.AlreadyExists, "already saved")
	}

	saved := models.SavedTierList{TierListID: tierListID, UserID: userID}
	if err := s.db.Create(&saved).Error; err != nil {
		return apperr.Wrap(apperr.AlreadyExists, "already saved", err)
	}
	return nil
}

func (s *EngagementService) Unsave(tierListID, userID uuid.UUID) error {
	result := s.db.Where("tier_list_id = ? AND user_id = ?", tierListID, userID).Delete(&models.SavedTierList{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "not saved")
	}
	return nil
}

func (s *EngagementService) IsSaved(tierListID, userID uuid.UUID) (bool, error) {
	var saved models.SavedTierList
	err := s.db.Where("tier_list_id = ? AND user_id = ?", tierListID, userID).First(&saved).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Comment stores a trimmed, non-empty comment and returns it with the
// author's public identity for immediate display.
func (s *EngagementService) Comment(tierListID, userID uuid.UUID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.New(apperr.InvalidInput, "comment content is required")
	}
	if err := s.requireList(tierListID); err != nil {
		return nil, err
	}

	comment := models.Comment{
		TierListID: tierListID,
		UserID:     userID,
		Content:    content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("User").First(&comment, "id = ?", comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *EngagementService) requireList(tierListID uuid.UUID) error {
	var list models.TierList
	if err := s.db.First(&list, "id = ?", tierListID).Error; err != nil {
		return apperr.New(apperr.NotFound, "tier list not found")
	}
	return nil
}
