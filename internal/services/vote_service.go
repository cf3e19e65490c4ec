package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rankmaker/rankmaker/internal/apperr"
	"github.com/rankmaker/rankmaker/internal/dto"
	"github.com/rankmaker/rankmaker/internal/identity"
	"github.com/rankmaker/rankmaker/internal/models"
	"gorm.io/gorm"
)

type VoteService struct {
	db *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{db: db}
}

// Vote toggles the caller's vote on a tier list. No existing vote creates
// one; the same value removes it; the opposite value updates it in place.
// At most one vote row exists per identity per list.
func (s *VoteService) Vote(tierListID uuid.UUID, ident identity.Identity, value int) (*dto.VoteResponse, error) {
	if value != 1 && value != -1 {
		return nil, apperr.New(apperr.InvalidInput, "vote value must be 1 or -1")
	}

	var list models.TierList
	if err := s.db.First(&list, "id = ?", tierListID).Error; err != nil {
		return nil, apperr.New(apperr.NotFound, "tier list not found")
	}

	if !ident.Authenticated() && ident.AnonymousID == "" {
		return nil, apperr.New(apperr.InvalidInput, "anonymous id required")
	}

	var existing models.Vote
	err := s.identityScope(ident).Where("tier_list_id = ?", tierListID).First(&existing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		vote := models.Vote{TierListID: tierListID, Value: value}
		if ident.Authenticated() {
			uid := ident.UserID
			vote.UserID = &uid
		} else {
			anon := ident.AnonymousID
			vote.AnonymousID = &anon
		}
		if err := s.db.Create(&vote).Error; err != nil {
			// Unique-pair violation under a double-insert race.
			return nil, apperr.Wrap(apperr.AlreadyExists, "vote already recorded", err)
		}
		return &dto.VoteResponse{Message: "vote recorded", UserVote: &value}, nil

	case err != nil:
		return nil, err

	case existing.Value == value:
		if err := s.db.Delete(&existing).Error; err != nil {
			return nil, err
		}
		return &dto.VoteResponse{Message: "vote removed", UserVote: nil}, nil

	default:
		if err := s.db.Model(&existing).Update("value", value).Error; err != nil {
			return nil, err
		}
		return &dto.VoteResponse{Message: "vote updated", UserVote: &value}, nil
	}
}

// Status returns the aggregate score and the caller's own vote, if any.
func (s *VoteService) Status(tierListID uuid.UUID, ident identity.Identity) (*dto.VoteStatusResponse, error) {
	var list models.TierList
	if err := s.db.First(&list, "id = ?", tierListID).Error; err != nil {
		return nil, apperr.New(apperr.NotFound, "tier list not found")
	}

	var votes []models.Vote
	if err := s.db.Where("tier_list_id = ?", tierListID).Find(&votes).Error; err != nil {
		return nil, err
	}

	status := &dto.VoteStatusResponse{}
	for _, v := range votes {
		status.Score += v.Value
		if v.Value > 0 {
			status.Upvotes++
		} else {
			status.Downvotes++
		}
	}

	if ident.Authenticated() || ident.AnonymousID != "" {
		var own models.Vote
		if err := s.identityScope(ident).Where("tier_list_id = ?", tierListID).First(&own).Error; err == nil {
			value := own.Value
			status.UserVote = &value
		}
	}

	return status, nil
}

// identityScope prefers the authenticated channel over the anonymous token.
func (s *VoteService) identityScope(ident identity.Identity) *gorm.DB {
	if ident.Authenticated() {
		return s.db.Where("user_id = ?", ident.UserID)
	}
	return s.db.Where("anonymous_id = ?", ident.AnonymousID)
}
