package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rankmaker/rankmaker/internal/apperr"
	"github.com/rankmaker/rankmaker/internal/dto"
	"github.com/rankmaker/rankmaker/internal/identity"
	"github.com/rankmaker/rankmaker/internal/models"
	"gorm.io/gorm"
)

// PublicPageSize is the page size of the public explore listing.
const PublicPageSize = 50

type TierListService struct {
	db *gorm.DB
}

func NewTierListService(db *gorm.DB) *TierListService {
	return &TierListService{db: db}
}

// TierListDetail is the full read aggregate.
type TierListDetail struct {
	models.TierList
	Comments     []models.Comment `json:"comments"`
	Votes        []models.Vote    `json:"votes"`
	VoteCount    int64            `json:"voteCount"`
	CommentCount int64            `json:"commentCount"`
}

// TierListSummary is a listing row with engagement counts.
type TierListSummary struct {
	models.TierList
	VoteCount    int64 `json:"voteCount"`
	CommentCount int64 `json:"commentCount"`
	Score        int   `json:"score"`
}

// Create persists the aggregate in one transaction. Publishing publicly
// requires an authenticated owner; an unauthenticated create without an
// anonymous token gets a freshly minted one, returned so the client can
// keep the capability.
func (s *TierListService) Create(ident identity.Identity, req *dto.CreateTierListRequest) (*models.TierList, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}
	if req.IsPublic && !ident.Authenticated() {
		return nil, "", apperr.New(apperr.Unauthorized, "authentication required to publish publicly")
	}

	list := models.TierList{
		Title:         req.Title,
		Description:   req.Description,
		CoverImageURL: req.CoverImageURL,
		IsPublic:      req.IsPublic,
		Tiers:         buildTiers(req.Tiers),
	}

	minted := ""
	if ident.Authenticated() {
		uid := ident.UserID
		list.UserID = &uid
	} else {
		anon := ident.AnonymousID
		if anon == "" {
			anon = uuid.NewString()
			minted = anon
		}
		list.AnonymousID = &anon
		list.IsPublic = false
	}

	if err := s.db.Create(&list).Error; err != nil {
		return nil, "", fmt.Errorf("failed to create tier list: %w", err)
	}

	return &list, minted, nil
}

// Get loads the full aggregate. Public lists are readable by anyone;
// otherwise the resolver decides.
func (s *TierListService) Get(id uuid.UUID, ident identity.Identity) (*TierListDetail, error) {
	list, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if err := CheckRead(list, ident); err != nil {
		return nil, err
	}

	detail := TierListDetail{TierList: *list}

	if err := s.db.Preload("User").
		Where("tier_list_id = ?", id).
		Order("created_at DESC").
		Find(&detail.Comments).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("tier_list_id = ?", id).Find(&detail.Votes).Error; err != nil {
		return nil, err
	}
	detail.VoteCount = int64(len(detail.Votes))
	detail.CommentCount = int64(len(detail.Comments))

	return &detail, nil
}

// Update replaces the whole aggregate: top-level fields patch with
// keep-if-absent semantics, all existing tiers are deleted and recreated
// from the payload inside one transaction. An anonymous-owned list can
// never end up public, regardless of the requested value.
func (s *TierListService) Update(id uuid.UUID, ident identity.Identity, req *dto.UpdateTierListRequest) (*models.TierList, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	list, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if err := CheckWrite(list, ident.WithBodyToken(req.AnonymousID)); err != nil {
		return nil, err
	}

	patch := map[string]interface{}{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.CoverImageURL != nil {
		patch["cover_image_url"] = *req.CoverImageURL
	}
	if req.IsPublic != nil {
		patch["is_public"] = *req.IsPublic
	}
	if list.AnonymousID != nil {
		patch["is_public"] = false
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var tierIDs []uuid.UUID
		if err := tx.Model(&models.Tier{}).Where("tier_list_id = ?", id).Pluck("id", &tierIDs).Error; err != nil {
			return err
		}
		if len(tierIDs) > 0 {
			if err := tx.Where("tier_id IN ?", tierIDs).Delete(&models.TierItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("tier_list_id = ?", id).Delete(&models.Tier{}).Error; err != nil {
				return err
			}
		}

		if len(patch) > 0 {
			if err := tx.Model(&models.TierList{}).Where("id = ?", id).Updates(patch).Error; err != nil {
				return err
			}
		}

		tiers := buildTiers(req.Tiers)
		for i := range tiers {
			tiers[i].TierListID = id
		}
		if len(tiers) > 0 {
			if err := tx.Create(&tiers).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update tier list: %w", err)
	}

	return s.load(id)
}

// Delete removes the aggregate and every dependent row.
func (s *TierListService) Delete(id uuid.UUID, ident identity.Identity) error {
	list, err := s.load(id)
	if err != nil {
		return err
	}
	if err := CheckWrite(list, ident); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var tierIDs []uuid.UUID
		if err := tx.Model(&models.Tier{}).Where("tier_list_id = ?", id).Pluck("id", &tierIDs).Error; err != nil {
			return err
		}
		if len(tierIDs) > 0 {
			if err := tx.Where("tier_id IN ?", tierIDs).Delete(&models.TierItem{}).Error; err != nil {
				return err
			}
		}
		for _, m := range []interface{}{&models.Tier{}, &models.Vote{}, &models.Like{}, &models.SavedTierList{}, &models.Comment{}} {
			if err := tx.Where("tier_list_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.TierList{}, "id = ?", id).Error
	})
}

// ListMine returns the requester's lists, newest first. Exactly one identity
// channel is honored: the authenticated id when present, else the anonymous
// token.
func (s *TierListService) ListMine(ident identity.Identity) ([]TierListSummary, error) {
	query := s.db.Model(&models.TierList{})
	switch {
	case ident.Authenticated():
		query = query.Where("user_id = ?", ident.UserID)
	case ident.AnonymousID != "":
		query = query.Where("anonymous_id = ?", ident.AnonymousID)
	default:
		return nil, apperr.New(apperr.Unauthorized, "authentication or anonymous id required")
	}

	var lists []models.TierList
	if err := query.
		Preload("Tiers", orderTiers).
		Preload("Tiers.Items", orderItems).
		Order("created_at DESC").
		Find(&lists).Error; err != nil {
		return nil, err
	}

	return s.withCounts(lists)
}

// ListSaved returns the lists an authenticated user has bookmarked.
func (s *TierListService) ListSaved(userID uuid.UUID) ([]TierListSummary, error) {
	var lists []models.TierList
	if err := s.db.
		Joins("JOIN saved_tier_lists ON saved_tier_lists.tier_list_id = tier_lists.id").
		Where("saved_tier_lists.user_id = ?", userID).
		Preload("Tiers", orderTiers).
		Preload("Tiers.Items", orderItems).
		Preload("User").
		Order("saved_tier_lists.created_at DESC").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return s.withCounts(lists)
}

// ListPublic returns one page of the public explore feed, newest first.
func (s *TierListService) ListPublic(page int) ([]TierListSummary, error) {
	if page < 1 {
		page = 1
	}

	var lists []models.TierList
	if err := s.db.Where("is_public = ?", true).
		Preload("Tiers", orderTiers).
		Preload("Tiers.Items", orderItems).
		Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * PublicPageSize).
		Limit(PublicPageSize).
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return s.withCounts(lists)
}

// ListTop returns public lists sorted by summed vote score, descending.
func (s *TierListService) ListTop(limit int) ([]TierListSummary, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var rows []struct {
		ID    uuid.UUID
		Score int
	}
	if err := s.db.Model(&models.TierList{}).
		Select("tier_lists.id, COALESCE(SUM(votes.value), 0) AS score").
		Joins("LEFT JOIN votes ON votes.tier_list_id = tier_lists.id").
		Where("tier_lists.is_public = ? AND tier_lists.deleted_at IS NULL", true).
		Group("tier_lists.id").
		Order("score DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]TierListSummary, 0, len(rows))
	for _, row := range rows {
		var list models.TierList
		if err := s.db.
			Preload("Tiers", orderTiers).
			Preload("Tiers.Items", orderItems).
			Preload("User").
			First(&list, "id = ?", row.ID).Error; err != nil {
			continue
		}
		summary, err := s.counts(list)
		if err != nil {
			return nil, err
		}
		summary.Score = row.Score
		out = append(out, summary)
	}
	return out, nil
}

// CloneAsTemplate copies a public list's tier shells for the requester and
// piles every source item into one reserved pool tier, flattened in
// tier-then-item order. The original ranking is deliberately stripped.
func (s *TierListService) CloneAsTemplate(sourceID uuid.UUID, ident identity.Identity) (*models.TierList, string, error) {
	source, err := s.load(sourceID)
	if err != nil {
		return nil, "", err
	}
	if !source.IsPublic {
		return nil, "", apperr.New(apperr.Forbidden, "only public tier lists can be used as templates")
	}

	clone := models.TierList{
		Title:         source.Title,
		Description:   source.Description,
		CoverImageURL: source.CoverImageURL,
		IsPublic:      false,
	}

	minted := ""
	if ident.Authenticated() {
		uid := ident.UserID
		clone.UserID = &uid
	} else {
		anon := ident.AnonymousID
		if anon == "" {
			anon = uuid.NewString()
			minted = anon
		}
		clone.AnonymousID = &anon
	}

	var pool []models.TierItem
	for _, tier := range source.Tiers {
		if tier.Name == models.PoolTierName {
			// Source pool items flow into the clone's pool too.
			pool = append(pool, tier.Items...)
			continue
		}
		clone.Tiers = append(clone.Tiers, models.Tier{
			Name:     tier.Name,
			Color:    tier.Color,
			Position: len(clone.Tiers),
		})
		pool = append(pool, tier.Items...)
	}

	poolTier := models.Tier{Name: models.PoolTierName, Position: models.PoolTierPosition}
	for i, item := range pool {
		poolTier.Items = append(poolTier.Items, models.TierItem{
			MediaURL:      item.MediaURL,
			MediaType:     item.MediaType,
			CoverImageURL: item.CoverImageURL,
			EmbedID:       item.EmbedID,
			Label:         item.Label,
			Position:      i,
		})
	}
	clone.Tiers = append(clone.Tiers, poolTier)

	if err := s.db.Create(&clone).Error; err != nil {
		return nil, "", fmt.Errorf("failed to clone tier list: %w", err)
	}

	return &clone, minted, nil
}

func (s *TierListService) load(id uuid.UUID) (*models.TierList, error) {
	var list models.TierList
	err := s.db.
		Preload("Tiers", orderTiers).
		Preload("Tiers.Items", orderItems).
		Preload("User").
		First(&list, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "tier list not found")
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *TierListService) withCounts(lists []models.TierList) ([]TierListSummary, error) {
	out := make([]TierListSummary, 0, len(lists))
	for _, list := range lists {
		summary, err := s.counts(list)
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, nil
}

func (s *TierListService) counts(list models.TierList) (TierListSummary, error) {
	summary := TierListSummary{TierList: list}
	if err := s.db.Model(&models.Vote{}).Where("tier_list_id = ?", list.ID).Count(&summary.VoteCount).Error; err != nil {
		return summary, err
	}
	if err := s.db.Model(&models.Comment{}).Where("tier_list_id = ?", list.ID).Count(&summary.CommentCount).Error; err != nil {
		return summary, err
	}
	return summary, nil
}

func buildTiers(inputs []dto.TierInput) []models.Tier {
	tiers := make([]models.Tier, 0, len(inputs))
	for i, t := range inputs {
		tier := models.Tier{
			Name:     t.Name,
			Color:    t.Color,
			Position: i,
		}
		if t.Name == models.PoolTierName {
			tier.Position = models.PoolTierPosition
		}
		for j, it := range t.Items {
			tier.Items = append(tier.Items, models.TierItem{
				MediaURL:      it.MediaURL,
				MediaType:     it.MediaType,
				CoverImageURL: it.CoverImageURL,
				EmbedID:       it.EmbedID,
				Label:         it.Label,
				Position:      j,
			})
		}
		tiers = append(tiers, tier)
	}
	return tiers
}

func orderTiers(db *gorm.DB) *gorm.DB { return db.Order("tiers.position ASC") }
func orderItems(db *gorm.DB) *gorm.DB { return db.Order("tier_items.position ASC") }
