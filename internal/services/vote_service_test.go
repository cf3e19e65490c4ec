package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rankmaker/rankmaker/internal/apperr"
	"github.com/rankmaker/rankmaker/internal/database"
	"github.com/rankmaker/rankmaker/internal/dto"
	"github.com/rankmaker/rankmaker/internal/identity"
	"github.com/rankmaker/rankmaker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createVotableList(t *testing.T) uuid.UUID {
	t.Helper()
	svc := NewTierListService(database.DB)
	owner := createTestUser(t)
	list, _, err := svc.Create(identity.Identity{UserID: owner}, &dto.CreateTierListRequest{
		Title:    "Votable",
		IsPublic: true,
		Tiers:    []dto.TierInput{},
	})
	require.NoError(t, err)
	return list.ID
}

func voteCount(t *testing.T, listID uuid.UUID) int64 {
	t.Helper()
	var n int64
	require.NoError(t, database.DB.Model(&models.Vote{}).Where("tier_list_id = ?", listID).Count(&n).Error)
	return n
}

func TestVoteToggle(t *testing.T) {
	setupDB(t)
	svc := NewVoteService(database.DB)
	listID := createVotableList(t)
	voter := identity.Identity{AnonymousID: uuid.NewString()}

	// First upvote creates the row.
	resp, err := svc.Vote(listID, voter, 1)
	require.NoError(t, err)
	require.NotNil(t, resp.UserVote)
	assert.Equal(t, 1, *resp.UserVote)
	assert.Equal(t, int64(1), voteCount(t, listID))

	// Opposite value flips in place, no second row.
	resp, err = svc.Vote(listID, voter, -1)
	require.NoError(t, err)
	require.NotNil(t, resp.UserVote)
	assert.Equal(t, -1, *resp.UserVote)
	assert.Equal(t, int64(1), voteCount(t, listID))

	// Same value removes the vote.
	resp, err = svc.Vote(listID, voter, -1)
	require.NoError(t, err)
	assert.Nil(t, resp.UserVote)
	assert.Equal(t, int64(0), voteCount(t, listID))
}

func TestVoteRejectsBadValue(t *testing.T) {
	setupDB(t)
	svc := NewVoteService(database.DB)
	listID := createVotableList(t)

	_, err := svc.Vote(listID, identity.Identity{AnonymousID: "tok"}, 2)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))

	_, err = svc.Vote(listID, identity.Identity{AnonymousID: "tok"}, 0)
	require.Error(t, err)
}

func TestVoteRequiresIdentity(t *testing.T) {
	setupDB(t)
	svc := NewVoteService(database.DB)
	listID := createVotableList(t)

	_, err := svc.Vote(listID, identity.Identity{}, 1)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
}

func TestVoteStatusAggregates(t *testing.T) {
	setupDB(t)
	svc := NewVoteService(database.DB)
	listID := createVotableList(t)

	up1 := identity.Identity{AnonymousID: uuid.NewString()}
	up2 := identity.Identity{AnonymousID: uuid.NewString()}
	down := identity.Identity{AnonymousID: uuid.NewString()}

	for _, v := range []struct {
		ident identity.Identity
		value int
	}{{up1, 1}, {up2, 1}, {down, -1}} {
		_, err := svc.Vote(listID, v.ident, v.value)
		require.NoError(t, err)
	}

	status, err := svc.Status(listID, down)
	require.NoError(t, err)
	assert.Equal(t, 1, status.Score)
	assert.Equal(t, 2, status.Upvotes)
	assert.Equal(t, 1, status.Downvotes)
	require.NotNil(t, status.UserVote)
	assert.Equal(t, -1, *status.UserVote)

	// A caller with no vote sees the totals but no own vote.
	status, err = svc.Status(listID, identity.Identity{AnonymousID: uuid.NewString()})
	require.NoError(t, err)
	assert.Equal(t, 1, status.Score)
	assert.Nil(t, status.UserVote)
}

func TestVoteUnknownList(t *testing.T) {
	setupDB(t)
	svc := NewVoteService(database.DB)

	_, err := svc.Vote(uuid.New(), identity.Identity{AnonymousID: "tok"}, 1)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestLikeAndSaveToggles(t *testing.T) {
	setupDB(t)
	svc := NewEngagementService(database.DB)
	listID := createVotableList(t)
	userID := createTestUser(t)

	require.NoError(t, svc.Like(listID, userID))
	err := svc.Like(listID, userID)
	require.Error(t, err)
	assert.Equal(t, apperr.AlreadyExists, apperr.KindOf(err))

	require.NoError(t, svc.Unlike(listID, userID))
	err = svc.Unlike(listID, userID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	saved, err := svc.IsSaved(listID, userID)
	require.NoError(t, err)
	assert.False(t, saved)

	require.NoError(t, svc.Save(listID, userID))
	saved, err = svc.IsSaved(listID, userID)
	require.NoError(t, err)
	assert.True(t, saved)

	require.NoError(t, svc.Unsave(listID, userID))
	err = svc.Unsave(listID, userID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestCommentTrimsAndAttachesAuthor(t *testing.T) {
	setupDB(t)
	svc := NewEngagementService(database.DB)
	listID := createVotableList(t)
	userID := createTestUser(t)

	_, err := svc.Comment(listID, userID, "   ")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))

	comment, err := svc.Comment(listID, userID, "  great list  ")
	require.NoError(t, err)
	assert.Equal(t, "great list", comment.Content)
	assert.Equal(t, userID, comment.User.ID)
}
