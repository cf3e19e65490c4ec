package services

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/rankmaker/rankmaker/internal/config"
	"github.com/rankmaker/rankmaker/internal/database"
	"github.com/rankmaker/rankmaker/internal/dto"
	"github.com/rankmaker/rankmaker/internal/identity"
	"github.com/rankmaker/rankmaker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) {
	t.Helper()
	if os.Getenv("DB_HOST") == "" {
		t.Skip("Skipping test - no database connection configured")
	}
	if database.DB == nil {
		require.NoError(t, database.Connect(config.Load()))
		require.NoError(t, database.Migrate())
	}
}

func boardPayload() []dto.TierInput {
	return []dto.TierInput{
		{Name: "S", Color: "#ff7f7e", Items: []dto.TierItemInput{
			{MediaURL: "https://media.test/a.png", MediaType: "IMAGE"},
		}},
		{Name: models.PoolTierName, Items: []dto.TierItemInput{
			{MediaURL: "https://media.test/b.png", MediaType: "IMAGE"},
		}},
	}
}

func TestAnonymousListIsNeverPublic(t *testing.T) {
	setupDB(t)
	svc := NewTierListService(database.DB)
	ident := identity.Identity{AnonymousID: uuid.NewString()}

	list, minted, err := svc.Create(ident, &dto.CreateTierListRequest{
		Title: "Anon list",
		Tiers: boardPayload(),
	})
	require.NoError(t, err)
	assert.Empty(t, minted)
	assert.False(t, list.IsPublic)
	require.NotNil(t, list.AnonymousID)

	// The update payload asks for public; the anonymous owner still cannot
	// have it.
	public := true
	updated, err := svc.Update(list.ID, ident, &dto.UpdateTierListRequest{
		IsPublic: &public,
		Tiers:    boardPayload(),
	})
	require.NoError(t, err)
	assert.False(t, updated.IsPublic)
}

func TestCreatePublicRequiresAuth(t *testing.T) {
	setupDB(t)
	svc := NewTierListService(database.DB)

	_, _, err := svc.Create(identity.Identity{AnonymousID: "tok"}, &dto.CreateTierListRequest{
		Title:    "Nope",
		IsPublic: true,
		Tiers:    []dto.TierInput{},
	})
	require.Error(t, err)
}

func TestPoolTierRoundTrip(t *testing.T) {
	setupDB(t)
	svc := NewTierListService(database.DB)
	ident := identity.Identity{AnonymousID: uuid.NewString()}

	list, _, err := svc.Create(ident, &dto.CreateTierListRequest{
		Title: "Round trip",
		Tiers: boardPayload(),
	})
	require.NoError(t, err)

	detail, err := svc.Get(list.ID, ident)
	require.NoError(t, err)
	require.Len(t, detail.Tiers, 2)

	// Visible tier sorts first, the pool tier's sentinel position keeps it
	// last.
	assert.Equal(t, "S", detail.Tiers[0].Name)
	require.Len(t, detail.Tiers[0].Items, 1)
	assert.Equal(t, "https://media.test/a.png", detail.Tiers[0].Items[0].MediaURL)

	assert.Equal(t, models.PoolTierName, detail.Tiers[1].Name)
	require.Len(t, detail.Tiers[1].Items, 1)
	assert.Equal(t, "https://media.test/b.png", detail.Tiers[1].Items[0].MediaURL)
}

func TestUpdateReplacesTiersWholesale(t *testing.T) {
	setupDB(t)
	svc := NewTierListService(database.DB)
	ident := identity.Identity{AnonymousID: uuid.NewString()}

	list, _, err := svc.Create(ident, &dto.CreateTierListRequest{
		Title: "Before",
		Tiers: boardPayload(),
	})
	require.NoError(t, err)

	title := "After"
	updated, err := svc.Update(list.ID, ident, &dto.UpdateTierListRequest{
		Title: &title,
		Tiers: []dto.TierInput{{Name: "Only", Color: "#000000"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Title)
	require.Len(t, updated.Tiers, 1)
	assert.Equal(t, "Only", updated.Tiers[0].Name)

	// The old tiers' items are gone with them.
	var itemCount int64
	var tierIDs []uuid.UUID
	require.NoError(t, database.DB.Model(&models.Tier{}).Where("tier_list_id = ?", list.ID).Pluck("id", &tierIDs).Error)
	require.NoError(t, database.DB.Model(&models.TierItem{}).Where("tier_id IN ?", tierIDs).Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestUpdateKeepsAbsentFields(t *testing.T) {
	setupDB(t)
	svc := NewTierListService(database.DB)
	ident := identity.Identity{AnonymousID: uuid.NewString()}

	list, _, err := svc.Create(ident, &dto.CreateTierListRequest{
		Title:       "Keep me",
		Description: "original description",
		Tiers:       boardPayload(),
	})
	require.NoError(t, err)

	updated, err := svc.Update(list.ID, ident, &dto.UpdateTierListRequest{
		Tiers: []dto.TierInput{},
	})
	require.NoError(t, err)
	assert.Equal(t, "Keep me", updated.Title)
	assert.Equal(t, "original description", updated.Description)
}

func TestWriteDeniedForStrangers(t *testing.T) {
	setupDB(t)
	svc := NewTierListService(database.DB)
	ident := identity.Identity{AnonymousID: uuid.NewString()}

	list, _, err := svc.Create(ident, &dto.CreateTierListRequest{
		Title: "Private",
		Tiers: []dto.TierInput{},
	})
	require.NoError(t, err)

	err = svc.Delete(list.ID, identity.Identity{AnonymousID: "someone-else"})
	require.Error(t, err)

	// Reads are denied too while the list is private.
	_, err = svc.Get(list.ID, identity.Identity{AnonymousID: "someone-else"})
	require.Error(t, err)

	// The owner can delete.
	require.NoError(t, svc.Delete(list.ID, ident))
	_, err = svc.Get(list.ID, ident)
	require.Error(t, err)
}

func TestCloneAsTemplateStripsRanking(t *testing.T) {
	setupDB(t)
	svc := NewTierListService(database.DB)
	owner := createTestUser(t)

	source, _, err := svc.Create(identity.Identity{UserID: owner}, &dto.CreateTierListRequest{
		Title:    "Template",
		IsPublic: true,
		Tiers: []dto.TierInput{
			{Name: "S", Color: "#ff7f7e", Items: []dto.TierItemInput{
				{MediaURL: "https://media.test/p.png", MediaType: "IMAGE"},
			}},
			{Name: "A", Color: "#ffbf7f", Items: []dto.TierItemInput{
				{MediaURL: "https://media.test/q.png", MediaType: "IMAGE"},
			}},
		},
	})
	require.NoError(t, err)

	clone, minted, err := svc.CloneAsTemplate(source.ID, identity.Identity{})
	require.NoError(t, err)
	assert.NotEmpty(t, minted)
	assert.False(t, clone.IsPublic)

	detail, err := svc.Get(clone.ID, identity.Identity{AnonymousID: minted})
	require.NoError(t, err)
	require.Len(t, detail.Tiers, 3)

	// Same named shells in the same order, emptied.
	assert.Equal(t, "S", detail.Tiers[0].Name)
	assert.Empty(t, detail.Tiers[0].Items)
	assert.Equal(t, "A", detail.Tiers[1].Name)
	assert.Empty(t, detail.Tiers[1].Items)

	// All source items flattened into the pool in tier-then-item order.
	pool := detail.Tiers[2]
	assert.Equal(t, models.PoolTierName, pool.Name)
	require.Len(t, pool.Items, 2)
	assert.Equal(t, "https://media.test/p.png", pool.Items[0].MediaURL)
	assert.Equal(t, "https://media.test/q.png", pool.Items[1].MediaURL)
}

func TestCloneRequiresPublicSource(t *testing.T) {
	setupDB(t)
	svc := NewTierListService(database.DB)
	ident := identity.Identity{AnonymousID: uuid.NewString()}

	source, _, err := svc.Create(ident, &dto.CreateTierListRequest{
		Title: "Private source",
		Tiers: []dto.TierInput{},
	})
	require.NoError(t, err)

	_, _, err = svc.CloneAsTemplate(source.ID, identity.Identity{})
	require.Error(t, err)
}

func createTestUser(t *testing.T) uuid.UUID {
	t.Helper()
	user := models.User{
		ID:       uuid.New(),
		Username: "u_" + uuid.NewString()[:8],
		Email:    uuid.NewString() + "@test.local",
		Password: "x",
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user.ID
}
