package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string) Item {
	return Item{ID: id, MediaURL: "https://media.test/" + id + ".png", MediaType: "IMAGE"}
}

func testBoard() Board {
	return Board{
		Tiers: []Tier{
			{ID: "tier-s", Name: "S", Color: "#ff7f7e", Items: []Item{item("a"), item("b"), item("c")}},
			{ID: "tier-a", Name: "A", Color: "#ffbf7f", Items: []Item{item("d"), item("e")}},
			{ID: "tier-b", Name: "B", Color: "#ffdf80"},
		},
		Unplaced: []Item{item("p1"), item("p2")},
	}
}

func itemIDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func TestMoveWithinContainer(t *testing.T) {
	b := testBoard()

	// Drag "a" onto "c": a lands at c's index, b and c keep order.
	require.NoError(t, b.Move("a", "c"))
	assert.Equal(t, []string{"b", "c", "a"}, itemIDs(b.Tiers[0].Items))

	// Drag it back to the front.
	require.NoError(t, b.Move("a", "b"))
	assert.Equal(t, []string{"a", "b", "c"}, itemIDs(b.Tiers[0].Items))
}

func TestMoveAcrossContainers(t *testing.T) {
	b := testBoard()

	// Drop "b" on item "e" in tier A: inserted at e's index.
	require.NoError(t, b.Move("b", "e"))
	assert.Equal(t, []string{"a", "c"}, itemIDs(b.Tiers[0].Items))
	assert.Equal(t, []string{"d", "b", "e"}, itemIDs(b.Tiers[1].Items))

	// The item lives in exactly one container.
	container, _, ok := b.locate("b")
	require.True(t, ok)
	assert.Equal(t, "tier-a", container)
}

func TestMoveDroppedOnContainerAppends(t *testing.T) {
	b := testBoard()

	// Dropping on the empty tier B body appends.
	require.NoError(t, b.Move("a", "tier-b"))
	assert.Equal(t, []string{"a"}, itemIDs(b.Tiers[2].Items))

	require.NoError(t, b.Move("d", "tier-b"))
	assert.Equal(t, []string{"a", "d"}, itemIDs(b.Tiers[2].Items))
}

func TestMovePoolToTierAndBack(t *testing.T) {
	b := testBoard()

	require.NoError(t, b.Move("p1", "d"))
	assert.Equal(t, []string{"p1", "d", "e"}, itemIDs(b.Tiers[1].Items))
	assert.Equal(t, []string{"p2"}, itemIDs(b.Unplaced))

	require.NoError(t, b.Move("p1", PoolID))
	assert.Equal(t, []string{"p2", "p1"}, itemIDs(b.Unplaced))
}

func TestMoveUnknownItem(t *testing.T) {
	b := testBoard()
	assert.ErrorIs(t, b.Move("nope", "tier-s"), ErrItemNotFound)
	assert.ErrorIs(t, b.Move("a", "nope"), ErrItemNotFound)
}

func TestRemoveTierMovesItemsToPool(t *testing.T) {
	b := testBoard()

	require.NoError(t, b.RemoveTier("tier-s"))
	assert.Len(t, b.Tiers, 2)
	// x, y appended to the pool in order; nothing lost.
	assert.Equal(t, []string{"p1", "p2", "a", "b", "c"}, itemIDs(b.Unplaced))
}

func TestTierManagement(t *testing.T) {
	b := testBoard()

	added := b.AddTier()
	assert.Equal(t, "New Tier", added.Name)
	assert.Equal(t, added.ID, b.Tiers[len(b.Tiers)-1].ID)

	require.NoError(t, b.RenameTier("tier-b", "Mid"))
	assert.Equal(t, "Mid", b.Tiers[2].Name)

	require.NoError(t, b.RecolorTier("tier-b", "#123456"))
	assert.Equal(t, "#123456", b.Tiers[2].Color)

	require.NoError(t, b.MoveTierUp("tier-a"))
	assert.Equal(t, "tier-a", b.Tiers[0].ID)
	assert.Equal(t, "tier-s", b.Tiers[1].ID)

	// Already at the top: no-op.
	require.NoError(t, b.MoveTierUp("tier-a"))
	assert.Equal(t, "tier-a", b.Tiers[0].ID)

	require.NoError(t, b.MoveTierDown("tier-a"))
	assert.Equal(t, "tier-s", b.Tiers[0].ID)

	inserted, err := b.InsertTierAfter("tier-s")
	require.NoError(t, err)
	assert.Equal(t, inserted.ID, b.Tiers[1].ID)

	assert.ErrorIs(t, b.RenameTier("nope", "x"), ErrTierNotFound)
}

func TestApplyTemplateKeepsItems(t *testing.T) {
	b := testBoard()

	require.NoError(t, b.ApplyTemplate("good-bad"))
	assert.Len(t, b.Tiers, 3)
	assert.Equal(t, "Good", b.Tiers[0].Name)
	for _, tier := range b.Tiers {
		assert.Empty(t, tier.Items)
	}
	// Every item previously held by a tier is now in the pool.
	assert.Equal(t, []string{"p1", "p2", "a", "b", "c", "d", "e"}, itemIDs(b.Unplaced))

	assert.Error(t, b.ApplyTemplate("no-such-template"))
}

func TestCloneIsDeep(t *testing.T) {
	b := testBoard()
	clone := b.Clone()

	require.NoError(t, clone.Move("a", "tier-b"))
	assert.Equal(t, []string{"a", "b", "c"}, itemIDs(b.Tiers[0].Items))
	assert.Empty(t, b.Tiers[2].Items)
}
