package lib

import (
	"testing"

	"feedcli/types"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyResultDropsStaleGeneration(t *testing.T) {
	view := NewFeedView(types.FeedFilter{})

	gen1 := uuid.New()
	view.generation = gen1

	ok := view.applyResult(gen1, []*types.Post{{Id: 1}}, 25)
	require.True(t, ok)
	assert.Len(t, view.Posts, 1)
	assert.Equal(t, 3, view.TotalPages)

	// a newer load starts; the late result from gen1 must not win
	view.generation = uuid.New()

	ok = view.applyResult(gen1, []*types.Post{{Id: 99}}, 500)
	assert.False(t, ok)
	assert.Equal(t, 1, view.Posts[0].Id, "stale response overwrote newer view state")
	assert.Equal(t, 3, view.TotalPages)
}

func TestSetPageClamps(t *testing.T) {
	view := NewFeedView(types.FeedFilter{})
	view.TotalPages = 3

	assert.False(t, view.SetPage(0), "below range clamps to page 1, no change")
	assert.Equal(t, 1, view.Page)

	assert.True(t, view.SetPage(2))
	assert.Equal(t, 2, view.Page)

	assert.True(t, view.SetPage(99), "above range clamps to last page")
	assert.Equal(t, 3, view.Page)

	assert.False(t, view.SetPage(3), "same page is not a change")
}

func TestSetPageWithUnknownTotal(t *testing.T) {
	// before the first load TotalPages is 0 and only the lower bound applies
	view := NewFeedView(types.FeedFilter{})

	assert.True(t, view.SetPage(7))
	assert.Equal(t, 7, view.Page)
}

func TestToggleSortMatchesClickBehavior(t *testing.T) {
	view := NewFeedView(types.FeedFilter{})

	view.ToggleSort(types.SortFieldLikes)
	assert.Equal(t, types.SortFieldLikes, view.Sort.Field)
	assert.Equal(t, types.SortOrderDesc, view.Sort.Order)

	view.ToggleSort(types.SortFieldLikes)
	assert.Equal(t, types.SortOrderAsc, view.Sort.Order)
}

func TestSortedPostsLeavesLoadedOrderAlone(t *testing.T) {
	view := NewFeedView(types.FeedFilter{})
	view.Posts = []*types.Post{{Id: 2}, {Id: 1}}

	sorted := view.SortedPosts()

	assert.Equal(t, 2, sorted[0].Id, "default desc puts higher id first")
	assert.Equal(t, 2, view.Posts[0].Id, "loaded page order untouched")
}
