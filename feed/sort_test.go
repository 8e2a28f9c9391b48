package feed

import (
	"testing"

	"feedcli/types"

	"github.com/stretchr/testify/assert"
)

func likesPosts() []*types.Post {
	return []*types.Post{
		{Id: 1, Reactions: types.Reactions{Likes: 5}},
		{Id: 2, Reactions: types.Reactions{Likes: 9}},
		{Id: 3, Reactions: types.Reactions{Likes: 9}},
	}
}

func ids(posts []*types.Post) []int {
	out := make([]int, len(posts))
	for i, p := range posts {
		out[i] = p.Id
	}
	return out
}

func TestSortPostsByLikesDesc(t *testing.T) {
	sorted := SortPosts(likesPosts(), types.SortFieldLikes, types.SortOrderDesc)

	// ties keep input order: 2 before 3
	assert.Equal(t, []int{2, 3, 1}, ids(sorted))
}

func TestSortPostsByLikesAscStable(t *testing.T) {
	sorted := SortPosts(likesPosts(), types.SortFieldLikes, types.SortOrderAsc)

	assert.Equal(t, []int{1, 2, 3}, ids(sorted))
}

func TestSortPostsStableOnEqualKeysBothOrders(t *testing.T) {
	posts := []*types.Post{
		{Id: 10, Reactions: types.Reactions{Likes: 7}},
		{Id: 11, Reactions: types.Reactions{Likes: 7}},
		{Id: 12, Reactions: types.Reactions{Likes: 7}},
	}

	for _, order := range []types.SortOrder{types.SortOrderAsc, types.SortOrderDesc} {
		sorted := SortPosts(posts, types.SortFieldLikes, order)
		assert.Equal(t, []int{10, 11, 12}, ids(sorted), "order %s broke tie stability", order)
	}
}

func TestSortPostsByTitleLocaleAware(t *testing.T) {
	posts := []*types.Post{
		{Id: 1, Title: "Banana"},
		{Id: 2, Title: "apple"},
	}

	sorted := SortPosts(posts, types.SortFieldTitle, types.SortOrderAsc)

	assert.Equal(t, "apple", sorted[0].Title)
	assert.Equal(t, "Banana", sorted[1].Title)
}

func TestSortPostsByDefaultId(t *testing.T) {
	posts := []*types.Post{{Id: 2}, {Id: 3}, {Id: 1}}

	asc := SortPosts(posts, types.SortFieldDefault, types.SortOrderAsc)
	assert.Equal(t, []int{1, 2, 3}, ids(asc))

	desc := SortPosts(posts, types.SortFieldDefault, types.SortOrderDesc)
	assert.Equal(t, []int{3, 2, 1}, ids(desc))
}

func TestSortPostsDoesNotMutateInput(t *testing.T) {
	posts := []*types.Post{{Id: 2}, {Id: 1}}

	SortPosts(posts, types.SortFieldDefault, types.SortOrderAsc)

	assert.Equal(t, []int{2, 1}, ids(posts))
}
