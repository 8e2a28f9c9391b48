package feed

import (
	"sort"

	"feedcli/types"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var titleCollator = collate.New(language.English, collate.Loose)

// SortPosts returns a sorted copy of posts. The comparator itself flips sign
// for descending order rather than reversing an ascending sort, so equal
// keys keep their input order in both directions.
func SortPosts(posts []*types.Post, field types.SortField, order types.SortOrder) []*types.Post {
	sorted := make([]*types.Post, len(posts))
	copy(sorted, posts)

	cmp := func(a, b *types.Post) int {
		var c int
		switch field {
		case types.SortFieldLikes:
			c = a.Reactions.Likes - b.Reactions.Likes
		case types.SortFieldTitle:
			c = titleCollator.CompareString(a.Title, b.Title)
		default:
			c = a.Id - b.Id
		}

		if order == types.SortOrderDesc {
			c = -c
		}
		return c
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(sorted[i], sorted[j]) < 0
	})

	return sorted
}
