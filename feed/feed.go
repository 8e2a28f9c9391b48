package feed

import (
	"feedcli/api"
	"feedcli/types"
)

const PostsPerPage = 10

// FetchFeedPage resolves the source endpoint from the filter, fetches a page
// of posts, and enriches each post with its owning user. The user, tag, and
// search variants return their own full result set and bypass offset/limit,
// so their total falls back to the returned length when the response carries
// none. Posts keep the order the remote returned them in.
func FetchFeedPage(filter types.FeedFilter, page int) ([]*types.Post, int, *types.ApiError) {
	var res *types.PostsResponse
	var apiErr *types.ApiError

	switch {
	case filter.UserId != 0:
		res, apiErr = api.Client.ListPostsByUser(filter.UserId)
	case filter.Tag != "":
		res, apiErr = api.Client.ListPostsByTag(filter.Tag)
	case filter.Search != "":
		res, apiErr = api.Client.SearchPosts(filter.Search)
	default:
		res, apiErr = api.Client.ListPosts(PostsPerPage, PageOffset(page, PostsPerPage))
	}

	if apiErr != nil {
		return nil, 0, apiErr
	}

	posts := res.Posts
	total := res.Total
	if total == 0 {
		total = len(posts)
	}

	apiErr = enrichUsers(posts,
		func(p *types.Post) int { return p.UserId },
		func(p *types.Post, u *types.User) { p.User = u })

	if apiErr != nil {
		return nil, 0, apiErr
	}

	return posts, total, nil
}
