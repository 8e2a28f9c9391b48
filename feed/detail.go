package feed

import (
	"feedcli/api"
	"feedcli/types"
)

// FetchPostDetail fetches a post, its owning user, and its comments, then
// swaps each comment's author stub for the full user record. Comments keep
// the order the remote returned them in. Any failure fails the whole call;
// a partially populated detail is never returned.
func FetchPostDetail(postId int) (*types.Post, []*types.Comment, *types.ApiError) {
	post, apiErr := api.Client.GetPost(postId)
	if apiErr != nil {
		return nil, nil, apiErr
	}

	user, apiErr := api.Client.GetUser(post.UserId)
	if apiErr != nil {
		return nil, nil, apiErr
	}
	post.User = user

	commentsRes, apiErr := api.Client.ListComments(postId)
	if apiErr != nil {
		return nil, nil, apiErr
	}

	comments := commentsRes.Comments

	apiErr = enrichUsers(comments,
		func(c *types.Comment) int { return c.User.Id },
		func(c *types.Comment, u *types.User) { c.Author = u })

	if apiErr != nil {
		return nil, nil, apiErr
	}

	return post, comments, nil
}
