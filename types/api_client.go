package types

// ApiClient is the remote data source. It lives here rather than in the api
// package so auth can hold a client without a circular import.
type ApiClient interface {
	ListPosts(limit, skip int) (*PostsResponse, *ApiError)
	ListPostsByUser(userId int) (*PostsResponse, *ApiError)
	ListPostsByTag(tag string) (*PostsResponse, *ApiError)
	SearchPosts(query string) (*PostsResponse, *ApiError)
	GetPost(id int) (*Post, *ApiError)
	GetUser(id int) (*User, *ApiError)
	ListComments(postId int) (*CommentsResponse, *ApiError)

	Login(req LoginRequest) (*Session, *ApiError)
}
