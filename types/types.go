package types

// Post is a single feed post as returned by the remote API. User is only
// populated after enrichment.
type Post struct {
	Id        int       `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UserId    int       `json:"userId"`
	Tags      []string  `json:"tags"`
	Reactions Reactions `json:"reactions"`
	User      *User     `json:"user,omitempty"`
}

type Reactions struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

type User struct {
	Id        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Image     string  `json:"image"`
	Address   Address `json:"address"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type Address struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// Comment's User field is the minimal author stub the remote API embeds in
// the comment itself. Author is the full record the detail pipeline swaps in.
type Comment struct {
	Id     int           `json:"id"`
	Body   string        `json:"body"`
	PostId int           `json:"postId"`
	User   CommentAuthor `json:"user"`
	Author *User         `json:"-"`
}

type CommentAuthor struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// Session is the locally persisted authenticated identity. The token is
// trusted until a subsequent API call rejects it.
type Session struct {
	User
	Token string `json:"token"`
}

type PostsResponse struct {
	Posts []*Post `json:"posts"`
	Total int     `json:"total"`
	Skip  int     `json:"skip"`
	Limit int     `json:"limit"`
}

type CommentsResponse struct {
	Comments []*Comment `json:"comments"`
	Total    int        `json:"total"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
