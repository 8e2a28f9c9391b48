package lib

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"feedcli/feed"
	"feedcli/term"
	"feedcli/theme"
	"feedcli/types"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
)

// FeedView is the state behind a feed listing: the active filter, the
// current page, the sort selection, and the last loaded page of posts.
type FeedView struct {
	Filter     types.FeedFilter
	Page       int
	TotalPages int
	Sort       types.SortState
	Posts      []*types.Post

	// generation tags each load so a late result from a superseded load
	// can't overwrite a newer one
	generation uuid.UUID
}

func NewFeedView(filter types.FeedFilter) *FeedView {
	return &FeedView{
		Filter: filter,
		Page:   1,
		Sort:   types.NewSortState(),
	}
}

// LoadPage fetches and enriches the current page. A fetch failure is logged
// and leaves the view empty rather than propagating.
func (v *FeedView) LoadPage() {
	gen := uuid.New()
	v.generation = gen

	term.StartSpinner("")
	posts, total, apiErr := feed.FetchFeedPage(v.Filter, v.Page)
	term.StopSpinner()

	if apiErr != nil {
		log.Printf("Error fetching posts: %v\n", apiErr.Msg)
		term.OutputSimpleError("Error fetching posts: %v", apiErr.Msg)
		v.applyResult(gen, nil, 0)
		return
	}

	v.applyResult(gen, posts, total)
}

// applyResult installs a load result unless a newer load has started since.
func (v *FeedView) applyResult(gen uuid.UUID, posts []*types.Post, total int) bool {
	if gen != v.generation {
		return false
	}

	v.Posts = posts
	v.TotalPages = feed.PageCount(total, feed.PostsPerPage)
	return true
}

// SetPage clamps page changes to [1, TotalPages] and reports whether the
// page actually changed.
func (v *FeedView) SetPage(page int) bool {
	if page < 1 {
		page = 1
	}
	if v.TotalPages > 0 && page > v.TotalPages {
		page = v.TotalPages
	}

	if page == v.Page {
		return false
	}

	v.Page = page
	return true
}

func (v *FeedView) ToggleSort(field types.SortField) {
	v.Sort.Toggle(field)
}

func (v *FeedView) SortedPosts() []*types.Post {
	return feed.SortPosts(v.Posts, v.Sort.Field, v.Sort.Order)
}

func (v *FeedView) title() string {
	switch {
	case v.Filter.Tag != "":
		return fmt.Sprintf("#%s Posts", v.Filter.Tag)
	case v.Filter.UserId != 0:
		return "User Posts"
	case v.Filter.Search != "":
		return fmt.Sprintf("Search: %s", v.Filter.Search)
	default:
		return "Recent Posts"
	}
}

func (v *FeedView) Render() {
	if len(v.Posts) == 0 {
		fmt.Println("🤷‍♂️ No posts found")
		fmt.Println("Try a different search or filter")
		return
	}

	fmt.Println()
	color.New(color.Bold, theme.Accent()).Println(v.title())

	order := "↓"
	if v.Sort.Order == types.SortOrderAsc {
		order = "↑"
	}
	fmt.Printf("sorted by %s %s\n\n", v.Sort.Field, order)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Title", "Author", "Likes", "Tags"})

	for _, p := range v.SortedPosts() {
		author := ""
		if p.User != nil {
			author = "@" + p.User.Username
		}

		row := []string{
			strconv.Itoa(p.Id),
			term.Truncate(p.Title, 40),
			author,
			strconv.Itoa(p.Reactions.Likes),
			term.Truncate(strings.Join(p.Tags, " "), 30),
		}

		table.Rich(row, []tablewriter.Colors{
			{tablewriter.FgHiWhiteColor, tablewriter.Bold},
		})
	}

	table.Render()

	if v.TotalPages > 1 {
		fmt.Printf("\nPage %d of %d\n", v.Page, v.TotalPages)
	}
}

// Browse renders the view and then reads single keys to page and re-sort:
// (n)ext, (p)revious, sort by (l)ikes, (t)itle, or (d)efault, (q)uit.
func (v *FeedView) Browse() {
	v.LoadPage()
	v.Render()

	if len(v.Posts) == 0 {
		return
	}

	for {
		fmt.Println()
		color.New(color.Faint).Println("(n)ext page · (p)rev page · sort by (l)ikes/(t)itle/(d)efault · (q)uit")

		char, err := term.GetUserKeyInput()
		if err != nil {
			term.OutputErrorAndExit("Error reading keyboard input: %v", err)
		}

		switch char {
		case 'n':
			if v.SetPage(v.Page + 1) {
				v.LoadPage()
			}
		case 'p':
			if v.SetPage(v.Page - 1) {
				v.LoadPage()
			}
		case 'l':
			v.ToggleSort(types.SortFieldLikes)
		case 't':
			v.ToggleSort(types.SortFieldTitle)
		case 'd':
			v.ToggleSort(types.SortFieldDefault)
		case 'q':
			return
		default:
			continue
		}

		v.Render()
	}
}
