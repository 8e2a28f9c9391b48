package lib

import (
	"fmt"
	"log"
	"strings"

	"feedcli/feed"
	"feedcli/term"
	"feedcli/theme"
	"feedcli/types"

	"github.com/fatih/color"
)

// ShowPost renders a post's detail view with its comments. Failures fall
// back to the default feed.
func ShowPost(postId int, interactive bool) {
	term.StartSpinner("")
	post, comments, apiErr := feed.FetchPostDetail(postId)
	term.StopSpinner()

	if apiErr != nil {
		log.Printf("Error fetching post details: %v\n", apiErr.Msg)

		if apiErr.IsNotFound() {
			term.OutputSimpleError("Post not found")
		} else {
			term.OutputSimpleError("Error fetching post: %v", apiErr.Msg)
		}

		showDefaultFeed(interactive)
		return
	}

	fmt.Println()
	if post.User != nil {
		color.New(color.Bold).Printf("@%s\n", post.User.Username)
	}
	color.New(color.Bold, theme.Accent()).Println(post.Title)

	md, err := term.GetMarkdown(post.Body)
	if err != nil {
		fmt.Println(term.GetPlain(post.Body))
	} else {
		fmt.Print(md)
	}

	if len(post.Tags) > 0 {
		tags := make([]string, len(post.Tags))
		for i, tag := range post.Tags {
			tags[i] = "#" + tag
		}
		color.New(term.ColorHiCyan).Println(strings.Join(tags, " "))
	}

	fmt.Printf("\n❤️  %d · 💬 %d comments\n", post.Reactions.Likes, len(comments))

	fmt.Println()
	color.New(color.Bold, theme.Accent()).Println("Comments")

	if len(comments) == 0 {
		fmt.Println("No comments yet")
		return
	}

	for _, comment := range comments {
		fmt.Println()
		if comment.Author != nil {
			color.New(color.Bold).Printf("@%s\n", comment.Author.Username)
		}
		fmt.Println(term.GetPlain(comment.Body))
	}
}

func showDefaultFeed(interactive bool) {
	view := NewFeedView(types.FeedFilter{})
	if interactive {
		view.Browse()
		return
	}

	view.LoadPage()
	view.Render()
}
