package lib

import (
	"fmt"
	"log"

	"feedcli/api"
	"feedcli/term"
	"feedcli/theme"
	"feedcli/types"

	"github.com/fatih/color"
)

// ShowUser renders a user's profile card followed by their posts. Failures
// fall back to the default feed.
func ShowUser(userId int, interactive bool) {
	term.StartSpinner("")
	user, apiErr := api.Client.GetUser(userId)
	term.StopSpinner()

	if apiErr != nil {
		log.Printf("Error fetching user profile: %v\n", apiErr.Msg)

		if apiErr.IsNotFound() {
			term.OutputSimpleError("User not found")
		} else {
			term.OutputSimpleError("Error fetching user: %v", apiErr.Msg)
		}

		showDefaultFeed(interactive)
		return
	}

	fmt.Println()
	color.New(color.Bold, theme.Accent()).Println(user.FullName())
	fmt.Printf("@%s\n\n", user.Username)
	fmt.Printf("✉️  %s\n", user.Email)
	fmt.Printf("📞 %s\n", user.Phone)
	fmt.Printf("📍 %s, %s, %s\n", user.Address.Address, user.Address.City, user.Address.State)

	fmt.Println()
	color.New(color.Bold, theme.Accent()).Printf("Posts by %s\n", user.FirstName)

	view := NewFeedView(types.FeedFilter{UserId: user.Id})
	if interactive {
		view.Browse()
		return
	}

	view.LoadPage()
	view.Render()
}
