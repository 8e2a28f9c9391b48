package lib

import (
	"fmt"
	"strings"

	"feedcli/feed"
	"feedcli/term"
	"feedcli/theme"

	"github.com/fatih/color"
)

// ShowTagCloud prints the unique tags found on the first page of the
// default feed.
func ShowTagCloud() {
	term.StartSpinner("")
	tags, apiErr := feed.CollectTags()
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error fetching tags: %v", apiErr.Msg)
	}

	fmt.Println()
	color.New(color.Bold, theme.Accent()).Println("Popular Tags")

	if len(tags) == 0 {
		fmt.Println("No tags found")
		return
	}

	for i, tag := range tags {
		tags[i] = "#" + tag
	}

	fmt.Println(term.GetPlain(strings.Join(tags, "  ")))
	fmt.Println()
	term.PrintCmds("", "tag")
}
