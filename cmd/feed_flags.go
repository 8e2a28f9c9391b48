package cmd

import (
	"feedcli/lib"
	"feedcli/term"
	"feedcli/types"

	"github.com/spf13/cobra"
)

var pageFlag int
var sortFlag string
var orderFlag string
var browseFlag bool

// shared flags for every command that renders a feed view
func addFeedFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&pageFlag, "page", "p", 1, "page number")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "sort by: default, likes, or title")
	cmd.Flags().StringVar(&orderFlag, "order", "", "sort order: asc or desc")
	cmd.Flags().BoolVarP(&browseFlag, "browse", "b", false, "browse interactively with keyboard paging")
}

func runFeedView(filter types.FeedFilter) {
	view := lib.NewFeedView(filter)

	if pageFlag > 1 {
		view.Page = pageFlag
	} else if pageFlag < 1 {
		term.OutputErrorAndExit("Page must be at least 1")
	}

	if sortFlag != "" {
		switch types.SortField(sortFlag) {
		case types.SortFieldDefault, types.SortFieldLikes, types.SortFieldTitle:
			view.Sort.Field = types.SortField(sortFlag)
		default:
			term.OutputErrorAndExit("Unknown sort field: %s", sortFlag)
		}
	}

	if orderFlag != "" {
		switch types.SortOrder(orderFlag) {
		case types.SortOrderAsc, types.SortOrderDesc:
			view.Sort.Order = types.SortOrder(orderFlag)
		default:
			term.OutputErrorAndExit("Unknown sort order: %s", orderFlag)
		}
	}

	if browseFlag {
		view.Browse()
		return
	}

	view.LoadPage()
	view.Render()
}
