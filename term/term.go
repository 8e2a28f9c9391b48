package term

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var CmdDesc = map[string][2]string{
	"feed":   {"f", "browse the feed"},
	"post":   {"p", "view a post with its comments"},
	"user":   {"u", "view a user profile and their posts"},
	"tag":    {"t", "browse posts by tag"},
	"search": {"s", "search posts"},
	"tags":   {"", "show popular tags"},
	"login":  {"", "sign in"},
	"logout": {"", "sign out"},
	"whoami": {"", "show the signed-in user"},
	"theme":  {"", "show or set the display theme"},
}

func PrintCmds(prefix string, cmds ...string) {
	for _, cmd := range cmds {
		config, ok := CmdDesc[cmd]
		if !ok {
			continue
		}

		alias := config[0]
		desc := config[1]
		if alias != "" {
			cmd = strings.Replace(cmd, alias, fmt.Sprintf("(%s)", alias), 1)
		}
		styled := color.New(color.Bold, color.FgHiWhite, color.BgCyan).Sprintf(" feedcli %s ", cmd)

		fmt.Printf("%s%s 👉 %s\n", prefix, styled, desc)
	}
}

func ClearCurrentLine() {
	fmt.Print("\033[2K\r")
}

func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
