package theme

import (
	"encoding/json"
	"fmt"
	"os"

	"feedcli/fs"

	"github.com/fatih/color"
)

// Themes is the fixed set of display themes. The active theme picks the
// accent color used by view headers.
var Themes = []string{"default", "blue", "green", "purple", "orange"}

var accents = map[string]color.Attribute{
	"default": color.FgHiCyan,
	"blue":    color.FgHiBlue,
	"green":   color.FgHiGreen,
	"purple":  color.FgHiMagenta,
	"orange":  color.FgHiYellow,
}

type persisted struct {
	Name string `json:"name"`
}

// Current returns the persisted theme selection, falling back to the default
// when nothing is stored or the file is unreadable.
func Current() string {
	bytes, err := os.ReadFile(fs.HomeThemePath)
	if err != nil {
		return "default"
	}

	var p persisted
	if err := json.Unmarshal(bytes, &p); err != nil {
		return "default"
	}

	if !IsValid(p.Name) {
		return "default"
	}

	return p.Name
}

func Set(name string) error {
	if !IsValid(name) {
		return fmt.Errorf("unknown theme: %s", name)
	}

	bytes, err := json.Marshal(persisted{Name: name})
	if err != nil {
		return fmt.Errorf("error marshalling theme: %v", err)
	}

	err = os.WriteFile(fs.HomeThemePath, bytes, os.ModePerm)
	if err != nil {
		return fmt.Errorf("error writing theme: %v", err)
	}

	return nil
}

func IsValid(name string) bool {
	_, ok := accents[name]
	return ok
}

func Accent() color.Attribute {
	return accents[Current()]
}
