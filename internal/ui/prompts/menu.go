package prompts

import (
	"github.com/charmbracelet/huh"
)

// PromptMenu shows a titled menu and returns the chosen entry.
func PromptMenu(title string, entries ...string) (string, error) {
	var opts []huh.Option[string]
	for _, e := range entries {
		opts = append(opts, huh.NewOption(e, e))
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}
