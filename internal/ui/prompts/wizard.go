package prompts

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptInitOperatorSecret runs on first start when no staff password is configured.
func PromptInitOperatorSecret() (string, error) {
	var secret, confirm string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Welcome to Teller! No staff password is configured yet, please set one:").
				Description("Staff use it to create accounts and register cards. It is stored in the config file.").
				EchoMode(huh.EchoModePassword).
				Value(&secret).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("staff password is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Confirm staff password:").
				EchoMode(huh.EchoModePassword).
				Value(&confirm).
				Validate(func(s string) error {
					if s != secret {
						return errors.New("passwords do not match")
					}
					return nil
				}),
		),
	).Run()
	if err != nil {
		return "", err
	}

	return secret, nil
}
