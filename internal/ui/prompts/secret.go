package prompts

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/validation"
)

// PromptSecret asks for a masked value such as the staff password.
func PromptSecret(message string) (string, error) {
	var secret string

	err := survey.AskOne(&survey.Password{Message: message}, &secret, ui.SurveyOptions()...)
	return secret, err
}

// PromptPIN asks for a masked 4-digit PIN.
func PromptPIN(message string) (string, error) {
	var pin string

	err := survey.AskOne(
		&survey.Password{Message: message},
		&pin,
		ui.SurveyOptions(survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validation.ValidatePIN(strings.TrimSpace(s))
		}))...,
	)
	return strings.TrimSpace(pin), err
}
