package ui

import "github.com/AlecAivazis/survey/v2"

// SurveyOptions returns the ask options shared by the masked prompts,
// followed by any extra options.
func SurveyOptions(extra ...survey.AskOpt) []survey.AskOpt {
	opts := []survey.AskOpt{
		survey.WithIcons(func(icons *survey.IconSet) {
			icons.Question.Text = "-"
			icons.Error.Text = "!"
		}),
	}
	return append(opts, extra...)
}
