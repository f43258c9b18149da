package errhandler

import (
	"errors"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/teller/internal/ledger"
	"github.com/pterm/pterm"
)

// IsInterrupt reports whether err comes from the user aborting a prompt.
func IsInterrupt(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// HandleError prints err and exits quietly when it is an interrupt.
func HandleError(err error) {
	if IsInterrupt(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	Report(err)
}

// Report prints err with a prefix chosen from its ledger kind. It never exits.
func Report(err error) {
	if err == nil {
		return
	}

	msg := Capitalize(err.Error())
	switch ledger.KindOf(err) {
	case ledger.KindValidation:
		pterm.Warning.Println(msg)
	case ledger.KindNotFound:
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "NOT FOUND", Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)}).Println(msg)
	case ledger.KindConflict:
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "CONFLICT", Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)}).Println(msg)
	case ledger.KindAuthentication:
		pterm.Error.WithPrefix(pterm.Prefix{Text: "DENIED", Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack)}).Println(msg)
	default:
		pterm.Error.Println(msg)
	}
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
