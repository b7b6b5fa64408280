package cli

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned when a confirmation is needed but stdin is
// not a terminal and --yes was not given.
var ErrNotInteractive = errors.New("confirmation required: stdin is not a terminal (use --yes)")

// ConfirmFunc prompts the user for confirmation and returns true if confirmed.
type ConfirmFunc func(prompt string) (bool, error)

// NewConfirmFunc creates a ConfirmFunc using huh's interactive confirm component.
func NewConfirmFunc() ConfirmFunc {
	return func(prompt string) (bool, error) {
		var result bool
		err := huh.NewConfirm().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// AlwaysYes returns a ConfirmFunc that always confirms.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// refuseConfirm fails every confirmation without prompting.
func refuseConfirm() ConfirmFunc {
	return func(_ string) (bool, error) {
		return false, ErrNotInteractive
	}
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ResolveConfirmFunc picks the confirmation strategy for a destructive
// command: --yes skips the prompt, a terminal gets the huh prompt, and
// anything else refuses.
func ResolveConfirmFunc(yes bool) ConfirmFunc {
	return resolveConfirm(yes, stdinIsTerminal, NewConfirmFunc)
}

func resolveConfirm(yes bool, isTTY func() bool, interactive func() ConfirmFunc) ConfirmFunc {
	switch {
	case yes:
		return AlwaysYes()
	case isTTY():
		return interactive()
	default:
		return refuseConfirm()
	}
}

// confirmOrAbort runs confirm and turns a "no" into an error.
func confirmOrAbort(confirm ConfirmFunc, prompt string) error {
	ok, err := confirm(prompt)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("aborted")
	}
	return nil
}
