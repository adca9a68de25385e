package command

import (
	"fmt"
)

// Error marks a failure coming from a subcommand's execution rather
// than from flag parsing, so main can report it with a stack trace
// instead of printing usage.
type Error struct {
	Inner error
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Msg, e.Inner)
}

func (e *Error) Unwrap() error {
	return e.Inner
}

func WrapError(err error) error {
	if err == nil {
		return nil
	}

	return &Error{
		Inner: err,
		Msg:   "command failed",
	}
}
