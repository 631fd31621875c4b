package cli

import (
	"github.com/arthur-debert/mint/pkg/errors"
	"github.com/arthur-debert/mint/pkg/mint"
)

// errorMessage returns the text shown to the user and the byte offset of
// a syntax error, or -1.
func errorMessage(err error) (string, int) {
	var merr *errors.MintError
	if !errors.As(err, &merr) {
		return err.Error(), -1
	}

	msg := merr.Message
	if merr.Wrapped != nil && !errors.IsSyntaxError(merr) {
		msg += ": " + merr.Wrapped.Error()
	}

	if errors.IsSyntaxError(merr) {
		if offset, ok := merr.Details["offset"].(int); ok {
			return msg, offset
		}
	}
	return msg, -1
}

// printError writes err through r. The message is escaped so it never
// reads as markup.
func printError(r *mint.Renderer, err error) {
	msg, offset := errorMessage(err)
	if offset >= 0 {
		_ = r.Printf(MsgErrorAtFormat, msg, offset)
		return
	}
	_ = r.Printf(MsgErrorFormat, msg)
}
