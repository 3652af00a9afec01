// Package errs narrows cockroachdb/errors to the operations the rest of the
// codebase needs: sentinel creation, cause wrapping, and marking a low-level
// error with a domain sentinel so handlers can match it with errors.Is.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg, keeping the original cause and stack.
// Returns nil when err is nil so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches sentinel to err so errors.Is(result, sentinel) holds while
// the underlying cause stays inspectable.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}

// StackLines renders err verbosely and returns at most maxLines lines of it,
// for structured logging of unhandled errors.
func StackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
