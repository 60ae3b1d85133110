// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package printlog

import (
	"errors"
	"fmt"
)

// Possible mismatches between a template and its arguments.
var (
	ErrMissingArg   = errors.New("missing argument")
	ErrExtraArg     = errors.New("extra argument")
	ErrBadType      = errors.New("argument type does not match directive")
	ErrBadDirective = errors.New("malformed directive")
)

// FormatError describes the first mismatch found while rendering a template.
type FormatError struct {
	// Err is, or wraps, one of ErrMissingArg, ErrExtraArg, ErrBadType or
	// ErrBadDirective.
	Err error
	// Offset is the byte offset of the directive in the template. For
	// ErrExtraArg it is the length of the template.
	Offset int
	// Directive is the directive text, such as "%-5d".
	Directive string
	// Arg is the index of the offending argument, or -1.
	Arg int
}

func (e *FormatError) Error() string {
	switch {
	case e.Directive == "":
		return fmt.Sprintf("printlog: argument %d: %v", e.Arg, e.Err)
	case e.Arg < 0:
		return fmt.Sprintf("printlog: %q at offset %d: %v", e.Directive, e.Offset, e.Err)
	}
	return fmt.Sprintf("printlog: %q at offset %d (argument %d): %v", e.Directive, e.Offset, e.Arg, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
