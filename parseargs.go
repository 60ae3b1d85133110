// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package printlog

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// ParseArgs converts words, such as command-line arguments, to arguments for
// template. Each word is parsed according to the directive that will consume
// it, in the manner of printf(1):
//
//   - '*' widths and precisions, d and i are signed integers in Go syntax
//     (0x, 0o and 0b prefixes are accepted);
//   - u, o, x and X are unsigned integers, negative values are accepted;
//   - a word starting with a quote stands for the code point of the
//     character after it, for any integer conversion;
//   - floating-point conversions take any value strconv.ParseFloat accepts;
//   - c takes the first character of the word, s the word itself and p an
//     address.
//
// Words beyond the last directive are kept as text, so rendering reports
// them as extra arguments. Malformed words are reported with an error
// wrapping [ErrBadType].
func ParseArgs(template string, words []string) ([]Arg, error) {
	args := make([]Arg, 0, len(words))
	next := func(d *directive, verb rune) error {
		if len(args) >= len(words) {
			return nil
		}
		w := words[len(args)]
		a, err := parseWord(verb, w)
		if err != nil {
			return &FormatError{
				Err:       fmt.Errorf("%w: %q: %v", ErrBadType, w, err),
				Offset:    d.offset,
				Directive: d.text,
				Arg:       len(args),
			}
		}
		args = append(args, a)
		return nil
	}

	for _, seg := range parse(template) {
		d := seg.d
		if d == nil || d.bad != "" || d.verb == '%' {
			continue
		}
		if d.widthStar {
			if err := next(d, '*'); err != nil {
				return nil, err
			}
		}
		if d.precStar {
			if err := next(d, '*'); err != nil {
				return nil, err
			}
		}
		if err := next(d, d.verb); err != nil {
			return nil, err
		}
	}

	for _, w := range words[len(args):] {
		args = append(args, String(w))
	}
	return args, nil
}

func parseWord(verb rune, w string) (Arg, error) {
	switch verb {
	case '*', 'd', 'i':
		if r, ok := quoted(w); ok {
			return Int(int64(r)), nil
		}
		n, err := strconv.ParseInt(w, 0, 64)
		if err != nil {
			return Arg{}, err
		}
		return Int(n), nil
	case 'u', 'o', 'x', 'X':
		if r, ok := quoted(w); ok {
			return Uint(uint64(r)), nil
		}
		u, err := strconv.ParseUint(w, 0, 64)
		if err == nil {
			return Uint(u), nil
		}
		n, ierr := strconv.ParseInt(w, 0, 64)
		if ierr != nil {
			return Arg{}, err
		}
		return Int(n), nil
	case 'c':
		if w == "" {
			return Int(0), nil
		}
		r, _ := utf8.DecodeRuneInString(w)
		return Int(int64(r)), nil
	case 'f', 'F', 'e', 'E', 'g', 'G', 'a', 'A':
		f, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return Arg{}, err
		}
		return Float(f), nil
	case 'p':
		u, err := strconv.ParseUint(w, 0, 64)
		if err != nil {
			return Arg{}, err
		}
		return Pointer(uintptr(u)), nil
	}
	return String(w), nil
}

// quoted reports the character after a leading quote, as in printf(1) "'A".
func quoted(w string) (rune, bool) {
	if len(w) < 2 || (w[0] != '\'' && w[0] != '"') {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(w[1:])
	return r, true
}
