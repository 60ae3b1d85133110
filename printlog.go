// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package printlog writes printf-style formatted messages to standard output.

# Directives

A template is literal text mixed with directives of the form

	%[flags][width][.precision][length]conversion

Flags are '-' (left-justify), '+' (always sign), ' ' (space for a missing
sign), '#' (alternate form) and '0' (zero padding). Width and precision are
decimal numbers or '*', which takes the value from the next argument. Length
modifiers hh, h, l, ll, j, z, t and q narrow integer arguments like their C
counterparts; L is accepted and ignored.

Conversions:

	d i      signed decimal integer
	u        unsigned decimal integer
	o        unsigned octal integer
	x X      unsigned hexadecimal integer
	f F      fixed-point float, precision 6 by default
	e E      exponent float, d.dddddde±dd
	g G      %e or %f, whichever is shorter for the precision
	a A      hexadecimal float
	c        a single Unicode code point
	s        text; precision limits the number of runes
	p        pointer address, or (nil)
	%%       a literal percent sign

Each directive consumes exactly one argument (plus one for each '*'), in
order. Arguments are converted with [ArgOf].

# Mismatches

[Printf] does not report anything: a directive without an argument, an
argument of the wrong kind or an extra argument is rendered inline, for
example %!d(MISSING), %!d(string=hello) or %!(EXTRA int=3). [Fprintf] and
[Sprintf] return a [*FormatError] instead and write nothing.
*/
package printlog

import (
	"io"
	"os"
)

// stdout is where Printf writes. Tests replace it.
var stdout io.Writer = os.Stdout

// Logf is a printf-like logging function. Like log.Printf, the format need not
// end in a newline. Logf functions must be safe for concurrent use.
type Logf func(format string, args ...any)

// Printf renders template with args and writes the result to standard output
// in a single write. No newline is added. Mismatches between directives and
// arguments are rendered inline; write errors are ignored.
func Printf(template string, args ...any) {
	b, _ := render(nil, template, argsOf(args))
	stdout.Write(b)
}

// NewLogf returns a [Logf] that works like [Printf], but writes to w.
func NewLogf(w io.Writer) Logf {
	return func(format string, args ...any) {
		b, _ := render(nil, format, argsOf(args))
		w.Write(b)
	}
}

// Fprintf renders template with args and writes the result to w in a single
// write. If the directives and arguments do not match, it writes nothing and
// returns a [*FormatError].
func Fprintf(w io.Writer, template string, args ...any) (int, error) {
	b, ferr := render(nil, template, argsOf(args))
	if ferr != nil {
		return 0, ferr
	}
	return w.Write(b)
}

// Sprintf renders template with args. If the directives and arguments do not
// match, it returns a [*FormatError].
func Sprintf(template string, args ...any) (string, error) {
	b, ferr := render(nil, template, argsOf(args))
	if ferr != nil {
		return "", ferr
	}
	return string(b), nil
}

// Render renders template with args. Mismatches are rendered inline, and the
// first one is also returned as a [*FormatError]. The returned string is
// complete either way.
func Render(template string, args []Arg) (string, error) {
	b, ferr := render(nil, template, args)
	if ferr != nil {
		return string(b), ferr
	}
	return string(b), nil
}

func argsOf(args []any) []Arg {
	if len(args) == 0 {
		return nil
	}
	out := make([]Arg, len(args))
	for i, v := range args {
		out[i] = ArgOf(v)
	}
	return out
}
