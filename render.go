// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package printlog

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// printer holds the state of a single rendering.
type printer struct {
	buf  []byte
	args []Arg
	argi int
	err  *FormatError
}

// render appends the rendering of tmpl to buf. Mismatches are rendered as
// inline markers; the first one is also returned.
func render(buf []byte, tmpl string, args []Arg) ([]byte, *FormatError) {
	p := &printer{buf: buf, args: args}
	for _, seg := range parse(tmpl) {
		if seg.d == nil {
			p.buf = append(p.buf, seg.lit...)
			continue
		}
		p.directive(seg.d)
	}

	if p.argi < len(p.args) {
		if p.err == nil {
			p.err = &FormatError{Err: ErrExtraArg, Offset: len(tmpl), Arg: p.argi}
		}
		p.buf = append(p.buf, "%!(EXTRA "...)
		for i, a := range p.args[p.argi:] {
			if i > 0 {
				p.buf = append(p.buf, ", "...)
			}
			p.buf = append(p.buf, a.marker()...)
		}
		p.buf = append(p.buf, ')')
	}
	return p.buf, p.err
}

func (p *printer) fail(d *directive, arg int, err error) {
	if p.err != nil {
		return
	}
	p.err = &FormatError{Err: err, Offset: d.offset, Directive: d.text, Arg: arg}
}

func (p *printer) marker(verb rune, what string) {
	p.buf = append(p.buf, "%!"...)
	if verb != 0 {
		p.buf = utf8.AppendRune(p.buf, verb)
	}
	p.buf = append(p.buf, '(')
	p.buf = append(p.buf, what...)
	p.buf = append(p.buf, ')')
}

func (p *printer) directive(d *directive) {
	switch d.bad {
	case "":
	case badVerb:
		p.fail(d, -1, ErrBadDirective)
		p.marker(d.verb, d.bad)
		return
	default:
		p.fail(d, -1, ErrBadDirective)
		p.marker(0, d.bad)
		return
	}

	if d.verb == '%' {
		p.buf = append(p.buf, '%')
		return
	}

	f := *d
	if f.widthStar {
		switch w, ok := p.starArg(d); {
		case !ok:
			p.marker(0, badWidth)
		case w < 0:
			f.minus, f.width = true, -w
		default:
			f.width = w
		}
	}
	if f.precStar {
		switch n, ok := p.starArg(d); {
		case !ok:
			p.marker(0, badPrec)
			f.hasPrec = false
		case n < 0:
			f.hasPrec = false
		default:
			f.prec = n
		}
	}

	if p.argi >= len(p.args) {
		p.fail(d, p.argi, ErrMissingArg)
		p.marker(d.verb, "MISSING")
		return
	}
	idx := p.argi
	a := p.args[idx]
	p.argi++
	if !p.format(&f, a) {
		p.fail(d, idx, ErrBadType)
		p.marker(d.verb, a.marker())
	}
}

// starArg consumes the argument of a '*' width or precision.
func (p *printer) starArg(d *directive) (int, bool) {
	if p.argi >= len(p.args) {
		p.fail(d, p.argi, ErrMissingArg)
		return 0, false
	}
	idx := p.argi
	a := p.args[idx]
	p.argi++

	var n int64
	switch a.kind {
	case IntKind:
		n = a.i
	case UintKind:
		if a.u > maxWidth {
			p.fail(d, idx, ErrBadDirective)
			return 0, false
		}
		n = int64(a.u)
	default:
		p.fail(d, idx, ErrBadType)
		return 0, false
	}
	if n > maxWidth || n < -maxWidth {
		p.fail(d, idx, ErrBadDirective)
		return 0, false
	}
	return int(n), true
}

// format renders a according to f. It reports false if the kind of a does
// not suit the conversion.
func (p *printer) format(f *directive, a Arg) bool {
	switch f.verb {
	case 'd', 'i':
		neg, mag, ok := signedValue(f, a)
		if !ok {
			return false
		}
		p.fmtInteger(f, neg, mag, 10, true)
	case 'u', 'o', 'x', 'X':
		u, ok := unsignedValue(f, a)
		if !ok {
			return false
		}
		base := 10
		switch f.verb {
		case 'o':
			base = 8
		case 'x', 'X':
			base = 16
		}
		p.fmtInteger(f, false, u, base, false)
	case 'c':
		var r rune
		switch a.kind {
		case IntKind:
			r = rune(a.i)
			if a.i < 0 || a.i > utf8.MaxRune {
				r = utf8.RuneError
			}
		case UintKind:
			r = rune(a.u)
			if a.u > utf8.MaxRune {
				r = utf8.RuneError
			}
		default:
			return false
		}
		p.pad(f, "", string(r), false)
	case 'f', 'F', 'e', 'E', 'g', 'G', 'a', 'A':
		if a.kind != FloatKind {
			return false
		}
		p.fmtFloat(f, a.f)
	case 's':
		if a.kind != StringKind {
			return false
		}
		s := a.s
		if f.hasPrec {
			s = truncateRunes(s, f.prec)
		}
		p.pad(f, "", s, false)
	case 'p':
		if a.kind != PointerKind && !a.addr {
			return false
		}
		if a.u == 0 {
			p.pad(f, "", "(nil)", false)
		} else {
			p.pad(f, "0x", strconv.FormatUint(a.u, 16), false)
		}
	default:
		return false
	}
	return true
}

// signedValue returns the sign and magnitude of an integer argument for a
// signed conversion, narrowed by the length modifier.
func signedValue(f *directive, a Arg) (neg bool, mag uint64, ok bool) {
	var v int64
	switch a.kind {
	case IntKind:
		v = a.i
	case UintKind:
		if lengthBits(f.length) == 0 {
			return false, a.u, true
		}
		v = int64(a.u)
	default:
		return false, 0, false
	}
	if n := lengthBits(f.length); n > 0 && n < 64 {
		shift := 64 - n
		v = v << shift >> shift
	}
	if v < 0 {
		return true, -uint64(v), true
	}
	return false, uint64(v), true
}

// unsignedValue reinterprets an integer argument for an unsigned
// conversion, using the width of its type or of the length modifier.
func unsignedValue(f *directive, a Arg) (uint64, bool) {
	var u uint64
	bits := a.bits
	switch a.kind {
	case IntKind:
		u = uint64(a.i)
	case UintKind:
		u = a.u
	default:
		return 0, false
	}
	if n := lengthBits(f.length); n > 0 {
		bits = n
	}
	if bits > 0 && bits < 64 {
		u &= 1<<bits - 1
	}
	return u, true
}

func (p *printer) fmtInteger(f *directive, neg bool, mag uint64, base int, signed bool) {
	digits := strconv.FormatUint(mag, base)
	if f.verb == 'X' {
		digits = strings.ToUpper(digits)
	}
	if f.hasPrec && f.prec == 0 && mag == 0 {
		digits = ""
	}
	if f.hasPrec && len(digits) < f.prec {
		digits = strings.Repeat("0", f.prec-len(digits)) + digits
	}
	if base == 8 && f.sharp && (digits == "" || digits[0] != '0') {
		digits = "0" + digits
	}

	var prefix string
	if signed {
		prefix = sign(f, neg)
	}
	if base == 16 && f.sharp && mag != 0 {
		if f.verb == 'X' {
			prefix = "0X"
		} else {
			prefix = "0x"
		}
	}
	p.pad(f, prefix, digits, f.zero && !f.minus && !f.hasPrec)
}

func sign(f *directive, neg bool) string {
	switch {
	case neg:
		return "-"
	case f.plus:
		return "+"
	case f.space:
		return " "
	}
	return ""
}

func (p *printer) fmtFloat(f *directive, v float64) {
	neg := math.Signbit(v) && !math.IsNaN(v)
	abs := math.Abs(v)
	prefix := sign(f, neg)
	zero := f.zero && !f.minus

	var body string
	switch {
	case math.IsInf(abs, 1):
		body, zero = "inf", false
	case math.IsNaN(abs):
		body, zero = "nan", false
	default:
		body = floatBody(f, abs)
	}
	switch f.verb {
	case 'F', 'E', 'G', 'A':
		body = strings.ToUpper(body)
	}
	if (f.verb == 'a' || f.verb == 'A') && len(body) > 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		prefix += body[:2]
		body = body[2:]
	}
	p.pad(f, prefix, body, zero)
}

// floatBody renders a finite non-negative float without sign.
func floatBody(f *directive, v float64) string {
	prec := 6
	if f.hasPrec {
		prec = f.prec
	}

	switch f.verb {
	case 'f', 'F':
		s := strconv.FormatFloat(v, 'f', prec, 64)
		if f.sharp && prec == 0 {
			s += "."
		}
		return s
	case 'e', 'E':
		s := strconv.FormatFloat(v, 'e', prec, 64)
		if f.sharp && prec == 0 {
			s = forcePoint(s, 'e')
		}
		return s
	case 'g', 'G':
		if prec == 0 {
			prec = 1
		}
		es := strconv.FormatFloat(v, 'e', prec-1, 64)
		i := strings.LastIndexByte(es, 'e')
		x, _ := strconv.Atoi(es[i+1:])
		if x < -4 || x >= prec {
			mant, exp := es[:i], es[i:]
			if f.sharp {
				return forcePoint(es, 'e')
			}
			return trimZeros(mant) + exp
		}
		s := strconv.FormatFloat(v, 'f', prec-1-x, 64)
		if f.sharp {
			if !strings.Contains(s, ".") {
				s += "."
			}
			return s
		}
		return trimZeros(s)
	case 'a', 'A':
		hp := -1
		if f.hasPrec {
			hp = prec
		}
		s := trimExponent(strconv.FormatFloat(v, 'x', hp, 64))
		if f.sharp {
			s = forcePoint(s, 'p')
		}
		return s
	}
	return ""
}

// forcePoint inserts a decimal point before the exponent marker if the
// mantissa has none.
func forcePoint(s string, exp byte) string {
	i := strings.IndexByte(s, exp)
	if i < 0 || strings.Contains(s[:i], ".") {
		return s
	}
	return s[:i] + "." + s[i:]
}

// trimZeros removes trailing zeros after a decimal point, and the point
// itself if nothing is left after it.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// trimExponent removes leading zeros from a binary exponent: "p+01"
// becomes "p+1".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'p')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}

func truncateRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// pad appends prefix and body, padded to the field width. With zero set,
// zeros go between prefix and body; otherwise spaces go on the left, or on
// the right for left-justified fields.
func (p *printer) pad(f *directive, prefix, body string, zero bool) {
	n := f.width - utf8.RuneCountInString(prefix) - utf8.RuneCountInString(body)
	if n <= 0 {
		p.buf = append(p.buf, prefix...)
		p.buf = append(p.buf, body...)
		return
	}
	switch {
	case f.minus:
		p.buf = append(p.buf, prefix...)
		p.buf = append(p.buf, body...)
		p.buf = appendRepeat(p.buf, ' ', n)
	case zero:
		p.buf = append(p.buf, prefix...)
		p.buf = appendRepeat(p.buf, '0', n)
		p.buf = append(p.buf, body...)
	default:
		p.buf = appendRepeat(p.buf, ' ', n)
		p.buf = append(p.buf, prefix...)
		p.buf = append(p.buf, body...)
	}
}

func appendRepeat(b []byte, c byte, n int) []byte {
	for range n {
		b = append(b, c)
	}
	return b
}
