// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package printlog

import (
	"strings"
	"unicode/utf8"
)

// maxWidth bounds explicit widths and precisions, as in C.
const maxWidth = 1<<31 - 1

// Reasons a directive can be malformed. Each one is also the text of its
// inline marker.
const (
	noVerb   = "NOVERB"
	badVerb  = "BADVERB"
	badWidth = "BADWIDTH"
	badPrec  = "BADPREC"
)

// verbs lists every supported conversion character.
const verbs = "diuoxXfFeEgGaAcsp%"

// lengths lists length modifiers. Longer ones come first so that "hh" is not
// read as "h".
var lengths = []string{"hh", "h", "ll", "l", "j", "z", "t", "q", "L"}

// directive is a single parsed %-directive.
type directive struct {
	text   string // as written in the template
	offset int    // byte offset of '%'

	minus, plus, space, sharp, zero bool

	width     int
	widthStar bool
	prec      int
	hasPrec   bool
	precStar  bool
	length    string
	verb      rune

	bad string // empty if well-formed
}

// segment is either literal text or a directive.
type segment struct {
	lit string
	d   *directive
}

// parse splits tmpl into literal segments and directives.
func parse(tmpl string) []segment {
	var segs []segment
	start := 0
	for i := 0; i < len(tmpl); {
		if tmpl[i] != '%' {
			i++
			continue
		}
		if i > start {
			segs = append(segs, segment{lit: tmpl[start:i]})
		}
		d := parseDirective(tmpl, i)
		segs = append(segs, segment{d: d})
		i += len(d.text)
		start = i
	}
	if start < len(tmpl) {
		segs = append(segs, segment{lit: tmpl[start:]})
	}
	return segs
}

// parseDirective parses the directive starting at tmpl[off], which must be
// '%'. The returned directive's text is never empty.
func parseDirective(tmpl string, off int) *directive {
	d := &directive{offset: off}
	i := off + 1

flags:
	for ; i < len(tmpl); i++ {
		switch tmpl[i] {
		case '-':
			d.minus = true
		case '+':
			d.plus = true
		case ' ':
			d.space = true
		case '#':
			d.sharp = true
		case '0':
			d.zero = true
		default:
			break flags
		}
	}

	if i < len(tmpl) && tmpl[i] == '*' {
		d.widthStar = true
		i++
	} else {
		n, end, ok := atoi(tmpl, i)
		if !ok {
			d.bad = badWidth
		}
		d.width, i = n, end
	}

	if i < len(tmpl) && tmpl[i] == '.' {
		i++
		d.hasPrec = true
		if i < len(tmpl) && tmpl[i] == '*' {
			d.precStar = true
			i++
		} else {
			n, end, ok := atoi(tmpl, i)
			if !ok && d.bad == "" {
				d.bad = badPrec
			}
			d.prec, i = n, end
		}
	}

	for _, l := range lengths {
		if strings.HasPrefix(tmpl[i:], l) {
			d.length = l
			i += len(l)
			break
		}
	}

	if i >= len(tmpl) {
		d.text = tmpl[off:]
		if d.bad == "" {
			d.bad = noVerb
		}
		return d
	}

	r, size := utf8.DecodeRuneInString(tmpl[i:])
	d.verb = r
	d.text = tmpl[off : i+size]
	if !strings.ContainsRune(verbs, r) && d.bad == "" {
		d.bad = badVerb
	}
	return d
}

// atoi reads decimal digits from s starting at i. ok is false if the number
// exceeds maxWidth; n is zero in that case.
func atoi(s string, i int) (n, end int, ok bool) {
	ok = true
	for end = i; end < len(s) && '0' <= s[end] && s[end] <= '9'; end++ {
		if !ok {
			continue
		}
		n = n*10 + int(s[end]-'0')
		if n > maxWidth {
			n, ok = 0, false
		}
	}
	return n, end, ok
}

// lengthBits returns the integer width selected by a length modifier, or 0
// when the modifier does not narrow.
func lengthBits(length string) int {
	switch length {
	case "hh":
		return 8
	case "h":
		return 16
	case "l", "ll", "j", "z", "t", "q":
		return 64
	}
	return 0
}
