// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package printlog

import (
	"errors"
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestParseArgs(t *testing.T) {
	cases := map[string]struct {
		template string
		words    []string
		want     string
	}{
		"integer":         {"%d|%i", []string{"42", "-0x10"}, "42|-16"},
		"unsigned":        {"%u %x %o", []string{"10", "255", "8"}, "10 ff 10"},
		"negative hex":    {"%x", []string{"-1"}, "ffffffffffffffff"},
		"quoted char":     {"%d %x", []string{"'A", "\"a"}, "65 61"},
		"float":           {"%.2f %g", []string{"3.14159", "1e6"}, "3.14 1e+06"},
		"char":            {"%c%c", []string{"hello", "élan"}, "hé"},
		"string":          {"[%s]", []string{"two words"}, "[two words]"},
		"pointer":         {"%p", []string{"0xdead"}, "0xdead"},
		"star":            {"%*d|%.*s", []string{"4", "7", "2", "abc"}, "   7|ab"},
		"percent skipped": {"%%%d", []string{"5"}, "%5"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			args, err := ParseArgs(tc.template, tc.words)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Render(tc.template, args)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestParseArgsExtraAndMissing(t *testing.T) {
	args, err := ParseArgs("%d", []string{"1", "extra"})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, len(args), 2)
	testutil.AssertEqual(t, args[1].Kind(), StringKind)

	got, err := Render("%d", args)
	testutil.AssertEqual(t, got, "1%!(EXTRA string=extra)")
	if !errors.Is(err, ErrExtraArg) {
		t.Fatalf("want ErrExtraArg, got %v", err)
	}

	args, err = ParseArgs("%d %d", []string{"1"})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, len(args), 1)
}

func TestParseArgsMalformed(t *testing.T) {
	cases := map[string]struct {
		template string
		words    []string
		wantArg  int
	}{
		"integer": {"%d", []string{"forty"}, 0},
		"float":   {"%s %f", []string{"ok", "pi"}, 1},
		"star":    {"%*d", []string{"wide", "1"}, 0},
		"pointer": {"%p", []string{"-1"}, 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseArgs(tc.template, tc.words)
			if !errors.Is(err, ErrBadType) {
				t.Fatalf("want ErrBadType, got %v", err)
			}
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Fatalf("want *FormatError, got %T", err)
			}
			testutil.AssertEqual(t, ferr.Arg, tc.wantArg)
		})
	}
}
