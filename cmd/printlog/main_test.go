// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"testing"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/base/cli/clitest"
	"go.astrophena.name/base/testutil"
	"go.astrophena.name/printlog"
)

func TestRun(t *testing.T) {
	clitest.Run(t, func(t *testing.T) *app { return new(app) }, map[string]clitest.Case[*app]{
		"template": {
			Args:         []string{`count: %d\n`, "42"},
			WantInStdout: "count: 42\n",
		},
		"lenient mismatch": {
			Args:         []string{`%s has %d\n`, "cart"},
			WantInStdout: "cart has %!d(MISSING)\n",
			WantInStderr: "template and arguments do not match",
		},
		"strict mismatch": {
			Args:               []string{"-strict", `%s has %d\n`, "cart"},
			WantErr:            printlog.ErrMissingArg,
			WantNothingPrinted: true,
		},
		"no template": {
			Args:    []string{},
			WantErr: cli.ErrInvalidArgs,
		},
		"batch": {
			Args:         []string{"-batch", "testdata/greet.toml"},
			WantInStdout: "hello, world\n2 messages\n",
			WantInStderr: "running batch",
		},
		"batch mismatch": {
			Args:         []string{"-batch", "testdata/mismatch.toml"},
			WantInStdout: "cart has %!d(MISSING) items\n",
			WantInStderr: "template and arguments do not match",
		},
		"strict batch": {
			Args:    []string{"-strict", "-batch", "testdata/mismatch.toml"},
			WantErr: printlog.ErrMissingArg,
		},
		"missing batch file": {
			Args:    []string{"-batch", "testdata/does-not-exist.toml"},
			WantErr: fs.ErrNotExist,
		},
		"star": {
			Args:         []string{"-star", "testdata/greet.star"},
			WantInStdout: "hello, alice|\nhello, bob  |\n",
		},
		"batch and star": {
			Args:    []string{"-batch", "testdata/greet.toml", "-star", "testdata/greet.star"},
			WantErr: cli.ErrInvalidArgs,
		},
		"strict star": {
			Args:    []string{"-strict", "-star", "testdata/greet.star"},
			WantErr: cli.ErrInvalidArgs,
		},
	})
}

func TestEmit(t *testing.T) {
	cases := map[string]struct {
		strict   bool
		template string
		words    []string
		want     string
		wantErr  error
	}{
		"count": {
			template: `count: %d\n`,
			words:    []string{"42"},
			want:     "count: 42\n",
		},
		"mixed": {
			template: `%s=%d\n`,
			words:    []string{"x", "7"},
			want:     "x=7\n",
		},
		"no newline": {
			template: "plain",
			want:     "plain",
		},
		"lenient mismatch": {
			template: `%s has %d\n`,
			words:    []string{"cart"},
			want:     "cart has %!d(MISSING)\n",
		},
		"strict mismatch": {
			strict:   true,
			template: `%s has %d\n`,
			words:    []string{"cart"},
			wantErr:  printlog.ErrMissingArg,
		},
		"unparsable word": {
			template: `%d`,
			words:    []string{"many"},
			wantErr:  printlog.ErrBadType,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			a := &app{strict: tc.strict}
			var buf bytes.Buffer
			err := a.emit(context.Background(), &buf, tc.template, tc.words)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want error %v, got %v", tc.wantErr, err)
				}
				testutil.AssertEqual(t, buf.String(), "")
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, buf.String(), tc.want)
		})
	}
}

func TestUnescape(t *testing.T) {
	cases := map[string]struct {
		in, want string
	}{
		"newline":        {`a\nb`, "a\nb"},
		"tab":            {`a\tb`, "a\tb"},
		"escaped slash":  {`a\\nb`, `a\nb`},
		"quote":          {`say \"hi\"`, `say "hi"`},
		"no escapes":     {"plain", "plain"},
		"unknown escape": {`\q`, `\q`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, unescape(tc.in), tc.want)
		})
	}
}
