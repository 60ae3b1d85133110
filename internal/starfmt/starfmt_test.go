// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package starfmt

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/printlog"

	"go.astrophena.name/base/testutil"
)

func TestExec(t *testing.T) {
	cases := map[string]struct {
		script  string
		want    string
		wantErr error
	}{
		"printf": {
			script: `printf("%s=%d\n", "x", 7)`,
			want:   "x=7\n",
		},
		"sprintf": {
			script: `print(sprintf("[%5.1f]", 2.25))`,
			want:   "[  2.2]\n",
		},
		"bool and none": {
			script: `printf("%d %p\n", True, None)`,
			want:   "1 (nil)\n",
		},
		"big int": {
			script: `printf("%x %s\n", 1 << 63, 1 << 70)`,
			want:   "8000000000000000 1180591620717411303424\n",
		},
		"list as text": {
			script: `printf("%s\n", [1, "a"])`,
			want:   "[1, \"a\"]\n",
		},
		"no newline added": {
			script: `printf("a"); printf("b")`,
			want:   "ab",
		},
		"missing argument": {
			script:  `printf("%d %d\n", 1)`,
			wantErr: printlog.ErrMissingArg,
		},
		"wrong kind": {
			script:  `printf("%d\n", "one")`,
			wantErr: printlog.ErrBadType,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Exec(context.Background(), "test.star", tc.script, &buf)
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

func TestExecFile(t *testing.T) {
	path := filepath.Join("testdata", "table.star")
	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Exec(context.Background(), path, src, &buf); err != nil {
		t.Fatal(err)
	}

	// The same rows rendered by the Go entry point must match.
	var want strings.Builder
	for _, row := range []struct {
		name  string
		count int
		pct   float64
	}{
		{"disk", 3, 97.5},
		{"net", 12, 0.25},
	} {
		s, err := printlog.Sprintf("%-6s %5d %8.2f\n", row.name, row.count, row.pct)
		if err != nil {
			t.Fatal(err)
		}
		want.WriteString(s)
	}
	want.WriteString("total: 15\n")
	testutil.AssertEqual(t, buf.String(), want.String())
}

func TestExecCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := Exec(ctx, "loop.star", "while True:\n    pass\n", &buf)
	if err == nil {
		t.Fatal("want error from cancelled script")
	}
}

func TestBuiltinArgs(t *testing.T) {
	cases := map[string]string{
		"no template":     `printf()`,
		"non-string":      `printf(42)`,
		"keyword":         `printf("%d", x=1)`,
		"sprintf keyword": `sprintf("x", y=2)`,
	}
	for name, script := range cases {
		t.Run(name, func(t *testing.T) {
			if err := Exec(context.Background(), "args.star", script, &bytes.Buffer{}); err == nil {
				t.Fatal("want error")
			}
		})
	}
}
