// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/base/logger"
	"go.astrophena.name/printlog"
	"go.astrophena.name/printlog/internal/batch"
	"go.astrophena.name/printlog/internal/starfmt"
)

func main() { cli.Main(new(app)) }

type app struct {
	strict bool
	batch  string
	star   string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.strict, "strict", false, "Fail on mismatched directives and arguments instead of rendering them inline.")
	fs.StringVar(&a.batch, "batch", "", "Emit messages from TOML batch `file`.")
	fs.StringVar(&a.star, "star", "", "Run Starlark script `file` with printf and sprintf builtins.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	switch {
	case a.batch != "" && a.star != "":
		return fmt.Errorf("%w: -batch and -star are mutually exclusive", cli.ErrInvalidArgs)
	case a.star != "" && a.strict:
		return fmt.Errorf("%w: -strict has no effect with -star, Starlark printf is always strict", cli.ErrInvalidArgs)
	case a.batch != "":
		b, err := batch.Load(a.batch)
		if err != nil {
			return err
		}
		if a.strict {
			b.Strict = true
		}
		logger.Info(ctx, "running batch", slog.String("file", a.batch), slog.Int("messages", len(b.Emit)))
		return b.Run(ctx, env.Stdout)
	case a.star != "":
		src, err := os.ReadFile(a.star)
		if err != nil {
			return err
		}
		return starfmt.Exec(ctx, a.star, src, env.Stdout)
	}

	if len(env.Args) == 0 {
		return fmt.Errorf("%w: want template", cli.ErrInvalidArgs)
	}
	return a.emit(ctx, env.Stdout, env.Args[0], env.Args[1:])
}

// emit renders template with the command-line words and writes it to w.
func (a *app) emit(ctx context.Context, w io.Writer, template string, words []string) error {
	template = unescape(template)
	args, err := printlog.ParseArgs(template, words)
	if err != nil {
		return err
	}

	s, err := printlog.Render(template, args)
	if err != nil {
		var ferr *printlog.FormatError
		if a.strict || !errors.As(err, &ferr) {
			return err
		}
		logger.Error(ctx, "template and arguments do not match",
			slog.String("directive", ferr.Directive),
			slog.Int("offset", ferr.Offset),
			slog.Any("err", ferr.Err),
		)
	}
	_, err = io.WriteString(w, s)
	return err
}

var escapes = strings.NewReplacer(
	`\\`, `\`,
	`\n`, "\n",
	`\t`, "\t",
	`\r`, "\r",
	`\"`, `"`,
	`\a`, "\a",
	`\b`, "\b",
	`\f`, "\f",
	`\v`, "\v",
)

// unescape interprets backslash escapes the way printf(1) does for the
// common cases, since shells pass them through literally.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return escapes.Replace(s)
}
