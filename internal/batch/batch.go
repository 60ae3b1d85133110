// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package batch emits a sequence of messages described in a TOML file.

A batch file looks like this:

	strict = true

	[[emit]]
	template = "%s=%d\n"
	args = ["x", 7]

	[[emit]]
	template = "done\n"

Arguments keep their TOML types: integers, floats, strings, booleans and
dates are passed to the formatter as such.
*/
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.astrophena.name/printlog"

	"github.com/pelletier/go-toml/v2"
	"go.astrophena.name/base/logger"
)

var errNoTemplate = errors.New("missing template")

// Batch is a parsed batch file.
type Batch struct {
	// Strict makes Run stop at the first mismatch between a template and its
	// arguments instead of rendering it inline.
	Strict bool `toml:"strict"`
	// Emit lists the messages in the order they are written.
	Emit []Entry `toml:"emit"`
}

// Entry is a single message.
type Entry struct {
	Template string `toml:"template"`
	Args     []any  `toml:"args"`
}

// Load reads and parses the batch file at path.
func Load(path string) (*Batch, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	batch, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return batch, nil
}

// Parse parses a batch file.
func Parse(data []byte) (*Batch, error) {
	var b Batch
	if err := toml.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	for i, e := range b.Emit {
		if e.Template == "" {
			return nil, fmt.Errorf("emit #%d: %w", i+1, errNoTemplate)
		}
	}
	return &b, nil
}

// Run writes every entry to w in order, one write per entry. In lenient
// mode mismatches are rendered inline and logged to the logger in ctx.
func (b *Batch) Run(ctx context.Context, w io.Writer) error {
	for i, e := range b.Emit {
		if b.Strict {
			if _, err := printlog.Fprintf(w, e.Template, e.Args...); err != nil {
				return fmt.Errorf("emit #%d: %w", i+1, err)
			}
			continue
		}
		args := make([]printlog.Arg, len(e.Args))
		for j, v := range e.Args {
			args[j] = printlog.ArgOf(v)
		}
		s, err := printlog.Render(e.Template, args)
		var ferr *printlog.FormatError
		if errors.As(err, &ferr) {
			logger.Error(ctx, "template and arguments do not match",
				slog.Int("entry", i+1),
				slog.String("directive", ferr.Directive),
				slog.Int("offset", ferr.Offset),
				slog.Any("err", ferr.Err),
			)
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}
