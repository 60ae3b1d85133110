// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package starfmt exposes printf and sprintf to Starlark scripts.
package starfmt

import (
	"context"
	"fmt"
	"io"

	"go.astrophena.name/printlog"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Builtins returns the printf and sprintf builtins. printf writes to w.
//
// Both are strict: a mismatch between the template and the arguments is a
// script error.
func Builtins(w io.Writer) starlark.StringDict {
	return starlark.StringDict{
		"printf": starlark.NewBuiltin("printf", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			tmpl, fargs, err := unpack(b, args, kwargs)
			if err != nil {
				return nil, err
			}
			s, err := render(b, tmpl, fargs)
			if err != nil {
				return nil, err
			}
			if _, err := io.WriteString(w, s); err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			return starlark.None, nil
		}),
		"sprintf": starlark.NewBuiltin("sprintf", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			tmpl, fargs, err := unpack(b, args, kwargs)
			if err != nil {
				return nil, err
			}
			s, err := render(b, tmpl, fargs)
			if err != nil {
				return nil, err
			}
			return starlark.String(s), nil
		}),
	}
}

// Exec runs the Starlark script src with the builtins predeclared. The
// script's print statements also go to w. Exec stops the script when ctx is
// done.
func Exec(ctx context.Context, filename string, src any, w io.Writer) error {
	thread := &starlark.Thread{
		Name:  filename,
		Print: func(_ *starlark.Thread, msg string) { fmt.Fprintln(w, msg) },
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()

	_, err := starlark.ExecFileOptions(
		&syntax.FileOptions{
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
		},
		thread,
		filename,
		src,
		Builtins(w),
	)
	return err
}

func unpack(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (string, []printlog.Arg, error) {
	if len(kwargs) > 0 {
		return "", nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%s: missing template argument", b.Name())
	}
	tmpl, ok := starlark.AsString(args[0])
	if !ok {
		return "", nil, fmt.Errorf("%s: template must be a string, got %s", b.Name(), args[0].Type())
	}
	fargs := make([]printlog.Arg, 0, len(args)-1)
	for _, v := range args[1:] {
		fargs = append(fargs, argOf(v))
	}
	return tmpl, fargs, nil
}

func render(b *starlark.Builtin, tmpl string, args []printlog.Arg) (string, error) {
	s, err := printlog.Render(tmpl, args)
	if err != nil {
		return "", fmt.Errorf("%s: %w", b.Name(), err)
	}
	return s, nil
}

// argOf converts a Starlark value to a formatter argument. Values without a
// natural counterpart, such as lists and dicts, become their Starlark
// representation for use with %s.
func argOf(v starlark.Value) printlog.Arg {
	switch v := v.(type) {
	case starlark.NoneType:
		return printlog.Pointer(0)
	case starlark.Bool:
		if v {
			return printlog.Int(1)
		}
		return printlog.Int(0)
	case starlark.Int:
		if n, ok := v.Int64(); ok {
			return printlog.Int(n)
		}
		if u, ok := v.Uint64(); ok {
			return printlog.Uint(u)
		}
		// Too wide for any integer conversion; %s still renders it.
		return printlog.String(v.String())
	case starlark.Float:
		return printlog.Float(float64(v))
	case starlark.String:
		return printlog.String(string(v))
	case starlark.Bytes:
		return printlog.String(string(v))
	}
	return printlog.String(v.String())
}
