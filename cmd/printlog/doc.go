// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Printlog writes a formatted message to standard output.

# Usage

	$ printlog [flags] template [arg...]
	$ printlog -batch file.toml
	$ printlog -star file.star

The template uses printf directives such as %d, %-8s or %.2f. Each arg is
converted according to the directive that consumes it, so

	$ printlog 'count: %d\n' 42

prints "count: 42". Backslash escapes (\n, \t, \\, \") in the template are
interpreted. No newline is added.

A directive without an argument, an argument of the wrong type and an
extra argument are rendered inline (for example %!d(MISSING)) and logged.
With -strict, nothing is printed and printlog exits with an error instead.

With -batch, printlog emits every message of a TOML batch file. With -star,
it runs a Starlark script that can call printf(template, *args) and
sprintf(template, *args). Both are always strict, so -star does not accept
-strict.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
