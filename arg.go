// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package printlog

import (
	"fmt"
	"reflect"
	"strconv"
	"unsafe"
)

// Kind is the kind of value an [Arg] holds.
type Kind uint8

// Available kinds.
const (
	Invalid Kind = iota
	IntKind
	UintKind
	FloatKind
	StringKind
	PointerKind
)

var kindNames = [...]string{
	Invalid:     "invalid",
	IntKind:     "int",
	UintKind:    "uint",
	FloatKind:   "float",
	StringKind:  "string",
	PointerKind: "pointer",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Arg is a single formattable argument. The zero value is an Invalid Arg.
type Arg struct {
	kind Kind
	bits int // width of integer kinds
	i    int64
	u    uint64 // also holds pointer addresses
	f    float64
	s    string
	typ  string // Go type name, used in markers
	addr bool   // u holds the address of a text argument
}

// Int returns a 64-bit signed integer Arg.
func Int(v int64) Arg { return Arg{kind: IntKind, bits: 64, i: v, typ: "int64"} }

// Uint returns a 64-bit unsigned integer Arg.
func Uint(v uint64) Arg { return Arg{kind: UintKind, bits: 64, u: v, typ: "uint64"} }

// Float returns a floating-point Arg.
func Float(v float64) Arg { return Arg{kind: FloatKind, f: v, typ: "float64"} }

// String returns a text Arg.
func String(s string) Arg { return Arg{kind: StringKind, s: s, typ: "string"} }

// Pointer returns a pointer Arg with the given address. A zero address is
// rendered as "(nil)".
func Pointer(addr uintptr) Arg {
	return Arg{kind: PointerKind, u: uint64(addr), typ: "pointer"}
}

// Kind returns the kind of a.
func (a Arg) Kind() Kind { return a.kind }

// ArgOf converts an arbitrary Go value to an Arg.
//
// Signed integers become IntKind and keep their bit width, so that
// "%x" of int8(-1) renders "ff". Unsigned integers and uintptr become
// UintKind, floats FloatKind. Strings, byte slices, errors and
// fmt.Stringers become StringKind. Booleans are the integers 0 and 1.
// Untyped nil, pointers, maps, channels, functions and other slices
// become PointerKind. Everything else is Invalid.
//
// An error or fmt.Stringer that is also a pointer renders its text with %s
// and its address with %p. A nil one is a nil PointerKind and its method is
// not called. A panicking Error or String method is rendered inline.
func ArgOf(v any) Arg {
	switch v := v.(type) {
	case nil:
		return Arg{kind: PointerKind, typ: "nil"}
	case Arg:
		return v
	case int:
		return Arg{kind: IntKind, bits: strconv.IntSize, i: int64(v), typ: "int"}
	case int8:
		return Arg{kind: IntKind, bits: 8, i: int64(v), typ: "int8"}
	case int16:
		return Arg{kind: IntKind, bits: 16, i: int64(v), typ: "int16"}
	case int32:
		return Arg{kind: IntKind, bits: 32, i: int64(v), typ: "int32"}
	case int64:
		return Int(v)
	case uint:
		return Arg{kind: UintKind, bits: strconv.IntSize, u: uint64(v), typ: "uint"}
	case uint8:
		return Arg{kind: UintKind, bits: 8, u: uint64(v), typ: "uint8"}
	case uint16:
		return Arg{kind: UintKind, bits: 16, u: uint64(v), typ: "uint16"}
	case uint32:
		return Arg{kind: UintKind, bits: 32, u: uint64(v), typ: "uint32"}
	case uint64:
		return Uint(v)
	case uintptr:
		return Arg{kind: UintKind, bits: strconv.IntSize, u: uint64(v), typ: "uintptr"}
	case float32:
		return Arg{kind: FloatKind, f: float64(v), typ: "float32"}
	case float64:
		return Float(v)
	case bool:
		a := Arg{kind: IntKind, bits: 8, typ: "bool"}
		if v {
			a.i = 1
		}
		return a
	case string:
		return String(v)
	case []byte:
		return Arg{kind: StringKind, s: string(v), typ: "[]byte"}
	case error:
		return textArg(v, "Error", v.Error)
	case fmt.Stringer:
		return textArg(v, "String", v.String)
	case unsafe.Pointer:
		return Arg{kind: PointerKind, u: uint64(uintptr(v)), typ: "unsafe.Pointer"}
	}

	rv := reflect.ValueOf(v)
	if hasAddr(rv.Kind()) {
		return Arg{kind: PointerKind, u: uint64(rv.Pointer()), typ: rv.Type().String()}
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Arg{kind: IntKind, bits: rv.Type().Bits(), i: rv.Int(), typ: rv.Type().String()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Arg{kind: UintKind, bits: rv.Type().Bits(), u: rv.Uint(), typ: rv.Type().String()}
	case reflect.Float32, reflect.Float64:
		return Arg{kind: FloatKind, f: rv.Float(), typ: rv.Type().String()}
	case reflect.String:
		return Arg{kind: StringKind, s: rv.String(), typ: rv.Type().String()}
	case reflect.Bool:
		a := Arg{kind: IntKind, bits: 8, typ: rv.Type().String()}
		if rv.Bool() {
			a.i = 1
		}
		return a
	}
	return Arg{typ: typeName(v)}
}

func typeName(v any) string { return reflect.TypeOf(v).String() }

// textArg returns a StringKind Arg with the result of calling method on v.
func textArg(v any, method string, text func() string) (a Arg) {
	a = Arg{kind: StringKind, typ: typeName(v)}
	if rv := reflect.ValueOf(v); hasAddr(rv.Kind()) {
		if rv.IsNil() {
			return Arg{kind: PointerKind, typ: a.typ}
		}
		a.u, a.addr = uint64(rv.Pointer()), true
	}
	defer func() {
		if r := recover(); r != nil {
			a.s = "%!s(PANIC=" + method + " method: " + fmt.Sprint(r) + ")"
		}
	}()
	a.s = text()
	return a
}

func hasAddr(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}

// repr renders a in its default form, for use in markers.
func (a Arg) repr() string {
	switch a.kind {
	case IntKind:
		return strconv.FormatInt(a.i, 10)
	case UintKind:
		return strconv.FormatUint(a.u, 10)
	case FloatKind:
		return strconv.FormatFloat(a.f, 'g', -1, 64)
	case StringKind:
		return a.s
	case PointerKind:
		if a.u == 0 {
			return "(nil)"
		}
		return "0x" + strconv.FormatUint(a.u, 16)
	}
	return "?"
}

// marker returns "type=value" as used inside %!verb(...) markers.
func (a Arg) marker() string {
	if a.kind == Invalid {
		if a.typ == "" {
			return "invalid"
		}
		return a.typ
	}
	return a.typ + "=" + a.repr()
}
