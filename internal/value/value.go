// Package value implements the tagged scalar representation that every
// register, array slot, ivar, and constant in the VM holds.
package value

import "fmt"

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNil Kind = iota
	KindTrue
	KindFalse
	KindInt
	KindSymbol
	KindArray
)

// Value is a tagged union with a small fixed footprint: a Kind tag plus a
// single int32 payload, wide enough to carry an int16, a symbol index, or
// an array index without a pointer or interface box.
type Value struct {
	kind    Kind
	payload int32
}

// Nil is the singleton Nil value.
var Nil = Value{kind: KindNil}

// True is the singleton True value.
var True = Value{kind: KindTrue}

// False is the singleton False value.
var False = Value{kind: KindFalse}

// Int constructs an Int value. The payload wraps to 16 bits signed,
// matching the VM's 16-bit signed arithmetic with wraparound on overflow.
func Int(n int32) Value {
	return Value{kind: KindInt, payload: int32(int16(n))}
}

// Symbol constructs a Symbol value referring to the given symbol table index.
func Symbol(idx uint8) Value {
	return Value{kind: KindSymbol, payload: int32(idx)}
}

// Array constructs an Array value referring to the given arena slot index.
func Array(idx uint8) Value {
	return Value{kind: KindArray, payload: int32(idx)}
}

// Bool returns True or False per the given condition.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// Kind reports the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is the Nil variant.
func (v Value) IsNil() bool { return v.kind == KindNil }

// IsArray reports whether v is the Array variant.
func (v Value) IsArray() bool { return v.kind == KindArray }

// Truthy reports the VM's truthiness rule: everything is truthy except
// Nil and False.
func (v Value) Truthy() bool {
	return v.kind != KindNil && v.kind != KindFalse
}

// Int16 returns the payload reinterpreted as a signed 16-bit integer.
// Per §7's type-mismatch policy, this reads the payload regardless of
// variant — callers that need arithmetic/comparison semantics on a
// possibly-non-Int value rely on this "deterministic but undefined"
// reading.
func (v Value) Int16() int16 {
	return int16(v.payload)
}

// ArrayIndex returns the payload as an arena slot index. Only meaningful
// when Kind() == KindArray.
func (v Value) ArrayIndex() uint8 {
	return uint8(v.payload)
}

// SymbolIndex returns the payload as a symbol table index. Only
// meaningful when Kind() == KindSymbol.
func (v Value) SymbolIndex() uint8 {
	return uint8(v.payload)
}

// Equal implements Value equality: same variant AND same payload. Across
// differing variants values are always unequal, even Int(0) vs False.
func (v Value) Equal(other Value) bool {
	return v.kind == other.kind && v.payload == other.payload
}

// String renders a Value the way the console logger prints it ("puts"/"p").
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindInt:
		return fmt.Sprintf("%d", v.Int16())
	case KindSymbol:
		return fmt.Sprintf(":sym#%d", v.SymbolIndex())
	case KindArray:
		return fmt.Sprintf("array#%d", v.ArrayIndex())
	default:
		return "?"
	}
}
