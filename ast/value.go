package ast

import (
	"math"
	"strconv"
)

// Value is the payload of an atom: a symbol, a number, a boolean, a string
// or nil.
type Value struct {
	Type ValueType
	v    interface{}
}

// Nil is the empty list and the false-ish marker.
var Nil = Value{Type: ValueTypeNil}

// NewSymbolValue creates a value of type symbol
func NewSymbolValue(name string) Value {
	return Value{Type: ValueTypeSymbol, v: name}
}

// NewNumberValue creates a value of type number
func NewNumberValue(f float32) Value {
	return Value{Type: ValueTypeNumber, v: f}
}

// NewBoolValue creates a value of type bool
func NewBoolValue(b bool) Value {
	return Value{Type: ValueTypeBool, v: b}
}

// NewStringValue creates a value of type string
func NewStringValue(s string) Value {
	return Value{Type: ValueTypeString, v: s}
}

// Symbol returns the name of a symbol value.
func (v Value) Symbol() (string, bool) {
	if v.Type != ValueTypeSymbol {
		return "", false
	}
	return v.v.(string), true
}

// Number returns the float of a number value.
func (v Value) Number() (float32, bool) {
	if v.Type != ValueTypeNumber {
		return 0, false
	}
	return v.v.(float32), true
}

// Bool returns the boolean of a bool value.
func (v Value) Bool() (bool, bool) {
	if v.Type != ValueTypeBool {
		return false, false
	}
	return v.v.(bool), true
}

// IsNil returns true if the value is the nil marker
func (v Value) IsNil() bool {
	return v.Type == ValueTypeNil
}

// Equal reports whether both values have the same type and payload. NaN
// numbers are never equal.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	if v.Type == ValueTypeNil {
		return true
	}
	return v.v == o.v
}

// Encode returns the literal text of the value.
func (v Value) Encode() string {
	switch v.Type {
	case ValueTypeNil:
		return "NIL"
	case ValueTypeNumber:
		return formatNumber(v.v.(float32))
	case ValueTypeBool:
		if v.v.(bool) {
			return "#t"
		}
		return "#f"
	case ValueTypeSymbol, ValueTypeString:
		return v.v.(string)
	}

	panic("unreachable")
}

func (v Value) String() string {
	return v.Encode()
}

func formatNumber(f float32) string {
	switch {
	case math.IsInf(float64(f), 1):
		return "inf"
	case math.IsInf(float64(f), -1):
		return "-inf"
	}
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
