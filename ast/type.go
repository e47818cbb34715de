package ast

// ValueType represents the type of an atom value
type ValueType uint8

// Value types
const (
	ValueTypeNil ValueType = iota
	ValueTypeSymbol
	ValueTypeNumber
	ValueTypeBool
	ValueTypeString
)

var valueTypeName = map[ValueType]string{
	ValueTypeNil:    "nil",
	ValueTypeSymbol: "symbol",
	ValueTypeNumber: "number",
	ValueTypeBool:   "bool",
	ValueTypeString: "string",
}

func (vt ValueType) String() string {
	s, ok := valueTypeName[vt]
	if ok {
		return s
	}
	return ""
}
