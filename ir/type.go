package ir

import "fmt"

type Type int

const (
	BoolType Type = iota
	DataType
	DateType
	IntegerType
	RealType
	StringType
	ArrayType
	DictType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		BoolType:    "Bool",
		DataType:    "Data",
		DateType:    "Date",
		IntegerType: "Integer",
		RealType:    "Real",
		StringType:  "String",
		ArrayType:   "Array",
		DictType:    "Dict",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Bool":    BoolType,
		"Data":    DataType,
		"Date":    DateType,
		"Integer": IntegerType,
		"Real":    RealType,
		"String":  StringType,
		"Array":   ArrayType,
		"Dict":    DictType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		BoolType,
		DataType,
		DateType,
		IntegerType,
		RealType,
		StringType,
		ArrayType,
		DictType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, DictType:
		return false
	default:
		return true
	}
}
