package ir

import "fmt"

// Type is the variant of a [Node]. The set of types is closed.
type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	RealType
	StringType
	SequenceType
	MappingType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:     "Null",
		BoolType:     "Bool",
		IntType:      "Int",
		RealType:     "Real",
		StringType:   "String",
		SequenceType: "Sequence",
		MappingType:  "Mapping",
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
	for _, tt := range Types() {
		if tt.String() == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntType,
		RealType,
		StringType,
		SequenceType,
		MappingType,
	}
}

// IsLeaf reports whether nodes of type t have no children.
func (t Type) IsLeaf() bool {
	switch t {
	case SequenceType, MappingType:
		return false
	default:
		return true
	}
}
