package ir

// Equal reports whether a and b are structurally equal.
//
// Nodes of different types are never equal. Ints and bools compare by
// value, strings and reals by exact text, sequences element-wise in order,
// and mappings by key set and per-key value regardless of key order.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case IntType:
		return a.Int64 == b.Int64
	case RealType:
		return a.Number == b.Number
	case StringType:
		return a.String == b.String
	case SequenceType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case MappingType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, field := range a.Fields {
			bv, ok := b.Lookup(field)
			if !ok {
				return false
			}
			if !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	}
	return false
}
