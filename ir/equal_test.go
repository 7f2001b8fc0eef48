package ir

import "testing"

func kv(k string, v *Node) KeyVal {
	return KeyVal{Key: FromString(k), Val: v}
}

func TestEqual(t *testing.T) {
	nested := func(leaf string) *Node {
		return FromKeyVals([]KeyVal{
			kv("a", FromKeyVals([]KeyVal{
				kv("b", FromInt(1)),
				kv("c", FromSlice([]*Node{FromString("x"), FromString(leaf)})),
			})),
		})
	}
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"ints", FromInt(42), FromInt(42), true},
		{"different ints", FromInt(42), FromInt(43), false},
		{"strings", FromString("hello"), FromString("hello"), true},
		{"different strings", FromString("hello"), FromString("world"), false},
		{"bools", FromBool(true), FromBool(true), true},
		{"different bools", FromBool(true), FromBool(false), false},
		{"nulls", Null(), Null(), true},
		{"null is not zero", Null(), FromInt(0), false},
		{"int is not string", FromInt(1), FromString("1"), false},
		{"real is not string", FromReal("1.5"), FromString("1.5"), false},
		{"real text", FromReal("1.5"), FromReal("1.5"), true},
		{"real text differs", FromReal("1.5"), FromReal("1.50"), false},
		{"int is not real", FromInt(1), FromReal("1"), false},
		{"sequences", FromSlice([]*Node{FromInt(1), FromInt(2)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), true},
		{"sequence order", FromSlice([]*Node{FromInt(1), FromInt(2)}), FromSlice([]*Node{FromInt(2), FromInt(1)}), false},
		{"sequence length", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(1)}), false},
		{"empty sequence is not empty mapping", FromSlice(nil), FromKeyVals(nil), false},
		{"mapping order is ignored",
			FromKeyVals([]KeyVal{kv("a", FromInt(1)), kv("b", FromInt(2))}),
			FromKeyVals([]KeyVal{kv("b", FromInt(2)), kv("a", FromInt(1))}),
			true},
		{"mapping value",
			FromKeyVals([]KeyVal{kv("a", FromInt(1)), kv("b", FromInt(2))}),
			FromKeyVals([]KeyVal{kv("a", FromInt(1)), kv("b", FromInt(3))}),
			false},
		{"mapping keys",
			FromKeyVals([]KeyVal{kv("a", FromInt(1))}),
			FromKeyVals([]KeyVal{kv("b", FromInt(1))}),
			false},
		{"mapping size",
			FromKeyVals([]KeyVal{kv("a", FromInt(1))}),
			FromKeyVals([]KeyVal{kv("a", FromInt(1)), kv("b", FromInt(1))}),
			false},
		{"non-string keys",
			FromKeyVals([]KeyVal{{Key: FromInt(1), Val: FromString("one")}}),
			FromKeyVals([]KeyVal{{Key: FromInt(1), Val: FromString("one")}}),
			true},
		{"int key is not string key",
			FromKeyVals([]KeyVal{{Key: FromInt(1), Val: FromString("one")}}),
			FromKeyVals([]KeyVal{kv("1", FromString("one"))}),
			false},
		{"nested", nested("y"), nested("y"), true},
		{"nested leaf", nested("y"), nested("z"), false},
		{"nil nil", nil, nil, true},
		{"nil null", nil, Null(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(a, b) = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(b, a) = %v, want %v", got, tt.want)
			}
			if !Equal(tt.a, tt.a) {
				t.Errorf("Equal(a, a) = false")
			}
			if !Equal(tt.a, tt.a.Clone()) {
				t.Errorf("Equal(a, a.Clone()) = false")
			}
		})
	}
}
