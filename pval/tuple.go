package pval

import (
	"fmt"
	"strings"
)

// Tuple is a fixed, immutable sequence of values. Unlike Vector its slots
// cannot be written after construction.
type Tuple struct {
	elems []Value
}

func (*Tuple) Kind() Kind { return KTuple }

func (t *Tuple) String() string {
	var sb strings.Builder
	sb.WriteString("#{")
	for i, e := range t.elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// MakeTuple builds a tuple from the given elements, copying the slice.
func MakeTuple(items ...Value) *Tuple {
	elems := make([]Value, len(items))
	copy(elems, items)
	return &Tuple{elems: elems}
}

func (t *Tuple) Len() int { return len(t.elems) }

func (t *Tuple) Ref(k int) (Value, error) {
	if k < 0 || k >= len(t.elems) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, k, len(t.elems))
	}
	return t.elems[k], nil
}

func ToTuple(v Value) (*Tuple, error) {
	t, ok := v.(*Tuple)
	if !ok {
		return nil, mismatch(KTuple, v)
	}
	return t, nil
}
