package pval

import (
	"fmt"
	"strings"
)

// Vector is the one mutable value kind: Set writes an element slot in place
// and the write is visible through every reference to the vector. The vector
// itself never locks; callers that mutate a vector shared across goroutines
// must supply their own synchronization.
type Vector struct {
	elems []Value
}

func (*Vector) Kind() Kind { return KVector }

func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString("#(")
	for i, e := range v.elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// MakeVector returns a vector of n slots, each initialized to fill.
func MakeVector(n int, fill Value) *Vector {
	elems := make([]Value, n)
	for i := range elems {
		elems[i] = fill
	}
	return &Vector{elems: elems}
}

// VectorOf builds a vector from the given elements, copying the slice.
func VectorOf(items ...Value) *Vector {
	elems := make([]Value, len(items))
	copy(elems, items)
	return &Vector{elems: elems}
}

func (v *Vector) Len() int { return len(v.elems) }

func (v *Vector) Ref(k int) (Value, error) {
	if k < 0 || k >= len(v.elems) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, k, len(v.elems))
	}
	return v.elems[k], nil
}

func (v *Vector) Set(k int, x Value) error {
	if k < 0 || k >= len(v.elems) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, k, len(v.elems))
	}
	v.elems[k] = x
	return nil
}

// Fill sets every slot to x.
func (v *Vector) Fill(x Value) {
	for i := range v.elems {
		v.elems[i] = x
	}
}

func ToVector(v Value) (*Vector, error) {
	vec, ok := v.(*Vector)
	if !ok {
		return nil, mismatch(KVector, v)
	}
	return vec, nil
}
