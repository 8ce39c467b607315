package pval

import "fmt"

// Length returns the element count of a proper list, vector, tuple, uniform
// vector or dictionary. Any other kind, including an improper list, fails
// with ErrTypeMismatch.
func Length(v Value) (int, error) {
	switch x := v.(type) {
	case *nilValue:
		return 0, nil
	case *pairValue:
		n, ok := listLen(x)
		if !ok {
			return 0, fmt.Errorf("%w: improper list has no length", ErrTypeMismatch)
		}
		return n, nil
	case *Vector:
		return x.Len(), nil
	case *Tuple:
		return x.Len(), nil
	case uniformValue:
		return x.Len(), nil
	case *Dict:
		return x.Len(), nil
	default:
		return 0, fmt.Errorf("%w: %s has no length", ErrTypeMismatch, v.Kind())
	}
}

// Map applies fn to every element of a proper list, vector or tuple and
// returns a new value of the same shape. The input is left unmodified.
func Map(fn func(Value) Value, v Value) (Value, error) {
	switch x := v.(type) {
	case *nilValue:
		return Nil, nil
	case *pairValue:
		n, ok := listLen(x)
		if !ok {
			return nil, fmt.Errorf("%w: cannot map over an improper list", ErrTypeMismatch)
		}
		out := make([]Value, 0, n)
		cur := Value(x)
		for cur != Nil {
			p := cur.(*pairValue)
			out = append(out, fn(p.car))
			cur = p.cdr
		}
		return List(out...), nil
	case *Vector:
		out := make([]Value, len(x.elems))
		for i, el := range x.elems {
			out[i] = fn(el)
		}
		return &Vector{elems: out}, nil
	case *Tuple:
		out := make([]Value, len(x.elems))
		for i, el := range x.elems {
			out[i] = fn(el)
		}
		return &Tuple{elems: out}, nil
	default:
		return nil, fmt.Errorf("%w: cannot map over %s", ErrTypeMismatch, v.Kind())
	}
}

// Reverse returns a new proper list with the elements of list in reverse
// order.
func Reverse(list Value) (Value, error) {
	out := Nil
	cur := list
	for cur != Nil {
		p, ok := cur.(*pairValue)
		if !ok {
			return nil, fmt.Errorf("%w: cannot reverse an improper list", ErrTypeMismatch)
		}
		out = Cons(p.car, out)
		cur = p.cdr
	}
	return out, nil
}
