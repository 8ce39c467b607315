package pval

import "strings"

type pairValue struct {
	car Value
	cdr Value
}

func (*pairValue) Kind() Kind { return KPair }

func (p *pairValue) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(p.car.String())
	rest := p.cdr
	for {
		if rest == Nil {
			break
		}
		next, ok := rest.(*pairValue)
		if !ok {
			sb.WriteString(" . ")
			sb.WriteString(rest.String())
			break
		}
		sb.WriteByte(' ')
		sb.WriteString(next.car.String())
		rest = next.cdr
	}
	sb.WriteByte(')')
	return sb.String()
}

// Cons builds an immutable pair from car and cdr.
func Cons(car, cdr Value) Value {
	return &pairValue{car: car, cdr: cdr}
}

func Car(v Value) (Value, error) {
	p, ok := v.(*pairValue)
	if !ok {
		return nil, mismatch(KPair, v)
	}
	return p.car, nil
}

func Cdr(v Value) (Value, error) {
	p, ok := v.(*pairValue)
	if !ok {
		return nil, mismatch(KPair, v)
	}
	return p.cdr, nil
}

// List builds a proper list (a chain of pairs terminated by Nil) from its
// arguments. List() is Nil.
func List(items ...Value) Value {
	out := Nil
	for i := len(items) - 1; i >= 0; i-- {
		out = Cons(items[i], out)
	}
	return out
}

// Nth returns element k of a proper list, or ErrIndexOutOfRange when the
// list ends first.
func Nth(list Value, k int) (Value, error) {
	if k < 0 {
		return nil, ErrIndexOutOfRange
	}
	cur := list
	for {
		p, ok := cur.(*pairValue)
		if !ok {
			if cur == Nil {
				return nil, ErrIndexOutOfRange
			}
			return nil, mismatch(KPair, cur)
		}
		if k == 0 {
			return p.car, nil
		}
		k--
		cur = p.cdr
	}
}

// listLen counts the pairs of a proper list. ok is false when the chain is
// not Nil-terminated.
func listLen(v Value) (int, bool) {
	n := 0
	cur := v
	for {
		if cur == Nil {
			return n, true
		}
		p, ok := cur.(*pairValue)
		if !ok {
			return 0, false
		}
		n++
		cur = p.cdr
	}
}
