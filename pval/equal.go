package pval

// Eq is identity equality: both references denote the same value instance.
// Interning makes Eq meaningful for symbols, and the True/False/Nil
// singletons make it meaningful for booleans and the empty value. Two
// separately constructed numbers with the same payload are generally not Eq.
func Eq(a, b Value) bool { return a == b }

// Equal is deep structural equality: same kind, recursively equal contents.
// Numbers compare by value within their own kind only; an opaque any is
// equal just to itself.
func Equal(a, b Value) bool {
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *int64Value:
		return x.v == b.(*int64Value).v
	case *uint64Value:
		return x.v == b.(*uint64Value).v
	case *doubleValue:
		return x.v == b.(*doubleValue).v
	case *complexValue:
		return x.v == b.(*complexValue).v
	case *pairValue:
		y := b.(*pairValue)
		return Equal(x.car, y.car) && Equal(x.cdr, y.cdr)
	case *Vector:
		y := b.(*Vector)
		return equalSlices(x.elems, y.elems)
	case *Tuple:
		y := b.(*Tuple)
		return equalSlices(x.elems, y.elems)
	case uniformValue:
		return x.equalTo(b.(uniformValue))
	case *Dict:
		return equalDicts(x, b.(*Dict))
	default:
		// nil, booleans and symbols are singletons and any values are
		// identity-only; a == b above already decided those
		return false
	}
}

func equalSlices(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// equalDicts relies on the canonical key encoding: two keys are
// structurally equal exactly when their encodings are byte-equal.
func equalDicts(a, b *Dict) bool {
	if a.Len() != b.Len() {
		return false
	}
	eq := true
	it := a.tree.Root().Iterator()
	for kb, e, ok := it.Next(); ok; kb, e, ok = it.Next() {
		other, found := b.tree.Get(kb)
		if !found || !Equal(e.val, other.val) {
			eq = false
			break
		}
	}
	return eq
}
