package pval

// Kind discriminates the closed set of value representations. Every Value
// carries exactly one Kind; there is no user extension.
type Kind int

const (
	KNil Kind = iota
	KBool
	KSymbol
	KInt64
	KUint64
	KDouble
	KComplex
	KPair
	KVector
	KUniform
	KTuple
	KDict
	KAny
)

func (k Kind) String() string {
	switch k {
	case KNil:
		return "nil"
	case KBool:
		return "bool"
	case KSymbol:
		return "symbol"
	case KInt64:
		return "int64"
	case KUint64:
		return "uint64"
	case KDouble:
		return "double"
	case KComplex:
		return "complex"
	case KPair:
		return "pair"
	case KVector:
		return "vector"
	case KUniform:
		return "uniform-vector"
	case KTuple:
		return "tuple"
	case KDict:
		return "dict"
	case KAny:
		return "any"
	default:
		return "unknown"
	}
}

// Value is the polymorphic value type. All implementations are pointer-shaped,
// so comparing two Value interfaces with == is an identity test (see Eq).
// Every kind except Vector and UniformVector is immutable after construction
// and safe to share across goroutines without locking.
type Value interface {
	Kind() Kind
	String() string
}
