package pval

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

type nilValue struct{}

func (*nilValue) Kind() Kind     { return KNil }
func (*nilValue) String() string { return "()" }

type boolValue struct {
	v bool
}

func (*boolValue) Kind() Kind { return KBool }

func (b *boolValue) String() string {
	if b.v {
		return "#t"
	}
	return "#f"
}

// Canonical singletons. FromBool always returns True or False, so boolean
// values (like interned symbols) can be compared with Eq.
var (
	Nil   Value = &nilValue{}
	True  Value = &boolValue{v: true}
	False Value = &boolValue{v: false}
)

type int64Value struct {
	v int64
}

func (*int64Value) Kind() Kind       { return KInt64 }
func (i *int64Value) String() string { return strconv.FormatInt(i.v, 10) }

type uint64Value struct {
	v uint64
}

func (*uint64Value) Kind() Kind       { return KUint64 }
func (u *uint64Value) String() string { return strconv.FormatUint(u.v, 10) }

type doubleValue struct {
	v float64
}

func (*doubleValue) Kind() Kind       { return KDouble }
func (d *doubleValue) String() string { return strconv.FormatFloat(d.v, 'g', -1, 64) }

type complexValue struct {
	v complex128
}

func (*complexValue) Kind() Kind { return KComplex }

func (c *complexValue) String() string {
	return fmt.Sprintf("%g%+gi", real(c.v), imag(c.v))
}

// anyValue wraps an arbitrary host object. The value system never interprets
// obj; the id exists so an any can participate in identity-keyed structures
// (dictionary keys) without being serializable.
type anyValue struct {
	obj any
	id  uuid.UUID
}

func (*anyValue) Kind() Kind       { return KAny }
func (a *anyValue) String() string { return "#<any " + a.id.String() + ">" }

func FromBool(v bool) Value {
	if v {
		return True
	}
	return False
}

func FromInt64(v int64) Value    { return &int64Value{v: v} }
func FromUint64(v uint64) Value  { return &uint64Value{v: v} }
func FromDouble(v float64) Value { return &doubleValue{v: v} }

func FromComplex(v complex128) Value { return &complexValue{v: v} }

// FromAny wraps obj as an opaque value. The result is only ever equal to
// itself and cannot be serialized.
func FromAny(obj any) Value {
	return &anyValue{obj: obj, id: uuid.New()}
}

// IsNil reports whether v is the canonical empty value. The test is an
// identity test: only Nil itself satisfies it.
func IsNil(v Value) bool     { return v == Nil }
func IsBool(v Value) bool    { return v.Kind() == KBool }
func IsSymbol(v Value) bool  { return v.Kind() == KSymbol }
func IsInt64(v Value) bool   { return v.Kind() == KInt64 }
func IsUint64(v Value) bool  { return v.Kind() == KUint64 }
func IsDouble(v Value) bool  { return v.Kind() == KDouble }
func IsComplex(v Value) bool { return v.Kind() == KComplex }
func IsPair(v Value) bool    { return v.Kind() == KPair }
func IsVector(v Value) bool  { return v.Kind() == KVector }
func IsUniform(v Value) bool { return v.Kind() == KUniform }
func IsTuple(v Value) bool   { return v.Kind() == KTuple }
func IsDict(v Value) bool    { return v.Kind() == KDict }
func IsAny(v Value) bool     { return v.Kind() == KAny }

func mismatch(want Kind, v Value) error {
	return fmt.Errorf("%w: want %s, got %s", ErrTypeMismatch, want, v.Kind())
}

// ToBool extracts the boolean payload. It never coerces: any non-boolean
// value, including Nil, fails with ErrTypeMismatch.
func ToBool(v Value) (bool, error) {
	b, ok := v.(*boolValue)
	if !ok {
		return false, mismatch(KBool, v)
	}
	return b.v, nil
}

func ToInt64(v Value) (int64, error) {
	i, ok := v.(*int64Value)
	if !ok {
		return 0, mismatch(KInt64, v)
	}
	return i.v, nil
}

func ToUint64(v Value) (uint64, error) {
	u, ok := v.(*uint64Value)
	if !ok {
		return 0, mismatch(KUint64, v)
	}
	return u.v, nil
}

func ToDouble(v Value) (float64, error) {
	d, ok := v.(*doubleValue)
	if !ok {
		return 0, mismatch(KDouble, v)
	}
	return d.v, nil
}

func ToComplex(v Value) (complex128, error) {
	c, ok := v.(*complexValue)
	if !ok {
		return 0, mismatch(KComplex, v)
	}
	return c.v, nil
}

func ToAny(v Value) (any, error) {
	a, ok := v.(*anyValue)
	if !ok {
		return nil, mismatch(KAny, v)
	}
	return a.obj, nil
}
