package pval

import (
	"encoding/binary"
	"fmt"
	"io"
	"slices"
	"strings"
)

// UType identifies the element type of a uniform vector. The numeric codes
// are also the wire codes used by the serialization codec.
type UType uint8

const (
	U8 UType = iota
	S8
	U16
	S16
	U32
	S32
	U64
	S64
	F32
	F64
	C32
	C64
)

func (t UType) String() string {
	switch t {
	case U8:
		return "u8"
	case S8:
		return "s8"
	case U16:
		return "u16"
	case S16:
		return "s16"
	case U32:
		return "u32"
	case S32:
		return "s32"
	case U64:
		return "u64"
	case S64:
		return "s64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case C32:
		return "c32"
	case C64:
		return "c64"
	default:
		return "unknown"
	}
}

func (t UType) elemSize() int {
	switch t {
	case U8, S8:
		return 1
	case U16, S16:
		return 2
	case U32, S32, F32:
		return 4
	case U64, S64, F64, C32:
		return 8
	case C64:
		return 16
	default:
		return 0
	}
}

// UElem constrains uniform vector element types to the supported raw
// numeric kinds.
type UElem interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32 |
		uint64 | int64 | float32 | float64 | complex64 | complex128
}

// uniformValue is the type-erased face of UVector[T], used by equality,
// printing and the codec, which cannot name a concrete instantiation.
type uniformValue interface {
	Value
	Len() int
	UType() UType
	writeElems(w io.Writer) error
	equalTo(o uniformValue) bool
}

// UVector is a contiguous, fixed-length numeric vector. Like Vector it is
// mutable: Set and WritableElements alias the backing buffer, and callers
// mutating a shared uniform vector must synchronize externally.
type UVector[T UElem] struct {
	elems []T
}

func (*UVector[T]) Kind() Kind { return KUniform }

func (u *UVector[T]) UType() UType { return utypeOf[T]() }

func (u *UVector[T]) String() string {
	var sb strings.Builder
	sb.WriteString("#[")
	sb.WriteString(u.UType().String())
	sb.WriteString("](")
	for i, e := range u.elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte(')')
	return sb.String()
}

func (u *UVector[T]) Len() int { return len(u.elems) }

func (u *UVector[T]) Ref(k int) (T, error) {
	var zero T
	if k < 0 || k >= len(u.elems) {
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, k, len(u.elems))
	}
	return u.elems[k], nil
}

func (u *UVector[T]) Set(k int, x T) error {
	if k < 0 || k >= len(u.elems) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, k, len(u.elems))
	}
	u.elems[k] = x
	return nil
}

// Elements returns the backing buffer for read access. Callers must not
// write through it; use WritableElements when mutation is intended.
func (u *UVector[T]) Elements() []T { return u.elems }

// WritableElements returns the backing buffer for in-place mutation. Writes
// are visible to every holder of the vector and are not synchronized here.
func (u *UVector[T]) WritableElements() []T { return u.elems }

func (u *UVector[T]) writeElems(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, u.elems)
}

func (u *UVector[T]) equalTo(o uniformValue) bool {
	ov, ok := o.(*UVector[T])
	return ok && slices.Equal(u.elems, ov.elems)
}

func utypeOf[T UElem]() UType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return U8
	case int8:
		return S8
	case uint16:
		return U16
	case int16:
		return S16
	case uint32:
		return U32
	case int32:
		return S32
	case uint64:
		return U64
	case int64:
		return S64
	case float32:
		return F32
	case float64:
		return F64
	case complex64:
		return C32
	case complex128:
		return C64
	default:
		// unreachable: UElem enumerates exactly these types
		return U8
	}
}

// MakeUniformVector returns a uniform vector of n elements, each set to fill.
func MakeUniformVector[T UElem](n int, fill T) *UVector[T] {
	elems := make([]T, n)
	for i := range elems {
		elems[i] = fill
	}
	return &UVector[T]{elems: elems}
}

// InitUniformVector copies data into a fresh uniform vector; later changes
// to the caller's slice are not reflected in the value.
func InitUniformVector[T UElem](data []T) *UVector[T] {
	elems := make([]T, len(data))
	copy(elems, data)
	return &UVector[T]{elems: elems}
}

// ToUniformVector extracts a uniform vector with element type T, failing
// with ErrTypeMismatch when v is some other kind or some other element type.
func ToUniformVector[T UElem](v Value) (*UVector[T], error) {
	u, ok := v.(*UVector[T])
	if !ok {
		return nil, mismatch(KUniform, v)
	}
	return u, nil
}

// MakeBlob wraps a copy of data as a u8 uniform vector. A blob has no
// semantics beyond the labeling.
func MakeBlob(data []byte) *UVector[uint8] {
	return InitUniformVector(data)
}

// BlobData returns the raw bytes of a u8 uniform vector without copying.
func BlobData(v Value) ([]byte, error) {
	u, err := ToUniformVector[uint8](v)
	if err != nil {
		return nil, err
	}
	return u.elems, nil
}
