package pval

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

type decoder struct {
	r       io.Reader
	scratch [8]byte
}

// maxPrealloc bounds what a length field may allocate up front; anything
// larger has to earn its size by actually delivering elements.
const maxPrealloc = 4096

func malformed(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated input", ErrMalformedEncoding)
	}
	return fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
}

func (d *decoder) readByte() (byte, error) {
	if _, err := io.ReadFull(d.r, d.scratch[:1]); err != nil {
		return 0, malformed(err)
	}
	return d.scratch[0], nil
}

func (d *decoder) readUint16() (uint16, error) {
	if _, err := io.ReadFull(d.r, d.scratch[:2]); err != nil {
		return 0, malformed(err)
	}
	return binary.BigEndian.Uint16(d.scratch[:2]), nil
}

func (d *decoder) readUint32() (uint32, error) {
	if _, err := io.ReadFull(d.r, d.scratch[:4]); err != nil {
		return 0, malformed(err)
	}
	return binary.BigEndian.Uint32(d.scratch[:4]), nil
}

func (d *decoder) readUint64() (uint64, error) {
	if _, err := io.ReadFull(d.r, d.scratch[:8]); err != nil {
		return 0, malformed(err)
	}
	return binary.BigEndian.Uint64(d.scratch[:8]), nil
}

func (d *decoder) decode() (Value, error) {
	tag, err := d.readByte()
	if err != nil {
		return nil, err
	}
	return d.decodeTagged(tag)
}

func (d *decoder) decodeTagged(tag byte) (Value, error) {
	switch tag {
	case tagNull:
		return Nil, nil
	case tagTrue:
		return True, nil
	case tagFalse:
		return False, nil
	case tagSymbol:
		n, err := d.readUint16()
		if err != nil {
			return nil, err
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(d.r, buf); err != nil {
			return nil, malformed(err)
		}
		return Intern(string(buf)), nil
	case tagInt64:
		u, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return FromInt64(int64(u)), nil
	case tagUint64:
		u, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return FromUint64(u), nil
	case tagDouble:
		u, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return FromDouble(math.Float64frombits(u)), nil
	case tagComplex:
		re, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		im, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return FromComplex(complex(math.Float64frombits(re), math.Float64frombits(im))), nil
	case tagPair:
		car, err := d.decode()
		if err != nil {
			return nil, err
		}
		cdr, err := d.decode()
		if err != nil {
			return nil, err
		}
		return Cons(car, cdr), nil
	case tagVector:
		elems, err := d.decodeSeq()
		if err != nil {
			return nil, err
		}
		return &Vector{elems: elems}, nil
	case tagTuple:
		elems, err := d.decodeSeq()
		if err != nil {
			return nil, err
		}
		return &Tuple{elems: elems}, nil
	case tagDict:
		n, err := d.readUint32()
		if err != nil {
			return nil, err
		}
		dict := MakeDict()
		for i := uint32(0); i < n; i++ {
			k, err := d.decode()
			if err != nil {
				return nil, err
			}
			v, err := d.decode()
			if err != nil {
				return nil, err
			}
			dict = dict.Add(k, v)
		}
		return dict, nil
	case tagUniform:
		ut, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if UType(ut) > C64 {
			return nil, fmt.Errorf("%w: unknown uniform element code %#02x", ErrMalformedEncoding, ut)
		}
		n, err := d.readUint32()
		if err != nil {
			return nil, err
		}
		return d.decodeUniform(UType(ut), n)
	default:
		return nil, fmt.Errorf("%w: unknown tag %#02x", ErrMalformedEncoding, tag)
	}
}

// decodeSeq reads a u32 count followed by that many values. Elements are
// appended under a bounded initial capacity so a corrupt length cannot
// force a giant allocation before the stream runs dry.
func (d *decoder) decodeSeq() ([]Value, error) {
	n, err := d.readUint32()
	if err != nil {
		return nil, err
	}
	elems := make([]Value, 0, min(n, maxPrealloc))
	for i := uint32(0); i < n; i++ {
		el, err := d.decode()
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
	}
	return elems, nil
}

func (d *decoder) decodeUniform(ut UType, n uint32) (Value, error) {
	switch ut {
	case U8:
		return readUniform[uint8](d, n)
	case S8:
		return readUniform[int8](d, n)
	case U16:
		return readUniform[uint16](d, n)
	case S16:
		return readUniform[int16](d, n)
	case U32:
		return readUniform[uint32](d, n)
	case S32:
		return readUniform[int32](d, n)
	case U64:
		return readUniform[uint64](d, n)
	case S64:
		return readUniform[int64](d, n)
	case F32:
		return readUniform[float32](d, n)
	case F64:
		return readUniform[float64](d, n)
	case C32:
		return readUniform[complex64](d, n)
	case C64:
		return readUniform[complex128](d, n)
	default:
		return nil, fmt.Errorf("%w: unknown uniform element code %#02x", ErrMalformedEncoding, byte(ut))
	}
}

// readUniform reads elements in bounded chunks so a corrupt count fails on
// the missing data instead of materializing the claimed allocation.
func readUniform[T UElem](d *decoder, n uint32) (Value, error) {
	elems := make([]T, 0, min(n, maxPrealloc))
	buf := make([]T, min(n, maxPrealloc))
	for n > 0 {
		part := buf[:min(n, uint32(len(buf)))]
		if err := binary.Read(d.r, binary.BigEndian, part); err != nil {
			return nil, malformed(err)
		}
		elems = append(elems, part...)
		n -= uint32(len(part))
	}
	return &UVector[T]{elems: elems}, nil
}

// DeserializeFrom reads one value from r. A clean stream end before the
// first tag byte returns io.EOF so callers can iterate a concatenated
// stream of values; truncation anywhere after that is ErrMalformedEncoding.
func DeserializeFrom(r io.Reader) (Value, error) {
	d := &decoder{r: r}
	var one [1]byte
	if _, err := io.ReadFull(r, one[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, malformed(err)
	}
	return d.decodeTagged(one[0])
}

// Deserialize decodes exactly one value spanning all of data; trailing
// bytes are rejected.
func Deserialize(data []byte) (Value, error) {
	r := bytes.NewReader(data)
	v, err := DeserializeFrom(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedEncoding, r.Len())
	}
	return v, nil
}
