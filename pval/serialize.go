package pval

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Wire tags. The codes are fixed; persisted bytes stay readable by any
// process running the same codec version.
const (
	tagTrue    = 0x00
	tagFalse   = 0x01
	tagSymbol  = 0x02
	tagDouble  = 0x04
	tagComplex = 0x05
	tagNull    = 0x06
	tagPair    = 0x07
	tagVector  = 0x08
	tagDict    = 0x09
	tagUniform = 0x0a
	tagUint64  = 0x0b
	tagTuple   = 0x0c
	tagInt64   = 0x0d

	// tagAny appears only inside canonical dictionary key encodings,
	// never on the public wire. The payload is the any's 16-byte id.
	tagAny = 0x0e
)

const maxSymbolLen = math.MaxUint16

type encoder struct {
	w       io.Writer
	scratch [8]byte

	// keys switches the encoder into canonical-key mode for dictionary
	// storage: opaque-any values become their identity token instead of
	// failing with ErrUnserializable.
	keys bool
}

func (e *encoder) writeByte(b byte) error {
	e.scratch[0] = b
	_, err := e.w.Write(e.scratch[:1])
	return err
}

func (e *encoder) writeUint16(v uint16) error {
	binary.BigEndian.PutUint16(e.scratch[:2], v)
	_, err := e.w.Write(e.scratch[:2])
	return err
}

func (e *encoder) writeUint32(v uint32) error {
	binary.BigEndian.PutUint32(e.scratch[:4], v)
	_, err := e.w.Write(e.scratch[:4])
	return err
}

func (e *encoder) writeUint64(v uint64) error {
	binary.BigEndian.PutUint64(e.scratch[:8], v)
	_, err := e.w.Write(e.scratch[:8])
	return err
}

func (e *encoder) encode(v Value) error {
	switch x := v.(type) {
	case *nilValue:
		return e.writeByte(tagNull)
	case *boolValue:
		if x.v {
			return e.writeByte(tagTrue)
		}
		return e.writeByte(tagFalse)
	case *symbolValue:
		if e.keys {
			// canonical keys carry a u32 length so no symbol is too
			// long to address a dictionary entry
			if err := e.writeByte(tagSymbol); err != nil {
				return err
			}
			if err := e.writeUint32(uint32(len(x.name))); err != nil {
				return err
			}
			_, err := io.WriteString(e.w, x.name)
			return err
		}
		if len(x.name) > maxSymbolLen {
			return fmt.Errorf("%w: symbol of %d bytes exceeds the wire limit", ErrUnserializable, len(x.name))
		}
		if err := e.writeByte(tagSymbol); err != nil {
			return err
		}
		if err := e.writeUint16(uint16(len(x.name))); err != nil {
			return err
		}
		_, err := io.WriteString(e.w, x.name)
		return err
	case *int64Value:
		if err := e.writeByte(tagInt64); err != nil {
			return err
		}
		return e.writeUint64(uint64(x.v))
	case *uint64Value:
		if err := e.writeByte(tagUint64); err != nil {
			return err
		}
		return e.writeUint64(x.v)
	case *doubleValue:
		if err := e.writeByte(tagDouble); err != nil {
			return err
		}
		return e.writeUint64(math.Float64bits(x.v))
	case *complexValue:
		if err := e.writeByte(tagComplex); err != nil {
			return err
		}
		if err := e.writeUint64(math.Float64bits(real(x.v))); err != nil {
			return err
		}
		return e.writeUint64(math.Float64bits(imag(x.v)))
	case *pairValue:
		if err := e.writeByte(tagPair); err != nil {
			return err
		}
		if err := e.encode(x.car); err != nil {
			return err
		}
		return e.encode(x.cdr)
	case *Vector:
		if err := e.writeByte(tagVector); err != nil {
			return err
		}
		if err := e.writeUint32(uint32(len(x.elems))); err != nil {
			return err
		}
		for _, el := range x.elems {
			if err := e.encode(el); err != nil {
				return err
			}
		}
		return nil
	case *Tuple:
		if err := e.writeByte(tagTuple); err != nil {
			return err
		}
		if err := e.writeUint32(uint32(len(x.elems))); err != nil {
			return err
		}
		for _, el := range x.elems {
			if err := e.encode(el); err != nil {
				return err
			}
		}
		return nil
	case *Dict:
		if err := e.writeByte(tagDict); err != nil {
			return err
		}
		if err := e.writeUint32(uint32(x.Len())); err != nil {
			return err
		}
		var encErr error
		x.iterate(func(ent *dictEntry) bool {
			if encErr = e.encode(ent.key); encErr != nil {
				return false
			}
			encErr = e.encode(ent.val)
			return encErr == nil
		})
		return encErr
	case uniformValue:
		if err := e.writeByte(tagUniform); err != nil {
			return err
		}
		if err := e.writeByte(byte(x.UType())); err != nil {
			return err
		}
		if err := e.writeUint32(uint32(x.Len())); err != nil {
			return err
		}
		return x.writeElems(e.w)
	case *anyValue:
		if !e.keys {
			return fmt.Errorf("%w: opaque any value", ErrUnserializable)
		}
		if err := e.writeByte(tagAny); err != nil {
			return err
		}
		_, err := e.w.Write(x.id[:])
		return err
	default:
		return fmt.Errorf("%w: unknown kind %s", ErrUnserializable, v.Kind())
	}
}

// SerializeTo writes the binary encoding of v to w. Values containing an
// opaque any fail with ErrUnserializable; nothing is guaranteed about bytes
// already written when an error occurs mid-value.
func SerializeTo(w io.Writer, v Value) error {
	e := &encoder{w: w}
	return e.encode(v)
}

// Serialize encodes v into a fresh byte slice.
func Serialize(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeTo(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeKey produces the canonical byte encoding used to order and address
// dictionary entries. It differs from the public wire in accepting opaque-any
// values, whose identity token stands in for structure, and in giving symbols
// a u32 length so no key is too long to store.
func encodeKey(v Value) ([]byte, error) {
	if s, ok := v.(*symbolValue); ok {
		return symbolKeyBytes(s)
	}
	var buf bytes.Buffer
	e := &encoder{w: &buf, keys: true}
	if err := e.encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
