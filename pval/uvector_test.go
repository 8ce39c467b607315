package pval

import (
	"errors"
	"testing"
)

func TestMakeUniformVector(t *testing.T) {
	u := MakeUniformVector[int16](4, -3)
	if u.Len() != 4 || u.UType() != S16 {
		t.Fatalf("Len=%d UType=%s", u.Len(), u.UType())
	}
	for i := 0; i < 4; i++ {
		x, err := u.Ref(i)
		if err != nil {
			t.Fatalf("Ref(%d): %v", i, err)
		}
		if x != -3 {
			t.Fatalf("elem %d = %d, want -3", i, x)
		}
	}
}

func TestInitUniformVectorCopies(t *testing.T) {
	src := []float64{1.5, 2.5}
	u := InitUniformVector(src)
	src[0] = 99
	x, _ := u.Ref(0)
	if x != 1.5 {
		t.Fatalf("vector aliased the caller's slice: elem 0 = %v", x)
	}
}

func TestUniformWritableElementsAlias(t *testing.T) {
	u := MakeUniformVector[uint32](3, 0)
	w := u.WritableElements()
	w[2] = 7
	x, _ := u.Ref(2)
	if x != 7 {
		t.Fatal("WritableElements does not alias the backing buffer")
	}
	r := u.Elements()
	if len(r) != 3 || r[2] != 7 {
		t.Fatal("Elements does not expose the same buffer")
	}
}

func TestUniformBounds(t *testing.T) {
	u := MakeUniformVector[uint8](1, 0)
	if _, err := u.Ref(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Ref(1) error = %v", err)
	}
	if err := u.Set(-1, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Set(-1) error = %v", err)
	}
}

func TestUniformExtraction(t *testing.T) {
	var v Value = InitUniformVector([]complex64{1 + 2i})
	u, err := ToUniformVector[complex64](v)
	if err != nil {
		t.Fatalf("ToUniformVector: %v", err)
	}
	if u.UType() != C32 {
		t.Fatalf("UType = %s, want c32", u.UType())
	}
	// same kind, wrong element type
	if _, err := ToUniformVector[float32](v); !errors.Is(err, ErrTypeMismatch) {
		t.Fatal("extraction with the wrong element type should fail")
	}
	if _, err := ToUniformVector[uint8](Nil); !errors.Is(err, ErrTypeMismatch) {
		t.Fatal("extraction from a non-uniform value should fail")
	}
}

func TestBlob(t *testing.T) {
	b := MakeBlob([]byte{1, 2, 3})
	if b.UType() != U8 {
		t.Fatalf("blob UType = %s, want u8", b.UType())
	}
	data, err := BlobData(b)
	if err != nil {
		t.Fatalf("BlobData: %v", err)
	}
	if string(data) != "\x01\x02\x03" {
		t.Fatalf("BlobData = %v", data)
	}
	if _, err := BlobData(MakeUniformVector[int8](1, 0)); !errors.Is(err, ErrTypeMismatch) {
		t.Fatal("BlobData on an s8 vector should fail")
	}
}

func TestUniformPrinting(t *testing.T) {
	u := InitUniformVector([]int32{1, -2})
	if got := u.String(); got != "#[s32](1 -2)" {
		t.Fatalf("String = %q", got)
	}
}
