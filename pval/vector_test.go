package pval

import (
	"errors"
	"testing"
)

func TestMakeVectorFill(t *testing.T) {
	fill := Intern("empty")
	v := MakeVector(3, fill)
	if v.Len() != 3 {
		t.Fatalf("Len = %d, want 3", v.Len())
	}
	for i := 0; i < 3; i++ {
		el, err := v.Ref(i)
		if err != nil {
			t.Fatalf("Ref(%d): %v", i, err)
		}
		if !Eq(el, fill) {
			t.Fatalf("slot %d = %s, want the fill value", i, el)
		}
	}
}

func TestVectorSetVisibleThroughAliases(t *testing.T) {
	v := MakeVector(2, Nil)
	alias := v // second reference to the same vector

	if err := v.Set(1, FromInt64(99)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := alias.Ref(1)
	if err != nil {
		t.Fatalf("Ref: %v", err)
	}
	if !Equal(got, FromInt64(99)) {
		t.Fatalf("alias sees %s, want 99", got)
	}
}

func TestVectorBounds(t *testing.T) {
	v := MakeVector(2, Nil)
	if _, err := v.Ref(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Ref(2) error = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := v.Ref(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Ref(-1) error = %v, want ErrIndexOutOfRange", err)
	}
	if err := v.Set(5, Nil); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Set(5) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestVectorFill(t *testing.T) {
	v := VectorOf(FromInt64(1), FromInt64(2), FromInt64(3))
	v.Fill(True)
	for i := 0; i < v.Len(); i++ {
		el, _ := v.Ref(i)
		if el != True {
			t.Fatalf("slot %d = %s after Fill", i, el)
		}
	}
}

func TestToVector(t *testing.T) {
	var v Value = MakeVector(1, Nil)
	if _, err := ToVector(v); err != nil {
		t.Fatalf("ToVector: %v", err)
	}
	if _, err := ToVector(Nil); !errors.Is(err, ErrTypeMismatch) {
		t.Fatal("ToVector(Nil) should fail")
	}
}
