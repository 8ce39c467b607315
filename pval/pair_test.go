package pval

import (
	"errors"
	"testing"
)

func TestConsCarCdr(t *testing.T) {
	p := Cons(FromInt64(1), FromInt64(2))
	car, err := Car(p)
	if err != nil {
		t.Fatalf("Car: %v", err)
	}
	cdr, err := Cdr(p)
	if err != nil {
		t.Fatalf("Cdr: %v", err)
	}
	if !Equal(car, FromInt64(1)) || !Equal(cdr, FromInt64(2)) {
		t.Fatalf("pair contents = (%s . %s)", car, cdr)
	}

	if _, err := Car(Nil); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Car(Nil) error = %v, want ErrTypeMismatch", err)
	}
	if _, err := Cdr(FromInt64(1)); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Cdr(int) error = %v, want ErrTypeMismatch", err)
	}
}

func TestListNth(t *testing.T) {
	l := List(FromInt64(10), FromInt64(20), FromInt64(30))
	for i, want := range []int64{10, 20, 30} {
		v, err := Nth(l, i)
		if err != nil {
			t.Fatalf("Nth(%d): %v", i, err)
		}
		if !Equal(v, FromInt64(want)) {
			t.Fatalf("Nth(%d) = %s, want %d", i, v, want)
		}
	}
	if _, err := Nth(l, 3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Nth past end error = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := Nth(l, -1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Nth(-1) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestPairPrinting(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Cons(Intern("a"), Intern("b")), "(a . b)"},
		{List(FromInt64(1), FromInt64(2), FromInt64(3)), "(1 2 3)"},
		{Cons(FromInt64(1), Cons(FromInt64(2), FromInt64(3))), "(1 2 . 3)"},
		{Nil, "()"},
	}
	for _, tc := range cases {
		if got := tc.v.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
