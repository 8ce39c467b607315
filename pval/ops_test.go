package pval

import (
	"errors"
	"testing"
)

func TestLength(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want int
	}{
		{"empty list", Nil, 0},
		{"list", List(FromInt64(1), FromInt64(2), FromInt64(3)), 3},
		{"vector", MakeVector(5, Nil), 5},
		{"tuple", MakeTuple(True, False), 2},
		{"uniform", MakeUniformVector[float32](4, 0), 4},
		{"dict", MakeDict().Add(Intern("k"), Nil), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := Length(tc.v)
			if err != nil {
				t.Fatalf("Length: %v", err)
			}
			if n != tc.want {
				t.Fatalf("Length = %d, want %d", n, tc.want)
			}
		})
	}

	if _, err := Length(FromInt64(1)); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Length(int) error = %v, want ErrTypeMismatch", err)
	}
	improper := Cons(FromInt64(1), FromInt64(2))
	if _, err := Length(improper); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Length(improper) error = %v, want ErrTypeMismatch", err)
	}
}

func TestMapList(t *testing.T) {
	in := List(FromInt64(1), FromInt64(2), FromInt64(3))

	id, err := Map(func(v Value) Value { return v }, in)
	if err != nil {
		t.Fatalf("Map(id): %v", err)
	}
	if !Equal(id, in) {
		t.Fatalf("Map(id) = %s, want %s", id, in)
	}

	doubled, err := Map(func(v Value) Value {
		n, _ := ToInt64(v)
		return FromInt64(2 * n)
	}, in)
	if err != nil {
		t.Fatalf("Map(double): %v", err)
	}
	want := List(FromInt64(2), FromInt64(4), FromInt64(6))
	if !Equal(doubled, want) {
		t.Fatalf("Map(double) = %s, want %s", doubled, want)
	}
	// input untouched
	if !Equal(in, List(FromInt64(1), FromInt64(2), FromInt64(3))) {
		t.Fatal("Map mutated its input list")
	}
}

func TestMapVectorAndTuple(t *testing.T) {
	vec := VectorOf(FromInt64(1), FromInt64(2))
	out, err := Map(func(v Value) Value { return Cons(v, Nil) }, vec)
	if err != nil {
		t.Fatalf("Map over vector: %v", err)
	}
	if out.Kind() != KVector {
		t.Fatalf("Map over vector returned %s", out.Kind())
	}
	if first, _ := out.(*Vector).Ref(0); !Equal(first, List(FromInt64(1))) {
		t.Fatalf("mapped element = %s", first)
	}

	tup := MakeTuple(FromInt64(1))
	out, err = Map(func(v Value) Value { return v }, tup)
	if err != nil {
		t.Fatalf("Map over tuple: %v", err)
	}
	if out.Kind() != KTuple {
		t.Fatalf("Map over tuple returned %s", out.Kind())
	}

	if _, err := Map(func(v Value) Value { return v }, FromDouble(1)); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Map over double error = %v, want ErrTypeMismatch", err)
	}
}

func TestReverse(t *testing.T) {
	in := List(FromInt64(1), FromInt64(2), FromInt64(3))
	out, err := Reverse(in)
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}
	want := List(FromInt64(3), FromInt64(2), FromInt64(1))
	if !Equal(out, want) {
		t.Fatalf("Reverse = %s, want %s", out, want)
	}
	if !Equal(in, List(FromInt64(1), FromInt64(2), FromInt64(3))) {
		t.Fatal("Reverse mutated its input")
	}

	empty, err := Reverse(Nil)
	if err != nil || empty != Nil {
		t.Fatalf("Reverse(Nil) = %v, %v", empty, err)
	}
	if _, err := Reverse(Cons(FromInt64(1), FromInt64(2))); !errors.Is(err, ErrTypeMismatch) {
		t.Fatal("Reverse of an improper list should fail")
	}
}
