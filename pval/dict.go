package pval

import (
	"strings"
	"sync"

	radix "github.com/hashicorp/go-immutable-radix/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// dictEntry keeps the original key alongside the value; the radix tree is
// addressed by the key's canonical encoding, which the entry does not need
// to retain.
type dictEntry struct {
	key Value
	val Value
}

// Dict is a persistent dictionary: Add and Delete return a new dictionary
// sharing unchanged structure with the receiver, which stays valid and
// untouched. Key equality is structural equality (identity for opaque-any
// keys), realized by addressing entries with a canonical byte encoding of
// the key. Iteration order follows that encoding, so it is stable for an
// instance and identical across structurally equal dictionaries.
type Dict struct {
	tree *radix.Tree[*dictEntry]
}

func (*Dict) Kind() Kind { return KDict }

func (d *Dict) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	d.iterate(func(e *dictEntry) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(e.key.String())
		sb.WriteString(": ")
		sb.WriteString(e.val.String())
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

// MakeDict returns an empty dictionary.
func MakeDict() *Dict {
	return &Dict{tree: radix.New[*dictEntry]()}
}

func (d *Dict) Len() int { return d.tree.Len() }

// Add returns a dictionary with key bound to val. An existing binding for
// an equal key is replaced; the key count grows only for a new key.
func (d *Dict) Add(key, val Value) *Dict {
	kb := mustKeyBytes(key)
	t, _, _ := d.tree.Insert(kb, &dictEntry{key: key, val: val})
	return &Dict{tree: t}
}

// Delete returns a dictionary without key. Deleting an absent key returns
// an equal dictionary.
func (d *Dict) Delete(key Value) *Dict {
	kb := mustKeyBytes(key)
	t, _, ok := d.tree.Delete(kb)
	if !ok {
		return d
	}
	return &Dict{tree: t}
}

func (d *Dict) HasKey(key Value) bool {
	_, ok := d.tree.Get(mustKeyBytes(key))
	return ok
}

// Ref returns the value bound to key, or notFound verbatim when key is
// absent. The sentinel comes back as the identical reference, so callers
// can test presence with Eq against their own sentinel.
func (d *Dict) Ref(key, notFound Value) Value {
	e, ok := d.tree.Get(mustKeyBytes(key))
	if !ok {
		return notFound
	}
	return e.val
}

// Lookup is the sentinel-free form; an absent key is ErrKeyNotFound.
func (d *Dict) Lookup(key Value) (Value, error) {
	e, ok := d.tree.Get(mustKeyBytes(key))
	if !ok {
		return nil, ErrKeyNotFound
	}
	return e.val, nil
}

// Update returns a dictionary holding every binding of d plus every binding
// of o, with o winning on key collisions.
func (d *Dict) Update(o *Dict) *Dict {
	out := d
	o.iterate(func(e *dictEntry) bool {
		out = out.Add(e.key, e.val)
		return true
	})
	return out
}

func (d *Dict) iterate(fn func(e *dictEntry) bool) {
	it := d.tree.Root().Iterator()
	for _, e, ok := it.Next(); ok; _, e, ok = it.Next() {
		if !fn(e) {
			return
		}
	}
}

// Keys returns a snapshot of the keys in canonical order.
func (d *Dict) Keys() []Value {
	out := make([]Value, 0, d.Len())
	d.iterate(func(e *dictEntry) bool {
		out = append(out, e.key)
		return true
	})
	return out
}

// Values returns a snapshot of the values, ordered like Keys.
func (d *Dict) Values() []Value {
	out := make([]Value, 0, d.Len())
	d.iterate(func(e *dictEntry) bool {
		out = append(out, e.val)
		return true
	})
	return out
}

// Items returns the bindings as a proper list of (key . value) pairs,
// ordered like Keys.
func (d *Dict) Items() Value {
	pairs := make([]Value, 0, d.Len())
	d.iterate(func(e *dictEntry) bool {
		pairs = append(pairs, Cons(e.key, e.val))
		return true
	})
	return List(pairs...)
}

func ToDict(v Value) (*Dict, error) {
	d, ok := v.(*Dict)
	if !ok {
		return nil, mismatch(KDict, v)
	}
	return d, nil
}

func mustKeyBytes(key Value) []byte {
	kb, err := encodeKey(key)
	if err != nil {
		// encodeKey accepts every kind, any included; reaching here
		// means a new kind was added without extending the encoder.
		panic(err)
	}
	return kb
}

const symbolKeyCacheSize = 1024

var (
	keyCache     *lru.Cache[*symbolValue, []byte]
	keyCacheOnce sync.Once
)

// symbolKeyBytes memoizes the canonical encoding of symbol keys, by far the
// most common dictionary key kind. Symbols are interned, so the pointer is
// a complete cache key.
func symbolKeyBytes(s *symbolValue) ([]byte, error) {
	keyCacheOnce.Do(func() {
		keyCache, _ = lru.New[*symbolValue, []byte](symbolKeyCacheSize)
	})
	if kb, ok := keyCache.Get(s); ok {
		return kb, nil
	}
	n := len(s.name)
	buf := make([]byte, 0, 5+n)
	buf = append(buf, tagSymbol, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	buf = append(buf, s.name...)
	keyCache.Add(s, buf)
	return buf, nil
}
