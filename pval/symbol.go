package pval

import (
	"sync"
	"sync/atomic"
)

type symbolValue struct {
	name string
}

func (*symbolValue) Kind() Kind       { return KSymbol }
func (s *symbolValue) String() string { return s.name }

// symtab is the process-wide interning table. Insertion goes through
// sync.Map.LoadOrStore so two goroutines racing to intern the same name
// always end up with the one canonical symbol; the loser's allocation is
// discarded. Entries are never removed.
type symtab struct {
	m sync.Map // map[string]*symbolValue
	n atomic.Int64
}

var (
	tabInstance *symtab
	tabOnce     sync.Once
)

func table() *symtab {
	tabOnce.Do(func() {
		tabInstance = &symtab{}
	})
	return tabInstance
}

func (t *symtab) loadOrStore(name string) *symbolValue {
	if v, ok := t.m.Load(name); ok {
		return v.(*symbolValue)
	}
	s := &symbolValue{name: name}
	actual, loaded := t.m.LoadOrStore(name, s)
	if loaded {
		return actual.(*symbolValue)
	}
	t.n.Add(1)
	return s
}

// Intern returns the canonical symbol for name. Two calls with equal
// content return the identical Value, so symbols may be compared with Eq.
func Intern(name string) Value {
	return table().loadOrStore(name)
}

// SymbolString is the inverse of Intern. It fails only when v is not a
// symbol.
func SymbolString(v Value) (string, error) {
	s, ok := v.(*symbolValue)
	if !ok {
		return "", mismatch(KSymbol, v)
	}
	return s.name, nil
}

// InternedCount reports how many distinct symbols have been interned over
// the process lifetime. Diagnostic only.
func InternedCount() int64 {
	return table().n.Load()
}
