package symbols

import (
	"sort"
	"sync/atomic"
)

// SymbolMap describes a selection of the symbols in the universe.
//
// A SymbolMap starts out empty. Populate it with AddByTags and
// RemoveByTags, or with a selector expression via ApplySelectors, then
// query it with HasSymbol or walk the sorted view returned by Symbols.
// The sorted view is rebuilt lazily: mutations only mark the map dirty,
// and the rebuild happens on the next query. This keeps batched
// mutations cheap.
//
// Ref and Unref are safe for concurrent use. All other operations
// require external synchronization when a map is shared across
// goroutines.
type SymbolMap struct {
	desired     map[int]struct{} // universe indices; nil means no selection
	syms        []Symbol         // sorted by Char, sentinel-terminated
	needRebuild bool
	refs        atomic.Int32
}

// NewSymbolMap creates an empty symbol map with a reference count of
// one.
func NewSymbolMap() *SymbolMap {
	m := &SymbolMap{syms: []Symbol{{}}}
	m.refs.Store(1)
	return m
}

// Ref adds a reference to m. Calling Ref on a released map is a
// programming error and panics.
func (m *SymbolMap) Ref() {
	if m.refs.Load() <= 0 {
		panic("symbols: Ref on released SymbolMap")
	}
	m.refs.Add(1)
}

// Unref removes a reference from m. Dropping the last reference
// deinitializes the map; using it afterwards is a programming error.
// Unref on an already released map panics.
func (m *SymbolMap) Unref() {
	if m.refs.Load() <= 0 {
		panic("symbols: Unref on released SymbolMap")
	}
	if m.refs.Add(-1) == 0 {
		m.desired = nil
		m.syms = nil
		m.needRebuild = false
	}
}

// CopyContents replaces m's contents with a deep copy of src's desired
// membership. The cached sorted view is discarded, m is marked dirty and
// its reference count is reset to one. m and src must be distinct.
func (m *SymbolMap) CopyContents(src *SymbolMap) {
	if m == src {
		panic("symbols: CopyContents with dest == src")
	}
	m.desired = copyIndexSet(src.desired)
	m.syms = nil
	m.needRebuild = true
	m.refs.Store(1)
}

func copyIndexSet(src map[int]struct{}) map[int]struct{} {
	dest := make(map[int]struct{}, len(src))
	for i := range src {
		dest[i] = struct{}{}
	}
	return dest
}

func addByTags(set map[int]struct{}, tags Tags) {
	t := table()
	for i := 0; t[i].Char != 0; i++ {
		if t[i].Tags&tags != 0 {
			set[i] = struct{}{}
		}
	}
}

func removeByTags(set map[int]struct{}, tags Tags) {
	t := table()
	for i := 0; t[i].Char != 0; i++ {
		if t[i].Tags&tags != 0 {
			delete(set, i)
		}
	}
}

// AddByTags adds every universe symbol whose tags intersect tags to the
// selection. Idempotent; TagNone is a no-op.
func (m *SymbolMap) AddByTags(tags Tags) {
	if m.desired == nil {
		m.desired = make(map[int]struct{})
	}
	addByTags(m.desired, tags)
	m.needRebuild = true
}

// RemoveByTags removes every universe symbol whose tags intersect tags
// from the selection. Idempotent.
func (m *SymbolMap) RemoveByTags(tags Tags) {
	if m.desired == nil {
		m.desired = make(map[int]struct{})
	}
	removeByTags(m.desired, tags)
	m.needRebuild = true
}

// Prepare rebuilds the sorted view if the selection changed since the
// last rebuild. Queries call it implicitly; callers that want to control
// when the O(k log k) sort happens can invoke it up front.
func (m *SymbolMap) Prepare() {
	if !m.needRebuild {
		return
	}
	m.rebuild()
}

func (m *SymbolMap) rebuild() {
	t := table()
	syms := make([]Symbol, 0, len(m.desired)+1)
	for i := range m.desired {
		syms = append(syms, t[i])
	}
	sort.Slice(syms, func(a, b int) bool { return syms[a].Char < syms[b].Char })
	syms = append(syms, Symbol{}) // sentinel
	m.syms = syms
	m.needRebuild = false
}

// HasSymbol reports whether r is part of the selection, rebuilding the
// sorted view first if needed. The sentinel codepoint (0) and codepoints
// outside the universe are never members.
func (m *SymbolMap) HasSymbol(r rune) bool {
	m.Prepare()
	n := len(m.syms) - 1 // exclude sentinel
	i := sort.Search(n, func(i int) bool { return m.syms[i].Char >= r })
	return i < n && m.syms[i].Char == r
}

// Symbols returns the selection sorted ascending by codepoint, without
// the trailing sentinel, rebuilding first if needed. The returned slice
// is a view into the map's cache: it is only valid until the next
// mutation and must not be modified.
func (m *SymbolMap) Symbols() []Symbol {
	m.Prepare()
	return m.syms[:len(m.syms)-1]
}
