package symbols

import "testing"

// members returns the selection as a rune set for comparison.
func members(m *SymbolMap) map[rune]bool {
	set := make(map[rune]bool)
	for _, sym := range m.Symbols() {
		set[sym.Char] = true
	}
	return set
}

// universeMembers returns the runes of all universe symbols whose tags
// intersect tags.
func universeMembers(tags Tags) map[rune]bool {
	set := make(map[rune]bool)
	for _, sym := range Universe() {
		if sym.Tags&tags != 0 {
			set[sym.Char] = true
		}
	}
	return set
}

func sameMembers(t *testing.T, got, want map[rune]bool) {
	t.Helper()
	for r := range want {
		if !got[r] {
			t.Errorf("missing U+%04X", r)
		}
	}
	for r := range got {
		if !want[r] {
			t.Errorf("unexpected U+%04X", r)
		}
	}
}

func TestNewSymbolMapEmpty(t *testing.T) {
	m := NewSymbolMap()
	defer m.Unref()

	if n := len(m.Symbols()); n != 0 {
		t.Errorf("new map has %d symbols, want 0", n)
	}
	if m.HasSymbol(' ') {
		t.Error("new map contains the space symbol")
	}
}

func TestAddByTags(t *testing.T) {
	m := NewSymbolMap()
	defer m.Unref()

	m.AddByTags(TagBlock)
	sameMembers(t, members(m), universeMembers(TagBlock))
}

func TestAddByTagsUnion(t *testing.T) {
	m := NewSymbolMap()
	defer m.Unref()

	m.AddByTags(TagBlock)
	m.AddByTags(TagBorder)

	want := universeMembers(TagBlock)
	for r := range universeMembers(TagBorder) {
		want[r] = true
	}
	sameMembers(t, members(m), want)
}

func TestAddByTagsIdempotent(t *testing.T) {
	m := NewSymbolMap()
	defer m.Unref()

	m.AddByTags(TagQuad)
	once := len(m.Symbols())
	m.AddByTags(TagQuad)
	twice := len(m.Symbols())

	if once != twice {
		t.Errorf("symbol count after second add = %d, want %d", twice, once)
	}
}

func TestAddByTagsNoneIsNoop(t *testing.T) {
	m := NewSymbolMap()
	defer m.Unref()

	m.AddByTags(TagNone)
	if n := len(m.Symbols()); n != 0 {
		t.Errorf("AddByTags(TagNone) selected %d symbols, want 0", n)
	}
}

func TestRemoveByTagsInverse(t *testing.T) {
	m := NewSymbolMap()
	defer m.Unref()

	m.AddByTags(TagBlock)
	before := members(m)

	// Dot symbols are disjoint from block symbols, so removing what was
	// just added restores the original membership.
	m.AddByTags(TagDot)
	m.RemoveByTags(TagDot)
	sameMembers(t, members(m), before)

	m.RemoveByTags(TagDot)
	sameMembers(t, members(m), before)
}

func TestMaterializedSortedWithSentinel(t *testing.T) {
	m := NewSymbolMap()
	defer m.Unref()

	m.AddByTags(TagBorder | TagQuad | TagBraille)
	m.Prepare()

	if m.needRebuild {
		t.Error("needRebuild still set after Prepare")
	}
	if len(m.syms) != len(m.desired)+1 {
		t.Errorf("materialized length = %d, want %d", len(m.syms), len(m.desired)+1)
	}
	if last := m.syms[len(m.syms)-1]; last.Char != 0 {
		t.Errorf("materialized array ends with U+%04X, want zero sentinel", last.Char)
	}
	for i := 1; i < len(m.syms)-1; i++ {
		if m.syms[i].Char <= m.syms[i-1].Char {
			t.Fatalf("materialized array not strictly ascending at index %d", i)
		}
	}
}

func TestPrepareIsLazyAndIdempotent(t *testing.T) {
	m := NewSymbolMap()
	defer m.Unref()

	m.AddByTags(TagBlock)
	if !m.needRebuild {
		t.Fatal("AddByTags did not mark the map dirty")
	}

	first := m.Symbols()
	if m.needRebuild {
		t.Error("map still dirty after Symbols")
	}

	// No mutation in between: the cache must be reused, not rebuilt.
	second := m.Symbols()
	if &first[0] != &second[0] {
		t.Error("Symbols rebuilt the cache without a mutation")
	}
}

func TestHasSymbol(t *testing.T) {
	m := NewSymbolMap()
	defer m.Unref()

	m.AddByTags(TagStipple)

	// Implicit materialization: no Prepare call before the query.
	if !m.HasSymbol('░') {
		t.Error("HasSymbol('░') = false, want true")
	}
	if m.HasSymbol('█') {
		t.Error("HasSymbol('█') = true, want false")
	}
	if m.HasSymbol(0) {
		t.Error("HasSymbol(0) = true; the sentinel codepoint is not a member")
	}
	if m.HasSymbol('A') {
		t.Error("HasSymbol('A') = true for a codepoint outside the universe")
	}
}

func TestCopyContents(t *testing.T) {
	src := NewSymbolMap()
	defer src.Unref()
	src.AddByTags(TagBorder)

	dest := NewSymbolMap()
	defer dest.Unref()
	dest.CopyContents(src)

	sameMembers(t, members(dest), members(src))

	// Mutating either side must not leak into the other.
	dest.AddByTags(TagDot)
	sameMembers(t, members(src), universeMembers(TagBorder))

	src.RemoveByTags(TagBorder)
	want := universeMembers(TagBorder)
	for r := range universeMembers(TagDot) {
		want[r] = true
	}
	sameMembers(t, members(dest), want)
}

func TestRefUnref(t *testing.T) {
	m := NewSymbolMap()
	m.Ref()
	m.Unref()
	m.Unref() // drops the last reference

	mustPanic(t, "Ref after release", func() { m.Ref() })
	mustPanic(t, "Unref after release", func() { m.Unref() })
}

func TestCopyContentsSelfPanics(t *testing.T) {
	m := NewSymbolMap()
	defer m.Unref()

	mustPanic(t, "CopyContents(m, m)", func() { m.CopyContents(m) })
}

func mustPanic(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", what)
		}
	}()
	f()
}
