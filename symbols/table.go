package symbols

import (
	"sort"
	"sync"
)

// Symbol is one entry in the global symbol universe: a renderable
// codepoint and the category tags it belongs to.
type Symbol struct {
	Char rune
	Tags Tags
}

const (
	brailleBase  = 0x2800
	brailleCount = 256
)

// baseSymbols holds the curated universe entries in ascending codepoint
// order. The Braille patterns are generated and appended at init.
var baseSymbols = []Symbol{
	{0x0020, TagSpace},                           // space
	{0x00b7, TagDot},                             // ·
	{0x2022, TagDot},                             // •
	{0x2219, TagDot},                             // ∙
	{0x2500, TagBorder},                          // ─
	{0x2502, TagBorder},                          // │
	{0x250c, TagBorder},                          // ┌
	{0x2510, TagBorder},                          // ┐
	{0x2514, TagBorder},                          // └
	{0x2518, TagBorder},                          // ┘
	{0x251c, TagBorder},                          // ├
	{0x2524, TagBorder},                          // ┤
	{0x252c, TagBorder},                          // ┬
	{0x2534, TagBorder},                          // ┴
	{0x253c, TagBorder},                          // ┼
	{0x2550, TagBorder},                          // ═
	{0x2551, TagBorder},                          // ║
	{0x256d, TagBorder},                          // ╭
	{0x256e, TagBorder},                          // ╮
	{0x256f, TagBorder},                          // ╯
	{0x2570, TagBorder},                          // ╰
	{0x2571, TagBorder | TagDiagonal},            // ╱
	{0x2572, TagBorder | TagDiagonal},            // ╲
	{0x2573, TagBorder | TagDiagonal},            // ╳
	{0x2580, TagBlock | TagHHalf | TagInverted},  // ▀
	{0x2581, TagBlock},                           // ▁
	{0x2582, TagBlock},                           // ▂
	{0x2583, TagBlock},                           // ▃
	{0x2584, TagBlock | TagHHalf},                // ▄
	{0x2585, TagBlock},                           // ▅
	{0x2586, TagBlock},                           // ▆
	{0x2587, TagBlock},                           // ▇
	{0x2588, TagBlock | TagSolid | TagInverted},  // █
	{0x2589, TagBlock},                           // ▉
	{0x258a, TagBlock},                           // ▊
	{0x258b, TagBlock},                           // ▋
	{0x258c, TagBlock | TagVHalf},                // ▌
	{0x258d, TagBlock},                           // ▍
	{0x258e, TagBlock},                           // ▎
	{0x258f, TagBlock},                           // ▏
	{0x2590, TagBlock | TagVHalf | TagInverted},  // ▐
	{0x2591, TagStipple},                         // ░
	{0x2592, TagStipple},                         // ▒
	{0x2593, TagStipple},                         // ▓
	{0x2594, TagBlock | TagInverted},             // ▔
	{0x2595, TagBlock | TagInverted},             // ▕
	{0x2596, TagQuad},                            // ▖
	{0x2597, TagQuad},                            // ▗
	{0x2598, TagQuad},                            // ▘
	{0x2599, TagQuad | TagInverted},              // ▙
	{0x259a, TagQuad},                            // ▚
	{0x259b, TagQuad | TagInverted},              // ▛
	{0x259c, TagQuad | TagInverted},              // ▜
	{0x259d, TagQuad},                            // ▝
	{0x259e, TagQuad | TagInverted},              // ▞
	{0x259f, TagQuad | TagInverted},              // ▟
	{0x25aa, TagDot},                             // ▪
	{0x25e2, TagDiagonal},                        // ◢
	{0x25e3, TagDiagonal},                        // ◣
	{0x25e4, TagDiagonal},                        // ◤
	{0x25e5, TagDiagonal},                        // ◥
}

// symbolTable is the process-wide symbol universe: strictly ascending by
// codepoint, unique, terminated by a zero-Char sentinel. Built once on
// first use and immutable afterwards.
var (
	symbolTable []Symbol
	tableOnce   sync.Once
)

func initTable() {
	t := make([]Symbol, 0, len(baseSymbols)+brailleCount+1)
	t = append(t, baseSymbols...)
	for i := 0; i < brailleCount; i++ {
		t = append(t, Symbol{Char: brailleBase + rune(i), Tags: TagBraille})
	}
	t = append(t, Symbol{}) // sentinel
	symbolTable = t
}

func table() []Symbol {
	tableOnce.Do(initTable)
	return symbolTable
}

// Universe returns the full symbol universe in ascending codepoint
// order, without the trailing sentinel. The returned slice is shared and
// must not be modified.
func Universe() []Symbol {
	t := table()
	return t[:len(t)-1]
}

// LookupTags returns the category tags of r, or false when r is not part
// of the universe.
func LookupTags(r rune) (Tags, bool) {
	u := Universe()
	i := sort.Search(len(u), func(i int) bool { return u[i].Char >= r })
	if i < len(u) && u[i].Char == r {
		return u[i].Tags, true
	}
	return TagNone, false
}
