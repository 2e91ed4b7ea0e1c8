package symbols

import "strings"

// Tags is a bitmask of symbol category flags. A symbol may carry several
// tags; selection operations match any overlap.
type Tags uint32

const (
	// TagNone selects no symbols.
	TagNone Tags = 0

	TagSpace    Tags = 1 << 0  // Space.
	TagSolid    Tags = 1 << 1  // Solid (inverse of space).
	TagStipple  Tags = 1 << 2  // Stipple symbols.
	TagBlock    Tags = 1 << 3  // Block symbols.
	TagBorder   Tags = 1 << 4  // Border symbols.
	TagDiagonal Tags = 1 << 5  // Diagonal border symbols.
	TagDot      Tags = 1 << 6  // Symbols that look like isolated dots (excluding Braille).
	TagQuad     Tags = 1 << 7  // Quadrant block symbols.
	TagHHalf    Tags = 1 << 8  // Horizontal half block symbols.
	TagVHalf    Tags = 1 << 9  // Vertical half block symbols.
	TagInverted Tags = 1 << 10 // Inverse of a simpler symbol; one per complementary pair.
	TagBraille  Tags = 1 << 11 // Braille patterns.

	// TagHalf is the joint set of horizontal and vertical halves.
	TagHalf = TagHHalf | TagVHalf

	// TagAll selects every supported symbol.
	TagAll Tags = 1<<12 - 1
)

// tagVocabulary maps selector tag names to bitmask values. Names are
// matched case-insensitively and in full.
var tagVocabulary = []struct {
	name string
	tags Tags
}{
	{"all", TagAll},
	{"none", TagNone},
	{"space", TagSpace},
	{"solid", TagSolid},
	{"stipple", TagStipple},
	{"block", TagBlock},
	{"border", TagBorder},
	{"diagonal", TagDiagonal},
	{"dot", TagDot},
	{"quad", TagQuad},
	{"half", TagHalf},
	{"hhalf", TagHHalf},
	{"vhalf", TagVHalf},
	{"inverted", TagInverted},
	{"braille", TagBraille},
}

// ParseTag resolves a tag name to its bitmask value. Matching is
// case-insensitive. The second return value is false when the name is
// not part of the vocabulary.
func ParseTag(name string) (Tags, bool) {
	for _, entry := range tagVocabulary {
		if strings.EqualFold(entry.name, name) {
			return entry.tags, true
		}
	}
	return TagNone, false
}

// tagNames lists the single-bit tags in display order for String.
var tagNames = []struct {
	tag  Tags
	name string
}{
	{TagSpace, "space"},
	{TagSolid, "solid"},
	{TagStipple, "stipple"},
	{TagBlock, "block"},
	{TagBorder, "border"},
	{TagDiagonal, "diagonal"},
	{TagDot, "dot"},
	{TagQuad, "quad"},
	{TagHHalf, "hhalf"},
	{TagVHalf, "vhalf"},
	{TagInverted, "inverted"},
	{TagBraille, "braille"},
}

// String returns the names of the tags present in t as a comma-separated
// list, or "none"/"all" for the meta values.
func (t Tags) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagAll:
		return "all"
	}

	var names []string
	for _, entry := range tagNames {
		if t&entry.tag != 0 {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, ",")
}
