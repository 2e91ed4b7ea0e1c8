package symbols

import "fmt"

// ---------------------------------------------------------------------------
// Selector expressions
// ---------------------------------------------------------------------------
//
// A selector expression picks symbols by tag name, e.g. "block,border"
// or "+block,border-dot,stipple". Clauses are separated by whitespace
// and/or commas. Each clause is an optional '+' or '-' sign followed by
// a tag name. A sign stays in effect for the following unsigned clauses:
// '+' adds matching symbols and '-' removes them, relative to the
// selection built so far. An unsigned name before any sign has been seen
// discards the selection and starts fresh.

type selectorOp int

const (
	opSet selectorOp = iota
	opAdd
	opRemove
)

type selectorClause struct {
	op   selectorOp
	tags Tags
}

// SelectorError describes a rejected selector expression. The selection
// the expression was applied to is left untouched.
type SelectorError struct {
	Offset int    // byte offset of the offending token
	Token  string // offending token; empty for a dangling sign
	msg    string
}

func (e *SelectorError) Error() string { return e.msg }

func unrecognizedTagError(name string, offset int) *SelectorError {
	return &SelectorError{
		Offset: offset,
		Token:  name,
		msg:    fmt.Sprintf("unrecognized symbol tag %q at offset %d", name, offset),
	}
}

func selectorSyntaxError(offset int) *SelectorError {
	return &SelectorError{
		Offset: offset,
		msg:    fmt.Sprintf("syntax error in symbol tag selectors at offset %d: expected tag name", offset),
	}
}

// selectorScanner tokenizes a selector expression. The grammar is pure
// ASCII, so it scans bytes.
type selectorScanner struct {
	input string
	pos   int
}

func isSelectorLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func (s *selectorScanner) eof() bool {
	return s.pos >= len(s.input)
}

// skipSeparators skips whitespace and commas between clauses.
func (s *selectorScanner) skipSeparators() {
	for !s.eof() {
		switch s.input[s.pos] {
		case ' ', '\t', ',':
			s.pos++
		default:
			return
		}
	}
}

// skipSpaces skips whitespace between a sign and its tag name.
func (s *selectorScanner) skipSpaces() {
	for !s.eof() && (s.input[s.pos] == ' ' || s.input[s.pos] == '\t') {
		s.pos++
	}
}

// readName consumes a maximal run of ASCII letters.
func (s *selectorScanner) readName() string {
	start := s.pos
	for !s.eof() && isSelectorLetter(s.input[s.pos]) {
		s.pos++
	}
	return s.input[start:s.pos]
}

// parseSelectors tokenizes and resolves a selector expression into its
// clause sequence. It touches no selection state, so a parse error costs
// nothing to back out of.
func parseSelectors(input string) ([]selectorClause, error) {
	s := selectorScanner{input: input}
	var clauses []selectorClause

	// Sign state carries across clauses until changed. opSet only
	// applies while no sign has been seen; the first bare name switches
	// it to opAdd.
	mode := opSet

	for {
		s.skipSeparators()
		if s.eof() {
			break
		}

		switch s.input[s.pos] {
		case '+':
			mode = opAdd
			s.pos++
			s.skipSpaces()
		case '-':
			mode = opRemove
			s.pos++
			s.skipSpaces()
		}

		offset := s.pos
		name := s.readName()
		if name == "" {
			return nil, selectorSyntaxError(offset)
		}

		tags, ok := ParseTag(name)
		if !ok {
			return nil, unrecognizedTagError(name, offset)
		}

		clauses = append(clauses, selectorClause{op: mode, tags: tags})
		if mode == opSet {
			mode = opAdd
		}
	}

	return clauses, nil
}

// ApplySelectors parses a selector expression and applies it to m.
// Application is all-or-nothing: on a parse error m is left exactly as
// it was and the error identifies the offending token. An empty or
// separator-only expression clears the selection, same as "none".
func (m *SymbolMap) ApplySelectors(input string) error {
	clauses, err := parseSelectors(input)
	if err != nil {
		return err
	}

	// Build the replacement membership on a working copy. Add/Remove
	// start from the current membership; Set starts fresh.
	var next map[int]struct{}
	for _, c := range clauses {
		switch c.op {
		case opSet:
			next = make(map[int]struct{})
			addByTags(next, c.tags)
		case opAdd:
			if next == nil {
				next = copyIndexSet(m.desired)
			}
			addByTags(next, c.tags)
		case opRemove:
			if next == nil {
				next = copyIndexSet(m.desired)
			}
			removeByTags(next, c.tags)
		}
	}

	m.desired = next
	m.needRebuild = true
	return nil
}
