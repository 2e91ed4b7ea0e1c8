package main

import "testing"

func TestParseCheckList(t *testing.T) {
	tests := []struct {
		input string
		want  []rune
	}{
		{"U+2588", []rune{0x2588}},
		{"u+28ff", []rune{0x28ff}},
		{"0x2502", []rune{0x2502}},
		{"9618", []rune{9618}},
		{"█", []rune{'█'}},
		{"U+2588, ░ ,0x2502", []rune{0x2588, '░', 0x2502}},
		{",,", nil},
	}

	for _, tc := range tests {
		got, err := parseCheckList(tc.input)
		if err != nil {
			t.Errorf("parseCheckList(%q) failed: %v", tc.input, err)
			continue
		}
		if len(got) != len(tc.want) {
			t.Errorf("parseCheckList(%q) = %v, want %v", tc.input, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("parseCheckList(%q)[%d] = U+%04X, want U+%04X", tc.input, i, got[i], tc.want[i])
			}
		}
	}
}

func TestParseCheckListErrors(t *testing.T) {
	for _, input := range []string{"U+ZZZZ", "ab", "block"} {
		if _, err := parseCheckList(input); err == nil {
			t.Errorf("parseCheckList(%q) succeeded, want error", input)
		}
	}
}
