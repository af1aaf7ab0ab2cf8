package deco

import "testing"

func TestTextWidthSumsPerCharWidths(t *testing.T) {
	f := &Font{
		minChar: 'a',
		maxChar: 'c',
		widths:  []int16{5, 7, 11},
	}

	tests := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "a", want: 5},
		{text: "abc", want: 23},
		{text: "cc", want: 22},
	}

	for _, tt := range tests {
		if got := f.TextWidth(tt.text); got != tt.want {
			t.Fatalf("TextWidth(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestTextWidthUsesDefaultForOutOfRangeChars(t *testing.T) {
	f := &Font{
		minChar:      'a',
		maxChar:      'b',
		widths:       []int16{5, 7},
		defaultWidth: 3,
	}

	// 'Z' is below minChar, 'z' above maxChar.
	if got := f.TextWidth("ZaZz"); got != 5+3*3 {
		t.Fatalf("TextWidth = %d, want %d", got, 5+3*3)
	}
}

func TestFontHeight(t *testing.T) {
	f := &Font{Ascent: 11, Descent: 3}
	if got := f.Height(); got != 14 {
		t.Fatalf("Height = %d, want 14", got)
	}
}
