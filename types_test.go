package editorui

import "testing"

func TestRect_ContainsAndIntersects(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}
	if !r.Contains(Vec2{X: 10, Y: 10}) {
		t.Error("Expected top-left corner to be inside")
	}
	if r.Contains(Vec2{X: 30, Y: 15}) {
		t.Error("Expected right edge to be outside")
	}
	if !r.Intersects(Rect{X: 29, Y: 29, W: 5, H: 5}) {
		t.Error("Expected overlapping rects to intersect")
	}
	if r.Intersects(Rect{X: 30, Y: 10, W: 5, H: 5}) {
		t.Error("Expected abutting rects not to intersect")
	}
	if got := r.Inset(15); got.W != 0 || got.H != 0 {
		t.Errorf("Expected inset to stop at zero size, got %+v", got)
	}
}

func TestColors(t *testing.T) {
	if c := RGBA(1, 2, 3, 4); c != 0x04030201 {
		t.Errorf("Expected 0x04030201, got %#x", c)
	}
	c, err := ColorFromHex("#ff0000", 1)
	if err != nil || c != red {
		t.Errorf("Expected red, got %#x (%v)", c, err)
	}
	if _, err := ColorFromHex("nope", 1); err == nil {
		t.Error("Expected invalid hex to fail")
	}
	if got := WithAlpha(ColorWhite, 0.5); got != 0x7FFFFFFF {
		t.Errorf("Expected half-transparent white, got %#x", got)
	}
	if got := BlendColors(RGBA(0, 0, 0, 0), RGBA(0, 0, 0, 255), 0.5); got>>24 != 127 {
		t.Errorf("Expected blended alpha 127, got %d", got>>24)
	}
}

func TestText_Graphemes(t *testing.T) {
	accented := "ae\u0301x"
	if n := graphemeCount(accented); n != 3 {
		t.Errorf("Expected 3 graphemes, got %d", n)
	}
	if got := truncateGraphemes(accented, 2); got != "ae\u0301" {
		t.Errorf("Expected combining mark kept with its base, got %q", got)
	}
	if got := dropLastGrapheme("ae\u0301"); got != "a" {
		t.Errorf("Expected a, got %q", got)
	}
	if got := dropLastGrapheme(""); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}

	style := DefaultStyle()
	if got := TruncateText(style, "abcdefgh", 5*style.CharWidth); got != "abc.." {
		t.Errorf("Expected abc.., got %q", got)
	}
	if got := TruncateText(style, "abc", 100); got != "abc" {
		t.Errorf("Expected text that fits to be unchanged, got %q", got)
	}
}
