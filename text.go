package editorui

import "github.com/rivo/uniseg"

// graphemeCount returns the number of user-perceived characters in s.
func graphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// truncateGraphemes returns the first n grapheme clusters of s.
func truncateGraphemes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	g := uniseg.NewGraphemes(s)
	end := 0
	for i := 0; i < n && g.Next(); i++ {
		_, end = g.Positions()
	}
	return s[:end]
}

// dropLastGrapheme removes the final grapheme cluster of s.
func dropLastGrapheme(s string) string {
	n := graphemeCount(s)
	if n == 0 {
		return s
	}
	return truncateGraphemes(s, n-1)
}

// TruncateText truncates text to fit within maxWidth, adding ".." if needed.
func TruncateText(style Style, text string, maxWidth float32) string {
	const suffix = ".."
	if style.TextWidth(text) <= maxWidth {
		return text
	}
	cw := style.CharWidth * style.FontScale
	if cw <= 0 {
		return ""
	}
	cells := int(maxWidth/cw) - graphemeCount(suffix)
	if cells <= 0 {
		return suffix
	}
	return truncateGraphemes(text, cells) + suffix
}
