package editorui

// ListClipper computes the visible range of a list of equal-height rows.
// PropertyPanel uses it to lay out and draw only the rows in view.
//
//	clipper := NewListClipper(len(rows), style.RowHeight, r.H, scroll)
//	for i := clipper.StartIdx; i < clipper.EndIdx; i++ {
//	    y := clipper.ItemY(i, r.Y, scroll)
//	}
type ListClipper struct {
	StartIdx   int // first visible row (inclusive)
	EndIdx     int // last visible row (exclusive)
	ItemHeight float32
	TotalItems int
}

// NewListClipper returns the rows of a list scrolled by scrollY that intersect
// a view visibleHeight tall. A partially visible row at either edge counts.
func NewListClipper(totalItems int, itemHeight, visibleHeight, scrollY float32) ListClipper {
	c := ListClipper{ItemHeight: itemHeight, TotalItems: totalItems}
	if totalItems <= 0 || itemHeight <= 0 {
		return c
	}
	c.StartIdx = min(max(int(scrollY/itemHeight), 0), totalItems)
	c.EndIdx = min(c.StartIdx+int(visibleHeight/itemHeight)+2, totalItems)
	return c
}

// ShouldRender reports whether row idx is in the visible range.
func (c ListClipper) ShouldRender(idx int) bool {
	return idx >= c.StartIdx && idx < c.EndIdx
}

// ItemY returns the top of row idx for a list whose top edge is baseY.
func (c ListClipper) ItemY(idx int, baseY, scrollY float32) float32 {
	return baseY + float32(idx)*c.ItemHeight - scrollY
}

// VisibleCount returns the number of rows in the visible range.
func (c ListClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}

// ContentHeight returns the height of all rows.
func (c ListClipper) ContentHeight() float32 {
	return float32(c.TotalItems) * c.ItemHeight
}

// MaxScroll returns the largest scroll offset that keeps the view filled.
func (c ListClipper) MaxScroll(visibleHeight float32) float32 {
	return max(c.ContentHeight()-visibleHeight, 0)
}

// ScrollToItem returns the scroll offset that brings row idx into view,
// moving as little as possible. Out-of-range rows leave the scroll unchanged.
func (c ListClipper) ScrollToItem(idx int, currentScroll, visibleHeight float32) float32 {
	if idx < 0 || idx >= c.TotalItems {
		return currentScroll
	}
	top := float32(idx) * c.ItemHeight
	bottom := top + c.ItemHeight
	switch {
	case top < currentScroll:
		return top
	case bottom > currentScroll+visibleHeight:
		return bottom - visibleHeight
	}
	return currentScroll
}
