package editorui

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/rivo/uniseg"
)

// Renderer consumes finished draw lists. The OpenGL backend implements it.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// Font atlas layout shared with renderer backends: printable ASCII 32-127
// laid out row-major in a FontAtlasCols x FontAtlasRows grid.
const (
	FontAtlasCols = 16
	FontAtlasRows = 6
)

// FontTextureID is the texture slot AddText binds. Backends map it to their atlas.
const FontTextureID uint32 = 1

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for a frame.
// It batches primitives by texture and clip rect.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32
	idxCmdOffset uint32
}

// Clear resets the DrawList for a new frame, keeping allocated capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect pushes a clip rectangle. Subsequent primitives are clipped to it.
func (dl *DrawList) PushClipRect(r Rect) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{r.X, r.Y, r.X + r.W, r.Y + r.H}
	dl.splitDraw()
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// setTexture switches the texture for subsequent primitives.
func (dl *DrawList) setTexture(textureID uint32) {
	if dl.textureID != textureID {
		dl.textureID = textureID
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) addQuad(v0, v1, v2, v3 Vertex) {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	// uint16 indices are relative to the command's vertex offset.
	if len(dl.VtxBuffer)-int(dl.cmdOffset) > 0xFFFF-4 {
		dl.splitDraw()
	}
	idx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(r Rect, color uint32) {
	if color&0xFF000000 == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	dl.setTexture(0)
	dl.addQuad(
		Vertex{Pos: [2]float32{r.X, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y + r.H}, Color: color},
		Vertex{Pos: [2]float32{r.X, r.Y + r.H}, Color: color},
	)
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(r Rect, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	t := thickness
	dl.AddRect(Rect{X: r.X, Y: r.Y, W: r.W, H: t}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + r.H - t, W: r.W, H: t}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + t, W: t, H: r.H - 2*t}, color)
	dl.AddRect(Rect{X: r.X + r.W - t, Y: r.Y + t, W: t, H: r.H - 2*t}, color)
}

// AddLine draws a line between two points as a quad of the given thickness.
func (dl *DrawList) AddLine(a, b Vec2, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dx := b.X - a.X
	dy := b.Y - a.Y
	inv := float32(1)
	if l := math32.Sqrt(dx*dx + dy*dy); l > 0 {
		inv = 1 / l
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	dl.setTexture(0)
	dl.addQuad(
		Vertex{Pos: [2]float32{a.X + nx, a.Y + ny}, Color: color},
		Vertex{Pos: [2]float32{b.X + nx, b.Y + ny}, Color: color},
		Vertex{Pos: [2]float32{b.X - nx, b.Y - ny}, Color: color},
		Vertex{Pos: [2]float32{a.X - nx, a.Y - ny}, Color: color},
	)
}

// AddText draws text with the fixed-width atlas font, one cell per grapheme.
// Graphemes outside printable ASCII render as '?'.
func (dl *DrawList) AddText(pos Vec2, text string, color uint32, style Style) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}
	cw := style.CharWidth * style.FontScale
	ch := style.CharHeight * style.FontScale

	dl.setTexture(FontTextureID)
	x := pos.X
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		r := '?'
		if len(runes) == 1 && runes[0] >= 32 && runes[0] < 127 {
			r = runes[0]
		}
		idx := int(r - 32)
		col := float32(idx % FontAtlasCols)
		row := float32(idx / FontAtlasCols)
		u0 := col / FontAtlasCols
		v0 := row / FontAtlasRows
		u1 := (col + 1) / FontAtlasCols
		v1 := (row + 1) / FontAtlasRows

		dl.addQuad(
			Vertex{Pos: [2]float32{x, pos.Y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{x + cw, pos.Y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{x + cw, pos.Y + ch}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{x, pos.Y + ch}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		x += cw
	}
}

// AddTextClipped draws text truncated to fit maxWidth.
func (dl *DrawList) AddTextClipped(pos Vec2, text string, maxWidth float32, color uint32, style Style) {
	cw := style.CharWidth * style.FontScale
	if cw <= 0 || maxWidth <= 0 {
		return
	}
	maxCells := int(maxWidth / cw)
	if graphemeCount(text) > maxCells {
		text = truncateGraphemes(text, maxCells)
	}
	dl.AddText(pos, text, color, style)
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
