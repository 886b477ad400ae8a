package glshell

import "sync"

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 256),
			IdxBuffer: make([]uint16, 0, 384),
			CmdBuffer: make([]DrawCmd, 0, 4),
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

// DrawList accumulates overlay primitives in window pixels, batched by
// texture.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	textureID    uint32
	idxCmdOffset uint32
}

// Clear resets the DrawList, keeping allocated capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.textureID = 0
	dl.idxCmdOffset = 0
}

// SetTexture sets the texture for subsequent primitives. Zero means untextured.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID && len(dl.CmdBuffer) > 0 {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw closes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) addQuad(v0, v1, v2, v3 Vertex) {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	cmd := dl.CmdBuffer[len(dl.CmdBuffer)-1]
	idx := uint16(uint32(len(dl.VtxBuffer)) - cmd.VertexOffset)
	dl.VtxBuffer = append(dl.VtxBuffer, v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(r Rect, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.SetTexture(0)
	dl.addQuad(
		Vertex{Pos: [2]float32{r.X, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y + r.H}, Color: color},
		Vertex{Pos: [2]float32{r.X, r.Y + r.H}, Color: color},
	)
}

// AddRectOutline draws a rectangle border of the given thickness.
func (dl *DrawList) AddRectOutline(r Rect, color uint32, thickness float32) {
	dl.AddRect(Rect{X: r.X, Y: r.Y, W: r.W, H: thickness}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + r.H - thickness, W: r.W, H: thickness}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
	dl.AddRect(Rect{X: r.X + r.W - thickness, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
}

// AddImage draws a textured rectangle. uv holds (u0, v0, u1, v1); the
// texture's red channel is used as coverage and tinted with color.
func (dl *DrawList) AddImage(textureID uint32, r Rect, uv [4]float32, color uint32) {
	if textureID == 0 {
		return
	}
	dl.SetTexture(textureID)
	dl.addQuad(
		Vertex{Pos: [2]float32{r.X, r.Y}, TexCoord: [2]float32{uv[0], uv[1]}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y}, TexCoord: [2]float32{uv[2], uv[1]}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y + r.H}, TexCoord: [2]float32{uv[2], uv[3]}, Color: color},
		Vertex{Pos: [2]float32{r.X, r.Y + r.H}, TexCoord: [2]float32{uv[0], uv[3]}, Color: color},
	)
}

// Finalize closes the last command and drops empty ones.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
