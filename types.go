package glshell

// Vec2 represents a 2D point in window pixels.
type Vec2 struct {
	X, Y float32
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Vertex represents a vertex for overlay rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd is a run of indices sharing one texture.
type DrawCmd struct {
	ElemCount    uint32 // Number of indices to draw
	TextureID    uint32 // OpenGL texture ID (0 = no texture)
	VertexOffset uint32 // Offset into vertex buffer
	IndexOffset  uint32 // Offset into index buffer
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite     uint32 = 0xFFFFFFFF
	ColorBlack     uint32 = 0xFF000000
	ColorGray      uint32 = 0xFF808080
	ColorLightGray uint32 = 0xFFC0C0C0
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}
