// Command gen renders the context menu in its states, captures framebuffer
// pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glshell"
	"github.com/go-theft-auto/glshell/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single menu screenshot to capture.
type screenshot struct {
	name   string                     // filename without extension
	width  int                        // viewport width
	height int                        // viewport height
	pose   func(p *glshell.MenuPopup) // pointer movement applied after opening
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(glshell.DefaultWidth, glshell.DefaultHeight, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(glshell.DefaultWidth, glshell.DefaultHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	menu := glshell.NewContextMenu()
	atlas := opengl.NewLabelAtlas(renderer, opengl.LoadLabelFace(), append(menu.Labels(), glshell.SubmenuMarker))
	defer renderer.DeleteTexture(atlas.Texture())

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, atlas, menu, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, atlas *opengl.LabelAtlas, menu *glshell.Menu, s screenshot, outDir string) error {
	// Only update the renderer projection; the hidden window stays at the
	// default size, larger than every screenshot.
	renderer.Resize(s.width, s.height)

	popup := glshell.NewMenuPopup(glshell.DefaultMenuMetrics())
	popup.Open(menu, 10, 10, glshell.Vec2{X: float32(s.width), Y: float32(s.height)})
	if s.pose != nil {
		s.pose(popup)
	}

	renderer.SetViewport(0, 0, s.width, s.height)
	renderer.SetClearColor(1, 1, 1, 1)
	renderer.Clear()

	dl := glshell.AcquireDrawList()
	popup.Draw(dl, atlas, glshell.DefaultMenuStyle())
	err := renderer.Render(dl)
	glshell.ReleaseDrawList(dl)
	if err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// hoverRow moves the pointer to the centre of a row.
func hoverRow(p *glshell.MenuPopup, submenu bool, index int) {
	root, sub := p.Layout()
	rows := root
	if submenu {
		rows = sub
	}
	if index >= len(rows) {
		return
	}
	r := rows[index].Rect
	p.Hover(r.X+r.W/2, r.Y+r.H/2)
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "menu", width: 200, height: 80},
		{name: "menu_hover_quit", width: 200, height: 80, pose: func(p *glshell.MenuPopup) {
			hoverRow(p, false, 1)
		}},
		{name: "menu_fullscreen", width: 360, height: 100, pose: func(p *glshell.MenuPopup) {
			hoverRow(p, false, 0)
			hoverRow(p, true, 0)
		}},
	}
}
