// Draw is the basic shell with a draw hook. A gray square fills the middle
// of the unit square set up by the shell's projection, and follows the
// window through resizes and fullscreen.
//
//	go run ./example/draw/
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-theft-auto/glshell"
	"github.com/go-theft-auto/glshell/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := opengl.InitGraphics(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer opengl.TerminateGraphics()

	var window *opengl.Window
	window, err := opengl.NewWindow(
		glshell.WithTitle("OpenGL 2D draw hook"),
		glshell.WithMenu(true),
		glshell.WithDrawFunc(func() { drawScene(window.Renderer()) }),
	)
	if err != nil {
		return err
	}
	defer window.Destroy()

	window.Run()
	return nil
}

func drawScene(r *opengl.Renderer) {
	dl := glshell.AcquireDrawList()
	defer glshell.ReleaseDrawList(dl)

	square := glshell.Rect{X: 0.25, Y: 0.25, W: 0.5, H: 0.5}
	dl.AddRect(square, glshell.ColorGray)
	dl.AddRectOutline(square, glshell.ColorBlack, 0.005)

	if err := r.Draw(dl); err != nil {
		log.Printf("draw: %v", err)
	}
}
