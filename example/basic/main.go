// Basic opens an 800x600 "OpenGL 2D" window with a white background and
// tracks keyboard and pointer input.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/basic/   # run this example
//
// Press f to toggle fullscreen and ESC to quit.
package main

import (
	"fmt"
	"os"
	"runtime"

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

	window, err := opengl.NewWindow()
	if err != nil {
		return err
	}
	defer window.Destroy()

	window.Run()
	return nil
}
