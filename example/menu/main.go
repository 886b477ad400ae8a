// Menu is the basic shell plus a right-button context menu with
// "FullScreen" (Enter FullScreen / Leave FullScreen) and "Quit".
//
//	go run ./example/menu/
package main

import (
	"fmt"
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

	window, err := opengl.NewWindow(glshell.WithMenu(true))
	if err != nil {
		return err
	}
	defer window.Destroy()

	window.Run()
	return nil
}
