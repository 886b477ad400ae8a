/*
Package glshell is a minimal 2D OpenGL application shell: one window, an event
loop, and consistent input state. It draws nothing but a cleared frame, which
makes it a starting point for small 2D programs.

# Overview

An App receives one call per window event and keeps:

  - WindowState: drawable size, windowed position and the fullscreen flag
  - two KeyTables, one for ASCII keys and one for special keys
  - pointer button state for left, middle, right and both wheel directions
  - the last observed pointer position

Everything the App asks of the windowing library goes through the Host
interface, so the package itself has no cgo dependency. The backend/opengl
package provides a GLFW implementation.

# Quick Start

	if err := opengl.InitGraphics(); err != nil {
	    log.Fatal(err)
	}
	defer opengl.TerminateGraphics()

	window, err := opengl.NewWindow(glshell.WithMenu(true))
	if err != nil {
	    log.Fatal(err)
	}
	defer window.Destroy()

	window.Run()

# Keyboard

	ESC              Exit with status 0
	f                Toggle fullscreen (lowercase only, on press)

# Pointer Buttons

	0  left
	1  middle
	2  right
	3  scroll up
	4  scroll down

The wheel reports a press immediately followed by a release for each notch.

# Context Menu

With WithMenu(true) the right button opens:

	FullScreen  >  Enter FullScreen
	               Leave FullScreen
	Quit

Enter and Leave do nothing when the window is already in that state. Quit
exits with status 0. While the menu is open, pointer buttons go to the menu
and do not reach the App.

# Projection

Initialize sets an orthographic projection mapping the unit square onto the
window with the origin at the top-left corner, so y grows downwards:

	glshell.Ortho(0, 1, 1, 0, -1, 1)

The opengl backend's Renderer.Draw renders a DrawList through it, so a draw
hook can place shapes in unit coordinates (see example/draw).

# Redraw

Frames are drawn after damage (resize, expose, fullscreen changes). Enable
WithIdleRedraw(true) to redraw on every idle tick instead, which renders as
fast as the loop spins.
*/
package glshell
