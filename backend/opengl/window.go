package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/thin"
	"github.com/go-theft-auto/thin/event"
)

// Window is a GLFW window. It implements thin.Window.
type Window struct {
	loop    *EventLoop
	glw     *glfw.Window
	display *Display

	// GLFW cannot query these back, so they are remembered from creation.
	title   string
	buttons thin.WindowButtons
	theme   thin.Theme

	redraw    bool
	hasCursor bool
	cursorX   float64
	cursorY   float64
	destroyed bool
}

func newWindow(l *EventLoop, glw *glfw.Window, attrs thin.WindowAttributes) *Window {
	w := &Window{
		loop:    l,
		glw:     glw,
		title:   attrs.Title,
		buttons: attrs.Buttons,
		theme:   attrs.Theme,
	}
	w.display = newDisplay(glw)

	glw.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	glw.SetCloseCallback(w.closeCallback)
	glw.SetRefreshCallback(w.refreshCallback)
	glw.SetFocusCallback(w.focusCallback)
	glw.SetKeyCallback(w.keyCallback)
	glw.SetCharCallback(w.charCallback)
	glw.SetMouseButtonCallback(w.mouseButtonCallback)
	glw.SetCursorPosCallback(w.cursorPosCallback)
	glw.SetScrollCallback(w.scrollCallback)
	return w
}

// Attributes reads the live window state.
func (w *Window) Attributes() thin.WindowAttributes {
	a := thin.WindowAttributes{Title: w.title, Buttons: w.buttons, Theme: w.theme}
	if w.destroyed {
		return a
	}
	a.Width, a.Height = w.glw.GetSize()
	a.X, a.Y = w.glw.GetPos()
	a.HasPosition = true
	a.Resizable = w.glw.GetAttrib(glfw.Resizable) == glfw.True
	a.Maximized = w.glw.GetAttrib(glfw.Maximized) == glfw.True
	a.Visible = w.glw.GetAttrib(glfw.Visible) == glfw.True
	a.Decorated = w.glw.GetAttrib(glfw.Decorated) == glfw.True
	a.Transparent = w.glw.GetAttrib(glfw.TransparentFramebuffer) == glfw.True
	a.Fullscreen = w.glw.GetMonitor() != nil
	return a
}

// Size returns the window size in screen coordinates.
func (w *Window) Size() (width, height int) {
	if w.destroyed {
		return 0, 0
	}
	return w.glw.GetSize()
}

func (w *Window) SetTitle(title string) {
	w.title = title
	if !w.destroyed {
		w.glw.SetTitle(title)
	}
}

// RequestRedraw queues a RedrawRequested, delivered after the next poll.
func (w *Window) RequestRedraw() {
	w.redraw = true
	glfw.PostEmptyEvent()
}

// SetCursorCaptured hides the cursor and locks it to the window, as used
// for mouse look. Raw motion applies only while captured.
func (w *Window) SetCursorCaptured(captured bool) {
	if w.destroyed {
		return
	}
	mode := glfw.CursorNormal
	if captured {
		mode = glfw.CursorDisabled
	}
	w.glw.SetInputMode(glfw.CursorMode, mode)
	w.hasCursor = false
}

// GLFW returns the underlying window, or nil once destroyed.
func (w *Window) GLFW() *glfw.Window {
	if w.destroyed {
		return nil
	}
	return w.glw
}

// Destroy closes the window and frees its display. It is safe to call twice.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.display.release()
	w.loop.remove(w)
	w.glw.Destroy()
	glLogger.Debug("glfw window destroyed", "title", w.title)
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.loop.dispatch(event.Resized{Width: width, Height: height})
}

// closeCallback leaves the decision to the application, which exits the
// loop on CloseRequested.
func (w *Window) closeCallback(glw *glfw.Window) {
	glw.SetShouldClose(false)
	w.loop.dispatch(event.CloseRequested{})
}

func (w *Window) refreshCallback(_ *glfw.Window) {
	w.redraw = true
}

func (w *Window) focusCallback(_ *glfw.Window, focused bool) {
	w.loop.dispatch(event.Focused{Focused: focused})
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == event.KeyNone {
		return
	}
	w.loop.dispatch(event.KeyInput{
		Key:     k,
		Pressed: action != glfw.Release,
		Repeat:  action == glfw.Repeat,
	})
}

func (w *Window) charCallback(_ *glfw.Window, char rune) {
	w.loop.dispatch(event.CharInput{Char: char})
}

func (w *Window) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := glfwMouseButton(button)
	if !ok {
		return
	}
	w.loop.dispatch(event.MouseInput{Button: b, Pressed: action == glfw.Press})
}

// cursorPosCallback reports the position, and the delta from the previous
// position as device motion. With the cursor captured GLFW reports an
// unbounded virtual position, so the delta is not clamped at the edges.
func (w *Window) cursorPosCallback(_ *glfw.Window, x, y float64) {
	if w.hasCursor {
		dx, dy := x-w.cursorX, y-w.cursorY
		if dx != 0 || dy != 0 {
			w.loop.dispatchDevice(event.MouseMotion{DX: dx, DY: dy})
		}
	}
	w.cursorX, w.cursorY, w.hasCursor = x, y, true
	w.loop.dispatch(event.CursorMoved{X: x, Y: y})
}

func (w *Window) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	w.loop.dispatch(event.MouseWheel{DX: xoff, DY: yoff})
}
