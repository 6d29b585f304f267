// Package opengl implements the thin event source and graphics display on
// GLFW and OpenGL 4.1 core.
//
// GLFW must run on the main thread. Programs lock it in init:
//
//	func init() { runtime.LockOSThread() }
package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/thin"
	"github.com/go-theft-auto/thin/event"
	"github.com/go-theft-auto/thin/gfx"
	"github.com/go-theft-auto/thin/internal/logging"
)

var glLogger = logging.New("opengl")

// EventLoop is a thin.EventSource backed by GLFW.
//
// GLFW has no suspend notification of its own. The loop reports one
// Resumed when it starts and a Suspended, Resumed pair for every
// RequestSuspend.
type EventLoop struct {
	opts options
	app  thin.ApplicationHandler

	windows map[*glfw.Window]*Window
	exiting bool
	suspend bool
}

// NewEventLoop returns an event loop. Nothing is initialised until Run.
func NewEventLoop(opts ...Option) *EventLoop {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &EventLoop{opts: o, windows: make(map[*glfw.Window]*Window)}
}

// Run initialises GLFW and dispatches events to app until Exit is called or
// a resume fails. It must be called from the main thread.
func (l *EventLoop) Run(app thin.ApplicationHandler) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	l.app = app
	l.exiting = false
	defer l.destroyAll()

	if err := app.Resumed(l); err != nil {
		return err
	}
	for !l.exiting {
		if l.suspend {
			l.suspend = false
			glLogger.Debug("suspend requested")
			app.Suspended(l)
			if err := app.Resumed(l); err != nil {
				return err
			}
		}

		glfw.PollEvents()
		for _, w := range l.windows {
			if l.exiting {
				break
			}
			if w.redraw {
				w.redraw = false
				l.dispatch(event.RedrawRequested{})
			}
		}
		if l.exiting {
			break
		}
		app.AboutToWait(l)
	}
	return nil
}

// Exit stops the loop once the current event has been handled.
func (l *EventLoop) Exit() { l.exiting = true }

// Exiting reports whether Exit was called.
func (l *EventLoop) Exiting() bool { return l.exiting }

// RequestSuspend makes the loop deliver Suspended followed by Resumed
// before the next poll, so the application drops and recreates its window.
func (l *EventLoop) RequestSuspend() { l.suspend = true }

// CreateWindow opens a window with its own GL context, makes that context
// current and returns the window with a display drawing into it.
func (l *EventLoop) CreateWindow(attrs thin.WindowAttributes) (thin.Window, gfx.Display, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, l.opts.major)
	glfw.WindowHint(glfw.ContextVersionMinor, l.opts.minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfwBool(attrs.Resizable))
	glfw.WindowHint(glfw.Visible, glfwBool(attrs.Visible))
	glfw.WindowHint(glfw.Decorated, glfwBool(attrs.Decorated))
	glfw.WindowHint(glfw.Maximized, glfwBool(attrs.Maximized))
	glfw.WindowHint(glfw.TransparentFramebuffer, glfwBool(attrs.Transparent))

	width, height := attrs.Width, attrs.Height
	var monitor *glfw.Monitor
	if attrs.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if mode := monitor.GetVideoMode(); mode != nil {
			width, height = mode.Width, mode.Height
		}
	}

	glw, err := glfw.CreateWindow(width, height, attrs.Title, monitor, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create window: %w", err)
	}
	if attrs.HasPosition && monitor == nil {
		glw.SetPos(attrs.X, attrs.Y)
	}

	glw.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glw.Destroy()
		return nil, nil, fmt.Errorf("init gl: %w", err)
	}
	if l.opts.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if l.opts.rawMouse && glfw.RawMouseMotionSupported() {
		glw.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}

	w := newWindow(l, glw, attrs)
	l.windows[glw] = w
	glLogger.Debug("glfw window created", "title", attrs.Title, "width", width, "height", height,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))
	return w, w.display, nil
}

func (l *EventLoop) dispatch(ev event.Window) {
	if l.app == nil || l.exiting {
		return
	}
	l.app.WindowEvent(l, ev)
}

func (l *EventLoop) dispatchDevice(ev event.Device) {
	if l.app == nil || l.exiting {
		return
	}
	l.app.DeviceEvent(l, ev)
}

func (l *EventLoop) remove(w *Window) {
	delete(l.windows, w.glw)
}

func (l *EventLoop) destroyAll() {
	for _, w := range l.windows {
		w.Destroy()
	}
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
