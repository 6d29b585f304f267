package thin

import (
	"github.com/go-theft-auto/thin/event"
	"github.com/go-theft-auto/thin/gfx"
)

// EventSource is a platform event loop. Run blocks, feeding events to app
// on the calling goroutine until the loop exits, and returns why it
// stopped: nil after EventLoop.Exit, or the error that ended it.
type EventSource interface {
	Run(app ApplicationHandler) error
}

// EventLoop is the running loop as seen from handlers.
type EventLoop interface {
	// Exit stops the loop after the current event.
	Exit()
	Exiting() bool

	// CreateWindow opens a window and returns it with its drawable display.
	CreateWindow(attrs WindowAttributes) (Window, gfx.Display, error)
}

// ApplicationHandler receives platform events. Resumed returning an error
// is fatal: the source stops and Run returns it.
type ApplicationHandler interface {
	Resumed(el EventLoop) error
	Suspended(el EventLoop)
	WindowEvent(el EventLoop, ev event.Window)
	DeviceEvent(el EventLoop, ev event.Device)

	// AboutToWait is delivered once the current batch of events has been
	// handled.
	AboutToWait(el EventLoop)
}
