package thin

import (
	"fmt"
	"time"

	"github.com/go-theft-auto/thin/event"
	"github.com/go-theft-auto/thin/gfx"
	"github.com/go-theft-auto/thin/input"
)

// engine is the ApplicationHandler that drives user callbacks. It owns the
// window and display, the input map and the settings.
type engine[H comparable] struct {
	input    *input.Map[H]
	settings Settings

	// attrs builds the next window: the builder's attributes at first,
	// then the snapshot taken on suspend.
	attrs   WindowAttributes
	window  Window
	display gfx.Display

	setup   SetupFunc
	update  UpdateFunc[H]
	draw    DrawFunc[H]
	onEvent EventFunc

	now        func() time.Time
	lastUpdate time.Time
}

func (e *engine[H]) Resumed(el EventLoop) error {
	if e.window == nil {
		w, d, err := el.CreateWindow(e.attrs)
		if err != nil {
			return fmt.Errorf("create window: %w", err)
		}
		e.window, e.display = w, d
		fw, fh := d.FramebufferSize()
		thinLogger.Info("window created", "title", e.attrs.Title, "width", fw, "height", fh)
		e.setup(e.display, e.window, el)
	}
	e.onEvent(event.Resumed{}, el, e.window, e.display)
	return nil
}

func (e *engine[H]) Suspended(el EventLoop) {
	if e.window != nil {
		e.attrs = preservedAttributes(e.window)
		e.window.Destroy()
		e.window, e.display = nil, nil
		thinLogger.Info("window destroyed on suspend", "title", e.attrs.Title)
	}
	e.onEvent(event.Suspended{}, el, nil, nil)
}

func (e *engine[H]) WindowEvent(el EventLoop, ev event.Window) {
	switch ev := ev.(type) {
	case event.Resized:
		if e.display != nil {
			e.display.Resize(ev.Width, ev.Height)
		}
	case event.CloseRequested:
		el.Exit()
	case event.RedrawRequested:
		if e.window != nil {
			e.draw(e.input, e.display, &e.settings, el, e.window)
		}
	default:
		e.input.HandleWindowEvent(ev)
	}
	e.onEvent(ev, el, e.window, e.display)
}

func (e *engine[H]) DeviceEvent(el EventLoop, ev event.Device) {
	e.input.HandleDeviceEvent(ev)
	e.onEvent(ev, el, e.window, e.display)
}

func (e *engine[H]) AboutToWait(el EventLoop) {
	if e.settings.Gamepads != nil {
		e.settings.Gamepads.Poll(func(ev event.Gamepad) {
			e.input.HandleGamepadEvent(ev)
			e.onEvent(ev, el, e.window, e.display)
		})
	}

	if e.window != nil && e.due() {
		e.update(e.input, e.display, &e.settings, el, e.window)
		e.lastUpdate = e.now()
		e.input.Init()
	}
	e.onEvent(event.AboutToWait{}, el, e.window, e.display)
}

// due reports whether enough time has passed since the last update, or
// since Build for the first one.
func (e *engine[H]) due() bool {
	d := e.settings.MinFrameDuration
	if d <= 0 {
		return true
	}
	return e.now().Sub(e.lastUpdate) >= d
}
