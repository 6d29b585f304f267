package thin

import (
	"time"

	"github.com/go-theft-auto/thin/event"
	"github.com/go-theft-auto/thin/gfx"
	"github.com/go-theft-auto/thin/input"
)

// SetupFunc runs each time a window and display are created: once at
// start and again after every resume.
type SetupFunc func(display gfx.Display, window Window, el EventLoop)

// UpdateFunc runs on idle ticks, throttled by Settings.MinFrameDuration.
// Input edges seen here are those of the previous tick; the map advances
// right after update returns. A press therefore reaches update one tick
// after it happened, which under throttling can be up to one
// MinFrameDuration later.
type UpdateFunc[H comparable] func(in *input.Map[H], display gfx.Display, settings *Settings, el EventLoop, window Window)

// DrawFunc runs for every redraw request while a window exists.
type DrawFunc[H comparable] func(in *input.Map[H], display gfx.Display, settings *Settings, el EventLoop, window Window)

// EventFunc sees every event after the driver has handled it. window and
// display are nil while suspended.
type EventFunc func(ev event.Event, el EventLoop, window Window, display gfx.Display)

// Application bundles the callbacks into one value, for state that setup
// creates and update uses.
type Application[H comparable] interface {
	Setup(display gfx.Display, window Window, el EventLoop)
	Update(in *input.Map[H], display gfx.Display, settings *Settings, el EventLoop, window Window)
	Draw(in *input.Map[H], display gfx.Display, settings *Settings, el EventLoop, window Window)
	Event(ev event.Event, el EventLoop, window Window, display gfx.Display)
}

// Builder collects callbacks and settings. Unset callbacks do nothing.
type Builder[H comparable] struct {
	input    *input.Map[H]
	settings Settings
	attrs    WindowAttributes

	setup   SetupFunc
	update  UpdateFunc[H]
	draw    DrawFunc[H]
	onEvent EventFunc

	now func() time.Time
}

// NewBuilder starts a program around an input map.
func NewBuilder[H comparable](in *input.Map[H]) *Builder[H] {
	return &Builder[H]{
		input:   in,
		attrs:   DefaultWindowAttributes(),
		setup:   func(gfx.Display, Window, EventLoop) {},
		update:  func(*input.Map[H], gfx.Display, *Settings, EventLoop, Window) {},
		draw:    func(*input.Map[H], gfx.Display, *Settings, EventLoop, Window) {},
		onEvent: func(event.Event, EventLoop, Window, gfx.Display) {},
		now:     time.Now,
	}
}

// WithSetup sets the callback run whenever a window is created.
func (b *Builder[H]) WithSetup(f SetupFunc) *Builder[H] {
	b.setup = f
	return b
}

// WithUpdate sets the throttled per-tick callback.
func (b *Builder[H]) WithUpdate(f UpdateFunc[H]) *Builder[H] {
	b.update = f
	return b
}

// WithDraw sets the callback run on redraw requests.
func (b *Builder[H]) WithDraw(f DrawFunc[H]) *Builder[H] {
	b.draw = f
	return b
}

// WithEventHandler sets the hook that observes every event.
func (b *Builder[H]) WithEventHandler(f EventFunc) *Builder[H] {
	b.onEvent = f
	return b
}

// WithApplication sets all four callbacks from app.
func (b *Builder[H]) WithApplication(app Application[H]) *Builder[H] {
	b.setup = app.Setup
	b.update = app.Update
	b.draw = app.Draw
	b.onEvent = app.Event
	return b
}

// WithSettings replaces the default settings.
func (b *Builder[H]) WithSettings(s Settings) *Builder[H] {
	b.settings = s
	return b
}

// WithWindowAttributes sets the attributes of the first window.
func (b *Builder[H]) WithWindowAttributes(a WindowAttributes) *Builder[H] {
	b.attrs = a
	return b
}

// Build runs src with the collected callbacks until it exits, and returns
// its error. The builder must not be reused.
func (b *Builder[H]) Build(src EventSource) error {
	e := &engine[H]{
		input:    b.input,
		settings: b.settings,
		attrs:    b.attrs,
		setup:    b.setup,
		update:   b.update,
		draw:     b.draw,
		onEvent:  b.onEvent,
		now:      b.now,
	}
	// The first update waits one MinFrameDuration from here.
	e.lastUpdate = e.now()
	*b = Builder[H]{}
	return src.Run(e)
}

// Run is shorthand for a program with only an update callback.
func Run[H comparable](src EventSource, in *input.Map[H], settings Settings, update UpdateFunc[H]) error {
	return NewBuilder(in).WithSettings(settings).WithUpdate(update).Build(src)
}
