// Package event defines the platform-neutral events the driver multiplexes:
// window events, device events, gamepad events and lifecycle notifications.
//
// Events are small value types. Each category is a marker interface so that
// a switch over the concrete types stays exhaustive within its category.
package event

// Event is any event delivered by an event source.
type Event interface{ isEvent() }

// Window is an event targeted at the application window.
type Window interface {
	Event
	isWindowEvent()
}

// Device is a raw device event that is not tied to a window,
// such as unaccelerated mouse motion.
type Device interface {
	Event
	isDeviceEvent()
}

// Gamepad is a gamepad state change produced by polling a gamepad subsystem.
type Gamepad interface {
	Event
	isGamepadEvent()
}

// Resized reports the new framebuffer size in pixels.
type Resized struct{ Width, Height int }

// CloseRequested reports that the user asked to close the window.
type CloseRequested struct{}

// RedrawRequested asks the application to draw a frame.
type RedrawRequested struct{}

// Focused reports a change of keyboard focus.
type Focused struct{ Focused bool }

// KeyInput reports a key press or release. Repeat is set for
// auto-repeated presses while the key is held.
type KeyInput struct {
	Key     Key
	Pressed bool
	Repeat  bool
}

// CharInput reports a typed Unicode character.
type CharInput struct{ Char rune }

// MouseInput reports a mouse button press or release.
type MouseInput struct {
	Button  MouseButton
	Pressed bool
}

// CursorMoved reports the cursor position in window coordinates.
type CursorMoved struct{ X, Y float64 }

// MouseWheel reports a scroll delta.
type MouseWheel struct{ DX, DY float64 }

// MouseMotion reports relative pointer motion, independent of the
// cursor position and of cursor clamping at the window edge.
type MouseMotion struct{ DX, DY float64 }

// GamepadButtonInput reports a gamepad button change.
type GamepadButtonInput struct {
	ID      int
	Button  GamepadButton
	Pressed bool
}

// GamepadAxisInput reports a new gamepad axis value in [-1, 1].
type GamepadAxisInput struct {
	ID    int
	Axis  GamepadAxis
	Value float32
}

// GamepadConnection reports a gamepad being connected or disconnected.
type GamepadConnection struct {
	ID        int
	Name      string
	Connected bool
}

// Resumed is delivered when the application may create its window.
type Resumed struct{}

// Suspended is delivered when the application must release its window.
type Suspended struct{}

// AboutToWait is delivered once all pending events have been processed.
type AboutToWait struct{}

func (Resized) isEvent()            {}
func (CloseRequested) isEvent()     {}
func (RedrawRequested) isEvent()    {}
func (Focused) isEvent()            {}
func (KeyInput) isEvent()           {}
func (CharInput) isEvent()          {}
func (MouseInput) isEvent()         {}
func (CursorMoved) isEvent()        {}
func (MouseWheel) isEvent()         {}
func (MouseMotion) isEvent()        {}
func (GamepadButtonInput) isEvent() {}
func (GamepadAxisInput) isEvent()   {}
func (GamepadConnection) isEvent()  {}
func (Resumed) isEvent()            {}
func (Suspended) isEvent()          {}
func (AboutToWait) isEvent()        {}

func (Resized) isWindowEvent()         {}
func (CloseRequested) isWindowEvent()  {}
func (RedrawRequested) isWindowEvent() {}
func (Focused) isWindowEvent()         {}
func (KeyInput) isWindowEvent()        {}
func (CharInput) isWindowEvent()       {}
func (MouseInput) isWindowEvent()      {}
func (CursorMoved) isWindowEvent()     {}
func (MouseWheel) isWindowEvent()      {}

func (MouseMotion) isDeviceEvent() {}

func (GamepadButtonInput) isGamepadEvent() {}
func (GamepadAxisInput) isGamepadEvent()   {}
func (GamepadConnection) isGamepadEvent()  {}
