// Package thin runs small interactive graphics programs: it owns the
// window, feeds platform events into an input map, throttles logic to a
// target frame rate and calls user setup, update and draw callbacks.
//
// # Overview
//
// A program binds actions to physical inputs, then hands callbacks to a
// Builder and runs it on an EventSource such as the GLFW one in
// backend/opengl:
//
//	in := input.New(
//		input.Bind(Jump, input.Key(event.KeySpace), input.GamepadButton(event.GamepadSouth)),
//		input.Bind(Quit, input.Key(event.KeyEscape)),
//	)
//	src := opengl.NewEventLoop()
//	err := thin.NewBuilder(in).
//		WithSettings(thin.SettingsFromFPS(60)).
//		WithSetup(func(d gfx.Display, w thin.Window, el thin.EventLoop) { ... }).
//		WithUpdate(func(in *input.Map[Action], d gfx.Display, s *thin.Settings, el thin.EventLoop, w thin.Window) {
//			if in.Pressed(Quit) {
//				el.Exit()
//			}
//			w.RequestRedraw()
//		}).
//		WithDraw(func(in *input.Map[Action], d gfx.Display, s *thin.Settings, el thin.EventLoop, w thin.Window) { ... }).
//		Build(src)
//
// # Lifecycle
//
// The window and its display exist between a resume and the next suspend.
// On suspend the window is snapshotted (size, title, buttons, fullscreen,
// maximized, visibility, decorations and theme) and destroyed; on resume
// it is recreated from the snapshot and setup runs again. Position and
// transparency are not restored.
//
// Resize events resize the display and close requests exit the loop
// before user code sees them. Other window and device events feed the
// input map. Every event then reaches the handler set by WithEventHandler.
//
// # Ticks
//
// When a batch of events has been handled the driver polls gamepads,
// then runs update if Settings.MinFrameDuration has passed since the last
// one (or since Build), then advances the input map. Update is skipped while there is no
// window.
//
// All callbacks run on the goroutine that called Build, which for GLFW
// must be the main thread.
package thin
