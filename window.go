package thin

// WindowButtons is the set of title bar buttons a window shows.
type WindowButtons uint8

const (
	WindowButtonClose WindowButtons = 1 << iota
	WindowButtonMinimize
	WindowButtonMaximize

	AllWindowButtons = WindowButtonClose | WindowButtonMinimize | WindowButtonMaximize
)

// Has reports whether every button in b2 is in b.
func (b WindowButtons) Has(b2 WindowButtons) bool { return b&b2 == b2 }

// Theme is the window decoration theme.
type Theme int

const (
	ThemeSystem Theme = iota
	ThemeLight
	ThemeDark
)

// WindowAttributes describe a window to create.
//
// When the application is suspended the driver snapshots the live window
// into a new WindowAttributes and recreates the window from it on resume.
// Position and Transparent are honoured at creation but not carried across
// that round trip.
type WindowAttributes struct {
	Title         string
	Width, Height int
	Resizable     bool
	Buttons       WindowButtons
	Fullscreen    bool
	Maximized     bool
	Visible       bool
	Decorated     bool
	Theme         Theme

	X, Y        int
	HasPosition bool
	Transparent bool
}

// DefaultWindowAttributes returns a visible, decorated, resizable 800x600 window.
func DefaultWindowAttributes() WindowAttributes {
	return WindowAttributes{
		Title:     "thin",
		Width:     800,
		Height:    600,
		Resizable: true,
		Buttons:   AllWindowButtons,
		Visible:   true,
		Decorated: true,
	}
}

// WithPosition returns a copy of a placed at x, y.
func (a WindowAttributes) WithPosition(x, y int) WindowAttributes {
	a.X, a.Y, a.HasPosition = x, y, true
	return a
}

// Window is an open window. Callbacks borrow it and must not keep it.
type Window interface {
	// Attributes reports the window's current state.
	Attributes() WindowAttributes

	// Size returns the inner size in screen coordinates.
	Size() (width, height int)

	SetTitle(title string)

	// RequestRedraw queues an event.RedrawRequested for this window.
	RequestRedraw()

	// Destroy closes the window and releases its surface.
	Destroy()
}

// preservedAttributes snapshots the parts of a live window that survive a
// suspend.
func preservedAttributes(w Window) WindowAttributes {
	a := w.Attributes()
	a.X, a.Y, a.HasPosition = 0, 0, false
	a.Transparent = false
	return a
}
