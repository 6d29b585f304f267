package opengl

// Option configures an EventLoop.
type Option func(*options)

type options struct {
	major, minor int
	vsync        bool
	rawMouse     bool
}

func defaultOptions() options {
	return options{major: 4, minor: 1, vsync: true, rawMouse: true}
}

// WithContextVersion requests an OpenGL core context of the given version.
// The default is 4.1, the newest version macOS provides.
func WithContextVersion(major, minor int) Option {
	return func(o *options) {
		o.major, o.minor = major, minor
	}
}

// WithVSync turns buffer swap synchronisation on or off. On by default.
func WithVSync(on bool) Option {
	return func(o *options) {
		o.vsync = on
	}
}

// WithRawMouseMotion asks for unaccelerated mouse motion where the platform
// supports it. It only takes effect while the cursor is captured.
func WithRawMouseMotion(on bool) Option {
	return func(o *options) {
		o.rawMouse = on
	}
}
