package thin

import (
	"time"

	"github.com/go-theft-auto/thin/event"
)

// GamepadPoller reports gamepad changes since the previous poll.
type GamepadPoller interface {
	Poll(emit func(event.Gamepad))
}

// Settings are owned by the driver and lent to update and draw, which may
// change them.
type Settings struct {
	// Gamepads is polled once per idle tick. Nil means no gamepad support.
	Gamepads GamepadPoller

	// MinFrameDuration throttles update: it runs only once this much time
	// has passed since the previous update returned, or since Build for
	// the first update. Zero means every tick. Update is never delayed,
	// only skipped.
	MinFrameDuration time.Duration
}

// SettingsFromFPS returns settings that run update at most fps times a
// second. fps <= 0 means unthrottled.
func SettingsFromFPS(fps int) Settings {
	if fps <= 0 {
		return Settings{}
	}
	return Settings{MinFrameDuration: time.Second / time.Duration(fps)}
}

// UseGamepads installs p, the result of a gamepad constructor. If err is
// set, gamepads stay disabled and the error is logged.
func (s *Settings) UseGamepads(p GamepadPoller, err error) {
	if err != nil {
		thinLogger.Warn("gamepads unavailable", "error", err)
		s.Gamepads = nil
		return
	}
	s.Gamepads = p
}
