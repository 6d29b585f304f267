package opengl

import (
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/thin/event"
)

// DefaultDeadzone is the stick magnitude below which an axis reads zero.
const DefaultDeadzone = 0.1

// Gamepads polls GLFW joysticks that have a gamepad mapping and reports
// changes as events. It implements thin.GamepadPoller.
type Gamepads struct {
	// Deadzone zeroes stick axes whose magnitude is below it.
	Deadzone float32

	mappings string
	applied  bool
	pads     map[glfw.Joystick]*padState
}

type padState struct {
	buttons [event.GamepadButtonCount]bool
	axes    [event.GamepadAxisCount]float32
}

// NewGamepads returns a poller. mappingsPath optionally names an SDL
// controller database (gamecontrollerdb.txt) applied on the first poll;
// pass "" to use the mappings built into GLFW.
func NewGamepads(mappingsPath string) (*Gamepads, error) {
	g := &Gamepads{Deadzone: DefaultDeadzone, pads: make(map[glfw.Joystick]*padState)}
	if mappingsPath == "" {
		return g, nil
	}
	data, err := os.ReadFile(mappingsPath)
	if err != nil {
		return nil, fmt.Errorf("read gamepad mappings: %w", err)
	}
	g.mappings = string(data)
	return g, nil
}

// Poll emits connection, button and axis changes since the previous poll.
// It must be called on the main thread while GLFW is initialised.
func (g *Gamepads) Poll(emit func(event.Gamepad)) {
	if !g.applied {
		g.applied = true
		if g.mappings != "" && !glfw.UpdateGamepadMappings(g.mappings) {
			glLogger.Warn("gamepad mappings rejected")
		}
	}

	for j := glfw.Joystick1; j <= glfw.JoystickLast; j++ {
		id := int(j - glfw.Joystick1)
		st, known := g.pads[j]
		if !j.Present() || !j.IsGamepad() {
			if known {
				delete(g.pads, j)
				glLogger.Info("gamepad disconnected", "id", id)
				emit(event.GamepadConnection{ID: id, Connected: false})
			}
			continue
		}
		if !known {
			st = &padState{}
			g.pads[j] = st
			name := j.GetGamepadName()
			glLogger.Info("gamepad connected", "id", id, "name", name)
			emit(event.GamepadConnection{ID: id, Name: name, Connected: true})
		}

		gs := j.GetGamepadState()
		if gs == nil {
			continue
		}
		for b := range gs.Buttons {
			if b >= len(st.buttons) {
				break
			}
			pressed := gs.Buttons[b] == glfw.Press
			if pressed != st.buttons[b] {
				st.buttons[b] = pressed
				emit(event.GamepadButtonInput{ID: id, Button: event.GamepadButton(b), Pressed: pressed})
			}
		}
		for a := range gs.Axes {
			if a >= len(st.axes) {
				break
			}
			v := g.axisValue(event.GamepadAxis(a), gs.Axes[a])
			if v != st.axes[a] {
				st.axes[a] = v
				emit(event.GamepadAxisInput{ID: id, Axis: event.GamepadAxis(a), Value: v})
			}
		}
	}
}

// axisValue applies the deadzone to sticks and moves triggers from GLFW's
// [-1, 1] rest-at-minus-one range to [0, 1].
func (g *Gamepads) axisValue(axis event.GamepadAxis, raw float32) float32 {
	switch axis {
	case event.LeftTrigger, event.RightTrigger:
		return (raw + 1) / 2
	default:
		if math32.Abs(raw) < g.Deadzone {
			return 0
		}
		return raw
	}
}
