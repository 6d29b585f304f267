package input

import (
	"fmt"

	"github.com/go-theft-auto/thin/event"
)

// Sign selects one half of a bidirectional axis.
type Sign int8

const (
	Pos Sign = 1
	Neg Sign = -1
)

type sourceKind uint8

const (
	kindKey sourceKind = iota + 1
	kindMouseButton
	kindMouseMove
	kindScroll
	kindGamepadButton
	kindGamepadAxis
)

// Source is a physical input that can drive a binding. Sources are
// comparable and can be used as map keys.
type Source struct {
	kind sourceKind
	code int
	sign Sign
}

// Key returns the source for a keyboard key.
func Key(k event.Key) Source { return Source{kind: kindKey, code: int(k)} }

// Mouse returns the source for a mouse button.
func Mouse(b event.MouseButton) Source { return Source{kind: kindMouseButton, code: int(b)} }

// MouseMove returns the source for relative mouse motion along one half of an axis.
func MouseMove(a event.Axis, s Sign) Source {
	return Source{kind: kindMouseMove, code: int(a), sign: s}
}

// MouseMoveX is shorthand for MouseMove(event.AxisX, s).
func MouseMoveX(s Sign) Source { return MouseMove(event.AxisX, s) }

// MouseMoveY is shorthand for MouseMove(event.AxisY, s).
func MouseMoveY(s Sign) Source { return MouseMove(event.AxisY, s) }

// Scroll returns the source for mouse wheel motion along one half of an axis.
func Scroll(a event.Axis, s Sign) Source {
	return Source{kind: kindScroll, code: int(a), sign: s}
}

// GamepadButton returns the source for a gamepad button on any connected pad.
func GamepadButton(b event.GamepadButton) Source {
	return Source{kind: kindGamepadButton, code: int(b)}
}

// GamepadAxis returns the source for one half of a gamepad axis on any connected pad.
func GamepadAxis(a event.GamepadAxis, s Sign) Source {
	return Source{kind: kindGamepadAxis, code: int(a), sign: s}
}

// delta reports whether the source accumulates per-tick motion that is
// zeroed when the map advances.
func (s Source) delta() bool {
	return s.kind == kindMouseMove || s.kind == kindScroll
}

func (s Source) String() string {
	sign := "+"
	if s.sign == Neg {
		sign = "-"
	}
	axis := "X"
	if event.Axis(s.code) == event.AxisY {
		axis = "Y"
	}
	switch s.kind {
	case kindKey:
		return "Key(" + event.Key(s.code).String() + ")"
	case kindMouseButton:
		return fmt.Sprintf("Mouse(%d)", s.code)
	case kindMouseMove:
		return "MouseMove" + axis + "(" + sign + ")"
	case kindScroll:
		return "Scroll" + axis + "(" + sign + ")"
	case kindGamepadButton:
		return fmt.Sprintf("GamepadButton(%d)", s.code)
	case kindGamepadAxis:
		return fmt.Sprintf("GamepadAxis(%d%s)", s.code, sign)
	default:
		return "Source(?)"
	}
}

// Binding associates a logical action with the sources that drive it.
type Binding[H comparable] struct {
	Action  H
	Sources []Source
}

// Bind builds a Binding. It reads like a row of a binding table:
//
//	input.Bind(Jump, input.Key(event.KeySpace), input.GamepadButton(event.GamepadSouth))
func Bind[H comparable](action H, sources ...Source) Binding[H] {
	return Binding[H]{Action: action, Sources: sources}
}
