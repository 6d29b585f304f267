package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/thin/event"
	"github.com/go-theft-auto/thin/input"
)

type action int

const (
	jump action = iota
	left
	right
	lookLeft
	lookRight
	fire
)

func newMap() *input.Map[action] {
	return input.New(
		input.Bind(jump, input.Key(event.KeyA), input.GamepadButton(event.GamepadSouth)),
		input.Bind(left, input.Key(event.KeyLeft), input.GamepadAxis(event.LeftStickX, input.Neg)),
		input.Bind(right, input.Key(event.KeyRight), input.GamepadAxis(event.LeftStickX, input.Pos)),
		input.Bind(lookLeft, input.MouseMoveX(input.Neg)),
		input.Bind(lookRight, input.MouseMoveX(input.Pos)),
		input.Bind(fire, input.Mouse(event.MouseButtonLeft)),
	)
}

func TestPressedIsVisibleForOneTick(t *testing.T) {
	m := newMap()

	m.Update(event.KeyInput{Key: event.KeyA, Pressed: true})
	assert.False(t, m.Pressed(jump), "ingested events are not visible before Init")

	m.Init()
	assert.True(t, m.Pressed(jump))
	assert.True(t, m.Pressing(jump))

	m.Init()
	assert.False(t, m.Pressed(jump))
	assert.True(t, m.Pressing(jump))

	m.Update(event.KeyInput{Key: event.KeyA, Pressed: false})
	m.Init()
	assert.True(t, m.Released(jump))
	assert.False(t, m.Pressing(jump))

	m.Init()
	assert.False(t, m.Released(jump))
}

func TestTapWithinOneTickIsNotLost(t *testing.T) {
	m := newMap()

	m.Update(event.MouseInput{Button: event.MouseButtonLeft, Pressed: true})
	m.Update(event.MouseInput{Button: event.MouseButtonLeft, Pressed: false})
	m.Init()

	assert.True(t, m.Pressed(fire))
	assert.True(t, m.Released(fire))
	assert.False(t, m.Pressing(fire))
}

func TestKeyRepeatDoesNotRetrigger(t *testing.T) {
	m := newMap()
	m.Update(event.KeyInput{Key: event.KeyA, Pressed: true})
	m.Init()
	m.Update(event.KeyInput{Key: event.KeyA, Pressed: true, Repeat: true})
	m.Init()
	assert.False(t, m.Pressed(jump))
	assert.True(t, m.Pressing(jump))
}

func TestSharedSourcesAcrossBindings(t *testing.T) {
	m := newMap()
	m.Update(event.KeyInput{Key: event.KeyA, Pressed: true})
	m.Update(event.GamepadButtonInput{ID: 0, Button: event.GamepadSouth, Pressed: true})
	m.Update(event.KeyInput{Key: event.KeyA, Pressed: false})
	m.Init()

	assert.True(t, m.Pressing(jump), "gamepad still holds the action")
}

func TestGamepadAxis(t *testing.T) {
	m := newMap()

	m.Update(event.GamepadAxisInput{ID: 0, Axis: event.LeftStickX, Value: -0.75})
	m.Init()
	assert.InDelta(t, 0.75, m.Value(left), 1e-6)
	assert.Equal(t, float32(0), m.Value(right))
	assert.InDelta(t, 0.75, m.Axis(left, right), 1e-6)
	assert.True(t, m.Pressing(left))

	m.Update(event.GamepadAxisInput{ID: 0, Axis: event.LeftStickX, Value: 0.25})
	m.Init()
	assert.True(t, m.Released(left))
	assert.False(t, m.Pressing(right), "below the press threshold")
	assert.InDelta(t, -0.25, m.Axis(left, right), 1e-6)
}

func TestGamepadDisconnectReleases(t *testing.T) {
	m := newMap()
	m.Update(event.GamepadConnection{ID: 2, Name: "pad", Connected: true})
	m.Update(event.GamepadButtonInput{ID: 2, Button: event.GamepadSouth, Pressed: true})
	m.Init()
	require.True(t, m.Pressing(jump))
	assert.Equal(t, "pad", m.Gamepads()[2])

	m.Update(event.GamepadConnection{ID: 2, Connected: false})
	m.Init()
	assert.True(t, m.Released(jump))
	assert.NotContains(t, m.Gamepads(), 2)
}

func TestMouseMotionIsZeroedEachTick(t *testing.T) {
	m := newMap()
	m.MouseScale = 0.1

	m.Update(event.MouseMotion{DX: -3})
	m.Update(event.MouseMotion{DX: -2})
	m.Init()
	assert.InDelta(t, 0.5, m.Value(lookLeft), 1e-6)
	assert.InDelta(t, -0.5, m.Axis(lookRight, lookLeft), 1e-6)

	m.Init()
	assert.Equal(t, float32(0), m.Value(lookLeft))
	assert.True(t, m.Released(lookLeft))
}

func TestAxisIsClamped(t *testing.T) {
	m := newMap()
	m.Update(event.MouseMotion{DX: 1000})
	m.Init()
	assert.Equal(t, float32(1), m.Value(lookRight))
	assert.Equal(t, float32(1), m.Axis(lookRight, lookLeft))
}

func TestDirMaxLen1(t *testing.T) {
	m := input.New(
		input.Bind("r", input.Key(event.KeyD)),
		input.Bind("l", input.Key(event.KeyA)),
		input.Bind("u", input.Key(event.KeyW)),
		input.Bind("d", input.Key(event.KeyS)),
	)
	m.Update(event.KeyInput{Key: event.KeyD, Pressed: true})
	m.Update(event.KeyInput{Key: event.KeyW, Pressed: true})
	m.Init()

	d := m.Dir("r", "l", "u", "d")
	assert.Equal(t, float32(1), d.X())
	assert.Equal(t, float32(1), d.Y())
	assert.InDelta(t, 1, m.DirMaxLen1("r", "l", "u", "d").Len(), 1e-6)
}

func TestFocusLossReleasesKeys(t *testing.T) {
	m := newMap()
	m.Update(event.KeyInput{Key: event.KeyA, Pressed: true})
	m.Init()
	m.Update(event.Focused{Focused: false})
	m.Init()
	assert.True(t, m.Released(jump))
	assert.False(t, m.Focused())
}

func TestCursorAndText(t *testing.T) {
	m := newMap()
	m.Update(event.CursorMoved{X: 10, Y: 20})
	m.Update(event.CharInput{Char: 'h'})
	m.Update(event.CharInput{Char: 'i'})

	x, y := m.Cursor()
	assert.Zero(t, x+y)

	m.Init()
	x, y = m.Cursor()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)
	assert.Equal(t, "hi", string(m.Text()))

	m.Init()
	assert.Empty(t, m.Text())
}

func TestUnknownActionIsInert(t *testing.T) {
	m := input.New[string]()
	m.Update(event.KeyInput{Key: event.KeyA, Pressed: true})
	m.Init()
	assert.False(t, m.Pressing("missing"))
	assert.Nil(t, m.Sources("missing"))
	assert.Empty(t, m.Actions())
}
