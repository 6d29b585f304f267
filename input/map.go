// Package input maps physical input sources onto application-defined actions
// and keeps a per-tick snapshot of their state.
//
// A Map ingests raw events throughout a tick. Nothing the application reads
// changes until Init is called: Init publishes everything ingested since the
// previous call, so an edge (Pressed, Released) is visible for exactly one
// tick and per-tick deltas such as mouse motion are zeroed for the next one.
package input

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/thin/event"
)

// Defaults for Map tuning fields.
const (
	DefaultPressThreshold float32 = 0.5
	DefaultMouseScale     float32 = 0.05
)

type bindState struct {
	value    float32
	held     bool
	pressed  bool // became held since the last Init
	released bool // stopped being held since the last Init
}

type padSource struct {
	src Source
	id  int
}

// Map is the input snapshot for one application. H is the action type,
// typically a small enum.
type Map[H comparable] struct {
	// PressThreshold is the value at or above which an analog source
	// counts as held.
	PressThreshold float32

	// MouseScale converts mouse motion and scroll deltas to values.
	MouseScale float32

	actions  []H
	index    map[H]int
	sources  [][]Source
	bySource map[Source][]int

	values  map[Source]float32
	pads    map[padSource]float32
	padIDs  map[int]string
	live    []bindState
	current []bindState

	cursorX, cursorY float64
	chars            []rune
	focused          bool

	pubCursorX, pubCursorY float64
	pubChars               []rune
	pubFocused             bool
}

// New creates a Map from a static binding table. Binding the same action
// twice appends the sources.
func New[H comparable](bindings ...Binding[H]) *Map[H] {
	m := &Map[H]{
		PressThreshold: DefaultPressThreshold,
		MouseScale:     DefaultMouseScale,
		index:          make(map[H]int),
		bySource:       make(map[Source][]int),
		values:         make(map[Source]float32),
		pads:           make(map[padSource]float32),
		padIDs:         make(map[int]string),
		chars:          make([]rune, 0, 16),
		focused:        true,
		pubFocused:     true,
	}
	for _, b := range bindings {
		i, ok := m.index[b.Action]
		if !ok {
			i = len(m.actions)
			m.index[b.Action] = i
			m.actions = append(m.actions, b.Action)
			m.sources = append(m.sources, nil)
		}
		for _, s := range b.Sources {
			m.sources[i] = append(m.sources[i], s)
			m.bySource[s] = append(m.bySource[s], i)
		}
	}
	m.live = make([]bindState, len(m.actions))
	m.current = make([]bindState, len(m.actions))
	return m
}

// Actions returns the bound actions in binding-table order.
func (m *Map[H]) Actions() []H { return m.actions }

// Sources returns the sources bound to an action.
func (m *Map[H]) Sources(action H) []Source {
	i, ok := m.index[action]
	if !ok {
		return nil
	}
	return m.sources[i]
}

// Update routes any event to the matching handler. Lifecycle events are ignored.
func (m *Map[H]) Update(ev event.Event) {
	switch ev := ev.(type) {
	case event.Window:
		m.HandleWindowEvent(ev)
	case event.Device:
		m.HandleDeviceEvent(ev)
	case event.Gamepad:
		m.HandleGamepadEvent(ev)
	}
}

// HandleWindowEvent ingests keyboard, mouse button, cursor, wheel, text and
// focus events. Other window events are ignored.
func (m *Map[H]) HandleWindowEvent(ev event.Window) {
	switch ev := ev.(type) {
	case event.KeyInput:
		if ev.Repeat {
			return
		}
		m.set(Key(ev.Key), boolValue(ev.Pressed))
	case event.MouseInput:
		m.set(Mouse(ev.Button), boolValue(ev.Pressed))
	case event.CursorMoved:
		m.cursorX, m.cursorY = ev.X, ev.Y
	case event.MouseWheel:
		m.addMotion(kindScroll, ev.DX, ev.DY)
	case event.CharInput:
		m.chars = append(m.chars, ev.Char)
	case event.Focused:
		m.focused = ev.Focused
		if !ev.Focused {
			m.releaseButtons()
		}
	}
}

// HandleDeviceEvent ingests raw mouse motion.
func (m *Map[H]) HandleDeviceEvent(ev event.Device) {
	if ev, ok := ev.(event.MouseMotion); ok {
		m.addMotion(kindMouseMove, ev.DX, ev.DY)
	}
}

// HandleGamepadEvent ingests gamepad button, axis and connection events.
// Sources are shared by all pads: the strongest pad wins.
func (m *Map[H]) HandleGamepadEvent(ev event.Gamepad) {
	switch ev := ev.(type) {
	case event.GamepadButtonInput:
		m.seePad(ev.ID)
		m.setPad(GamepadButton(ev.Button), ev.ID, boolValue(ev.Pressed))
	case event.GamepadAxisInput:
		m.seePad(ev.ID)
		v := clamp(ev.Value, -1, 1)
		m.setPad(GamepadAxis(ev.Axis, Pos), ev.ID, math32.Max(v, 0))
		m.setPad(GamepadAxis(ev.Axis, Neg), ev.ID, math32.Max(-v, 0))
	case event.GamepadConnection:
		if ev.Connected {
			m.padIDs[ev.ID] = ev.Name
			return
		}
		for ps := range m.pads {
			if ps.id == ev.ID {
				m.setPad(ps.src, ev.ID, 0)
				delete(m.pads, ps)
			}
		}
		delete(m.padIDs, ev.ID)
	}
}

// Gamepads returns the IDs of the gamepads seen so far mapped to their names.
func (m *Map[H]) Gamepads() map[int]string { return m.padIDs }

// Init advances the snapshot by one tick. Everything ingested since the
// previous call becomes visible, edges from the previous tick are cleared
// and per-tick deltas are zeroed. The driver calls Init once per logic tick,
// after the update callback returns.
func (m *Map[H]) Init() {
	copy(m.current, m.live)
	for i := range m.live {
		m.live[i].pressed = false
		m.live[i].released = false
	}

	m.pubCursorX, m.pubCursorY = m.cursorX, m.cursorY
	m.pubChars = append(m.pubChars[:0], m.chars...)
	m.chars = m.chars[:0]
	m.pubFocused = m.focused

	for s, v := range m.values {
		if s.delta() && v != 0 {
			m.set(s, 0)
		}
	}
}

// Pressing reports whether the action is currently held.
func (m *Map[H]) Pressing(action H) bool { return m.state(action).held }

// Pressed reports whether the action became held during the last tick.
func (m *Map[H]) Pressed(action H) bool { return m.state(action).pressed }

// Released reports whether the action stopped being held during the last tick.
func (m *Map[H]) Released(action H) bool { return m.state(action).released }

// Value returns the strength of the action in [0, 1]; the strongest of its
// sources wins.
func (m *Map[H]) Value(action H) float32 { return m.state(action).value }

// Axis combines two opposing actions into a value in [-1, 1].
func (m *Map[H]) Axis(pos, neg H) float32 {
	return clamp(m.Value(pos)-m.Value(neg), -1, 1)
}

// Dir combines four actions into a 2D direction, each component in [-1, 1].
func (m *Map[H]) Dir(right, left, up, down H) mgl32.Vec2 {
	return mgl32.Vec2{m.Axis(right, left), m.Axis(up, down)}
}

// DirMaxLen1 is Dir with the length capped at 1, so diagonals are not faster.
func (m *Map[H]) DirMaxLen1(right, left, up, down H) mgl32.Vec2 {
	d := m.Dir(right, left, up, down)
	if l := d.Len(); l > 1 {
		return d.Mul(1 / l)
	}
	return d
}

// Cursor returns the cursor position published by the last Init.
func (m *Map[H]) Cursor() (x, y float64) { return m.pubCursorX, m.pubCursorY }

// Text returns the characters typed during the last tick.
// The slice is reused by the next Init.
func (m *Map[H]) Text() []rune { return m.pubChars }

// Focused reports whether the window had keyboard focus at the last Init.
func (m *Map[H]) Focused() bool { return m.pubFocused }

func (m *Map[H]) state(action H) bindState {
	i, ok := m.index[action]
	if !ok {
		return bindState{}
	}
	return m.current[i]
}

func (m *Map[H]) addMotion(kind sourceKind, dx, dy float64) {
	scale := m.MouseScale
	for axis, d := range [2]float32{float32(dx), float32(dy)} {
		if d == 0 {
			continue
		}
		sign := Pos
		if d < 0 {
			sign = Neg
		}
		s := Source{kind: kind, code: axis, sign: sign}
		m.set(s, math32.Min(m.values[s]+math32.Abs(d)*scale, 1))
	}
}

func (m *Map[H]) seePad(id int) {
	if _, ok := m.padIDs[id]; !ok {
		m.padIDs[id] = ""
	}
}

func (m *Map[H]) setPad(s Source, id int, v float32) {
	m.pads[padSource{src: s, id: id}] = v
	best := float32(0)
	for ps, pv := range m.pads {
		if ps.src == s && pv > best {
			best = pv
		}
	}
	m.set(s, best)
}

// releaseButtons drops every held key and mouse button, since their
// release events go to whichever window took focus.
func (m *Map[H]) releaseButtons() {
	for s, v := range m.values {
		if (s.kind == kindKey || s.kind == kindMouseButton) && v != 0 {
			m.set(s, 0)
		}
	}
}

func (m *Map[H]) set(s Source, v float32) {
	if v == 0 {
		delete(m.values, s)
	} else {
		m.values[s] = v
	}
	for _, i := range m.bySource[s] {
		m.refresh(i)
	}
}

func (m *Map[H]) refresh(i int) {
	v := float32(0)
	for _, s := range m.sources[i] {
		v = math32.Max(v, m.values[s])
	}
	st := &m.live[i]
	held := v > 0 && v >= m.PressThreshold
	if held && !st.held {
		st.pressed = true
	}
	if !held && st.held {
		st.released = true
	}
	st.value = v
	st.held = held
}

func boolValue(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(v, hi))
}
