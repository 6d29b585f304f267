package event

// Key identifies a physical keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeySpace
	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySemicolon
	KeyEqual
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyGraveAccent
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCapsLock
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyLeftShift
	KeyLeftControl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightShift
	KeyRightControl
	KeyRightAlt
	KeyRightSuper
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone:         "--",
	KeySpace:        "Space",
	KeyApostrophe:   "'",
	KeyComma:        ",",
	KeyMinus:        "-",
	KeyPeriod:       ".",
	KeySlash:        "/",
	Key0:            "0",
	Key1:            "1",
	Key2:            "2",
	Key3:            "3",
	Key4:            "4",
	Key5:            "5",
	Key6:            "6",
	Key7:            "7",
	Key8:            "8",
	Key9:            "9",
	KeySemicolon:    ";",
	KeyEqual:        "=",
	KeyA:            "A",
	KeyB:            "B",
	KeyC:            "C",
	KeyD:            "D",
	KeyE:            "E",
	KeyF:            "F",
	KeyG:            "G",
	KeyH:            "H",
	KeyI:            "I",
	KeyJ:            "J",
	KeyK:            "K",
	KeyL:            "L",
	KeyM:            "M",
	KeyN:            "N",
	KeyO:            "O",
	KeyP:            "P",
	KeyQ:            "Q",
	KeyR:            "R",
	KeyS:            "S",
	KeyT:            "T",
	KeyU:            "U",
	KeyV:            "V",
	KeyW:            "W",
	KeyX:            "X",
	KeyY:            "Y",
	KeyZ:            "Z",
	KeyLeftBracket:  "[",
	KeyBackslash:    "\\",
	KeyRightBracket: "]",
	KeyGraveAccent:  "`",
	KeyEscape:       "Esc",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyInsert:       "Ins",
	KeyDelete:       "Del",
	KeyRight:        "Right",
	KeyLeft:         "Left",
	KeyDown:         "Down",
	KeyUp:           "Up",
	KeyPageUp:       "PgUp",
	KeyPageDown:     "PgDn",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyCapsLock:     "CapsLock",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
	KeyLeftShift:    "LShift",
	KeyLeftControl:  "LCtrl",
	KeyLeftAlt:      "LAlt",
	KeyLeftSuper:    "LSuper",
	KeyRightShift:   "RShift",
	KeyRightControl: "RCtrl",
	KeyRightAlt:     "RAlt",
	KeyRightSuper:   "RSuper",
}

// String returns a short human-readable name for the key.
func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "?"
	}
	return keyNames[k]
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack
	MouseButtonForward
	MouseButtonCount
)

// GamepadButton identifies a button on a standard-layout gamepad.
// The layout follows the SDL controller database naming used by GLFW.
type GamepadButton int

const (
	GamepadSouth GamepadButton = iota
	GamepadEast
	GamepadWest
	GamepadNorth
	GamepadLeftBumper
	GamepadRightBumper
	GamepadSelect
	GamepadStart
	GamepadMode
	GamepadLeftThumb
	GamepadRightThumb
	GamepadDPadUp
	GamepadDPadRight
	GamepadDPadDown
	GamepadDPadLeft
	GamepadButtonCount
)

// GamepadAxis identifies an analog gamepad axis.
type GamepadAxis int

const (
	LeftStickX GamepadAxis = iota
	LeftStickY
	RightStickX
	RightStickY
	LeftTrigger
	RightTrigger
	GamepadAxisCount
)

// Axis identifies one of the two pointer axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)
