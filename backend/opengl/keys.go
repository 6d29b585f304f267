package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/thin/event"
)

// glfwKeyToKey maps GLFW keys to event keys. Keys thin does not name map
// to event.KeyNone.
func glfwKeyToKey(key glfw.Key) event.Key {
	switch key {
	case glfw.KeySpace:
		return event.KeySpace
	case glfw.KeyApostrophe:
		return event.KeyApostrophe
	case glfw.KeyComma:
		return event.KeyComma
	case glfw.KeyMinus:
		return event.KeyMinus
	case glfw.KeyPeriod:
		return event.KeyPeriod
	case glfw.KeySlash:
		return event.KeySlash
	case glfw.Key0:
		return event.Key0
	case glfw.Key1:
		return event.Key1
	case glfw.Key2:
		return event.Key2
	case glfw.Key3:
		return event.Key3
	case glfw.Key4:
		return event.Key4
	case glfw.Key5:
		return event.Key5
	case glfw.Key6:
		return event.Key6
	case glfw.Key7:
		return event.Key7
	case glfw.Key8:
		return event.Key8
	case glfw.Key9:
		return event.Key9
	case glfw.KeySemicolon:
		return event.KeySemicolon
	case glfw.KeyEqual:
		return event.KeyEqual
	case glfw.KeyA:
		return event.KeyA
	case glfw.KeyB:
		return event.KeyB
	case glfw.KeyC:
		return event.KeyC
	case glfw.KeyD:
		return event.KeyD
	case glfw.KeyE:
		return event.KeyE
	case glfw.KeyF:
		return event.KeyF
	case glfw.KeyG:
		return event.KeyG
	case glfw.KeyH:
		return event.KeyH
	case glfw.KeyI:
		return event.KeyI
	case glfw.KeyJ:
		return event.KeyJ
	case glfw.KeyK:
		return event.KeyK
	case glfw.KeyL:
		return event.KeyL
	case glfw.KeyM:
		return event.KeyM
	case glfw.KeyN:
		return event.KeyN
	case glfw.KeyO:
		return event.KeyO
	case glfw.KeyP:
		return event.KeyP
	case glfw.KeyQ:
		return event.KeyQ
	case glfw.KeyR:
		return event.KeyR
	case glfw.KeyS:
		return event.KeyS
	case glfw.KeyT:
		return event.KeyT
	case glfw.KeyU:
		return event.KeyU
	case glfw.KeyV:
		return event.KeyV
	case glfw.KeyW:
		return event.KeyW
	case glfw.KeyX:
		return event.KeyX
	case glfw.KeyY:
		return event.KeyY
	case glfw.KeyZ:
		return event.KeyZ
	case glfw.KeyLeftBracket:
		return event.KeyLeftBracket
	case glfw.KeyBackslash:
		return event.KeyBackslash
	case glfw.KeyRightBracket:
		return event.KeyRightBracket
	case glfw.KeyGraveAccent:
		return event.KeyGraveAccent
	case glfw.KeyEscape:
		return event.KeyEscape
	case glfw.KeyEnter:
		return event.KeyEnter
	case glfw.KeyTab:
		return event.KeyTab
	case glfw.KeyBackspace:
		return event.KeyBackspace
	case glfw.KeyInsert:
		return event.KeyInsert
	case glfw.KeyDelete:
		return event.KeyDelete
	case glfw.KeyRight:
		return event.KeyRight
	case glfw.KeyLeft:
		return event.KeyLeft
	case glfw.KeyDown:
		return event.KeyDown
	case glfw.KeyUp:
		return event.KeyUp
	case glfw.KeyPageUp:
		return event.KeyPageUp
	case glfw.KeyPageDown:
		return event.KeyPageDown
	case glfw.KeyHome:
		return event.KeyHome
	case glfw.KeyEnd:
		return event.KeyEnd
	case glfw.KeyCapsLock:
		return event.KeyCapsLock
	case glfw.KeyF1:
		return event.KeyF1
	case glfw.KeyF2:
		return event.KeyF2
	case glfw.KeyF3:
		return event.KeyF3
	case glfw.KeyF4:
		return event.KeyF4
	case glfw.KeyF5:
		return event.KeyF5
	case glfw.KeyF6:
		return event.KeyF6
	case glfw.KeyF7:
		return event.KeyF7
	case glfw.KeyF8:
		return event.KeyF8
	case glfw.KeyF9:
		return event.KeyF9
	case glfw.KeyF10:
		return event.KeyF10
	case glfw.KeyF11:
		return event.KeyF11
	case glfw.KeyF12:
		return event.KeyF12
	case glfw.KeyLeftShift:
		return event.KeyLeftShift
	case glfw.KeyLeftControl:
		return event.KeyLeftControl
	case glfw.KeyLeftAlt:
		return event.KeyLeftAlt
	case glfw.KeyLeftSuper:
		return event.KeyLeftSuper
	case glfw.KeyRightShift:
		return event.KeyRightShift
	case glfw.KeyRightControl:
		return event.KeyRightControl
	case glfw.KeyRightAlt:
		return event.KeyRightAlt
	case glfw.KeyRightSuper:
		return event.KeyRightSuper
	case glfw.KeyKPEnter:
		return event.KeyEnter
	default:
		return event.KeyNone
	}
}

// glfwMouseButton maps GLFW mouse buttons to event buttons.
func glfwMouseButton(button glfw.MouseButton) (event.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return event.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return event.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return event.MouseButtonMiddle, true
	case glfw.MouseButton4:
		return event.MouseButtonBack, true
	case glfw.MouseButton5:
		return event.MouseButtonForward, true
	default:
		return 0, false
	}
}
