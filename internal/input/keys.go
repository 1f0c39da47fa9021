// Package input turns raw keyboard and mouse state into per-frame polling
// state and listener events.
//
// Input is read once per tick from a Source (the live Ebitengine state, or
// a recorded replay) as a Frame. The Frame is applied to the global
// Keyboard and Mouse polling state and then dispatched as events to the
// listeners registered on the active scene's Manager.
package input

import "github.com/hajimehoshi/ebiten/v2"

// Key represents a keyboard key. Values match ebiten key codes.
type Key int

// Keys known to the engine.
const (
	KeyUnknown Key = -1

	KeyA = Key(ebiten.KeyA)
	KeyB = Key(ebiten.KeyB)
	KeyC = Key(ebiten.KeyC)
	KeyD = Key(ebiten.KeyD)
	KeyE = Key(ebiten.KeyE)
	KeyF = Key(ebiten.KeyF)
	KeyG = Key(ebiten.KeyG)
	KeyH = Key(ebiten.KeyH)
	KeyI = Key(ebiten.KeyI)
	KeyJ = Key(ebiten.KeyJ)
	KeyK = Key(ebiten.KeyK)
	KeyL = Key(ebiten.KeyL)
	KeyM = Key(ebiten.KeyM)
	KeyN = Key(ebiten.KeyN)
	KeyO = Key(ebiten.KeyO)
	KeyP = Key(ebiten.KeyP)
	KeyQ = Key(ebiten.KeyQ)
	KeyR = Key(ebiten.KeyR)
	KeyS = Key(ebiten.KeyS)
	KeyT = Key(ebiten.KeyT)
	KeyU = Key(ebiten.KeyU)
	KeyV = Key(ebiten.KeyV)
	KeyW = Key(ebiten.KeyW)
	KeyX = Key(ebiten.KeyX)
	KeyY = Key(ebiten.KeyY)
	KeyZ = Key(ebiten.KeyZ)

	KeyDigit0 = Key(ebiten.KeyDigit0)
	KeyDigit1 = Key(ebiten.KeyDigit1)
	KeyDigit2 = Key(ebiten.KeyDigit2)
	KeyDigit3 = Key(ebiten.KeyDigit3)
	KeyDigit4 = Key(ebiten.KeyDigit4)
	KeyDigit5 = Key(ebiten.KeyDigit5)
	KeyDigit6 = Key(ebiten.KeyDigit6)
	KeyDigit7 = Key(ebiten.KeyDigit7)
	KeyDigit8 = Key(ebiten.KeyDigit8)
	KeyDigit9 = Key(ebiten.KeyDigit9)

	KeyNumpad0 = Key(ebiten.KeyNumpad0)
	KeyNumpad1 = Key(ebiten.KeyNumpad1)
	KeyNumpad2 = Key(ebiten.KeyNumpad2)
	KeyNumpad3 = Key(ebiten.KeyNumpad3)
	KeyNumpad4 = Key(ebiten.KeyNumpad4)
	KeyNumpad5 = Key(ebiten.KeyNumpad5)
	KeyNumpad6 = Key(ebiten.KeyNumpad6)
	KeyNumpad7 = Key(ebiten.KeyNumpad7)
	KeyNumpad8 = Key(ebiten.KeyNumpad8)
	KeyNumpad9 = Key(ebiten.KeyNumpad9)

	KeyArrowUp    = Key(ebiten.KeyArrowUp)
	KeyArrowDown  = Key(ebiten.KeyArrowDown)
	KeyArrowLeft  = Key(ebiten.KeyArrowLeft)
	KeyArrowRight = Key(ebiten.KeyArrowRight)

	KeySpace     = Key(ebiten.KeySpace)
	KeyEnter     = Key(ebiten.KeyEnter)
	KeyEscape    = Key(ebiten.KeyEscape)
	KeyTab       = Key(ebiten.KeyTab)
	KeyBackspace = Key(ebiten.KeyBackspace)

	KeyShiftLeft    = Key(ebiten.KeyShiftLeft)
	KeyShiftRight   = Key(ebiten.KeyShiftRight)
	KeyControlLeft  = Key(ebiten.KeyControlLeft)
	KeyControlRight = Key(ebiten.KeyControlRight)
	KeyAltLeft      = Key(ebiten.KeyAltLeft)
	KeyAltRight     = Key(ebiten.KeyAltRight)

	KeyF1  = Key(ebiten.KeyF1)
	KeyF2  = Key(ebiten.KeyF2)
	KeyF3  = Key(ebiten.KeyF3)
	KeyF4  = Key(ebiten.KeyF4)
	KeyF5  = Key(ebiten.KeyF5)
	KeyF6  = Key(ebiten.KeyF6)
	KeyF7  = Key(ebiten.KeyF7)
	KeyF8  = Key(ebiten.KeyF8)
	KeyF9  = Key(ebiten.KeyF9)
	KeyF10 = Key(ebiten.KeyF10)
	KeyF11 = Key(ebiten.KeyF11)
	KeyF12 = Key(ebiten.KeyF12)
)

// String returns the key's printable name, e.g. "W" or "ShiftLeft".
func (k Key) String() string {
	if k == KeyUnknown {
		return "Unknown"
	}
	return ebiten.Key(k).String()
}

// KeyForRune returns the key that types ch on a US layout, or KeyUnknown.
// Only letters, digits and space are mapped.
func KeyForRune(ch rune) Key {
	switch {
	case ch >= 'a' && ch <= 'z':
		return KeyA + Key(ch-'a')
	case ch >= 'A' && ch <= 'Z':
		return KeyA + Key(ch-'A')
	case ch >= '0' && ch <= '9':
		return KeyDigit0 + Key(ch-'0')
	case ch == ' ':
		return KeySpace
	}
	return KeyUnknown
}

// MouseButton represents a mouse button. Values match ebiten button codes.
type MouseButton int

const (
	MouseButtonLeft   = MouseButton(ebiten.MouseButtonLeft)
	MouseButtonRight  = MouseButton(ebiten.MouseButtonRight)
	MouseButtonMiddle = MouseButton(ebiten.MouseButtonMiddle)
)

// String returns "Left", "Right", "Middle" or "Unknown".
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	default:
		return "Unknown"
	}
}
