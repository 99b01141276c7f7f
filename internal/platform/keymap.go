package platform

// Key is a keyboard scancode abstraction, decoupled from any particular
// input library's constants — an SDL2 backend (or any future one) maps
// its own key codes onto this small enum before consulting KeyMapping.
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

// KeyMapping is the keyboard-to-direction mapping consulted by a
// keyboard-driven backend's ReadJoypad. Direction priority (UP > DOWN >
// LEFT > RIGHT) is applied by the caller, not by this type.
type KeyMapping struct {
	Up    Key
	Down  Key
	Left  Key
	Right Key
}

// DefaultKeyMapping maps the arrow keys to their natural directions.
func DefaultKeyMapping() KeyMapping {
	return KeyMapping{
		Up:    KeyArrowUp,
		Down:  KeyArrowDown,
		Left:  KeyArrowLeft,
		Right: KeyArrowRight,
	}
}

// DirectionFor resolves which direction (if any) a currently-held key
// set maps to, applying the spec's fixed priority order UP > DOWN > LEFT
// > RIGHT.
func DirectionFor(held map[Key]bool, mapping KeyMapping) Direction {
	switch {
	case held[mapping.Up]:
		return DirUp
	case held[mapping.Down]:
		return DirDown
	case held[mapping.Left]:
		return DirLeft
	case held[mapping.Right]:
		return DirRight
	default:
		return DirNone
	}
}
