package input

// PressTracker turns level-triggered button state into press edges so a
// held key or mouse button fires once
type PressTracker[K comparable] struct {
	pressed map[K]bool
}

// NewPressTracker creates an empty tracker
func NewPressTracker[K comparable]() PressTracker[K] {
	return PressTracker[K]{pressed: make(map[K]bool)}
}

// Pressed records the current state of button and reports whether it went
// down since the previous call
func (t *PressTracker[K]) Pressed(button K, down bool) bool {
	was := t.pressed[button]
	t.pressed[button] = down
	return down && !was
}

// KeyDown reads a scancode out of an SDL keyboard state array
func KeyDown(keyState []uint8, scancode int) bool {
	return scancode >= 0 && scancode < len(keyState) && keyState[scancode] != 0
}

// ButtonDown tests an SDL mouse button mask against the current state
func ButtonDown(mouseState, mask uint32) bool {
	return mouseState&mask != 0
}
