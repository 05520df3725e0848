package core

// Key is a discrete key code understood by the game, abstracted from
// physical keys so every platform maps its own input onto the same set.
type Key int

const (
	KeyNone    Key = iota
	KeyLeft        // A, Left arrow - move paddle left
	KeyRight       // D, Right arrow - move paddle right
	KeyLaunch      // Space - release a stuck ball
	KeyConfirm     // Enter - start / leave the win screen
	KeyNext        // W, Up arrow - next level in the menu
	KeyPrev        // S, Down arrow - previous level in the menu
	KeyQuit        // Q, Ctrl+C, Esc - leave the game
	KeyCount       // Sentinel for array sizing
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyLaunch:
		return "Launch"
	case KeyConfirm:
		return "Confirm"
	case KeyNext:
		return "Next"
	case KeyPrev:
		return "Prev"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyState is the two-array input model: Down holds whether a key is
// currently pressed, Processed whether the current press has already been
// consumed. Platforms write Down; the game writes Processed. Releasing a key
// clears its Processed flag so the next press is a fresh edge.
type KeyState struct {
	Down      [KeyCount]bool
	Processed [KeyCount]bool
}

// Press marks a key as held.
func (s *KeyState) Press(k Key) {
	if k <= KeyNone || k >= KeyCount {
		return
	}
	s.Down[k] = true
}

// Release marks a key as up and re-arms its edge trigger.
func (s *KeyState) Release(k Key) {
	if k <= KeyNone || k >= KeyCount {
		return
	}
	s.Down[k] = false
	s.Processed[k] = false
}

// IsDown returns true while the key is held.
func (s *KeyState) IsDown(k Key) bool {
	if k <= KeyNone || k >= KeyCount {
		return false
	}
	return s.Down[k]
}

// Consume returns true once per press: the key is down and its press has
// not been processed yet. The press is marked processed.
func (s *KeyState) Consume(k Key) bool {
	if !s.IsDown(k) || s.Processed[k] {
		return false
	}
	s.Processed[k] = true
	return true
}

// ReleaseAll releases every key.
func (s *KeyState) ReleaseAll() {
	for k := KeyNone + 1; k < KeyCount; k++ {
		s.Release(k)
	}
}
