package widgets

// The 88-key range of a full piano, A0..C8.
const (
	LowestKey  = 21
	HighestKey = 108
	NumKeys    = HighestKey - LowestKey + 1
)

// IsBlackKey reports whether a MIDI pitch is a black key
func IsBlackKey(pitch uint8) bool {
	switch pitch % 12 {
	case 1, 3, 6, 8, 10:
		return true
	}
	return false
}

// KeyColumn maps a pitch to its column on the keyboard strip (0-based).
// Pitches outside the 88-key range clamp to the edges.
func KeyColumn(pitch uint8) int {
	if pitch < LowestKey {
		return 0
	}
	if pitch > HighestKey {
		return NumKeys - 1
	}
	return int(pitch) - LowestKey
}

// KeyboardStrip builds the one-row keyboard view: one cell per key, glyphs
// and colors decided by the caller via the state callback.
func KeyboardStrip(state func(pitch uint8) Cell) []Cell {
	cells := make([]Cell, NumKeys)
	for i := 0; i < NumKeys; i++ {
		cells[i] = state(uint8(LowestKey + i))
	}
	return cells
}
