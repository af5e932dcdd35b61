package widgets

import "testing"

func TestIsBlackKey(t *testing.T) {
	tests := []struct {
		pitch uint8
		want  bool
	}{
		{60, false}, // C4
		{61, true},  // C#4
		{62, false}, // D4
		{63, true},  // D#4
		{64, false}, // E4
		{65, false}, // F4
		{66, true},  // F#4
		{70, true},  // A#4
		{71, false}, // B4
	}
	for _, tt := range tests {
		if got := IsBlackKey(tt.pitch); got != tt.want {
			t.Errorf("IsBlackKey(%d) = %v, want %v", tt.pitch, got, tt.want)
		}
	}
}

func TestKeyColumn(t *testing.T) {
	tests := []struct {
		pitch uint8
		want  int
	}{
		{LowestKey, 0},
		{60, 39},
		{HighestKey, NumKeys - 1},
		{0, 0},             // below range clamps
		{120, NumKeys - 1}, // above range clamps
	}
	for _, tt := range tests {
		if got := KeyColumn(tt.pitch); got != tt.want {
			t.Errorf("KeyColumn(%d) = %d, want %d", tt.pitch, got, tt.want)
		}
	}
}
