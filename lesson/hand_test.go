package lesson

import "testing"

func TestResolveHand(t *testing.T) {
	tests := []struct {
		pitch uint8
		hint  string
		split uint8
		want  Hand
	}{
		{72, "Left Hand", 60, Left},   // explicit hint beats pitch
		{40, "RIGHT", 60, Right},      // case-insensitive
		{50, "Piano right hand", 60, Right}, // substring match
		{59, "", 60, Left},            // below split
		{60, "", 60, Right},           // at split
		{61, "", 60, Right},           // above split
		{65, "", 72, Left},            // custom split point
		{50, "Track 3", 60, Left},     // unrelated label falls back to pitch
	}
	for _, tt := range tests {
		got := ResolveHand(tt.pitch, tt.hint, tt.split)
		if got != tt.want {
			t.Errorf("ResolveHand(%d, %q, %d) = %v, want %v", tt.pitch, tt.hint, tt.split, got, tt.want)
		}
	}
}
