package lesson

import "strings"

// DefaultSplitPoint is the fallback pitch boundary between hands (middle C).
const DefaultSplitPoint = 60

// ResolveHand assigns a pitch to a hand. An explicit hint wins: any track
// label containing "left" or "right" (case-insensitive). Otherwise pitches
// below the split point go to the left hand.
func ResolveHand(pitch uint8, hint string, splitPoint uint8) Hand {
	label := strings.ToLower(hint)
	if strings.Contains(label, "left") {
		return Left
	}
	if strings.Contains(label, "right") {
		return Right
	}
	if pitch < splitPoint {
		return Left
	}
	return Right
}
