package lesson

// Hand assigns a note to the left or right hand. Unassigned means the
// source gave no hint and the pitch fallback hasn't been applied.
type Hand int

const (
	Unassigned Hand = iota
	Left
	Right
)

func (h Hand) String() string {
	switch h {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unassigned"
}

// Kind is the event type on the lesson timeline.
type Kind int

const (
	NoteOn Kind = iota
	NoteOff
)

// NoteEvent is a single point on the lesson timeline. Immutable once built.
// TimeMs is milliseconds since lesson start, after normalization and the
// preparation lead-in. Velocity and DurationMs are meaningful for NoteOn only.
type NoteEvent struct {
	TimeMs     int64
	Kind       Kind
	Pitch      uint8
	Velocity   uint8
	DurationMs int64
	Hand       Hand
}

// EventSequence is the canonical ordered timeline: ascending TimeMs, ties in
// stable original order. Every NoteOn has a matching NoteOff at
// TimeMs+DurationMs later in the slice. Owned by the Engine after Load.
type EventSequence []NoteEvent

// RawNote is one parsed note record as the file loader produces it:
// seconds-based timing with an arbitrary start offset, velocity 0..1,
// and an optional per-track hand hint ("Left Hand", "right", ...).
type RawNote struct {
	Pitch       uint8
	StartSec    float64
	DurationSec float64
	Velocity    float64
	TrackHint   string
}
