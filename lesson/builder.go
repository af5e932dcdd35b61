package lesson

import (
	"math"
	"sort"
)

const (
	// PrepMs is the fixed preparation lead-in before the first note.
	PrepMs = 5000
	// CooldownMs is the wind-down tail after the last event.
	CooldownMs = 3000
)

// BuildSequence normalizes raw parsed note records into the canonical
// timeline the engine consumes. Records may come from multiple tracks, in
// any order, with an arbitrary minimum start time; the earliest record is
// shifted to PrepMs. Each record emits a NoteOn and its NoteOff. Returns
// the sequence and the total lesson duration (last event + CooldownMs).
func BuildSequence(records []RawNote, splitPoint uint8) (EventSequence, int64, error) {
	if len(records) == 0 {
		return nil, 0, ErrEmptySequence
	}

	minStart := records[0].StartSec
	for _, r := range records[1:] {
		if r.StartSec < minStart {
			minStart = r.StartSec
		}
	}

	seq := make(EventSequence, 0, len(records)*2)
	for _, r := range records {
		timeMs := int64(math.Round((r.StartSec-minStart)*1000)) + PrepMs
		durMs := int64(math.Round(r.DurationSec * 1000))
		hand := ResolveHand(r.Pitch, r.TrackHint, splitPoint)

		seq = append(seq, NoteEvent{
			TimeMs:     timeMs,
			Kind:       NoteOn,
			Pitch:      r.Pitch,
			Velocity:   uint8(math.Round(r.Velocity * 127)),
			DurationMs: durMs,
			Hand:       hand,
		})
		seq = append(seq, NoteEvent{
			TimeMs: timeMs + durMs,
			Kind:   NoteOff,
			Pitch:  r.Pitch,
			Hand:   hand,
		})
	}

	sort.SliceStable(seq, func(i, j int) bool {
		return seq[i].TimeMs < seq[j].TimeMs
	})

	if len(seq) == 0 {
		return nil, 0, ErrEmptySequence
	}

	duration := seq[len(seq)-1].TimeMs + CooldownMs
	return seq, duration, nil
}
