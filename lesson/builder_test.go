package lesson

import (
	"errors"
	"testing"
)

func TestBuildSequenceEmpty(t *testing.T) {
	_, _, err := BuildSequence(nil, DefaultSplitPoint)
	if !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("BuildSequence(nil) error = %v, want ErrEmptySequence", err)
	}
}

func TestBuildSequenceNormalization(t *testing.T) {
	records := []RawNote{
		{Pitch: 64, StartSec: 2.5, DurationSec: 0.5, Velocity: 1.0},
		{Pitch: 60, StartSec: 2.0, DurationSec: 1.0, Velocity: 0.5},
	}
	seq, duration, err := BuildSequence(records, DefaultSplitPoint)
	if err != nil {
		t.Fatalf("BuildSequence: %v", err)
	}
	if len(seq) != 4 {
		t.Fatalf("sequence length = %d, want 4", len(seq))
	}

	// Earliest record (60 at 2.0s) shifts to the preparation lead-in.
	first := seq[0]
	if first.Pitch != 60 || first.Kind != NoteOn {
		t.Fatalf("first event = pitch %d kind %d, want NoteOn 60", first.Pitch, first.Kind)
	}
	if first.TimeMs != PrepMs {
		t.Errorf("first NoteOn time = %d, want %d", first.TimeMs, PrepMs)
	}
	if first.DurationMs != 1000 {
		t.Errorf("first NoteOn duration = %d, want 1000", first.DurationMs)
	}
	if first.Velocity != 64 {
		t.Errorf("velocity 0.5 scaled to %d, want 64", first.Velocity)
	}

	// 64 starts 500ms later, off events land at start+duration.
	wantTimes := map[int]int64{1: PrepMs + 500, 2: PrepMs + 1000, 3: PrepMs + 1000}
	for i, want := range wantTimes {
		if seq[i].TimeMs != want {
			t.Errorf("event %d time = %d, want %d", i, seq[i].TimeMs, want)
		}
	}

	if want := seq[len(seq)-1].TimeMs + CooldownMs; duration != want {
		t.Errorf("duration = %d, want %d", duration, want)
	}
}

func TestBuildSequenceStableTieOrder(t *testing.T) {
	// Both notes start together; the on events must keep input order.
	records := []RawNote{
		{Pitch: 72, StartSec: 0, DurationSec: 0.5, Velocity: 0.8},
		{Pitch: 48, StartSec: 0, DurationSec: 0.5, Velocity: 0.8},
	}
	seq, _, err := BuildSequence(records, DefaultSplitPoint)
	if err != nil {
		t.Fatalf("BuildSequence: %v", err)
	}
	if seq[0].Pitch != 72 || seq[1].Pitch != 48 {
		t.Errorf("tied NoteOns ordered %d,%d, want 72,48", seq[0].Pitch, seq[1].Pitch)
	}
}

func TestBuildSequenceHands(t *testing.T) {
	records := []RawNote{
		{Pitch: 72, StartSec: 0, DurationSec: 0.25, Velocity: 0.8, TrackHint: "Left Hand"},
		{Pitch: 40, StartSec: 1, DurationSec: 0.25, Velocity: 0.8},
		{Pitch: 70, StartSec: 2, DurationSec: 0.25, Velocity: 0.8},
	}
	seq, _, err := BuildSequence(records, DefaultSplitPoint)
	if err != nil {
		t.Fatalf("BuildSequence: %v", err)
	}
	byPitch := map[uint8]Hand{}
	for _, ev := range seq {
		if ev.Kind == NoteOn {
			byPitch[ev.Pitch] = ev.Hand
		}
	}
	if byPitch[72] != Left {
		t.Errorf("pitch 72 with left hint = %v, want left", byPitch[72])
	}
	if byPitch[40] != Left {
		t.Errorf("pitch 40 below split = %v, want left", byPitch[40])
	}
	if byPitch[70] != Right {
		t.Errorf("pitch 70 above split = %v, want right", byPitch[70])
	}
}
