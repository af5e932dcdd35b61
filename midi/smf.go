package midi

import (
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"

	"pianestro/lesson"
)

// LoadFile reads a standard MIDI file into the raw note records the lesson
// builder consumes. Track name meta events become the per-track hand hint
// ("Left Hand" / "Right Hand" in typical lesson files).
func LoadFile(path string) ([]lesson.RawNote, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open midi file: %w", err)
	}
	defer f.Close()

	type key struct {
		track int
		pitch uint8
	}
	type pending struct {
		startSec float64
		velocity uint8
	}

	var records []lesson.RawNote
	open := map[key]pending{}
	trackNames := map[int]string{}

	reader := smf.ReadTracksFrom(f)
	reader.Do(func(ev smf.TrackEvent) {
		sec := float64(ev.AbsMicroSeconds) / 1_000_000

		var name string
		if ev.Message.GetMetaTrackName(&name) {
			trackNames[ev.TrackNo] = name
			return
		}

		var ch, note, vel uint8
		if ev.Message.GetNoteStart(&ch, &note, &vel) {
			open[key{ev.TrackNo, note}] = pending{startSec: sec, velocity: vel}
			return
		}
		if ev.Message.GetNoteEnd(&ch, &note) {
			k := key{ev.TrackNo, note}
			p, ok := open[k]
			if !ok {
				return
			}
			delete(open, k)
			records = append(records, lesson.RawNote{
				Pitch:       note,
				StartSec:    p.startSec,
				DurationSec: sec - p.startSec,
				Velocity:    float64(p.velocity) / 127,
				TrackHint:   trackNames[k.track],
			})
		}
	})
	if err := reader.Error(); err != nil {
		return nil, fmt.Errorf("read midi tracks: %w", err)
	}

	if len(records) == 0 {
		return nil, lesson.ErrEmptySequence
	}
	return records, nil
}
