package lesson

import "time"

// checkProgress applies the currently held keys against the waiting set.
// Satisfaction is cumulative: pitches pressed across separate calls count,
// no simultaneity required. When the set empties the clock resumes and the
// cursor skips past the satisfied chord group.
func (e *Engine) checkProgress() {
	if e.phase != PhasePaused || len(e.waiting) == 0 {
		return
	}

	for pitch := range e.held {
		delete(e.waiting, pitch)
	}
	if len(e.waiting) > 0 {
		return
	}

	e.pausedAccumMs += e.now().Sub(e.pauseStart).Milliseconds()
	e.pauseStart = time.Time{}
	e.phase = PhaseRunning
	e.cursor = e.advancePastGroup()
	e.firedCursor = -1
}

// advancePastGroup finds the first NoteOn beyond the resolved chord window.
// Returns len(seq) when nothing is left to wait for; the lesson then
// completes on elapsed time alone.
func (e *Engine) advancePastGroup() int {
	for i := e.cursor; i < len(e.seq); i++ {
		ev := e.seq[i]
		if ev.Kind == NoteOn && ev.TimeMs-e.waitTimeMs >= ChordToleranceMs {
			return i
		}
	}
	return len(e.seq)
}
