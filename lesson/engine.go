package lesson

import (
	"sort"
	"time"
)

// Phase is the engine lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseCompleted:
		return "completed"
	}
	return "idle"
}

const (
	// ChordToleranceMs groups near-simultaneous NoteOns into one wait unit.
	// The window is half-open: [trigger, trigger+ChordToleranceMs).
	ChordToleranceMs = 50

	// RewindStepMs is how far the navigation key jumps back.
	RewindStepMs = 5000

	// NavRewindKey is the lowest key on an 88-key keyboard (A0), repurposed
	// as a rewind command while the lesson is running.
	NavRewindKey = 21
)

// PlayCommand asks the MIDI-out collaborator to sound a note the learner
// isn't expected to play (disabled-hand auto-skip).
type PlayCommand struct {
	Pitch      uint8
	Velocity   uint8
	DurationMs int64
	Hand       Hand
}

// Snapshot is the render state exposed after every tick. The renderer
// derives note positions and lane colors from this plus the static sequence.
type Snapshot struct {
	Phase        Phase
	ElapsedMs    int64
	DurationMs   int64
	Cursor       int
	Waiting      []uint8
	LeftEnabled  bool
	RightEnabled bool
}

// Engine is the lesson playback state machine. It tracks time, phase, and
// decisions only: no rendering, no audio. All time reads go through the
// injected clock so tests can drive it deterministically.
//
// Calls must be serialized by the host (single mutator at a time); the
// engine does no locking itself.
type Engine struct {
	now        func() time.Time
	splitPoint uint8

	seq        EventSequence
	durationMs int64

	phase         Phase
	startClock    time.Time
	pausedAccumMs int64
	pauseStart    time.Time
	cursor        int
	waiting       map[uint8]struct{}
	waitTimeMs    int64 // trigger time of the current chord group
	leftEnabled   bool
	rightEnabled  bool

	// firedCursor is the last cursor position that triggered a pause, so a
	// position fires at most once even across stalled or bursty ticks.
	firedCursor int

	// held mirrors the physical keyboard, for the evaluator and the renderer.
	held map[uint8]struct{}
}

// NewEngine creates an idle engine with both hands enabled.
func NewEngine(now func() time.Time) *Engine {
	return &Engine{
		now:          now,
		splitPoint:   DefaultSplitPoint,
		leftEnabled:  true,
		rightEnabled: true,
		waiting:      make(map[uint8]struct{}),
		held:         make(map[uint8]struct{}),
		firedCursor:  -1,
	}
}

// SetSplitPoint changes the fallback hand boundary for events without an
// explicit hint. Takes effect on the next hand resolution.
func (e *Engine) SetSplitPoint(p uint8) { e.splitPoint = p }

// Load installs a new sequence. Only valid while idle (Completed auto-resets
// to idle, so a finished lesson can be reloaded immediately).
func (e *Engine) Load(seq EventSequence, durationMs int64) error {
	if e.phase == PhaseRunning || e.phase == PhasePaused {
		return ErrAlreadyLoaded
	}
	e.seq = seq
	e.durationMs = durationMs
	e.resetState()
	return nil
}

// Start anchors the wall clock and begins playback.
func (e *Engine) Start() error {
	if len(e.seq) == 0 {
		return ErrNotLoaded
	}
	if e.phase != PhaseIdle {
		return ErrSessionActive
	}
	e.startClock = e.now()
	e.pausedAccumMs = 0
	e.pauseStart = time.Time{}
	e.cursor = 0
	e.waiting = make(map[uint8]struct{})
	e.firedCursor = -1
	e.phase = PhaseRunning
	return nil
}

// ElapsedMs is the position on the lesson timeline. Always recomputed from
// the clock anchor, never accumulated, so it cannot drift.
func (e *Engine) ElapsedMs() int64 {
	if e.startClock.IsZero() {
		return 0
	}
	if e.phase == PhasePaused {
		return e.pauseStart.Sub(e.startClock).Milliseconds() - e.pausedAccumMs
	}
	return e.now().Sub(e.startClock).Milliseconds() - e.pausedAccumMs
}

// Tick advances the engine against the clock. Called at display-refresh
// cadence while running or paused; idempotent and tolerant of arbitrary
// gaps (hit-line detection is a threshold crossing, not a per-frame delta).
// Returned commands are notes to sound for disabled-hand auto-skips.
func (e *Engine) Tick() []PlayCommand {
	if e.phase != PhaseRunning {
		return nil
	}

	elapsed := e.ElapsedMs()
	if elapsed >= e.durationMs {
		// Lesson over: complete, then immediately rest at idle.
		e.phase = PhaseCompleted
		e.resetState()
		return nil
	}

	var cmds []PlayCommand
	for e.cursor < len(e.seq) {
		ev := e.seq[e.cursor]
		if ev.Kind != NoteOn {
			e.cursor++
			continue
		}
		if elapsed < ev.TimeMs || e.cursor == e.firedCursor {
			break
		}
		e.firedCursor = e.cursor

		if !e.handEnabled(e.handOf(ev)) {
			// Not the learner's note: sound it and move on without pausing.
			cmds = append(cmds, PlayCommand{
				Pitch:      ev.Pitch,
				Velocity:   ev.Velocity,
				DurationMs: ev.DurationMs,
				Hand:       e.handOf(ev),
			})
			e.cursor++
			continue
		}

		e.pauseAt(ev)
		break
	}
	return cmds
}

// pauseAt stops the clock at the hit line and collects the chord group the
// learner must play: enabled-hand NoteOns within the tolerance window.
func (e *Engine) pauseAt(trigger NoteEvent) {
	e.phase = PhasePaused
	e.pauseStart = e.now()
	e.waitTimeMs = trigger.TimeMs
	e.waiting = make(map[uint8]struct{})

	for i := e.cursor; i < len(e.seq); i++ {
		ev := e.seq[i]
		if ev.TimeMs-trigger.TimeMs >= ChordToleranceMs {
			break
		}
		if ev.Kind == NoteOn && e.handEnabled(e.handOf(ev)) {
			e.waiting[ev.Pitch] = struct{}{}
		}
	}

	// The trigger itself qualifies, so this shouldn't happen; if it does,
	// cancel the pause rather than wait on nothing.
	if len(e.waiting) == 0 {
		e.phase = PhaseRunning
		e.pauseStart = time.Time{}
	}
}

// NoteDown reports a key press from the input collaborator. The lowest key
// is a navigation command while running; everything else feeds progress.
func (e *Engine) NoteDown(pitch uint8) {
	if pitch == NavRewindKey && e.phase == PhaseRunning {
		e.Rewind(RewindStepMs)
		return
	}
	e.held[pitch] = struct{}{}
	e.checkProgress()
}

// NoteUp reports a key release.
func (e *Engine) NoteUp(pitch uint8) {
	delete(e.held, pitch)
}

// SetHandEnabled toggles gating for one hand. While paused this re-runs the
// progress check; it does not itself clear waiting pitches.
func (e *Engine) SetHandEnabled(hand Hand, enabled bool) {
	switch hand {
	case Left:
		e.leftEnabled = enabled
	case Right:
		e.rightEnabled = enabled
	}
	if e.phase == PhasePaused {
		e.checkProgress()
	}
}

// Rewind jumps the timeline back by ms, clamped at 0, and resumes running.
func (e *Engine) Rewind(ms int64) {
	if e.phase != PhaseRunning && e.phase != PhasePaused {
		return
	}
	target := e.ElapsedMs() - ms
	if target < 0 {
		target = 0
	}
	// Fold the jump into the pause accumulator so elapsed == target now.
	e.pausedAccumMs = e.now().Sub(e.startClock).Milliseconds() - target
	e.phase = PhaseRunning
	e.pauseStart = time.Time{}
	e.waiting = make(map[uint8]struct{})
	e.firedCursor = -1
	e.cursor = sort.Search(len(e.seq), func(i int) bool {
		return e.seq[i].TimeMs >= target
	})
}

// Stop cancels the session immediately and returns to idle.
func (e *Engine) Stop() {
	e.phase = PhaseIdle
	e.resetState()
}

// Reset is an alias for Stop kept for symmetry with Load/Start.
func (e *Engine) Reset() { e.Stop() }

// resetState clears all transient session state. The loaded sequence and
// hand toggles survive.
func (e *Engine) resetState() {
	e.phase = PhaseIdle
	e.startClock = time.Time{}
	e.pauseStart = time.Time{}
	e.pausedAccumMs = 0
	e.cursor = 0
	e.waiting = make(map[uint8]struct{})
	e.waitTimeMs = 0
	e.firedCursor = -1
}

// Snapshot returns the render state. Waiting pitches are sorted so the
// renderer doesn't depend on map order.
func (e *Engine) Snapshot() Snapshot {
	waiting := make([]uint8, 0, len(e.waiting))
	for p := range e.waiting {
		waiting = append(waiting, p)
	}
	sort.Slice(waiting, func(i, j int) bool { return waiting[i] < waiting[j] })

	return Snapshot{
		Phase:        e.phase,
		ElapsedMs:    e.ElapsedMs(),
		DurationMs:   e.durationMs,
		Cursor:       e.cursor,
		Waiting:      waiting,
		LeftEnabled:  e.leftEnabled,
		RightEnabled: e.rightEnabled,
	}
}

// Sequence exposes the loaded timeline for the renderer. Treat as read-only.
func (e *Engine) Sequence() EventSequence { return e.seq }

// DurationMs is the total lesson length including the cooldown tail.
func (e *Engine) DurationMs() int64 { return e.durationMs }

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// IsHeld reports whether the learner currently holds a key.
func (e *Engine) IsHeld(pitch uint8) bool {
	_, ok := e.held[pitch]
	return ok
}

func (e *Engine) handOf(ev NoteEvent) Hand {
	if ev.Hand != Unassigned {
		return ev.Hand
	}
	return ResolveHand(ev.Pitch, "", e.splitPoint)
}

func (e *Engine) handEnabled(h Hand) bool {
	if h == Left {
		return e.leftEnabled
	}
	return e.rightEnabled
}
