package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pianestro/lesson"
	"pianestro/theme"
)

func TestRewindKeyUsesConfiguredStep(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	engine := lesson.NewEngine(func() time.Time { return now })

	seq := lesson.EventSequence{
		{TimeMs: 10000, Kind: lesson.NoteOn, Pitch: 60, Velocity: 100, DurationMs: 500},
		{TimeMs: 10500, Kind: lesson.NoteOff, Pitch: 60},
	}
	if err := engine.Load(seq, 13500); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := engine.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	now = now.Add(4 * time.Second)

	m := NewModel(engine, nil, nil, theme.New(theme.Default()), "test.mid", 2000)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{","}})

	if got := engine.ElapsedMs(); got != 2000 {
		t.Errorf("elapsed after rewind = %d, want 2000", got)
	}
}

func TestNewModelDefaultRewindStep(t *testing.T) {
	m := NewModel(lesson.NewEngine(time.Now), nil, nil, theme.New(theme.Default()), "x.mid", 0)
	if m.RewindMs != lesson.RewindStepMs {
		t.Errorf("RewindMs = %d, want default %d", m.RewindMs, lesson.RewindStepMs)
	}
}
