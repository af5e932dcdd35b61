package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pianestro/debug"
	"pianestro/lesson"
	"pianestro/midi"
	"pianestro/theme"
	"pianestro/widgets"
)

// Tick cadence for the engine (display refresh rate)
const tickRate = time.Second / 60

// Each lane row covers this much of the timeline
const msPerRow = 250

// How many rows of upcoming notes to show above the hit line
const laneRows = 16

type Model struct {
	Engine    *lesson.Engine
	DeviceMgr *midi.DeviceManager
	Out       *midi.Output
	Theme     *theme.Theme
	FileName  string
	RewindMs  int64

	quitting   bool
	status     string
	controller midi.Controller // current keyboard (may be nil)
}

type tickMsg time.Time

type noteMsg midi.NoteEvent

type DeviceEventMsg midi.DeviceEvent

func NewModel(engine *lesson.Engine, deviceMgr *midi.DeviceManager, out *midi.Output, th *theme.Theme, fileName string, rewindMs int64) Model {
	if rewindMs <= 0 {
		rewindMs = lesson.RewindStepMs
	}
	return Model{
		Engine:    engine,
		DeviceMgr: deviceMgr,
		Out:       out,
		Theme:     th,
		FileName:  fileName,
		RewindMs:  rewindMs,
	}
}

func doTick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	return func() tea.Msg {
		event := <-deviceMgr.Events()
		return DeviceEventMsg(event)
	}
}

func listenForNotes(c midi.Controller) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-c.NoteEvents()
		if !ok {
			return nil
		}
		return noteMsg(evt)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		doTick(),
		ListenForDevices(m.DeviceMgr),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.Engine.Stop()
			return m, tea.Quit

		case " ":
			if m.Engine.Phase() == lesson.PhaseIdle {
				if err := m.Engine.Start(); err != nil {
					m.status = err.Error()
				} else {
					m.status = ""
				}
			} else {
				m.Engine.Stop()
			}

		case "l":
			snap := m.Engine.Snapshot()
			m.Engine.SetHandEnabled(lesson.Left, !snap.LeftEnabled)

		case "r":
			snap := m.Engine.Snapshot()
			m.Engine.SetHandEnabled(lesson.Right, !snap.RightEnabled)

		case ",":
			m.Engine.Rewind(m.RewindMs)
		}

	case tickMsg:
		for _, cmd := range m.Engine.Tick() {
			m.Out.PlayNote(cmd.Pitch, cmd.Velocity, time.Duration(cmd.DurationMs)*time.Millisecond)
		}
		debug.LogEvery(600, "tick", "phase=%s elapsed=%d", m.Engine.Phase(), m.Engine.ElapsedMs())
		return m, doTick()

	case noteMsg:
		if msg.On {
			m.Engine.NoteDown(msg.Note)
		} else {
			m.Engine.NoteUp(msg.Note)
		}
		if m.controller != nil {
			return m, listenForNotes(m.controller)
		}

	case DeviceEventMsg:
		event := midi.DeviceEvent(msg)
		if event.Type == midi.DeviceConnected {
			debug.Log("device", "keyboard connected: %s", event.ID)
			m.controller = event.Controller
			return m, tea.Batch(
				listenForNotes(m.controller),
				ListenForDevices(m.DeviceMgr),
			)
		}
		if m.controller != nil && m.controller.ID() == event.ID {
			debug.Log("device", "keyboard disconnected: %s", event.ID)
			m.controller = nil
		}
		return m, ListenForDevices(m.DeviceMgr)
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.Engine.Snapshot()
	seq := m.Engine.Sequence()

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	waitStyle := lipgloss.NewStyle().Foreground(m.Theme.Waiting())

	keyboard := ""
	if m.controller != nil {
		keyboard = "  kbd:" + m.controller.ID()
	}

	header := headerStyle.Render(fmt.Sprintf("pianestro  %s  %s / %s  %s%s",
		strings.ToUpper(snap.Phase.String()),
		formatMs(snap.ElapsedMs), formatMs(snap.DurationMs),
		m.FileName, keyboard))

	hands := dimStyle.Render(fmt.Sprintf("hands: left %s  right %s",
		onOff(snap.LeftEnabled), onOff(snap.RightEnabled)))

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n")
	out.WriteString(hands)
	out.WriteString("\n\n")
	out.WriteString(m.renderLanes(snap, seq))
	out.WriteString("\n")
	out.WriteString(m.renderHitLine())
	out.WriteString("\n")
	out.WriteString(m.renderKeyboard(snap))
	out.WriteString("\n\n")

	if snap.Phase == lesson.PhasePaused {
		out.WriteString(waitStyle.Render(fmt.Sprintf("waiting for: %s", pitchNames(snap.Waiting))))
		out.WriteString("\n\n")
	} else if m.status != "" {
		out.WriteString(waitStyle.Render(m.status))
		out.WriteString("\n\n")
	}

	out.WriteString(dimStyle.Render(widgets.RenderKeyHelp([]widgets.KeySection{
		{Keys: []widgets.KeyBinding{
			{Key: "space", Desc: "start / stop lesson"},
			{Key: "l / r", Desc: "toggle left/right hand"},
			{Key: ",", Desc: fmt.Sprintf("rewind %ds (or lowest piano key)", m.RewindMs/1000)},
			{Key: "q", Desc: "quit"},
		}},
	})))

	return out.String()
}

// renderLanes draws the upcoming notes falling toward the hit line: one
// column per key, one row per msPerRow of timeline, nearest row at the
// bottom.
func (m Model) renderLanes(snap lesson.Snapshot, seq lesson.EventSequence) string {
	laneColor := m.Theme.Palette.Lookup(theme.RoleSurface)
	leftColor := m.Theme.Palette.Lookup(theme.RoleLeft)
	rightColor := m.Theme.Palette.Lookup(theme.RoleRight)
	disabledColor := m.Theme.Palette.Lookup(theme.RoleDisabled)

	rows := make([][]widgets.Cell, laneRows)
	for r := range rows {
		row := make([]widgets.Cell, widgets.NumKeys)
		for c := range row {
			row[c] = widgets.Cell{R: m.Theme.Symbols.LaneDot, Color: laneColor}
		}
		rows[r] = row
	}

	windowStart := snap.ElapsedMs
	for _, ev := range seq {
		if ev.Kind != lesson.NoteOn {
			continue
		}
		offset := ev.TimeMs - windowStart
		if offset < 0 || offset >= laneRows*msPerRow {
			continue
		}
		// Row 0 is the farthest future; the bottom row touches the hit line.
		row := laneRows - 1 - int(offset/msPerRow)

		color := rightColor
		enabled := snap.RightEnabled
		if ev.Hand == lesson.Left {
			color = leftColor
			enabled = snap.LeftEnabled
		}
		if !enabled {
			color = disabledColor
		}
		rows[row][widgets.KeyColumn(ev.Pitch)] = widgets.Cell{R: m.Theme.Symbols.NoteBody, Color: color}
	}

	return widgets.RenderGrid(rows)
}

func (m Model) renderHitLine() string {
	color := m.Theme.Palette.Lookup(theme.RoleHitLine)
	cells := make([]widgets.Cell, widgets.NumKeys)
	for i := range cells {
		cells[i] = widgets.Cell{R: m.Theme.Symbols.HitLine, Color: color}
	}
	return widgets.RenderRow(cells)
}

func (m Model) renderKeyboard(snap lesson.Snapshot) string {
	mutedColor := m.Theme.Palette.Lookup(theme.RoleMuted)
	fgColor := m.Theme.Palette.Lookup(theme.RoleFG)
	waitingColor := m.Theme.Palette.Lookup(theme.RoleWaiting)

	waiting := make(map[uint8]bool, len(snap.Waiting))
	for _, p := range snap.Waiting {
		waiting[p] = true
	}

	cells := widgets.KeyboardStrip(func(pitch uint8) widgets.Cell {
		switch {
		case waiting[pitch]:
			return widgets.Cell{R: m.Theme.Symbols.KeyWaiting, Color: waitingColor}
		case m.Engine.IsHeld(pitch):
			return widgets.Cell{R: m.Theme.Symbols.KeyHeld, Color: fgColor}
		case widgets.IsBlackKey(pitch):
			return widgets.Cell{R: m.Theme.Symbols.KeyBlack, Color: mutedColor}
		default:
			return widgets.Cell{R: m.Theme.Symbols.KeyWhite, Color: mutedColor}
		}
	})
	return widgets.RenderRow(cells)
}

func formatMs(ms int64) string {
	total := ms / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func pitchNames(pitches []uint8) string {
	names := make([]string, len(pitches))
	for i, p := range pitches {
		names[i] = fmt.Sprintf("%s%d", noteNames[p%12], int(p)/12-1)
	}
	return strings.Join(names, " ")
}
