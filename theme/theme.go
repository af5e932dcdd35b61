package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	// Keyboard strip
	KeyWhite   rune // ─ idle white key
	KeyBlack   rune // ▄ idle black key
	KeyWaiting rune // ● key the learner must press
	KeyHeld    rune // ◉ key currently held

	// Note lanes
	NoteBody rune // █ falling note
	HitLine  rune // ━ the hit line
	LaneDot  rune // · empty lane cell
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			KeyWhite:   '─',
			KeyBlack:   '▄',
			KeyWaiting: '●',
			KeyHeld:    '◉',

			NoteBody: '█',
			HitLine:  '━',
			LaneDot:  '·',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG       = 0.0  // deep background
	RoleSurface  = 0.1  // lane background
	RoleMuted    = 0.2  // help text, idle keys
	RoleFG       = 0.4  // readable foreground
	RoleLeft     = 0.55 // left-hand notes
	RoleRight    = 0.75 // right-hand notes
	RoleWaiting  = 0.85 // keys being waited on
	RoleHitLine  = 0.65 // the hit line
	RoleDisabled = 0.15 // notes of a disabled hand
	RoleSuccess  = 1.0  // completion flash
)

// Style helpers

func (t *Theme) BG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBG))
}

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Left() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleLeft))
}

func (t *Theme) Right() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleRight))
}

func (t *Theme) Waiting() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleWaiting))
}

func (t *Theme) HitLine() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleHitLine))
}

func (t *Theme) Disabled() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleDisabled))
}

func (t *Theme) Success() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleSuccess))
}

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(norm))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
