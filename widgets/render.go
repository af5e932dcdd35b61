package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cell is a single colored rune in a rendered grid
type Cell struct {
	R     rune
	Color [3]uint8
}

// RenderCell renders a single colored rune
func RenderCell(c Cell) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(rgbToHex(c.Color)))
	return style.Render(string(c.R))
}

// RenderRow renders a row of cells with no spacing
func RenderRow(cells []Cell) string {
	var out strings.Builder
	for _, c := range cells {
		out.WriteString(RenderCell(c))
	}
	return out.String()
}

// RenderGrid renders rows top to bottom
func RenderGrid(rows [][]Cell) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, RenderRow(row))
	}
	return strings.Join(lines, "\n")
}

// RenderLegendItem renders a single legend item: "● Name - description"
func RenderLegendItem(color [3]uint8, name, desc string) string {
	return fmt.Sprintf("  %s %s - %s", RenderCell(Cell{R: '●', Color: color}), name, desc)
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}

func rgbToHex(c [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
