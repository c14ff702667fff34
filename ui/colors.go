package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	styleBackground = tcell.StyleDefault.
			Background(tcell.NewRGBColor(24, 24, 30)).
			Foreground(tcell.ColorWhite)
	styleCard = tcell.StyleDefault.
			Background(tcell.NewRGBColor(58, 62, 80)).
			Foreground(tcell.NewRGBColor(230, 230, 235))
	stylePlaceholder = tcell.StyleDefault.
				Background(tcell.NewRGBColor(40, 42, 54)).
				Foreground(tcell.NewRGBColor(110, 114, 140))
	styleEmptySlot = tcell.StyleDefault.
			Background(tcell.NewRGBColor(30, 30, 38)).
			Foreground(tcell.NewRGBColor(90, 90, 100))
	styleGhost = tcell.StyleDefault.
			Background(tcell.NewRGBColor(96, 104, 140)).
			Foreground(tcell.ColorWhite).
			Bold(true)
	styleStatus = tcell.StyleDefault.
			Background(tcell.NewRGBColor(40, 42, 54)).
			Foreground(tcell.NewRGBColor(200, 200, 210))
)

// labelStyle derives the tier label style from the tier's hex color.
// Unparseable colors fall back to a neutral gray; the foreground flips
// to black over light backgrounds
func labelStyle(hex string) tcell.Style {
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{R: 0.45, G: 0.45, B: 0.45}
	}
	fg := tcell.ColorWhite
	if _, _, l := c.Hsl(); l > 0.5 {
		fg = tcell.ColorBlack
	}
	return tcell.StyleDefault.Background(toTcell(c)).Foreground(fg).Bold(true)
}

// toTcell converts a colorful color to a 24-bit tcell color
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
