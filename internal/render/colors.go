package render

import "github.com/gdamore/tcell/v2"

// Emoji bring their own colors, so styles only tint the ASCII furniture of
// the screen: the street grid, the touch controls, the dialogue box and the
// HUD.
var (
	styleBase      = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleStreet    = styleBase.Foreground(tcell.ColorDarkSlateGray)
	styleFaded     = styleBase.Foreground(tcell.ColorGray).Dim(true)
	styleControl   = styleBase.Foreground(tcell.ColorGray)
	styleThumb     = styleBase.Foreground(tcell.ColorWhite).Bold(true)
	styleBorder    = styleBase.Foreground(tcell.ColorTeal)
	styleSpeaker   = styleBase.Foreground(tcell.ColorYellow).Bold(true)
	styleDialogue  = styleBase.Foreground(tcell.ColorWhite)
	styleSeparator = styleBase.Foreground(tcell.ColorGray)
	styleStatus    = styleBase.Foreground(tcell.ColorWhite)
	styleHint      = styleBase.Foreground(tcell.ColorLightYellow)
)

// streetEvery spaces the background grid, in cells.
const (
	streetEveryX = 8
	streetEveryY = 4
)
