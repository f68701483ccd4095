package core

import "image/color"

// Color is a palette entry shared by every frontend.
// The terminal maps it to an ANSI 256-color code, the window to RGBA.
type Color uint8

// Palette used by the menu, the playfield and the buttons.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorGray      // button face on the menu
	ColorDarkGray  // playfield background, hovered menu button
	ColorDark      // menu background
	ColorLightBlue // "Play again" button face
	ColorBlue      // hovered "Play again" button
	ColorGreen     // the player sprite
	ColorRed       // hazard blocks
	ColorYellow
)

// palette holds RGB values and the nearest xterm-256 index for each Color.
var palette = map[Color]struct {
	rgb  color.RGBA
	ansi string
}{
	ColorDefault:   {color.RGBA{0, 0, 0, 0}, ""},
	ColorBlack:     {color.RGBA{0, 0, 0, 0xff}, "16"},
	ColorWhite:     {color.RGBA{255, 255, 255, 0xff}, "231"},
	ColorGray:      {color.RGBA{211, 211, 211, 0xff}, "252"},
	ColorDarkGray:  {color.RGBA{200, 200, 200, 0xff}, "250"},
	ColorDark:      {color.RGBA{100, 100, 100, 0xff}, "241"},
	ColorLightBlue: {color.RGBA{135, 206, 250, 0xff}, "117"},
	ColorBlue:      {color.RGBA{35, 165, 246, 0xff}, "33"},
	ColorGreen:     {color.RGBA{46, 160, 67, 0xff}, "34"},
	ColorRed:       {color.RGBA{200, 50, 50, 0xff}, "160"},
	ColorYellow:    {color.RGBA{240, 200, 40, 0xff}, "220"},
}

// RGBA returns the color for pixel frontends.
func (c Color) RGBA() color.RGBA {
	return palette[c].rgb
}

// ANSI returns the xterm-256 color code, or "" for the terminal default.
func (c Color) ANSI() string {
	return palette[c].ansi
}
