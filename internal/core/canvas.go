package core

import "strings"

// Font sizes in world pixels, matching the window frontend's text scales.
const (
	TextSmall  = 16
	TextNormal = 32
	TextLarge  = 50
	TextHuge   = 100
)

// BlockGlyph is drawn in filled cells so shapes stay visible on terminals
// without color.
const BlockGlyph = '█'

// Canvas is a drawing surface addressed in world coordinates.
// Both the terminal and the window frontends implement it, so scenes draw
// once and every frontend scales the result to its own resolution.
type Canvas interface {
	// Size returns the world dimensions the canvas covers.
	Size() (w, h int)

	// Fill paints the whole canvas.
	Fill(c Color)

	// FillRect paints a world rectangle.
	FillRect(r Rect, c Color)

	// Text draws a line of text centered on (cx, cy) at the given font size.
	Text(cx, cy int, text string, fg Color, size int)

	// TextAt draws a line of small text with its top-left corner at (x, y).
	TextAt(x, y int, text string, fg Color)
}

// ScreenCanvas draws world coordinates onto a character Screen.
type ScreenCanvas struct {
	screen *Screen
	worldW int
	worldH int
}

// NewScreenCanvas creates a canvas mapping a worldW x worldH world onto s.
func NewScreenCanvas(s *Screen, worldW, worldH int) *ScreenCanvas {
	return &ScreenCanvas{
		screen: s,
		worldW: max(worldW, 1),
		worldH: max(worldH, 1),
	}
}

// Screen returns the underlying cell buffer.
func (c *ScreenCanvas) Screen() *Screen {
	return c.screen
}

// Size returns the world dimensions.
func (c *ScreenCanvas) Size() (int, int) {
	return c.worldW, c.worldH
}

// Fill paints every cell's background.
func (c *ScreenCanvas) Fill(col Color) {
	c.screen.FillCell(Cell{Rune: ' ', Bg: col})
}

// FillRect paints every cell the rectangle touches with a solid block in
// col. A non-empty rectangle always covers at least one cell, so small
// sprites stay visible.
func (c *ScreenCanvas) FillRect(r Rect, col Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	sw, sh := c.screen.Width(), c.screen.Height()

	x0 := floorDiv(r.X*sw, c.worldW)
	x1 := ceilDiv(r.Right()*sw, c.worldW)
	y0 := floorDiv(r.Y*sh, c.worldH)
	y1 := ceilDiv(r.Bottom()*sh, c.worldH)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	c.screen.FillRect(NewRect(x0, y0, x1-x0, y1-y0), Cell{Rune: BlockGlyph, Fg: col, Bg: col})
}

// Text draws centered text. Huge text is letter-spaced, which is the
// closest a terminal gets to a bigger font.
func (c *ScreenCanvas) Text(cx, cy int, text string, fg Color, size int) {
	if size >= TextHuge {
		text = spaced(text)
	}
	col, row := c.ToCell(cx, cy)
	c.screen.DrawText(col-len([]rune(text))/2, row, text, fg)
}

// TextAt draws text from its top-left corner.
func (c *ScreenCanvas) TextAt(x, y int, text string, fg Color) {
	col, row := c.ToCell(x, y)
	c.screen.DrawText(col, row, text, fg)
}

// ToCell maps a world point to the cell containing it.
func (c *ScreenCanvas) ToCell(x, y int) (int, int) {
	return floorDiv(x*c.screen.Width(), c.worldW), floorDiv(y*c.screen.Height(), c.worldH)
}

// ToWorld maps a cell to the world point at its center.
func (c *ScreenCanvas) ToWorld(col, row int) (int, int) {
	sw, sh := max(c.screen.Width(), 1), max(c.screen.Height(), 1)
	return floorDiv((2*col+1)*c.worldW, 2*sw), floorDiv((2*row+1)*c.worldH, 2*sh)
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
