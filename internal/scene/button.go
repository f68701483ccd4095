package scene

import "github.com/vovakirdan/testcraft/internal/core"

// Default button size in world pixels.
const (
	ButtonWidth  = 250
	ButtonHeight = 50
)

// Button is a clickable rectangle with a centered label. Its face swaps to
// the hover color while the pointer is over it.
type Button struct {
	Rect       core.Rect
	Label      string
	Color      core.Color
	HoverColor core.Color
	hovered    bool
}

// NewButton creates a w x h button centered on (cx, cy).
func NewButton(label string, cx, cy, w, h int, color, hover core.Color) *Button {
	return &Button{
		Rect:       core.CenteredRect(cx, cy, w, h),
		Label:      label,
		Color:      color,
		HoverColor: hover,
	}
}

// Update tracks the pointer and reports whether it is over the button.
func (b *Button) Update(x, y int) bool {
	b.hovered = b.Rect.Contains(x, y)
	return b.hovered
}

// Hovered reports whether the pointer was over the button at the last Update.
func (b *Button) Hovered() bool {
	return b.hovered
}

// Clicked reports whether a click at (x, y) hits the button.
func (b *Button) Clicked(x, y int) bool {
	return b.Rect.Contains(x, y)
}

// Face returns the color the button is currently drawn with.
func (b *Button) Face() core.Color {
	if b.hovered {
		return b.HoverColor
	}
	return b.Color
}

// Render draws the button face and label.
func (b *Button) Render(c core.Canvas) {
	c.FillRect(b.Rect, b.Face())
	cx, cy := b.Rect.Center()
	c.Text(cx, cy, b.Label, core.ColorBlack, core.TextNormal)
}
