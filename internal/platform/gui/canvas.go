package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/testcraft/internal/core"
)

// Debug font glyph size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// maxCachedLabels bounds the rendered-text cache; score labels change every run.
const maxCachedLabels = 64

// ImageCanvas draws the world onto an ebiten image at one pixel per world unit.
type ImageCanvas struct {
	dst    *ebiten.Image
	worldW int
	worldH int
	labels map[string]*ebiten.Image
}

// NewImageCanvas creates a canvas for a worldW x worldH world.
func NewImageCanvas(worldW, worldH int) *ImageCanvas {
	return &ImageCanvas{
		worldW: worldW,
		worldH: worldH,
		labels: make(map[string]*ebiten.Image),
	}
}

// Target sets the image the next frame is drawn onto.
func (c *ImageCanvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Size returns the world dimensions.
func (c *ImageCanvas) Size() (int, int) {
	return c.worldW, c.worldH
}

// Fill paints the whole frame.
func (c *ImageCanvas) Fill(col core.Color) {
	c.dst.Fill(col.RGBA())
}

// FillRect paints a solid rectangle.
func (c *ImageCanvas) FillRect(r core.Rect, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col.RGBA(), false)
}

// Text draws text centered on (cx, cy), scaled so its height is size pixels.
func (c *ImageCanvas) Text(cx, cy int, text string, fg core.Color, size int) {
	x, y, scale := centeredText(cx, cy, text, size)
	c.drawLabel(text, x, y, scale, fg)
}

// TextAt draws small text from its top-left corner.
func (c *ImageCanvas) TextAt(x, y int, text string, fg core.Color) {
	fx, fy, scale := cornerText(x, y)
	c.drawLabel(text, fx, fy, scale, fg)
}

func (c *ImageCanvas) drawLabel(text string, x, y, scale float64, fg core.Color) {
	if text == "" {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(fg.RGBA())
	op.Filter = ebiten.FilterNearest
	c.dst.DrawImage(c.label(text), op)
}

// label returns the white debug-font rendering of text.
func (c *ImageCanvas) label(text string) *ebiten.Image {
	if img, ok := c.labels[text]; ok {
		return img
	}
	if len(c.labels) >= maxCachedLabels {
		for k, img := range c.labels {
			img.Deallocate()
			delete(c.labels, k)
		}
	}

	w, h := textSize(text)
	img := ebiten.NewImage(w, h)
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	c.labels[text] = img
	return img
}

// textSize returns the unscaled size of text in the debug font.
func textSize(text string) (int, int) {
	return max(len([]rune(text)), 1) * glyphW, glyphH
}

// textScale maps a nominal text size to a scale factor for the debug font.
func textScale(size int) float64 {
	return float64(max(size, 1)) / glyphH
}

// centeredText returns the top-left corner and scale for text centered on (cx, cy).
func centeredText(cx, cy int, text string, size int) (x, y, scale float64) {
	scale = textScale(size)
	w, h := textSize(text)
	x = float64(cx) - float64(w)*scale/2
	y = float64(cy) - float64(h)*scale/2
	return x, y, scale
}

// cornerText returns the top-left corner and scale for small text at (x, y).
func cornerText(x, y int) (fx, fy, scale float64) {
	return float64(x), float64(y), textScale(core.TextSmall)
}
