// internal/ui/button.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-fruitopian-defender/internal/config"
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Disabled bool
}

// Contains проверяет попадание точки в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку с подсветкой под курсором.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, mouseX, mouseY int) {
	bg := config.ButtonColor
	if b.Disabled {
		bg = config.ButtonDisabledColor
	} else if b.Contains(mouseX, mouseY) {
		bg = config.ButtonHoverColor
	}

	x := float32(b.Rect.Min.X)
	y := float32(b.Rect.Min.Y)
	w := float32(b.Rect.Dx())
	h := float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, config.TextLightColor, false)

	bounds := text.BoundString(face, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, face, tx, ty, config.TextLightColor)
}
