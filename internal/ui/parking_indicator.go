// internal/ui/parking_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-fruitopian-defender/internal/config"
)

// ParkingIndicator показывает занятость парковочного пула в углу экрана.
type ParkingIndicator struct {
	X, Y   float32
	Radius float32
	faces  *Faces
}

func NewParkingIndicator(x, y, radius float32, faces *Faces) *ParkingIndicator {
	return &ParkingIndicator{X: x, Y: y, Radius: radius, faces: faces}
}

// Draw отрисовывает индикатор: круг меняет цвет, когда мест не осталось.
func (i *ParkingIndicator) Draw(screen *ebiten.Image, used, capacity int) {
	fill := config.ParkingFreeColor
	if used >= capacity {
		fill = config.ParkingFullColor
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, i.Radius, fill, true)
	vector.StrokeCircle(screen, i.X, i.Y, i.Radius, 1, config.TextLightColor, true)

	label := fmt.Sprintf("P %d/%d", used, capacity)
	text.Draw(screen, label, i.faces.Regular, int(i.X)-int(i.Radius)-52, int(i.Y)+5, config.TextLightColor)
}
