// internal/ui/enemy_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-fruitopian-defender/internal/app"
	"go-fruitopian-defender/internal/config"
)

const enemyPanelTop = 56

// EnemyPanel — правая колонка с приближающимися врагами.
// Полоса показывает оставшуюся долю пути до базы.
type EnemyPanel struct {
	faces *Faces
}

func NewEnemyPanel(faces *Faces) *EnemyPanel {
	return &EnemyPanel{faces: faces}
}

func (p *EnemyPanel) Draw(screen *ebiten.Image, enemies []app.EnemySnapshot) {
	text.Draw(screen, "Enemies", p.faces.Title, config.EnemyColumnX, enemyPanelTop+2, config.TextLightColor)

	for i, e := range enemies {
		top := enemyPanelTop + config.PanelMargin + i*config.EnemyRowHeight

		typeColor := config.CombatTypeColors[int(e.Type)%len(config.CombatTypeColors)]
		text.Draw(screen, e.Type.String(), p.faces.Regular, config.EnemyColumnX, top+14, typeColor)
		text.Draw(screen, fmt.Sprintf("%.0fs", e.RemainingSeconds), p.faces.Regular,
			config.EnemyColumnX+config.EnemyBarWidth+28, top+14, config.TextLightColor)

		x := float32(config.EnemyColumnX + 20)
		y := float32(top + 8)
		vector.DrawFilledRect(screen, x, y, config.EnemyBarWidth, 8, config.EnemyBarBack, false)
		vector.DrawFilledRect(screen, x, y, float32(config.EnemyBarWidth*clamp01(e.RemainingPercent)), 8,
			config.EnemyBarColor, false)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
