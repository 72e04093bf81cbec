// internal/ui/unit_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-fruitopian-defender/internal/app"
	"go-fruitopian-defender/internal/component"
	"go-fruitopian-defender/internal/config"
)

const (
	unitPanelTop   = 56
	rowTextOffset  = 16
	rowButtonsTop  = 24
	healthBarWidth = 60
	timerBarWidth  = 120
	barHeight      = 6
)

// UnitPanel — левая панель со списком юнитов и кнопками команд.
// Геометрия строк пересчитывается из снимков каждый кадр, поэтому Draw и
// HandleClick всегда видят одни и те же кнопки.
type UnitPanel struct {
	faces *Faces
}

func NewUnitPanel(faces *Faces) *UnitPanel {
	return &UnitPanel{faces: faces}
}

type commandButton struct {
	Button
	cmd Command
}

// HandleClick возвращает команду, если клик пришёлся на активную кнопку.
func (p *UnitPanel) HandleClick(units []app.UnitSnapshot, canBringOut bool, x, y int) (Command, bool) {
	for row, s := range units {
		for _, cb := range rowButtons(s, row, canBringOut) {
			if !cb.Disabled && cb.Contains(x, y) {
				return cb.cmd, true
			}
		}
	}
	return Command{}, false
}

func (p *UnitPanel) Draw(screen *ebiten.Image, units []app.UnitSnapshot, canBringOut bool, mouseX, mouseY int) {
	vector.DrawFilledRect(screen,
		config.PanelMargin, unitPanelTop-config.PanelMargin,
		config.PanelWidth, float32(len(units)*config.UnitRowHeight+2*config.PanelMargin),
		config.PanelColor, false)

	text.Draw(screen, "Units", p.faces.Title, config.PanelMargin+6, unitPanelTop+2, config.TextLightColor)

	for row, s := range units {
		p.drawRow(screen, s, row, canBringOut, mouseX, mouseY)
	}
}

func (p *UnitPanel) drawRow(screen *ebiten.Image, s app.UnitSnapshot, row int, canBringOut bool, mouseX, mouseY int) {
	top := rowTop(row)

	label := fmt.Sprintf("#%d %s", s.ID, s.PhaseName)
	if s.HasType {
		label += " [" + s.Type.String() + "]"
	}
	if s.Remaining > 0 {
		label += fmt.Sprintf("  %.1fs", s.Remaining)
	}
	text.Draw(screen, label, p.faces.Regular, config.PanelMargin+6, top+rowTextOffset, config.TextLightColor)

	if s.HasHealth {
		drawBar(screen,
			float32(config.PanelMargin+config.PanelWidth-healthBarWidth-8), float32(top+rowTextOffset-barHeight),
			healthBarWidth, s.Health, config.HealthBarColor, config.HealthBarBack)
	}
	if s.Percent > 0 && s.Percent < 1 {
		drawBar(screen,
			float32(config.PanelMargin+config.PanelWidth-healthBarWidth-timerBarWidth-20), float32(top+rowTextOffset-barHeight),
			timerBarWidth, s.Percent, config.ButtonHoverColor, config.ButtonDisabledColor)
	}

	for _, cb := range rowButtons(s, row, canBringOut) {
		cb.Draw(screen, p.faces.Regular, mouseX, mouseY)
	}
}

func rowTop(row int) int {
	return unitPanelTop + config.PanelMargin + row*config.UnitRowHeight
}

// rowButtons собирает кнопки, допустимые в текущей фазе юнита. Фазы с
// таймером кнопок не имеют: их переходы применяет тик, а не игрок.
func rowButtons(s app.UnitSnapshot, row int, canBringOut bool) []commandButton {
	top := rowTop(row) + rowButtonsTop
	x := config.PanelMargin + 6

	place := func(width int, label string, disabled bool, cmd Command) commandButton {
		cb := commandButton{
			Button: Button{
				Rect:     image.Rect(x, top, x+width, top+config.ButtonHeight),
				Text:     label,
				Disabled: disabled,
			},
			cmd: cmd,
		}
		x += width + config.ButtonSpacing
		return cb
	}

	switch s.Phase {
	case component.InStorage:
		return []commandButton{
			place(90, "Bring out", !canBringOut, Command{Kind: CmdBringOut, UnitID: s.ID}),
		}
	case component.ParkedUnready:
		buttons := make([]commandButton, 0, 5)
		for t := component.CombatTypeA; t < component.CombatTypeCount; t++ {
			buttons = append(buttons, place(32, t.String(), false,
				Command{Kind: CmdPrepare, UnitID: s.ID, Type: t}))
		}
		buttons = append(buttons, place(60, "Store", false, Command{Kind: CmdStore, UnitID: s.ID}))
		return buttons
	case component.ParkedReady:
		return []commandButton{
			place(80, "Take off", false, Command{Kind: CmdTakeOff, UnitID: s.ID}),
		}
	case component.WaitingToPark:
		return []commandButton{
			place(60, "Store", false, Command{Kind: CmdStore, UnitID: s.ID}),
		}
	}
	return nil
}

func drawBar(screen *ebiten.Image, x, y float32, width int, fraction float64, fg, bg color.Color) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	vector.DrawFilledRect(screen, x, y, float32(width), barHeight, bg, false)
	vector.DrawFilledRect(screen, x, y, float32(float64(width)*fraction), barHeight, fg, false)
}
