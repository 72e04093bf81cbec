// internal/ui/command.go
package ui

import (
	"go-fruitopian-defender/internal/component"
	"go-fruitopian-defender/internal/types"
)

// CommandKind — вид команды игрока, снятой с кнопки.
type CommandKind int

const (
	CmdBringOut CommandKind = iota
	CmdPrepare
	CmdTakeOff
	CmdStore
)

// Command — команда игрока для конкретного юнита. UI только собирает её
// с клика; применяет команду игровое состояние через методы app.Game.
type Command struct {
	Kind   CommandKind
	UnitID types.EntityID
	Type   component.CombatType // осмыслен только для CmdPrepare
}
