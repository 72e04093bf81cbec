// internal/app/snapshot.go
package app

import (
	"go-fruitopian-defender/internal/component"
	"go-fruitopian-defender/internal/types"
)

// UnitSnapshot — то, что презентационный слой знает о юните.
// Снимок только для чтения: UI никогда не трогает компоненты напрямую.
type UnitSnapshot struct {
	ID        types.EntityID
	Phase     component.UnitPhase
	PhaseName string
	Remaining float64 // секунды до конца текущей фазы; 0 без таймера
	Percent   float64 // прогресс таймера фазы; 0 без таймера
	Type      component.CombatType
	HasType   bool
	Health    float64
	HasHealth bool
}

// EnemySnapshot — то, что презентационный слой знает о враге.
type EnemySnapshot struct {
	ID               types.EntityID
	Type             component.CombatType
	RemainingPercent float64
	RemainingSeconds float64
}

// UnitSnapshots возвращает снимки юнитов по возрастанию EntityID.
func (g *Game) UnitSnapshots() []UnitSnapshot {
	ids := g.ECS.UnitIDs()
	snapshots := make([]UnitSnapshot, 0, len(ids))
	for _, id := range ids {
		unit := g.ECS.Units[id]
		s := UnitSnapshot{
			ID:        id,
			Phase:     unit.Phase,
			PhaseName: unit.Phase.String(),
			Type:      unit.Type,
			HasType:   unit.HasType(),
		}
		if unit.HasTimer() {
			s.Remaining = unit.Timer.Remaining()
			s.Percent = unit.Timer.Percent()
		}
		if health, ok := g.ECS.Healths[id]; ok {
			s.Health = health.Value
			s.HasHealth = true
		}
		snapshots = append(snapshots, s)
	}
	return snapshots
}

// EnemySnapshots возвращает снимки врагов по возрастанию EntityID.
func (g *Game) EnemySnapshots() []EnemySnapshot {
	ids := g.ECS.EnemyIDs()
	snapshots := make([]EnemySnapshot, 0, len(ids))
	for _, id := range ids {
		enemy := g.ECS.Enemies[id]
		snapshots = append(snapshots, EnemySnapshot{
			ID:               id,
			Type:             enemy.Type,
			RemainingPercent: enemy.RemainingPercent(),
			RemainingSeconds: enemy.Progress.Remaining(),
		})
	}
	return snapshots
}
