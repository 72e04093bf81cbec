// internal/system/unit.go
package system

import (
	"go-fruitopian-defender/internal/component"
	"go-fruitopian-defender/internal/entity"
	"go-fruitopian-defender/pkg/pool"
)

// UnitSystem тикает юниты и врагов. Переходы по таймерам применяет сам юнит;
// здесь живёт только повторная попытка парковки, потому что ей нужен пул.
type UnitSystem struct {
	ecs     *entity.ECS
	parking *pool.Pool[component.ParkingSpace]
}

func NewUnitSystem(ecs *entity.ECS, parking *pool.Pool[component.ParkingSpace]) *UnitSystem {
	return &UnitSystem{ecs: ecs, parking: parking}
}

func (s *UnitSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.UnitIDs() {
		unit := s.ecs.Units[id]
		if unit.Phase == component.WaitingToPark {
			if slot, ok := s.parking.TryTake(); ok {
				// Паркуем из фазы ожидания: ошибка здесь невозможна.
				if err := unit.Park(slot); err != nil {
					panic(err)
				}
			}
			continue
		}
		unit.Tick(deltaTime)
	}
}

// TickEnemies продвигает таймеры подлёта всех врагов.
func (s *UnitSystem) TickEnemies(deltaTime float64) {
	for _, id := range s.ecs.EnemyIDs() {
		s.ecs.Enemies[id].Progress.Tick(deltaTime)
	}
}
