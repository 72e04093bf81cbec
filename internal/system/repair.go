// internal/system/repair.go
package system

import (
	"go-fruitopian-defender/internal/component"
	"go-fruitopian-defender/internal/config"
	"go-fruitopian-defender/internal/entity"
)

// RepairSystem чинит юниты на складе со скоростью RepairPerSecond.
type RepairSystem struct {
	ecs *entity.ECS
}

func NewRepairSystem(ecs *entity.ECS) *RepairSystem {
	return &RepairSystem{ecs: ecs}
}

func (s *RepairSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.UnitIDs() {
		if s.ecs.Units[id].Phase != component.InStorage {
			continue
		}
		if health, ok := s.ecs.Healths[id]; ok {
			health.Repair(deltaTime * config.RepairPerSecond)
		}
	}
}
