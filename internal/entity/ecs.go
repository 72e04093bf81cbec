// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-fruitopian-defender/internal/component"
	"go-fruitopian-defender/internal/types"
)

type ECS struct {
	NextID  types.EntityID
	Units   map[types.EntityID]*component.Unit
	Enemies map[types.EntityID]*component.Enemy
	Healths map[types.EntityID]*component.Health
	Status  component.GameStatus
}

func NewECS() *ECS {
	return &ECS{
		NextID:  1,
		Units:   make(map[types.EntityID]*component.Unit),
		Enemies: make(map[types.EntityID]*component.Enemy),
		Healths: make(map[types.EntityID]*component.Health),
		Status:  component.StatusRunning,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// UnitIDs возвращает идентификаторы юнитов по возрастанию.
// Системы и UI обходят карты только в этом порядке, чтобы результат кадра
// не зависел от порядка итерации map.
func (ecs *ECS) UnitIDs() []types.EntityID {
	return sortedIDs(ecs.Units)
}

// EnemyIDs возвращает идентификаторы врагов по возрастанию.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedIDs(ecs.Enemies)
}

func sortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
