// internal/system/combat.go
package system

import (
	"sort"

	"go-fruitopian-defender/internal/component"
	"go-fruitopian-defender/internal/config"
	"go-fruitopian-defender/internal/entity"
	"go-fruitopian-defender/internal/event"
	"go-fruitopian-defender/internal/types"
)

// CombatSystem сводит патрулирующие юниты с врагами того же боевого типа.
// Юнит перехватывает врага, когда доля его патруля догнала оставшуюся долю
// подлёта врага: unit.Percent() >= enemy.RemainingPercent(). Это сравнение
// скаляров в пределах кадра, а не непрерывная симуляция столкновений.
//
// Порядок разрешения детерминирован: враги обрабатываются по возрастанию
// оставшейся доли пути (ближайший к базе первым), кандидаты среди юнитов
// перебираются по возрастанию EntityID, побеждает первый подходящий.
// Один юнит перехватывает не больше одного врага за кадр: после перехвата
// он уже в фазе Returning и из кандидатов выбывает.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update() {
	enemyIDs := s.ecs.EnemyIDs()
	sort.SliceStable(enemyIDs, func(i, j int) bool {
		return s.ecs.Enemies[enemyIDs[i]].RemainingPercent() <
			s.ecs.Enemies[enemyIDs[j]].RemainingPercent()
	})

	for _, enemyID := range enemyIDs {
		enemy := s.ecs.Enemies[enemyID]
		unitID, ok := s.findInterceptor(enemy)
		if !ok {
			continue
		}
		s.resolveHit(unitID, enemyID)
	}
}

func (s *CombatSystem) findInterceptor(enemy *component.Enemy) (types.EntityID, bool) {
	for _, id := range s.ecs.UnitIDs() {
		unit := s.ecs.Units[id]
		if unit.Phase != component.Patrolling || unit.Type != enemy.Type {
			continue
		}
		if unit.Timer.Percent() >= enemy.RemainingPercent() {
			return id, true
		}
	}
	return 0, false
}

func (s *CombatSystem) resolveHit(unitID, enemyID types.EntityID) {
	unit := s.ecs.Units[unitID]
	if err := unit.ReturnToBase(); err != nil {
		panic(err)
	}
	delete(s.ecs.Enemies, enemyID)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: enemyID})
	s.eventDispatcher.Dispatch(event.Event{Type: event.UnitIntercepted, Data: unitID})

	health, ok := s.ecs.Healths[unitID]
	if !ok {
		return
	}
	health.Damage(config.HitDamage)
	if health.Depleted() {
		// Юнит выбывает из игры. Жетона у него нет: перехват возможен
		// только в патруле, место освобождено ещё на взлёте.
		delete(s.ecs.Units, unitID)
		delete(s.ecs.Healths, unitID)
		s.eventDispatcher.Dispatch(event.Event{Type: event.UnitLost, Data: unitID})
	}
}
