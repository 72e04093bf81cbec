// internal/system/spawn.go
package system

import (
	"go-fruitopian-defender/internal/component"
	"go-fruitopian-defender/internal/config"
	"go-fruitopian-defender/internal/entity"
	"go-fruitopian-defender/internal/event"
	"go-fruitopian-defender/internal/utils"
	"go-fruitopian-defender/pkg/timer"
)

// SpawnSystem выпускает врагов со случайным, ускоряющимся интервалом.
// После каждого спавна средний интервал умножается на SpawnRampFactor,
// следующий интервал берётся из нормального распределения вокруг нового
// среднего и зажимается в [MinSpawnInterval, MaxSpawnInterval]. Это и есть
// нарастающее давление врагов.
type SpawnSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	countdown       *timer.Timer
	mean            float64
}

func NewSpawnSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		countdown:       timer.NewTimer(config.InitialMeanSpawn, false),
		mean:            config.InitialMeanSpawn,
	}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	s.countdown.Tick(deltaTime)
	if !s.countdown.Finished() {
		return
	}
	s.spawnEnemy()
	s.mean *= config.SpawnRampFactor
	next := utils.Clamp(
		s.rng.NormFloat64(s.mean, config.SpawnSpread),
		config.MinSpawnInterval,
		config.MaxSpawnInterval,
	)
	s.countdown = timer.NewTimer(next, false)
}

func (s *SpawnSystem) spawnEnemy() {
	id := s.ecs.NewEntity()
	t := component.CombatType(s.rng.Intn(int(component.CombatTypeCount)))
	s.ecs.Enemies[id] = component.NewEnemy(config.EnemyFlightDuration, t)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}

// Mean возвращает текущий средний интервал между врагами.
func (s *SpawnSystem) Mean() float64 {
	return s.mean
}
