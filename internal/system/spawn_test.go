package system

import (
	"testing"

	"go-fruitopian-defender/internal/component"
	"go-fruitopian-defender/internal/config"
	"go-fruitopian-defender/internal/entity"
	"go-fruitopian-defender/internal/event"
	"go-fruitopian-defender/internal/utils"
)

func TestSpawnRampIsMonotonic(t *testing.T) {
	ecs := entity.NewECS()
	s := NewSpawnSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(42))

	prevMean := s.Mean()
	spawns := 0
	// Грубые тики по максимальному интервалу гарантируют спавн на каждом шаге.
	for i := 0; i < 50; i++ {
		before := len(ecs.Enemies)
		s.Update(config.MaxSpawnInterval)
		if len(ecs.Enemies) != before+1 {
			t.Fatalf("step %d: expected exactly one spawn per %vs tick", i, config.MaxSpawnInterval)
		}
		spawns++

		if s.Mean() >= prevMean {
			t.Fatalf("step %d: mean %v did not shrink from %v", i, s.Mean(), prevMean)
		}
		prevMean = s.Mean()

		// Следующий интервал всегда в допустимых границах.
		if d := s.countdown.Duration(); d < config.MinSpawnInterval || d > config.MaxSpawnInterval {
			t.Fatalf("step %d: next interval %v outside [%v, %v]",
				i, d, config.MinSpawnInterval, config.MaxSpawnInterval)
		}
	}

	if spawns != len(ecs.Enemies) {
		t.Errorf("spawned %d enemies, ECS holds %d", spawns, len(ecs.Enemies))
	}
}

func TestSpawnNoEnemyBeforeCountdown(t *testing.T) {
	ecs := entity.NewECS()
	s := NewSpawnSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(7))

	s.Update(config.InitialMeanSpawn - 0.01)
	if len(ecs.Enemies) != 0 {
		t.Fatal("enemy spawned before the countdown finished")
	}
	s.Update(0.01)
	if len(ecs.Enemies) != 1 {
		t.Fatal("enemy not spawned when the countdown finished")
	}
}

func TestSpawnedEnemiesAreValid(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := &recorder{}
	d.Subscribe(event.EnemySpawned, rec)
	s := NewSpawnSystem(ecs, d, utils.NewPRNGService(1))

	for i := 0; i < 20; i++ {
		s.Update(config.MaxSpawnInterval)
	}

	if rec.count(event.EnemySpawned) != len(ecs.Enemies) {
		t.Errorf("EnemySpawned events = %d, enemies = %d", rec.count(event.EnemySpawned), len(ecs.Enemies))
	}
	for id, e := range ecs.Enemies {
		if e.Type < component.CombatTypeA || e.Type >= component.CombatTypeCount {
			t.Errorf("enemy %d has invalid combat type %d", id, e.Type)
		}
		if got := e.Progress.Duration(); got != config.EnemyFlightDuration {
			t.Errorf("enemy %d flight duration = %v, want %v", id, got, config.EnemyFlightDuration)
		}
	}
}
