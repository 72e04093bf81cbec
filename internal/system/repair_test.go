package system

import (
	"math"
	"testing"

	"go-fruitopian-defender/internal/component"
	"go-fruitopian-defender/internal/config"
	"go-fruitopian-defender/internal/entity"
)

func TestRepairOnlyInStorage(t *testing.T) {
	ecs := entity.NewECS()
	s := NewRepairSystem(ecs)

	storedID := ecs.NewEntity()
	ecs.Units[storedID] = component.NewUnit()
	ecs.Healths[storedID] = &component.Health{Value: 0.5}

	waitingID := ecs.NewEntity()
	ecs.Units[waitingID] = &component.Unit{Phase: component.WaitingToPark}
	ecs.Healths[waitingID] = &component.Health{Value: 0.5}

	s.Update(3.0)

	want := 0.5 + 3.0*config.RepairPerSecond
	if got := ecs.Healths[storedID].Value; math.Abs(got-want) > 1e-12 {
		t.Errorf("stored unit health = %v, want %v", got, want)
	}
	if got := ecs.Healths[waitingID].Value; got != 0.5 {
		t.Errorf("waiting unit health = %v, want untouched 0.5", got)
	}
}

func TestRepairClampsAtFull(t *testing.T) {
	ecs := entity.NewECS()
	s := NewRepairSystem(ecs)

	id := ecs.NewEntity()
	ecs.Units[id] = component.NewUnit()
	ecs.Healths[id] = &component.Health{Value: 0.9}

	s.Update(60)

	if got := ecs.Healths[id].Value; got != 1 {
		t.Errorf("health = %v, want clamped 1", got)
	}
}

func TestRepairFullRecoveryTakesFifteenSeconds(t *testing.T) {
	ecs := entity.NewECS()
	s := NewRepairSystem(ecs)

	id := ecs.NewEntity()
	ecs.Units[id] = component.NewUnit()
	ecs.Healths[id] = &component.Health{Value: 0}

	for i := 0; i < 15; i++ {
		s.Update(1)
	}

	if got := ecs.Healths[id].Value; math.Abs(got-1) > 1e-9 {
		t.Errorf("health after 15s = %v, want 1", got)
	}
}
