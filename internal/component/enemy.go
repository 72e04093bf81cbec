package component

import "go-fruitopian-defender/pkg/timer"

// Enemy — враг, летящий к базе. Progress — таймер подлёта: его завершение
// означает удар по базе.
type Enemy struct {
	Progress *timer.Timer
	Type     CombatType
}

func NewEnemy(flightSeconds float64, t CombatType) *Enemy {
	return &Enemy{
		Progress: timer.NewTimer(flightSeconds, false),
		Type:     t,
	}
}

// RemainingPercent возвращает оставшуюся долю пути до базы.
func (e *Enemy) RemainingPercent() float64 {
	return e.Progress.PercentLeft()
}

// ReachedBase сообщает, долетел ли враг до базы.
func (e *Enemy) ReachedBase() bool {
	return e.Progress.Finished()
}
