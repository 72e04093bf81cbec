// pkg/timer/clock.go
package timer

import "time"

// Clock — покадровые часы игрового цикла. Хранит момент старта и момент
// последнего обновления; единственный владелец — драйвер игры.
type Clock struct {
	start      time.Time
	lastUpdate time.Time
}

func NewClock() *Clock {
	now := time.Now()
	return &Clock{start: now, lastUpdate: now}
}

// Tick возвращает время, прошедшее с предыдущего вызова, и сдвигает
// момент последнего обновления.
func (c *Clock) Tick() time.Duration {
	now := time.Now()
	delta := now.Sub(c.lastUpdate)
	c.lastUpdate = now
	return delta
}

// Since возвращает общее время работы часов.
func (c *Clock) Since() time.Duration {
	return time.Since(c.start)
}
