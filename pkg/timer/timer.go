// pkg/timer/timer.go
package timer

// Timer — накапливающий таймер обратного отсчёта в секундах.
// Используется юнитами, врагами и спавнером; тикается только владельцем.
type Timer struct {
	duration  float64
	elapsed   float64
	autoReset bool
}

// NewTimer создаёт таймер с длительностью в секундах.
// Таймер с нулевой (или отрицательной) длительностью считается завершённым сразу.
func NewTimer(seconds float64, autoReset bool) *Timer {
	return &Timer{duration: seconds, autoReset: autoReset}
}

// Tick добавляет delta (в секундах) к прошедшему времени.
// Для auto-reset таймера завершение сворачивает elapsed обратно в начало периода.
func (t *Timer) Tick(delta float64) {
	t.elapsed += delta
	if t.autoReset && t.duration > 0 {
		for t.elapsed >= t.duration {
			t.elapsed -= t.duration
		}
	}
}

// Finished сообщает, достиг ли таймер своей длительности.
// Граница — elapsed >= duration: владелец может действовать на том же тике.
func (t *Timer) Finished() bool {
	return t.elapsed >= t.duration
}

// Percent возвращает elapsed/duration. Значение не зажимается и может
// превышать 1.0, если таймер продолжали тикать после завершения.
func (t *Timer) Percent() float64 {
	if t.duration <= 0 {
		return 1.0
	}
	return t.elapsed / t.duration
}

// PercentLeft возвращает 1 - Percent().
func (t *Timer) PercentLeft() float64 {
	return 1.0 - t.Percent()
}

// Remaining возвращает оставшиеся секунды, не меньше нуля.
func (t *Timer) Remaining() float64 {
	left := t.duration - t.elapsed
	if left < 0 {
		return 0
	}
	return left
}

func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

func (t *Timer) Duration() float64 {
	return t.duration
}

// Reset обнуляет прошедшее время, длительность сохраняется.
func (t *Timer) Reset() {
	t.elapsed = 0
}

// SetDuration задаёт новую длительность, не трогая elapsed.
func (t *Timer) SetDuration(seconds float64) {
	t.duration = seconds
}
