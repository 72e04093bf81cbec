// pkg/pool/pool.go

// Package pool реализует ограниченный пул взаимозаменяемых "жетонов" ёмкости.
// Учёт ведётся явным счётчиком, а не подсчётом ссылок: жетон возвращается в
// пул только явным вызовом Release.
package pool

// Pool выдаёт до max жетонов типа T. Не потокобезопасен: игровой цикл
// однопоточный, и пул трогается только из него.
type Pool[T any] struct {
	max  int
	used int
}

// Token — непрозрачное право на один слот пула. Повторный Release безопасен.
type Token[T any] struct {
	pool     *Pool[T]
	released bool
}

func New[T any](max int) *Pool[T] {
	if max < 0 {
		max = 0
	}
	return &Pool[T]{max: max}
}

// TryTake выдаёт жетон, если есть свободный слот. Без блокировок и очередей:
// при отказе вызывающий сам уходит в состояние ожидания и повторяет попытку
// на следующем тике.
func (p *Pool[T]) TryTake() (*Token[T], bool) {
	if p.used >= p.max {
		return nil, false
	}
	p.used++
	return &Token[T]{pool: p}, true
}

// CanTake — немутирующая проверка наличия свободного слота.
func (p *Pool[T]) CanTake() bool {
	return p.used < p.max
}

// SlotsUsed возвращает число выданных жетонов.
func (p *Pool[T]) SlotsUsed() int {
	return p.used
}

func (p *Pool[T]) Capacity() int {
	return p.max
}

// Release возвращает слот в пул. Второй и последующие вызовы — no-op.
func (t *Token[T]) Release() {
	if t == nil || t.released {
		return
	}
	t.released = true
	t.pool.used--
}
