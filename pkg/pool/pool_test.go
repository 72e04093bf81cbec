package pool

import "testing"

type space struct{}

func TestPoolCapacityScenario(t *testing.T) {
	// Пул на 3 места: три успешных захвата, четвёртый отказ,
	// после освобождения снова успех.
	p := New[space](3)

	var tokens []*Token[space]
	for i := 0; i < 3; i++ {
		tok, ok := p.TryTake()
		if !ok {
			t.Fatalf("take %d failed with free slots", i+1)
		}
		tokens = append(tokens, tok)
	}
	if got := p.SlotsUsed(); got != 3 {
		t.Fatalf("SlotsUsed() = %d, want 3", got)
	}

	if tok, ok := p.TryTake(); ok || tok != nil {
		t.Fatal("TryTake() succeeded at capacity")
	}
	if p.CanTake() {
		t.Fatal("CanTake() = true at capacity")
	}

	tokens[1].Release()
	if !p.CanTake() {
		t.Fatal("CanTake() = false after release")
	}
	if _, ok := p.TryTake(); !ok {
		t.Fatal("TryTake() failed after release")
	}
}

func TestPoolNeverExceedsCapacity(t *testing.T) {
	p := New[space](2)
	var live []*Token[space]

	// Произвольная последовательность захватов и освобождений.
	steps := []bool{true, true, true, false, true, true, false, false, true, true}
	for i, take := range steps {
		if take {
			if tok, ok := p.TryTake(); ok {
				live = append(live, tok)
			}
		} else if len(live) > 0 {
			live[0].Release()
			live = live[1:]
		}
		if p.SlotsUsed() > p.Capacity() {
			t.Fatalf("step %d: outstanding %d exceeds capacity %d", i, p.SlotsUsed(), p.Capacity())
		}
		if p.SlotsUsed() < 0 {
			t.Fatalf("step %d: outstanding went negative", i)
		}
	}
}

func TestTokenReleaseIdempotent(t *testing.T) {
	p := New[space](1)
	tok, ok := p.TryTake()
	if !ok {
		t.Fatal("TryTake() failed on empty pool")
	}

	tok.Release()
	tok.Release()
	tok.Release()

	if got := p.SlotsUsed(); got != 0 {
		t.Fatalf("SlotsUsed() = %d after repeated release, want 0", got)
	}
}

func TestNilTokenRelease(t *testing.T) {
	var tok *Token[space]
	tok.Release() // не должен паниковать
}

func TestZeroCapacityPool(t *testing.T) {
	p := New[space](0)
	if p.CanTake() {
		t.Error("CanTake() = true on zero-capacity pool")
	}
	if _, ok := p.TryTake(); ok {
		t.Error("TryTake() succeeded on zero-capacity pool")
	}
}
