package utils

import "testing"

func TestPRNGServiceDeterministicWithSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)

	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("iteration %d: same seed produced different Intn values", i)
		}
		if a.NormFloat64(5, 2) != b.NormFloat64(5, 2) {
			t.Fatalf("iteration %d: same seed produced different NormFloat64 values", i)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"Inside", 5, 1, 10, 5},
		{"Below", -3, 1, 10, 1},
		{"Above", 42, 1, 10, 10},
		{"AtLow", 1, 1, 10, 1},
		{"AtHigh", 10, 1, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
