package component

// Health — компонент здоровья юнита, доля в [0, 1].
type Health struct {
	Value float64
}

func NewHealth() *Health {
	return &Health{Value: 1.0}
}

// Damage снимает amount здоровья, не опускаясь ниже нуля.
func (h *Health) Damage(amount float64) {
	h.Value -= amount
	if h.Value < 0 {
		h.Value = 0
	}
}

// Repair восстанавливает amount здоровья, не поднимаясь выше единицы.
func (h *Health) Repair(amount float64) {
	h.Value += amount
	if h.Value > 1 {
		h.Value = 1
	}
}

// Depleted — здоровье исчерпано, юнит выбывает из игры.
func (h *Health) Depleted() bool {
	return h.Value <= 0
}
