package component

// CombatType — боевой тип, ключ соответствия между юнитами и врагами.
type CombatType int

const (
	CombatTypeA CombatType = iota
	CombatTypeB
	CombatTypeC
	CombatTypeD
	CombatTypeCount
)

func (t CombatType) String() string {
	switch t {
	case CombatTypeA:
		return "A"
	case CombatTypeB:
		return "B"
	case CombatTypeC:
		return "C"
	case CombatTypeD:
		return "D"
	}
	return "?"
}
