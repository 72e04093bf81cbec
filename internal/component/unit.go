// internal/component/unit.go
package component

import (
	"errors"
	"fmt"

	"go-fruitopian-defender/internal/config"
	"go-fruitopian-defender/pkg/pool"
	"go-fruitopian-defender/pkg/timer"
)

// ParkingSpace — маркерный тип ресурса парковочного пула.
type ParkingSpace struct{}

// UnitPhase — фаза жизненного цикла юнита.
type UnitPhase int

const (
	InStorage UnitPhase = iota
	UnStoring
	ParkedUnready
	ParkedPreparing
	ParkedReady
	Patrolling
	Returning
	WaitingToPark
	Storing
)

func (p UnitPhase) String() string {
	switch p {
	case InStorage:
		return "InStorage"
	case UnStoring:
		return "UnStoring"
	case ParkedUnready:
		return "ParkedUnready"
	case ParkedPreparing:
		return "ParkedPreparing"
	case ParkedReady:
		return "ParkedReady"
	case Patrolling:
		return "Patrolling"
	case Returning:
		return "Returning"
	case WaitingToPark:
		return "WaitingToPark"
	case Storing:
		return "Storing"
	}
	return fmt.Sprintf("UnitPhase(%d)", int(p))
}

// ErrInvalidTransition возвращается командами, вызванными не из той фазы.
// Состояние юнита при этом не меняется.
var ErrInvalidTransition = errors.New("invalid unit transition")

// Unit — юнит игрока. Единственный путь мутации — методы переходов;
// Timer, Slot и Type осмыслены только в фазах, которые их несут (§ таблица
// переходов). Юнит держит не больше одного жетона парковки; при переходах
// жетон передаётся или освобождается, но никогда не дублируется.
type Unit struct {
	Phase UnitPhase
	Timer *timer.Timer
	Slot  *pool.Token[ParkingSpace]
	Type  CombatType
}

// NewUnit создаёт юнит на складе.
func NewUnit() *Unit {
	return &Unit{Phase: InStorage}
}

// Tick продвигает таймер текущей фазы и применяет переход по его завершении.
// Фазы без таймера здесь ничего не делают: повторная попытка парковки для
// WaitingToPark живёт в UnitSystem, которому виден пул.
func (u *Unit) Tick(delta float64) {
	switch u.Phase {
	case UnStoring:
		u.Timer.Tick(delta)
		if u.Timer.Finished() {
			u.Phase = ParkedUnready
			u.Timer = nil
		}
	case ParkedPreparing:
		u.Timer.Tick(delta)
		if u.Timer.Finished() {
			u.Phase = ParkedReady
			u.Timer = nil
		}
	case Patrolling, Returning:
		u.Timer.Tick(delta)
		if u.Timer.Finished() {
			u.Phase = WaitingToPark
			u.Timer = nil
		}
	case Storing:
		u.Timer.Tick(delta)
		if u.Timer.Finished() {
			u.Phase = InStorage
			u.Timer = nil
		}
	case InStorage, ParkedUnready, ParkedReady, WaitingToPark:
		// нет таймера
	default:
		panic("component: unknown unit phase " + u.Phase.String())
	}
}

// BringOut выводит юнит со склада. Жетон парковки добывает вызывающий
// (команда отклоняется ещё на уровне Game, если пул исчерпан).
func (u *Unit) BringOut(slot *pool.Token[ParkingSpace]) error {
	if u.Phase != InStorage {
		return fmt.Errorf("%w: bring out from %s", ErrInvalidTransition, u.Phase)
	}
	if slot == nil {
		return fmt.Errorf("bring out: nil parking slot")
	}
	u.Phase = UnStoring
	u.Timer = timer.NewTimer(config.UnstoreDuration, false)
	u.Slot = slot
	return nil
}

// Prepare начинает подготовку припаркованного юнита к боевому типу t.
func (u *Unit) Prepare(t CombatType) error {
	if u.Phase != ParkedUnready {
		return fmt.Errorf("%w: prepare from %s", ErrInvalidTransition, u.Phase)
	}
	u.Phase = ParkedPreparing
	u.Timer = timer.NewTimer(config.PrepareDuration, false)
	u.Type = t
	return nil
}

// TakeOff отправляет готовый юнит в патруль и освобождает парковочное место.
func (u *Unit) TakeOff() error {
	if u.Phase != ParkedReady {
		return fmt.Errorf("%w: take off from %s", ErrInvalidTransition, u.Phase)
	}
	u.Phase = Patrolling
	u.Timer = timer.NewTimer(config.PatrolDuration, false)
	u.Slot.Release()
	u.Slot = nil
	return nil
}

// ReturnToBase переводит патрулирующий юнит на обратный курс после перехвата.
// Таймер патруля переносится без изменений: обратный путь занимает время,
// оставшееся от патруля.
func (u *Unit) ReturnToBase() error {
	if u.Phase != Patrolling {
		return fmt.Errorf("%w: return to base from %s", ErrInvalidTransition, u.Phase)
	}
	u.Phase = Returning
	return nil
}

// Park занимает слот и паркует ожидающий юнит.
func (u *Unit) Park(slot *pool.Token[ParkingSpace]) error {
	if u.Phase != WaitingToPark {
		return fmt.Errorf("%w: park from %s", ErrInvalidTransition, u.Phase)
	}
	if slot == nil {
		return fmt.Errorf("park: nil parking slot")
	}
	u.Phase = ParkedUnready
	u.Slot = slot
	return nil
}

// Store убирает юнит на склад. Допустимо с парковки и из ожидания;
// занятое место освобождается немедленно.
func (u *Unit) Store() error {
	if u.Phase != ParkedUnready && u.Phase != WaitingToPark {
		return fmt.Errorf("%w: store from %s", ErrInvalidTransition, u.Phase)
	}
	u.Phase = Storing
	u.Timer = timer.NewTimer(config.StoreDuration, false)
	u.Slot.Release()
	u.Slot = nil
	return nil
}

// HasTimer сообщает, несёт ли текущая фаза таймер.
func (u *Unit) HasTimer() bool {
	return u.Timer != nil
}

// HasType сообщает, осмыслен ли боевой тип в текущей фазе.
func (u *Unit) HasType() bool {
	switch u.Phase {
	case ParkedPreparing, ParkedReady, Patrolling, Returning:
		return true
	}
	return false
}
