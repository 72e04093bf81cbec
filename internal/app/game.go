// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"go-fruitopian-defender/internal/component"
	"go-fruitopian-defender/internal/config"
	"go-fruitopian-defender/internal/entity"
	"go-fruitopian-defender/internal/event"
	"go-fruitopian-defender/internal/system"
	"go-fruitopian-defender/internal/types"
	"go-fruitopian-defender/internal/utils"
	"go-fruitopian-defender/pkg/pool"
)

// ErrNoParkingSpace возвращается командой BringOut при исчерпанном пуле.
// Это ожидаемый отказ: UI гасит кнопку, игрок пробует позже.
var ErrNoParkingSpace = errors.New("no free parking space")

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	Parking         *pool.Pool[component.ParkingSpace]
	UnitSystem      *system.UnitSystem
	CombatSystem    *system.CombatSystem
	SpawnSystem     *system.SpawnSystem
	RepairSystem    *system.RepairSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Stats           *Stats

	gameTime float64
}

// NewGame initializes a new game instance.
// Сид 0 означает недетерминированную партию (см. utils.NewPRNGService).
func NewGame(seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	parking := pool.New[component.ParkingSpace](config.ParkingSpaces)

	g := &Game{
		ECS:             ecs,
		Parking:         parking,
		UnitSystem:      system.NewUnitSystem(ecs, parking),
		CombatSystem:    system.NewCombatSystem(ecs, eventDispatcher),
		SpawnSystem:     system.NewSpawnSystem(ecs, eventDispatcher, rng),
		RepairSystem:    system.NewRepairSystem(ecs),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Stats:           &Stats{},
	}

	for i := 0; i < config.InitialUnitCount; i++ {
		id := ecs.NewEntity()
		ecs.Units[id] = component.NewUnit()
		ecs.Healths[id] = component.NewHealth()
	}

	eventDispatcher.Subscribe(event.EnemySpawned, g.Stats)
	eventDispatcher.Subscribe(event.EnemyDestroyed, g.Stats)
	eventDispatcher.Subscribe(event.UnitLost, g.Stats)

	return g
}

// Update выполняет один кадр в фиксированном порядке: тик юнитов -> тик
// врагов -> перехваты -> спавн -> ремонт -> проверка конца игры. Порядок
// значим: завершившиеся на этом кадре таймеры видны резолверу в том же кадре.
func (g *Game) Update(deltaTime float64) {
	if g.ECS.Status == component.StatusGameOver {
		return
	}
	g.gameTime += deltaTime

	g.UnitSystem.Update(deltaTime)
	g.UnitSystem.TickEnemies(deltaTime)
	g.CombatSystem.Update()
	g.SpawnSystem.Update(deltaTime)
	g.RepairSystem.Update(deltaTime)
	g.checkGameOver()
}

func (g *Game) checkGameOver() {
	for _, id := range g.ECS.EnemyIDs() {
		if g.ECS.Enemies[id].ReachedBase() {
			g.ECS.Status = component.StatusGameOver
			g.EventDispatcher.Dispatch(event.Event{Type: event.BaseHit, Data: id})
			return
		}
	}
}

// --- Команды игрока. Каждая проверяет фазу и возвращает ошибку,
// --- не трогая состояние, если команда пришла не вовремя.

// BringOut выводит юнит со склада, занимая парковочное место.
func (g *Game) BringOut(id types.EntityID) error {
	unit, err := g.unit(id)
	if err != nil {
		return err
	}
	if unit.Phase != component.InStorage {
		return fmt.Errorf("%w: bring out from %s", component.ErrInvalidTransition, unit.Phase)
	}
	slot, ok := g.Parking.TryTake()
	if !ok {
		return ErrNoParkingSpace
	}
	return unit.BringOut(slot)
}

// Prepare готовит припаркованный юнит к боевому типу t.
func (g *Game) Prepare(id types.EntityID, t component.CombatType) error {
	unit, err := g.unit(id)
	if err != nil {
		return err
	}
	return unit.Prepare(t)
}

// TakeOff отправляет готовый юнит в патруль.
func (g *Game) TakeOff(id types.EntityID) error {
	unit, err := g.unit(id)
	if err != nil {
		return err
	}
	if err := unit.TakeOff(); err != nil {
		return err
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.UnitDeployed, Data: id})
	return nil
}

// Store убирает юнит на склад.
func (g *Game) Store(id types.EntityID) error {
	unit, err := g.unit(id)
	if err != nil {
		return err
	}
	return unit.Store()
}

// CanBringOut сообщает, есть ли свободное парковочное место.
func (g *Game) CanBringOut() bool {
	return g.Parking.CanTake()
}

func (g *Game) unit(id types.EntityID) (*component.Unit, error) {
	unit, ok := g.ECS.Units[id]
	if !ok {
		return nil, fmt.Errorf("unknown unit %d", id)
	}
	return unit, nil
}

func (g *Game) Status() component.GameStatus {
	return g.ECS.Status
}

func (g *Game) GameTime() float64 {
	return g.gameTime
}

func (g *Game) ParkingUsed() int {
	return g.Parking.SlotsUsed()
}

func (g *Game) ParkingCapacity() int {
	return g.Parking.Capacity()
}

// Stats считает события партии для панели сверху.
type Stats struct {
	Spawned     int
	Intercepted int
	UnitsLost   int
}

func (s *Stats) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		s.Spawned++
	case event.EnemyDestroyed:
		s.Intercepted++
	case event.UnitLost:
		s.UnitsLost++
	}
}
