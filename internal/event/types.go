// internal/event/types.go
package event

const (
	EnemySpawned    EventType = "EnemySpawned"    // Спавнер выпустил врага
	EnemyDestroyed  EventType = "EnemyDestroyed"  // Враг перехвачен юнитом
	BaseHit         EventType = "BaseHit"         // Враг долетел до базы
	UnitDeployed    EventType = "UnitDeployed"    // Юнит взлетел в патруль
	UnitIntercepted EventType = "UnitIntercepted" // Юнит засчитал перехват
	UnitLost        EventType = "UnitLost"        // Юнит выбыл: здоровье исчерпано
)
