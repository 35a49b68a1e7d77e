// internal/event/types.go
package event

import "go-path-defense/internal/types"

const (
	EnemySpawned    EventType = "EnemySpawned"
	EnemyDamaged    EventType = "EnemyDamaged"
	EnemyKilled     EventType = "EnemyKilled"
	EnemyLeaked     EventType = "EnemyLeaked"
	TowerPlaced     EventType = "TowerPlaced"
	ProjectileFired EventType = "ProjectileFired"
	ProjectileLost  EventType = "ProjectileLost" // target gone before impact
	WaveStarted     EventType = "WaveStarted"
	WaveEnded       EventType = "WaveEnded"
	GameOver        EventType = "GameOver"
)

type EnemyDamagedData struct {
	EnemyID      types.EntityID
	ProjectileID types.EntityID
	Damage       float64
	Remaining    float64
}

type EnemyKilledData struct {
	EnemyID      types.EntityID
	ProjectileID types.EntityID
	Bounty       int
	X, Y         float64 // where the enemy died
}

type EnemyLeakedData struct {
	EnemyID types.EntityID
}

type TowerPlacedData struct {
	TowerID types.EntityID
	DefID   string
	Cost    int
}

type ProjectileFiredData struct {
	ProjectileID types.EntityID
	TowerID      types.EntityID
	TargetID     types.EntityID
}

type WaveData struct {
	Number int
	Count  int
	Bonus  int // gold paid when the wave is cleared
}

type GameOverData struct {
	Tick uint64
	Wave int
}
