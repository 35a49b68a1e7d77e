// internal/interfaces/game_context.go
package interfaces

import "go-path-defense/internal/types"

// GameContext is the part of the game the systems call back into.
// It keeps the system package free of a dependency on the app package.
type GameContext interface {
	// OnEnemyLeaked is called for an enemy that passed the last waypoint.
	// Returning true halts the rest of the tick (the session is over).
	OnEnemyLeaked(id types.EntityID) (halt bool)
}
