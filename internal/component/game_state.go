// internal/component/game_state.go
package component

// Phase is the coarse state of a session.
type Phase int

const (
	BuildPhase Phase = iota // no wave running
	WavePhase
	GameOverPhase
)

func (p Phase) String() string {
	switch p {
	case BuildPhase:
		return "build"
	case WavePhase:
		return "wave"
	case GameOverPhase:
		return "game over"
	default:
		return "unknown"
	}
}

// Ledger holds the player's gold and health.
type Ledger struct {
	Gold   int
	Health int
}

// GameState is the session-wide state owned by the world.
type GameState struct {
	Phase  Phase
	Ledger Ledger
}
