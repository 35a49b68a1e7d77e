// internal/component/wave.go
package component

// SpawnEvent is one entry of the declarative spawn schedule.
type SpawnEvent struct {
	AtTick uint64
	Health float64
	Speed  float64
}

// Wave is the state of the current (or last) wave.
type Wave struct {
	Number     int
	Total      int
	Spawned    int
	InProgress bool
	Health     float64
	Speed      float64
	Schedule   []SpawnEvent // pending spawns, ordered by AtTick
}

// Pending returns the number of spawns that have not fired yet.
func (w *Wave) Pending() int {
	if w == nil {
		return 0
	}
	return len(w.Schedule)
}
