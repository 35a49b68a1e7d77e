// internal/component/tower.go
package component

// Tower marks a stationary agent. Its position never changes after placement.
type Tower struct {
	DefID string // id from the tower library
}
