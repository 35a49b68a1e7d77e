// internal/component/enemy.go
package component

// Enemy marks an entity as a mobile agent walking the path.
type Enemy struct {
	Radius float64
	Bounty int // gold awarded on kill
	Wave   int // wave that spawned it
}
