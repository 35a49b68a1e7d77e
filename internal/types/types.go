// internal/types/types.go
package types

// EntityID is a stable handle to an entity. IDs are handed out monotonically and never
// reused, so a stale handle simply fails the component lookup.
type EntityID uint64
