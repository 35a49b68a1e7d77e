// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/system"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

var (
	ErrUnknownTower     = errors.New("unknown tower type")
	ErrInvalidPlacement = errors.New("invalid tower position")
)

// PlacementRule decides whether a tower may stand at a position.
type PlacementRule interface {
	Check(ecs *entity.ECS, pos geom.Point) error
}

// PathClearanceRule keeps towers inside the field, off the path and apart from each other.
type PathClearanceRule struct {
	Width, Height float64
	PathClearance float64 // minimal distance from the tower centre to the path
	TowerSpacing  float64 // minimal distance between two tower centres
}

func NewPathClearanceRule(s config.Settings) PathClearanceRule {
	return PathClearanceRule{
		Width:         s.FieldWidth,
		Height:        s.FieldHeight,
		PathClearance: s.PathClearance,
		TowerSpacing:  2 * s.TowerRadius,
	}
}

func (r PathClearanceRule) Check(ecs *entity.ECS, pos geom.Point) error {
	if pos.X < 0 || pos.Y < 0 || pos.X > r.Width || pos.Y > r.Height {
		return fmt.Errorf("%w: (%.0f, %.0f) is outside the field", ErrInvalidPlacement, pos.X, pos.Y)
	}
	if ecs.Path.DistanceTo(pos) < r.PathClearance {
		return fmt.Errorf("%w: too close to the path", ErrInvalidPlacement)
	}
	for _, id := range ecs.TowerIDs() {
		other, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		if geom.Distance(pos, geom.Point{X: other.X, Y: other.Y}) < r.TowerSpacing {
			return fmt.Errorf("%w: overlaps tower %d", ErrInvalidPlacement, id)
		}
	}
	return nil
}

// PlaceTower builds a tower of type defID at pos and pays for it.
// A rejected placement returns an error and changes nothing.
func (g *Game) PlaceTower(pos geom.Point, defID string) (types.EntityID, error) {
	if err := g.CanPlace(pos, defID); err != nil {
		if g.Logger != nil {
			g.Logger.Printf("placement of %s rejected: %v", defID, err)
		}
		return 0, err
	}
	def := g.Towers[defID]
	if err := g.EconomySystem.Spend(def.Cost); err != nil {
		return 0, err
	}

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	g.ECS.AddTower(id, &component.Tower{DefID: def.ID})
	g.ECS.Combats[id] = &component.Combat{
		Range:             def.Range,
		Damage:            def.Damage,
		FireIntervalTicks: def.FireIntervalTicks,
		ProjectileSpeed:   def.ProjectileSpeed,
		SlowFactor:        def.SlowFactor,
		SlowDurationTicks: def.SlowDurationTicks,
	}

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerPlacedData{TowerID: id, DefID: def.ID, Cost: def.Cost},
	})
	return id, nil
}

// CanPlace reports whether PlaceTower would accept the request, without changing anything.
func (g *Game) CanPlace(pos geom.Point, defID string) error {
	if g.IsGameOver() {
		return ErrGameOver
	}
	def, ok := g.Towers[defID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTower, defID)
	}
	if g.Placement != nil {
		if err := g.Placement.Check(g.ECS, pos); err != nil {
			return err
		}
	}
	if !g.EconomySystem.CanAfford(def.Cost) {
		return fmt.Errorf("%w: need %d, have %d", system.ErrInsufficientGold, def.Cost, g.Gold())
	}
	return nil
}
