// internal/system/render.go
package system

import (
	"image/color"

	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlacementPreview is the tower the player is about to place under the cursor.
type PlacementPreview struct {
	Pos   geom.Point
	DefID string
	Valid bool
}

// RenderSystem draws the world. It only reads the ECS.
type RenderSystem struct {
	ecs    *entity.ECS
	towers defs.Library
}

func NewRenderSystem(ecs *entity.ECS, towers defs.Library) *RenderSystem {
	return &RenderSystem{ecs: ecs, towers: towers}
}

// Draw renders the field, then towers, enemies and projectiles on top.
// preview may be nil.
func (s *RenderSystem) Draw(screen *ebiten.Image, hovered geom.Point, preview *PlacementPreview) {
	screen.Fill(config.BackgroundColor)
	s.drawGrid(screen)
	s.drawPath(screen)
	s.drawTowers(screen, hovered)
	s.drawEnemies(screen)
	s.drawProjectiles(screen)
	s.drawBursts(screen)
	if preview != nil {
		s.drawPreview(screen, preview)
	}
}

func (s *RenderSystem) drawGrid(screen *ebiten.Image) {
	for x := 0; x <= config.ScreenWidth; x += config.GridStep {
		vector.StrokeLine(screen, float32(x), 0, float32(x), config.ScreenHeight, 1, config.GridColor, false)
	}
	for y := 0; y <= config.ScreenHeight; y += config.GridStep {
		vector.StrokeLine(screen, 0, float32(y), config.ScreenWidth, float32(y), 1, config.GridColor, false)
	}
}

func (s *RenderSystem) drawPath(screen *ebiten.Image) {
	path := s.ecs.Path
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), config.PathWidth, config.PathColor, true)
	}
	// round the corners
	for _, p := range path {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.PathWidth/2, config.PathColor, true)
	}
}

func (s *RenderSystem) drawTowers(screen *ebiten.Image, hovered geom.Point) {
	for _, id := range s.ecs.TowerIDs() {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		def := s.towers[s.ecs.Towers[id].DefID]
		x, y := float32(pos.X), float32(pos.Y)
		vector.DrawFilledCircle(screen, x, y, config.TowerRadius, def.Color, true)
		vector.StrokeCircle(screen, x, y, config.TowerRadius, 2, color.White, true)

		if combat, ok := s.ecs.Combats[id]; ok && geom.Distance(hovered, pointOf(pos)) <= config.TowerRadius {
			vector.StrokeCircle(screen, x, y, float32(combat.Range), 1, config.RangeColor, true)
		}
	}
}

func (s *RenderSystem) drawEnemies(screen *ebiten.Image) {
	for _, id := range s.ecs.EnemyIDs() {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		radius := float32(config.EnemyRadius)
		if enemy, ok := s.ecs.Enemies[id]; ok {
			radius = float32(enemy.Radius)
		}
		fill := config.EnemyColor
		if _, slowed := s.ecs.SlowEffects[id]; slowed {
			fill = config.SlowedEnemyColor
		}
		if _, hit := s.ecs.DamageFlashes[id]; hit {
			fill = config.HitFlashColor
		}
		x, y := float32(pos.X), float32(pos.Y)
		vector.DrawFilledCircle(screen, x, y, radius, fill, true)

		if health, ok := s.ecs.Healths[id]; ok {
			barX := x - config.HealthBarWidth/2
			barY := y - config.HealthBarOffset
			vector.DrawFilledRect(screen, barX, barY, config.HealthBarWidth, config.HealthBarHeight, config.HealthBarBack, false)
			vector.DrawFilledRect(screen, barX, barY, float32(config.HealthBarWidth*utils.Clamp(health.Fraction(), 0, 1)), config.HealthBarHeight, config.HealthBarFront, false)
		}
	}
}

func (s *RenderSystem) drawProjectiles(screen *ebiten.Image) {
	for _, id := range s.ecs.ProjectileIDs() {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		fill := color.RGBA{255, 255, 255, 255}
		if def, ok := s.towers[s.ecs.Projectiles[id].DefID]; ok {
			fill = def.Color
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), config.ProjectileRadius, fill, true)
	}
}

func (s *RenderSystem) drawBursts(screen *ebiten.Image) {
	for _, b := range s.ecs.Bursts {
		t := float32(b.Progress())
		ring := b.Color
		ring.A = uint8(utils.Lerp(float32(b.Color.A), 0, t))
		radius := utils.Lerp(config.EnemyRadius, float32(b.MaxRadius), t)
		vector.StrokeCircle(screen, float32(b.X), float32(b.Y), radius, 2, ring, true)
	}
}

func (s *RenderSystem) drawPreview(screen *ebiten.Image, p *PlacementPreview) {
	def, ok := s.towers[p.DefID]
	if !ok {
		return
	}
	x, y := float32(p.Pos.X), float32(p.Pos.Y)
	ring := config.RangeColor
	if !p.Valid {
		ring = config.InvalidColor
	}
	ghost := def.Color
	ghost.A = 110
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius, ghost, true)
	vector.StrokeCircle(screen, x, y, float32(def.Range), 1, ring, true)
}
