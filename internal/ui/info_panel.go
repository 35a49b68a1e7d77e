// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"math"

	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelHeight    = 90
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	columnSpacing  = 200
)

// InfoPanel slides in from the bottom and describes the selected tower or enemy.
type InfoPanel struct {
	IsVisible    bool
	TargetEntity types.EntityID
	currentY     float64
	targetY      float64
}

func NewInfoPanel() *InfoPanel {
	return &InfoPanel{currentY: config.ScreenHeight, targetY: config.ScreenHeight}
}

func (p *InfoPanel) SetTarget(id types.EntityID) {
	p.TargetEntity = id
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight - config.ButtonHeight - 15
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Contains reports whether (x, y) is on the visible part of the panel.
func (p *InfoPanel) Contains(x, y int) bool {
	if !p.IsVisible {
		return false
	}
	return image.Pt(x, y).In(p.rect())
}

func (p *InfoPanel) rect() image.Rectangle {
	return image.Rect(panelMargin, int(p.currentY)+panelMargin, config.ScreenWidth-panelMargin, int(p.currentY)+panelHeight-panelMargin)
}

// Update animates the panel and hides it once the target is gone.
func (p *InfoPanel) Update(ecs *entity.ECS) {
	if p.TargetEntity != 0 && !ecs.EnemyAlive(p.TargetEntity) {
		if _, isTower := ecs.Towers[p.TargetEntity]; !isTower {
			p.Hide()
		}
	}
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
		p.TargetEntity = 0
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, ecs *entity.ECS, towers defs.Library) {
	if !p.IsVisible || p.TargetEntity == 0 {
		return
	}
	r := p.rect()
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.PanelColor, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.BorderColor, true)

	x, y := r.Min.X+15, r.Min.Y+lineHeight+5
	for i, line := range EntityInfo(ecs, towers, p.TargetEntity) {
		col := x + (i%2)*columnSpacing
		if i == 0 {
			DrawText(screen, line, x, y, config.TextLightColor)
			y += lineHeight
			continue
		}
		DrawText(screen, line, col, y, config.TextLightColor)
		if i%2 == 0 {
			y += lineHeight
		}
	}
}

// EntityInfo returns the title and the stat lines shown for an entity.
func EntityInfo(ecs *entity.ECS, towers defs.Library, id types.EntityID) []string {
	if tower, ok := ecs.Towers[id]; ok {
		def := towers[tower.DefID]
		lines := []string{fmt.Sprintf("%s tower #%d", def.Name, id)}
		if combat, ok := ecs.Combats[id]; ok {
			lines = append(lines,
				fmt.Sprintf("Damage: %g", combat.Damage),
				fmt.Sprintf("Range: %g", combat.Range),
				fmt.Sprintf("Fire every %d ticks", combat.FireIntervalTicks),
				fmt.Sprintf("Cooldown: %d", combat.CooldownTicks),
			)
			if combat.SlowFactor > 0 {
				lines = append(lines, fmt.Sprintf("Slow x%g for %d ticks", combat.SlowFactor, combat.SlowDurationTicks))
			}
		}
		return lines
	}
	if enemy, ok := ecs.Enemies[id]; ok {
		lines := []string{fmt.Sprintf("Enemy #%d of wave %d", id, enemy.Wave)}
		if health, ok := ecs.Healths[id]; ok {
			lines = append(lines, fmt.Sprintf("Health: %g / %g", health.Current, health.Max))
		}
		if v, ok := ecs.Velocities[id]; ok {
			lines = append(lines, fmt.Sprintf("Speed: %.2f", v.Effective))
		}
		if slow, ok := ecs.SlowEffects[id]; ok {
			lines = append(lines, fmt.Sprintf("Slowed: %d ticks", slow.RemainingTicks))
		}
		lines = append(lines, fmt.Sprintf("Bounty: %d", enemy.Bounty))
		return lines
	}
	return []string{"Nothing selected"}
}
