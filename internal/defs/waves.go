// internal/defs/waves.go
package defs

import (
	"errors"
	"fmt"
)

var ErrInvalidWaveGrowth = errors.New("invalid wave growth")

// WaveGrowth describes how each wave gets harder. Every stat grows linearly with the wave number.
type WaveGrowth struct {
	BaseCount          int     `json:"base_count"`
	CountGrowth        int     `json:"count_growth"`
	BaseHealth         float64 `json:"base_health"`
	HealthGrowth       float64 `json:"health_growth"`
	BaseSpeed          float64 `json:"base_speed"`
	SpeedGrowth        float64 `json:"speed_growth"`
	SpawnIntervalTicks int     `json:"spawn_interval_ticks"`
	BaseBonus          int     `json:"base_bonus"`
	BonusGrowth        int     `json:"bonus_growth"`
}

// WaveDefinition describes the parameters of one concrete wave.
type WaveDefinition struct {
	Number        int
	Count         int
	Health        float64
	Speed         float64
	SpawnInterval int // ticks between spawns
	Bonus         int // gold granted when the wave is cleared
}

// DefaultWaveGrowth: wave n has 10+5n enemies with 50+20n hp moving 1+0.1n px/tick,
// spawned every 30 ticks, and pays 100+10n gold when cleared.
func DefaultWaveGrowth() WaveGrowth {
	return WaveGrowth{
		BaseCount:          10,
		CountGrowth:        5,
		BaseHealth:         50,
		HealthGrowth:       20,
		BaseSpeed:          1,
		SpeedGrowth:        0.1,
		SpawnIntervalTicks: 30,
		BaseBonus:          100,
		BonusGrowth:        10,
	}
}

// ForWave computes the definition of wave n (1-based).
func (g WaveGrowth) ForWave(n int) WaveDefinition {
	return WaveDefinition{
		Number:        n,
		Count:         g.BaseCount + n*g.CountGrowth,
		Health:        g.BaseHealth + float64(n)*g.HealthGrowth,
		Speed:         g.BaseSpeed + float64(n)*g.SpeedGrowth,
		SpawnInterval: g.SpawnIntervalTicks,
		Bonus:         g.BaseBonus + n*g.BonusGrowth,
	}
}

func (g WaveGrowth) Validate() error {
	switch {
	case g.BaseCount < 0 || g.CountGrowth < 0:
		return fmt.Errorf("%w: counts must be >= 0", ErrInvalidWaveGrowth)
	case g.BaseCount+g.CountGrowth <= 0:
		return fmt.Errorf("%w: the first wave would be empty", ErrInvalidWaveGrowth)
	case g.BaseHealth+g.HealthGrowth <= 0 || g.HealthGrowth < 0:
		return fmt.Errorf("%w: enemy health must be positive and non-decreasing", ErrInvalidWaveGrowth)
	case g.BaseSpeed+g.SpeedGrowth <= 0 || g.SpeedGrowth < 0:
		return fmt.Errorf("%w: enemy speed must be positive and non-decreasing", ErrInvalidWaveGrowth)
	case g.SpawnIntervalTicks < 0:
		return fmt.Errorf("%w: spawn interval must be >= 0", ErrInvalidWaveGrowth)
	case g.BaseBonus < 0 || g.BonusGrowth < 0:
		return fmt.Errorf("%w: bonus must be >= 0", ErrInvalidWaveGrowth)
	}
	return nil
}
