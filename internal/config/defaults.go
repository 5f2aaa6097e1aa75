package config

import (
	_ "embed"
)

//go:embed defaults/skyraid.yaml
var defaultSkyraidYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultSkyraidYAML))
	copy(out, defaultSkyraidYAML)
	return out
}

// DefaultSkyraidConfig returns the built-in configuration. It mirrors
// defaults/skyraid.yaml and is used when the embedded document cannot be parsed.
func DefaultSkyraidConfig() SkyraidConfig {
	return SkyraidConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
			Margin: 50,
		},
		Timing: TimingConfig{
			NominalFrameMs:  16.67,
			MaxFrameDeltaMs: 100,
		},
		Spawn: SpawnConfig{
			StartIntervalMs: 2000,
			DecrementMs:     10,
			FloorIntervalMs: 500,
			FallbackType:    "basic",
			Table: []SpawnTier{
				{Type: "basic", MinLevel: 1, Chance: 1},
				{Type: "fast", MinLevel: 1, Chance: 1},
				{Type: "heavy", MinLevel: 2, Chance: 1},
				{Type: "shooter", MinLevel: 3, Chance: 1},
				{Type: "boss", MinLevel: 5, Chance: 0.1},
			},
		},
		Pickups: PickupConfig{
			IntervalMs: 15000,
			FallSpeed:  80,
			Size:       16,
			MaxAgeMs:   10000,
			Weights: []WeightedType{
				{Type: "weapon", Weight: 40},
				{Type: "health", Weight: 20},
				{Type: "shield", Weight: 15},
				{Type: "rapidfire", Weight: 15},
				{Type: "multishot", Weight: 10},
			},
		},
		Player: PlayerConfig{
			Width:          32,
			Height:         32,
			BottomOffset:   80,
			Speed:          300,
			Acceleration:   1200,
			Deceleration:   800,
			Lives:          3,
			MaxLives:       5,
			FireCooldownMs: 200,
			InvulnerableMs: 2000,
			MaxWeaponLevel: 10,
		},
		Bullets: BulletConfig{
			Width:         4,
			Height:        8,
			PlayerSpeed:   500,
			EnemySpeed:    250,
			Damage:        1,
			MaxLifetimeMs: 5000,
		},
		Particles: ParticleConfig{
			Size:          2,
			LifespanMs:    500,
			Gravity:       50,
			Friction:      0.98,
			AirResistance: 0.99,
			Speed:         100,
			Small:         5,
			Normal:        10,
			Large:         15,
		},
		Enemies: map[string]EnemyConfig{
			"basic":   {Width: 24, Height: 24, Health: 1, Speed: 100, Points: 10, Damage: 1, Pattern: "straight", DropChance: 0.1},
			"fast":    {Width: 20, Height: 20, Health: 1, Speed: 200, Points: 20, Damage: 1, Pattern: "zigzag", DropChance: 0.1},
			"heavy":   {Width: 32, Height: 32, Health: 3, Speed: 50, Points: 50, Damage: 2, Pattern: "straight", FireRate: 0.5, Shots: 1, DropChance: 0.1, ShootRange: 300},
			"shooter": {Width: 28, Height: 28, Health: 2, Speed: 80, Points: 30, Damage: 1, Pattern: "sine", FireRate: 1, Shots: 1, DropChance: 0.1, ShootRange: 300, BulletSpeed: 250},
			"boss":    {Width: 64, Height: 64, Health: 20, Speed: 30, Points: 500, Damage: 3, Pattern: "patrol", FireRate: 2, Shots: 3, DropChance: 1, ShootRange: 300, BulletSpeed: 300, Abilities: []string{AbilityShield}},
		},
		Powerups: map[string]PowerupSpec{
			"weapon":    {Amount: 1},
			"health":    {Amount: 1},
			"shield":    {DurationMs: 5000},
			"rapidfire": {DurationMs: 8000},
			"multishot": {DurationMs: 10000},
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			InitialLevel:   0.0,
			PointsPerLevel: 100,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}
