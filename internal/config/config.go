// Package config provides YAML-based game configuration loading and
// difficulty management for skyraid.
package config

import (
	"errors"
	"fmt"
)

// SkyraidConfig contains all tunables of the simulation.
type SkyraidConfig struct {
	Playfield  PlayfieldConfig        `yaml:"playfield"`
	Timing     TimingConfig           `yaml:"timing"`
	Spawn      SpawnConfig            `yaml:"spawn"`
	Pickups    PickupConfig           `yaml:"pickups"`
	Player     PlayerConfig           `yaml:"player"`
	Bullets    BulletConfig           `yaml:"bullets"`
	Particles  ParticleConfig         `yaml:"particles"`
	Enemies    map[string]EnemyConfig `yaml:"enemies"`
	Powerups   map[string]PowerupSpec `yaml:"powerups"`
	Difficulty DifficultyConfig       `yaml:"difficulty"`
}

// PlayfieldConfig is the simulated area in world units. The renderer
// scales it onto whatever terminal size is available.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"` // How far outside the field entities survive
}

// TimingConfig controls frame delta handling.
type TimingConfig struct {
	NominalFrameMs  float64 `yaml:"nominal_frame_ms"`   // Substituted for anomalous deltas
	MaxFrameDeltaMs float64 `yaml:"max_frame_delta_ms"` // Deltas above this are anomalous
}

// SpawnConfig controls the enemy spawn director.
type SpawnConfig struct {
	StartIntervalMs float64     `yaml:"start_interval_ms"`
	DecrementMs     float64     `yaml:"decrement_ms"`
	FloorIntervalMs float64     `yaml:"floor_interval_ms"`
	FallbackType    string      `yaml:"fallback_type"`
	Table           []SpawnTier `yaml:"table"`
}

// SpawnTier makes an enemy type eligible from a difficulty tier upward.
// Chance below 1 makes the type eligible only on some spawns.
type SpawnTier struct {
	Type     string  `yaml:"type"`
	MinLevel int     `yaml:"min_level"`
	Chance   float64 `yaml:"chance"`
}

// PickupConfig controls timed pickup drops and the weighted type roll shared
// with enemy drops.
type PickupConfig struct {
	IntervalMs float64        `yaml:"interval_ms"`
	FallSpeed  float64        `yaml:"fall_speed"`
	Size       float64        `yaml:"size"`
	MaxAgeMs   float64        `yaml:"max_age_ms"`
	Weights    []WeightedType `yaml:"weights"`
}

// WeightedType is one entry of a weighted random table.
type WeightedType struct {
	Type   string `yaml:"type"`
	Weight int    `yaml:"weight"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	BottomOffset   float64 `yaml:"bottom_offset"`
	Speed          float64 `yaml:"speed"`
	Acceleration   float64 `yaml:"acceleration"`
	Deceleration   float64 `yaml:"deceleration"`
	Lives          int     `yaml:"lives"`
	MaxLives       int     `yaml:"max_lives"`
	FireCooldownMs float64 `yaml:"fire_cooldown_ms"`
	InvulnerableMs float64 `yaml:"invulnerable_ms"`
	MaxWeaponLevel int     `yaml:"max_weapon_level"`
}

// BulletConfig defines projectiles.
type BulletConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	PlayerSpeed   float64 `yaml:"player_speed"`
	EnemySpeed    float64 `yaml:"enemy_speed"`
	Damage        int     `yaml:"damage"`
	MaxLifetimeMs float64 `yaml:"max_lifetime_ms"`
}

// ParticleConfig defines explosion debris.
type ParticleConfig struct {
	Size          float64 `yaml:"size"`
	LifespanMs    float64 `yaml:"lifespan_ms"`
	Gravity       float64 `yaml:"gravity"`
	Friction      float64 `yaml:"friction"`
	AirResistance float64 `yaml:"air_resistance"`
	Speed         float64 `yaml:"speed"`
	Small         int     `yaml:"small"`
	Normal        int     `yaml:"normal"`
	Large         int     `yaml:"large"`
}

// EnemyConfig defines one enemy type.
type EnemyConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Health     int     `yaml:"health"`
	Speed      float64 `yaml:"speed"`
	Points     int     `yaml:"points"`
	Damage     int     `yaml:"damage"`
	Pattern    string  `yaml:"pattern"`   // straight, zigzag, sine, patrol
	FireRate   float64 `yaml:"fire_rate"` // Shots per second, 0 disables
	Shots      int     `yaml:"shots"`     // Bullets per volley
	DropChance float64 `yaml:"drop_chance"`

	ShootRange  float64  `yaml:"shoot_range"`  // Max distance to the player for firing, 0 is unlimited
	BulletSpeed float64  `yaml:"bullet_speed"` // 0 uses bullets.enemy_speed
	Abilities   []string `yaml:"abilities"`
}

// AbilityShield makes an enemy periodically invulnerable.
const AbilityShield = "shield"

// PowerupSpec defines what a collected pickup does.
type PowerupSpec struct {
	DurationMs float64 `yaml:"duration_ms"` // Timed effects only
	Amount     int     `yaml:"amount"`      // Levels, lives or score
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled        bool              `yaml:"enabled"`
	InitialLevel   float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	PointsPerLevel int               `yaml:"points_per_level"`
	Progression    ProgressionConfig `yaml:"progression"`
	Scaling        ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports every structural problem found in the config.
func (c SkyraidConfig) Validate() error {
	var errs []error
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Playfield.Margin < 0 {
		errs = append(errs, fmt.Errorf("playfield margin must not be negative, got %v", c.Playfield.Margin))
	}
	if c.Timing.NominalFrameMs <= 0 || c.Timing.MaxFrameDeltaMs < c.Timing.NominalFrameMs {
		errs = append(errs, errors.New("timing: need 0 < nominal_frame_ms <= max_frame_delta_ms"))
	}
	if c.Spawn.FloorIntervalMs <= 0 || c.Spawn.FloorIntervalMs > c.Spawn.StartIntervalMs {
		errs = append(errs, fmt.Errorf("spawn: floor %v must be in (0, start %v]", c.Spawn.FloorIntervalMs, c.Spawn.StartIntervalMs))
	}
	if c.Spawn.DecrementMs < 0 {
		errs = append(errs, errors.New("spawn: decrement_ms must not be negative"))
	}
	if _, ok := c.Enemies[c.Spawn.FallbackType]; !ok {
		errs = append(errs, fmt.Errorf("spawn: fallback type %q is not a configured enemy", c.Spawn.FallbackType))
	}
	for name, ec := range c.Enemies {
		if ec.ShootRange < 0 || ec.BulletSpeed < 0 {
			errs = append(errs, fmt.Errorf("enemy %q: shoot_range and bullet_speed must not be negative", name))
		}
		for _, a := range ec.Abilities {
			if a != AbilityShield {
				errs = append(errs, fmt.Errorf("enemy %q: unknown ability %q", name, a))
			}
		}
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, errors.New("player: lives must be positive"))
	}
	return errors.Join(errs...)
}
