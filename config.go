package celebrate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the celebration. DefaultConfig reproduces
// the stock effect; YAML files overlay it field by field.
type Config struct {
	// Gravity is the downward acceleration in pixels per frame², scaled per kind.
	Gravity         float64 `yaml:"gravity"`
	RocketGravity   float64 `yaml:"rocketGravity"`
	SparkGravity    float64 `yaml:"sparkGravity"`
	ConfettiGravity float64 `yaml:"confettiGravity"`

	// Damping multiplies velocity once per frame.
	SparkDamping    float64 `yaml:"sparkDamping"`
	ConfettiDamping float64 `yaml:"confettiDamping"`

	// FadeFrames is the life window over which opacity ramps from 1 to 0.
	FadeFrames float64 `yaml:"fadeFrames"`
	// ReapMargin is how far below the surface a particle may fall before removal.
	ReapMargin float64 `yaml:"reapMargin"`

	Confetti    ConfettiConfig    `yaml:"confetti"`
	Rocket      RocketConfig      `yaml:"rocket"`
	Explosion   ExplosionConfig   `yaml:"explosion"`
	Celebration CelebrationConfig `yaml:"celebration"`
	Aurora      AuroraConfig      `yaml:"aurora"`
}

// ConfettiConfig shapes every confetti burst.
type ConfettiConfig struct {
	Speed   Range `yaml:"speed"`
	SpreadX Range `yaml:"spreadX"`
	SpreadY Range `yaml:"spreadY"`
	Spin    Range `yaml:"spin"`
	Size    Range `yaml:"size"`
	Life    Range `yaml:"life"`
}

// RocketConfig shapes firework launches.
type RocketConfig struct {
	// StartOffset is how far below the bottom edge rockets start.
	StartOffset float64 `yaml:"startOffset"`
	Drift       Range   `yaml:"drift"`
	// Speed is the upward launch speed; the launch velocity is its negation.
	Speed Range `yaml:"speed"`
	// Apex is the detonation height as a fraction of surface height from the top.
	Apex   Range   `yaml:"apex"`
	Radius float64 `yaml:"radius"`
}

// ExplosionConfig shapes a rocket detonation.
type ExplosionConfig struct {
	Sparks          int     `yaml:"sparks"`
	Speed           Range   `yaml:"speed"`
	Size            Range   `yaml:"size"`
	Life            Range   `yaml:"life"`
	Confetti        int     `yaml:"confetti"`
	ConfettiOffsetY float64 `yaml:"confettiOffsetY"`
}

// FollowupBurst is a confetti burst fired some time after the trigger.
// X is a fraction of the surface width; Y is in pixels.
type FollowupBurst struct {
	Delay time.Duration `yaml:"delay"`
	X     float64       `yaml:"x"`
	Y     float64       `yaml:"y"`
	Count int           `yaml:"count"`
}

// CelebrationConfig composes one Celebrate call.
type CelebrationConfig struct {
	BurstCount int     `yaml:"burstCount"`
	BurstY     float64 `yaml:"burstY"`
	// Fireworks lists launch positions as fractions of the surface width.
	Fireworks []float64       `yaml:"fireworks"`
	Followups []FollowupBurst `yaml:"followups"`
}

// AuroraConfig shapes the overlay burst.
type AuroraConfig struct {
	Motes    int     `yaml:"motes"`
	Distance Range   `yaml:"distance"`
	Duration float32 `yaml:"duration"`
	// WashDuration is the total fade-in plus fade-out time of the tint.
	WashDuration float32 `yaml:"washDuration"`
	WashAlpha    float64 `yaml:"washAlpha"`
	MoteRadius   float64 `yaml:"moteRadius"`
}

// DefaultConfig returns the stock celebration.
func DefaultConfig() Config {
	return Config{
		Gravity:         0.12,
		RocketGravity:   0.15,
		SparkGravity:    0.06,
		ConfettiGravity: 1,
		SparkDamping:    0.985,
		ConfettiDamping: 0.995,
		FadeFrames:      60,
		ReapMargin:      80,
		Confetti: ConfettiConfig{
			Speed:   Range{2.5, 7.5},
			SpreadX: Range{0.6, 1.2},
			SpreadY: Range{0.7, 1.4},
			Spin:    Range{-0.18, 0.18},
			Size:    Range{4, 10},
			Life:    Range{70, 130},
		},
		Rocket: RocketConfig{
			StartOffset: 20,
			Drift:       Range{-0.6, 0.6},
			Speed:       Range{10.5, 12.5},
			Apex:        Range{0.15, 0.35},
			Radius:      2.2,
		},
		Explosion: ExplosionConfig{
			Sparks:          90,
			Speed:           Range{1.0, 5.6},
			Size:            Range{1.2, 2.6},
			Life:            Range{40, 80},
			Confetti:        70,
			ConfettiOffsetY: 40,
		},
		Celebration: CelebrationConfig{
			BurstCount: 140,
			BurstY:     40,
			Fireworks:  []float64{0.25, 0.5, 0.75},
			Followups: []FollowupBurst{
				{Delay: 220 * time.Millisecond, X: 0.2, Y: 60, Count: 90},
				{Delay: 320 * time.Millisecond, X: 0.8, Y: 60, Count: 90},
			},
		},
		Aurora: AuroraConfig{
			Motes:        28,
			Distance:     Range{80, 300},
			Duration:     0.9,
			WashDuration: 0.65,
			WashAlpha:    0.18,
			MoteRadius:   4,
		},
	}
}

// ParseConfig decodes YAML over DefaultConfig. Unknown keys are rejected and
// an empty document yields the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// Validate reports the first setting that would break the simulation.
func (c *Config) Validate() error {
	if c.Gravity < 0 {
		return fmt.Errorf("gravity %v must be >= 0", c.Gravity)
	}
	if c.FadeFrames <= 0 {
		return fmt.Errorf("fadeFrames %v must be > 0", c.FadeFrames)
	}
	if c.ReapMargin < 0 {
		return fmt.Errorf("reapMargin %v must be >= 0", c.ReapMargin)
	}
	dampings := []struct {
		name string
		d    float64
	}{
		{"sparkDamping", c.SparkDamping},
		{"confettiDamping", c.ConfettiDamping},
	}
	for _, nd := range dampings {
		if nd.d <= 0 || nd.d > 1 {
			return fmt.Errorf("%s %v must be in (0, 1]", nd.name, nd.d)
		}
	}

	ranges := []struct {
		name string
		r    Range
	}{
		{"confetti.speed", c.Confetti.Speed},
		{"confetti.spreadX", c.Confetti.SpreadX},
		{"confetti.spreadY", c.Confetti.SpreadY},
		{"confetti.spin", c.Confetti.Spin},
		{"confetti.size", c.Confetti.Size},
		{"confetti.life", c.Confetti.Life},
		{"rocket.drift", c.Rocket.Drift},
		{"rocket.speed", c.Rocket.Speed},
		{"rocket.apex", c.Rocket.Apex},
		{"explosion.speed", c.Explosion.Speed},
		{"explosion.size", c.Explosion.Size},
		{"explosion.life", c.Explosion.Life},
		{"aurora.distance", c.Aurora.Distance},
	}
	for _, nr := range ranges {
		if nr.r.Min > nr.r.Max {
			return fmt.Errorf("%s: min %v > max %v", nr.name, nr.r.Min, nr.r.Max)
		}
	}
	if c.Confetti.Life.Min <= 0 || c.Explosion.Life.Min <= 0 {
		return errors.New("particle life must be > 0")
	}
	if c.Rocket.Speed.Min <= 0 {
		return fmt.Errorf("rocket.speed min %v must be > 0", c.Rocket.Speed.Min)
	}
	if c.Rocket.Apex.Min < 0 || c.Rocket.Apex.Max > 1 {
		return fmt.Errorf("rocket.apex %v must lie within [0, 1]", c.Rocket.Apex)
	}

	counts := []struct {
		name string
		n    int
	}{
		{"explosion.sparks", c.Explosion.Sparks},
		{"explosion.confetti", c.Explosion.Confetti},
		{"celebration.burstCount", c.Celebration.BurstCount},
		{"aurora.motes", c.Aurora.Motes},
	}
	for _, nc := range counts {
		if nc.n < 0 {
			return fmt.Errorf("%s %d must be >= 0", nc.name, nc.n)
		}
	}
	for i, f := range c.Celebration.Followups {
		if f.Delay < 0 || f.Count < 0 {
			return fmt.Errorf("celebration.followups[%d]: negative delay or count", i)
		}
	}
	if c.Aurora.Duration <= 0 || c.Aurora.WashDuration <= 0 {
		return errors.New("aurora durations must be > 0")
	}
	return nil
}
