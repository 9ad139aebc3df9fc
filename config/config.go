package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer shared by all drawers.
const Default ecs.LayerID = 0

// NominalFrameMs is the duration of one nominal simulation frame. Step dt
// values are multiples of this, so dt=1 at 60Hz advances the clock by it.
const NominalFrameMs = 1000.0 / 60.0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// FilterConfig contains the one-euro filter tuning for the pointer stream
type FilterConfig struct {
	MinCutoff float64 // baseline smoothing strength (Hz)
	Beta      float64 // speed-adaptation coefficient
	DCutoff   float64 // cutoff for the velocity estimate itself (Hz)
}

// TrailConfig contains the pointer history window used for swept slicing
type TrailConfig struct {
	RetentionMs float64 // points older than this are pruned every frame
	MaxSegments int     // recent segments considered by the swept test
}

// TargetConfig contains falling-entity simulation constants
type TargetConfig struct {
	Gravity      float64 // px per frame^2, downward
	Radius       float64 // fruit radius
	HazardRadius float64
	BonusRadius  float64
	SpawnMargin  float64 // min horizontal distance from field edges
	SpawnOffsetY float64 // spawn this far below the bottom edge
	LaunchVYMin  float64 // upward launch speed range (negative = up)
	LaunchVYMax  float64
	LaunchVXSpan float64 // horizontal speed drawn from [-span, span]
	RotSpeedSpan float64 // rad per frame drawn from [-span, span]

	HazardChance float64 // kind weights; remainder split across fruit flavors
	BonusChance  float64
}

// SpawnConfig contains spawn cadence and pairing constants
type SpawnConfig struct {
	BaseRate     int     // frames between spawns at score 0
	MinRate      int     // cadence floor
	ScoreDivisor int     // every ScoreDivisor points shaves one frame off
	PairChance   float64 // chance a spawn decision yields a pair
	PairOffset   float64 // horizontal distance between pair members
	PairVYJitter float64 // second member's launch speed perturbation
}

// CollisionConfig contains slice-detection constants
type CollisionConfig struct {
	HitboxPadding   float64 // added to the target radius for the point test
	SegmentPadScale float64 // per-segment tightening of the padding
	MinSliceSpeed   float64 // px/ms; slower pointer motion never slices
	SpaceCellSize   int     // resolv broad-phase cell size
}

// ScoringConfig contains the streak/combo/multiplier state machine constants
type ScoringConfig struct {
	StartingLives int
	MaxLives      int
	ComboWindowMs float64
	DoubleBonus   int
	TripleBonus   int
	MegaBonus     int
	PairBonus     int
	LifeBonusPts  int // awarded (x multiplier) when a heal is wasted at max lives

	// Descending streak thresholds and the multiplier each grants.
	MultiplierThresholds []StreakThreshold
}

// StreakThreshold maps a minimum streak to a score multiplier.
type StreakThreshold struct {
	Streak     int
	Multiplier int
}

// ParticleConfig contains slice-burst and spark lifecycle constants
type ParticleConfig struct {
	BurstCount int
	SparkCount int
	Decay      float64 // life units removed per frame
	SparkDecay float64
	Gravity    float64 // px per frame^2 applied to burst particles
	SpeedMin   float64 // initial radial speed range, px per frame
	SpeedMax   float64
}

// SplashConfig contains feedback-text animation constants
type SplashConfig struct {
	DurationFrames float64 // gween tween length, in frames
	RisePx         float64 // upward drift over the tween
}

// EngineConfig contains frame-driver limits
type EngineConfig struct {
	MaxStepScale float64 // dt clamp; larger steps are truncated, not split
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	DrawHitRadii bool // visualize padded radii and the blade sweep
}

// Global configuration instances
var C *Config
var Filter FilterConfig
var Trail TrailConfig
var Target TargetConfig
var Spawn SpawnConfig
var Collision CollisionConfig
var Scoring ScoringConfig
var Particle ParticleConfig
var Splash SplashConfig
var Engine EngineConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 80, G: 220, B: 80, A: 255}
	Pink         = color.RGBA{R: 255, G: 120, B: 180, A: 255}
	Purple       = color.RGBA{R: 160, G: 80, B: 255, A: 255}
	HazardGray   = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	HeartRed     = color.RGBA{R: 230, G: 40, B: 60, A: 255}
	TrailBlue    = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Filter = FilterConfig{
		MinCutoff: 1.0,
		Beta:      0.007,
		DCutoff:   1.0,
	}

	Trail = TrailConfig{
		RetentionMs: 300,
		MaxSegments: 2,
	}

	Target = TargetConfig{
		Gravity:      0.22,
		Radius:       22.0,
		HazardRadius: 20.0,
		BonusRadius:  18.0,
		SpawnMargin:  48.0,
		SpawnOffsetY: 30.0,
		LaunchVYMin:  -13.0, // reaches roughly the top quarter of the field
		LaunchVYMax:  -11.0,
		LaunchVXSpan: 1.5,
		RotSpeedSpan: 0.08,

		HazardChance: 0.10,
		BonusChance:  0.05,
	}

	Spawn = SpawnConfig{
		BaseRate:     110,
		MinRate:      45,
		ScoreDivisor: 2,
		PairChance:   0.12,
		PairOffset:   70.0,
		PairVYJitter: 0.8,
	}

	Collision = CollisionConfig{
		HitboxPadding:   10.0,
		SegmentPadScale: 0.7,
		MinSliceSpeed:   0.25, // ~4.2 px per nominal frame
		SpaceCellSize:   32,
	}

	Scoring = ScoringConfig{
		StartingLives: 3,
		MaxLives:      3,
		ComboWindowMs: 900,
		DoubleBonus:   5,
		TripleBonus:   15,
		MegaBonus:     30,
		PairBonus:     2,
		LifeBonusPts:  5,
		MultiplierThresholds: []StreakThreshold{
			{Streak: 20, Multiplier: 5},
			{Streak: 10, Multiplier: 3},
			{Streak: 5, Multiplier: 2},
		},
	}

	Particle = ParticleConfig{
		BurstCount: 10,
		SparkCount: 6,
		Decay:      0.025,
		SparkDecay: 0.045,
		Gravity:    0.12,
		SpeedMin:   1.0,
		SpeedMax:   4.0,
	}

	Splash = SplashConfig{
		DurationFrames: 45,
		RisePx:         28.0,
	}

	Engine = EngineConfig{
		MaxStepScale: 5.0,
	}

	Debug = DebugConfig{
		DrawHitRadii: false,
	}
}
