package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/quasilyte/gdata"
)

// SavedTuning represents the input/collision tuning data stored on disk.
// Session scores are deliberately not persisted.
type SavedTuning struct {
	FilterMinCutoff float64 `json:"filterMinCutoff"`
	FilterBeta      float64 `json:"filterBeta"`
	HitboxPadding   float64 `json:"hitboxPadding"`
	MinSliceSpeed   float64 `json:"minSliceSpeed"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "kitefew",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadTuning loads saved tuning from disk. Returns nil when nothing is saved.
func LoadTuning() (*SavedTuning, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("tuning")
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var tuning SavedTuning
	if err := json.Unmarshal(data, &tuning); err != nil {
		log.Printf("Warning: Could not parse saved tuning: %v", err)
		return nil, err
	}

	return &tuning, nil
}

// SaveTuning saves tuning to disk
func SaveTuning(t *SavedTuning) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(t)
	if err != nil {
		log.Printf("Warning: Could not serialize tuning: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("tuning", data); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
		return err
	}
	return nil
}

// SaveCurrentTuning snapshots the live config values
func SaveCurrentTuning() {
	_ = SaveTuning(&SavedTuning{
		FilterMinCutoff: cfg.Filter.MinCutoff,
		FilterBeta:      cfg.Filter.Beta,
		HitboxPadding:   cfg.Collision.HitboxPadding,
		MinSliceSpeed:   cfg.Collision.MinSliceSpeed,
	})
}

// ApplySavedTuning overrides the config defaults with saved values. Called at
// startup before any session is created, so new pointer filters pick the
// values up.
func ApplySavedTuning(saved *SavedTuning) {
	if saved == nil {
		return
	}

	if saved.FilterMinCutoff > 0 {
		cfg.Filter.MinCutoff = saved.FilterMinCutoff
	}
	if saved.FilterBeta > 0 {
		cfg.Filter.Beta = saved.FilterBeta
	}
	if saved.HitboxPadding > 0 {
		cfg.Collision.HitboxPadding = saved.HitboxPadding
	}
	if saved.MinSliceSpeed > 0 {
		cfg.Collision.MinSliceSpeed = saved.MinSliceSpeed
	}
}
