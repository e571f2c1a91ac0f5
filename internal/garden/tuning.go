package garden

import (
	"errors"
	"fmt"
	"os"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// SeedStrategy selects how an empty grid is populated.
type SeedStrategy string

const (
	// SeedCluster stamps fixed shapes at random centres.
	SeedCluster SeedStrategy = "cluster"
	// SeedDensity fills every slot independently with a fixed probability.
	SeedDensity SeedStrategy = "density"
)

// SpawnMode selects how new life is injected after every step.
type SpawnMode string

const (
	SpawnNone SpawnMode = "none"
	// SpawnPattern occasionally stamps one seed shape.
	SpawnPattern SpawnMode = "pattern"
	// SpawnScatter fills a few random empty slots every step.
	SpawnScatter SpawnMode = "scatter"
)

var (
	// ErrInvalidTuning reports a tuning that violates a constraint.
	ErrInvalidTuning = errors.New("invalid tuning")
	// ErrUnknownTuning reports a preset name that is not registered.
	ErrUnknownTuning = errors.New("unknown tuning")
	// ErrUnknownParameter reports an override key that does not exist.
	ErrUnknownParameter = errors.New("unknown parameter")
)

// Neighborhood is the number of adjacent slots examined per cell.
const Neighborhood = 8

// Tuning is the full set of constants driving the seed, transition and render
// passes. The presets are different tunings of the same engine.
type Tuning struct {
	Name string `yaml:"name"`

	// CellSize is the edge of one cell in surface pixels.
	CellSize int `yaml:"cell_size"`
	// UpdateInterval is the number of frames between transitions.
	UpdateInterval int `yaml:"update_interval"`

	Seeding            SeedStrategy `yaml:"seeding"`
	ClusterDivisor     int          `yaml:"cluster_divisor"`
	ClusterKinds       []Kind       `yaml:"cluster_kinds,flow,omitempty"`
	Density            float64      `yaml:"density"`
	DensityKinds       []Kind       `yaml:"density_kinds,flow,omitempty"`
	DensityVitalityMin float64      `yaml:"density_vitality_min"`
	DensityVitalityMax float64      `yaml:"density_vitality_max"`
	AccentCount        int          `yaml:"accent_count"`
	AccentKind         Kind         `yaml:"accent_kind"`
	AccentVitality     float64      `yaml:"accent_vitality"`

	// LivenessThreshold is the vitality a neighbour must exceed to count.
	LivenessThreshold float64 `yaml:"liveness_threshold"`
	// AliveFloor is the vitality a cell must exceed to be evolved rather
	// than treated as an empty slot.
	AliveFloor float64 `yaml:"alive_floor"`
	// RemovalThreshold empties a cell whose new vitality is at or below it.
	RemovalThreshold float64 `yaml:"removal_threshold"`
	FallbackKind     Kind    `yaml:"fallback_kind"`
	// VitalityDelta is added to a live cell's vitality, indexed by its
	// neighbour count (0-8).
	VitalityDelta []float64 `yaml:"vitality_delta,flow"`
	Jitter        float64   `yaml:"jitter"`

	BirthMin            int     `yaml:"birth_min"`
	BirthMax            int     `yaml:"birth_max"`
	BirthMinAvgVitality float64 `yaml:"birth_min_avg_vitality"`
	BirthChance         float64 `yaml:"birth_chance"`
	BirthVitality       float64 `yaml:"birth_vitality"`
	MutationChance      float64 `yaml:"mutation_chance"`

	Spawn              SpawnMode `yaml:"spawn"`
	SpawnPatternChance float64   `yaml:"spawn_pattern_chance"`
	SpawnMin           int       `yaml:"spawn_min"`
	SpawnMax           int       `yaml:"spawn_max"`
	SpawnVitalityMin   float64   `yaml:"spawn_vitality_min"`
	SpawnVitalityMax   float64   `yaml:"spawn_vitality_max"`
	SpawnKinds         []Kind    `yaml:"spawn_kinds,flow,omitempty"`

	Opacity              float64 `yaml:"opacity"`
	AccentOpacity        float64 `yaml:"accent_opacity"`
	OpacityCurve         string  `yaml:"opacity_curve"`
	PulseAmplitude       float64 `yaml:"pulse_amplitude"`
	PulseSpeed           float64 `yaml:"pulse_speed"`
	GlobalPulseAmplitude float64 `yaml:"global_pulse_amplitude"`
	GlobalPulseSpeed     float64 `yaml:"global_pulse_speed"`
}

var opacityCurves = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"in-quad":     ease.InQuad,
	"out-quad":    ease.OutQuad,
	"in-out-quad": ease.InOutQuad,
	"in-cubic":    ease.InCubic,
	"out-cubic":   ease.OutCubic,
	"in-sine":     ease.InSine,
	"out-sine":    ease.OutSine,
	"in-out-sine": ease.InOutSine,
}

func curveFor(name string) ease.TweenFunc {
	if fn, ok := opacityCurves[name]; ok {
		return fn
	}
	return ease.Linear
}

// Clone returns a deep copy.
func (t Tuning) Clone() Tuning {
	t.ClusterKinds = append([]Kind(nil), t.ClusterKinds...)
	t.DensityKinds = append([]Kind(nil), t.DensityKinds...)
	t.SpawnKinds = append([]Kind(nil), t.SpawnKinds...)
	t.VitalityDelta = append([]float64(nil), t.VitalityDelta...)
	return t
}

// Delta returns the vitality change for a live cell with count neighbours.
func (t *Tuning) Delta(count int) float64 {
	if count < 0 || count >= len(t.VitalityDelta) {
		return 0
	}
	return t.VitalityDelta[count]
}

// Validate checks every constraint the engine relies on.
func (t *Tuning) Validate() error {
	if t.CellSize < 2 {
		return invalid("cell_size must be at least 2, got %d", t.CellSize)
	}
	if t.UpdateInterval < 1 {
		return invalid("update_interval must be at least 1, got %d", t.UpdateInterval)
	}
	switch t.Seeding {
	case SeedCluster:
		if t.ClusterDivisor < 1 {
			return invalid("cluster_divisor must be positive")
		}
		if err := validKinds("cluster_kinds", t.ClusterKinds); err != nil {
			return err
		}
	case SeedDensity:
		if err := unit("density", t.Density); err != nil {
			return err
		}
		if t.Density > 0 {
			if err := validKinds("density_kinds", t.DensityKinds); err != nil {
				return err
			}
		}
		if err := vitalityRange("density_vitality", t.DensityVitalityMin, t.DensityVitalityMax); err != nil {
			return err
		}
	default:
		return invalid("unknown seeding %q", t.Seeding)
	}
	if t.AccentCount < 0 {
		return invalid("accent_count must not be negative")
	}
	if t.AccentCount > 0 {
		if !t.AccentKind.Valid() {
			return invalid("accent_kind must be set when accent_count > 0")
		}
		if t.AccentVitality <= 0 || t.AccentVitality > 1 {
			return invalid("accent_vitality must be in (0,1], got %v", t.AccentVitality)
		}
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"liveness_threshold", t.LivenessThreshold},
		{"alive_floor", t.AliveFloor},
		{"removal_threshold", t.RemovalThreshold},
		{"birth_chance", t.BirthChance},
		{"mutation_chance", t.MutationChance},
		{"opacity", t.Opacity},
		{"accent_opacity", t.AccentOpacity},
		{"pulse_amplitude", t.PulseAmplitude},
		{"global_pulse_amplitude", t.GlobalPulseAmplitude},
	} {
		if err := unit(f.name, f.v); err != nil {
			return err
		}
	}
	if t.RemovalThreshold >= 1 || t.AliveFloor >= 1 {
		return invalid("alive_floor and removal_threshold must be below 1")
	}
	if !t.FallbackKind.Valid() {
		return invalid("fallback_kind must be set")
	}
	if len(t.VitalityDelta) != Neighborhood+1 {
		return invalid("vitality_delta needs %d entries, got %d", Neighborhood+1, len(t.VitalityDelta))
	}
	if t.Jitter < 0 {
		return invalid("jitter must not be negative")
	}
	if t.BirthMin < 1 || t.BirthMax < t.BirthMin || t.BirthMax > Neighborhood {
		return invalid("birth band must satisfy 1 <= min <= max <= 8, got %d-%d", t.BirthMin, t.BirthMax)
	}
	if t.BirthVitality <= t.RemovalThreshold || t.BirthVitality > 1 {
		return invalid("birth_vitality must be in (removal_threshold,1], got %v", t.BirthVitality)
	}
	switch t.Spawn {
	case SpawnNone, "":
	case SpawnPattern:
		if err := unit("spawn_pattern_chance", t.SpawnPatternChance); err != nil {
			return err
		}
	case SpawnScatter:
		if t.SpawnMin < 0 || t.SpawnMax < t.SpawnMin {
			return invalid("spawn band must satisfy 0 <= min <= max, got %d-%d", t.SpawnMin, t.SpawnMax)
		}
		if err := vitalityRange("spawn_vitality", t.SpawnVitalityMin, t.SpawnVitalityMax); err != nil {
			return err
		}
	default:
		return invalid("unknown spawn mode %q", t.Spawn)
	}
	if (t.Spawn != SpawnNone && t.Spawn != "") || t.MutationChance > 0 {
		if err := validKinds("spawn_kinds", t.SpawnKinds); err != nil {
			return err
		}
	}
	if _, ok := opacityCurves[t.OpacityCurve]; !ok && t.OpacityCurve != "" {
		return invalid("unknown opacity_curve %q", t.OpacityCurve)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTuning, fmt.Sprintf(format, args...))
}

func unit(name string, v float64) error {
	if v < 0 || v > 1 {
		return invalid("%s must be in [0,1], got %v", name, v)
	}
	return nil
}

func vitalityRange(name string, lo, hi float64) error {
	if lo <= 0 || hi > 1 || hi < lo {
		return invalid("%s range must satisfy 0 < min <= max <= 1, got %v-%v", name, lo, hi)
	}
	return nil
}

func validKinds(name string, kinds []Kind) error {
	if len(kinds) == 0 {
		return invalid("%s must not be empty", name)
	}
	for _, k := range kinds {
		if !k.Valid() {
			return invalid("%s contains an invalid kind", name)
		}
	}
	return nil
}

// LoadTuning reads a tuning from a YAML file. Fields missing from the file
// keep the values of the preset named by its "name" key, or of classic.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, err
	}
	return ParseTuning(data)
}

// ParseTuning decodes a YAML tuning document and validates it.
func ParseTuning(data []byte) (Tuning, error) {
	var head struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Tuning{}, err
	}
	base, ok := Preset(head.Name)
	if !ok {
		base = Classic()
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return Tuning{}, err
	}
	if err := base.Validate(); err != nil {
		return Tuning{}, err
	}
	return base, nil
}

// SaveTuning writes a tuning as YAML.
func SaveTuning(path string, t Tuning) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
