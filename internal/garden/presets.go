package garden

import "sort"

// Classic is the sparse tuning: clustered seeds, births on exactly three
// neighbours.
func Classic() Tuning {
	return Tuning{
		Name:           "classic",
		CellSize:       8,
		UpdateInterval: 8,

		Seeding:        SeedCluster,
		ClusterDivisor: 100,
		ClusterKinds:   []Kind{KindMoss, KindMoss, KindMoss, KindAmber, KindSoil},
		AccentCount:    15,
		AccentKind:     KindTerminal,
		AccentVitality: 1,

		LivenessThreshold: 0.3,
		AliveFloor:        0.1,
		RemovalThreshold:  0,
		FallbackKind:      KindMoss,
		VitalityDelta:     []float64{-0.15, -0.15, 0.1, 0.1, 0, -0.15, -0.15, -0.15, -0.15},

		BirthMin:      3,
		BirthMax:      3,
		BirthChance:   1,
		BirthVitality: 0.3,

		Spawn:              SpawnPattern,
		SpawnPatternChance: 0.02,
		SpawnKinds:         []Kind{KindMoss, KindMoss, KindAmber, KindSoil},

		Opacity:       0.5,
		AccentOpacity: 0.7,
		OpacityCurve:  "linear",
	}
}

// Meadow sits between classic and glow: cluster seeding with graded decay,
// vitality jitter and a gated birth band.
func Meadow() Tuning {
	return Tuning{
		Name:           "meadow",
		CellSize:       7,
		UpdateInterval: 10,

		Seeding:        SeedCluster,
		ClusterDivisor: 80,
		ClusterKinds:   []Kind{KindMoss, KindMoss, KindMoss, KindAmber, KindSoil},
		AccentCount:    30,
		AccentKind:     KindTerminal,
		AccentVitality: 0.95,

		LivenessThreshold: 0.25,
		AliveFloor:        0.05,
		RemovalThreshold:  0.02,
		FallbackKind:      KindMoss,
		VitalityDelta:     []float64{-0.12, -0.05, 0.04, 0.06, -0.02, -0.06, -0.1, -0.14, -0.18},
		Jitter:            0.03,

		BirthMin:            3,
		BirthMax:            4,
		BirthMinAvgVitality: 0.35,
		BirthChance:         0.6,
		BirthVitality:       0.35,
		MutationChance:      0.01,

		Spawn:              SpawnPattern,
		SpawnPatternChance: 0.03,
		SpawnKinds:         []Kind{KindMoss, KindMoss, KindAmber, KindSoil},

		Opacity:              0.55,
		AccentOpacity:        0.8,
		OpacityCurve:         "out-sine",
		GlobalPulseAmplitude: 0.15,
		GlobalPulseSpeed:     0.02,
	}
}

// Glow is the dense tuning: per-cell density seeding, phase-driven shimmer
// and a constant trickle of scattered spawns.
func Glow() Tuning {
	return Tuning{
		Name:           "glow",
		CellSize:       6,
		UpdateInterval: 12,

		Seeding:            SeedDensity,
		Density:            0.28,
		DensityKinds:       []Kind{KindGlow, KindGlow, KindGlow, KindMatrix, KindMatrix, KindMatrix, KindMoss, KindAmber, KindTerminal},
		DensityVitalityMin: 0.7,
		DensityVitalityMax: 1,
		AccentCount:        60,
		AccentKind:         KindGlow,
		AccentVitality:     0.98,

		LivenessThreshold: 0.2,
		AliveFloor:        0.05,
		RemovalThreshold:  0.02,
		FallbackKind:      KindMatrix,
		VitalityDelta:     []float64{-0.08, -0.04, 0.02, 0.03, -0.02, -0.05, -0.08, -0.11, -0.14},
		Jitter:            0.02,

		BirthMin:            2,
		BirthMax:            5,
		BirthMinAvgVitality: 0.4,
		BirthChance:         0.35,
		BirthVitality:       0.4,
		MutationChance:      0.05,

		Spawn:            SpawnScatter,
		SpawnMin:         5,
		SpawnMax:         14,
		SpawnVitalityMin: 0.4,
		SpawnVitalityMax: 0.7,
		SpawnKinds:       []Kind{KindGlow, KindGlow, KindMatrix, KindMatrix, KindMoss, KindAmber},

		Opacity:              0.6,
		AccentOpacity:        0.9,
		OpacityCurve:         "in-out-sine",
		PulseAmplitude:       0.35,
		PulseSpeed:           0.05,
		GlobalPulseAmplitude: 0.2,
		GlobalPulseSpeed:     0.01,
	}
}

var presets = map[string]func() Tuning{
	"classic": Classic,
	"meadow":  Meadow,
	"glow":    Glow,
}

// Preset returns a fresh copy of the named tuning.
func Preset(name string) (Tuning, bool) {
	fn, ok := presets[name]
	if !ok {
		return Tuning{}, false
	}
	return fn(), true
}

// PresetNames lists the registered tunings in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
