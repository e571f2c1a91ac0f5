package garden

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"pixel-garden/internal/core"
)

type binding struct {
	key   string
	label string
	group string

	i  *int
	f  *float64
	s  *string
	k  *Kind
	ks *[]Kind
	fs *[]float64
}

func (t *Tuning) bindings() []binding {
	seeding := (*string)(&t.Seeding)
	spawn := (*string)(&t.Spawn)
	return []binding{
		{key: "name", label: "Name", group: "Grid", s: &t.Name},
		{key: "cell_size", label: "Cell size", group: "Grid", i: &t.CellSize},
		{key: "update_interval", label: "Update interval", group: "Grid", i: &t.UpdateInterval},

		{key: "seeding", label: "Seeding", group: "Seeding", s: seeding},
		{key: "cluster_divisor", label: "Cluster divisor", group: "Seeding", i: &t.ClusterDivisor},
		{key: "cluster_kinds", label: "Cluster kinds", group: "Seeding", ks: &t.ClusterKinds},
		{key: "density", label: "Density", group: "Seeding", f: &t.Density},
		{key: "density_kinds", label: "Density kinds", group: "Seeding", ks: &t.DensityKinds},
		{key: "density_vitality_min", label: "Density vitality min", group: "Seeding", f: &t.DensityVitalityMin},
		{key: "density_vitality_max", label: "Density vitality max", group: "Seeding", f: &t.DensityVitalityMax},
		{key: "accent_count", label: "Accent count", group: "Seeding", i: &t.AccentCount},
		{key: "accent_kind", label: "Accent kind", group: "Seeding", k: &t.AccentKind},
		{key: "accent_vitality", label: "Accent vitality", group: "Seeding", f: &t.AccentVitality},

		{key: "liveness_threshold", label: "Liveness threshold", group: "Rule", f: &t.LivenessThreshold},
		{key: "alive_floor", label: "Alive floor", group: "Rule", f: &t.AliveFloor},
		{key: "removal_threshold", label: "Removal threshold", group: "Rule", f: &t.RemovalThreshold},
		{key: "fallback_kind", label: "Fallback kind", group: "Rule", k: &t.FallbackKind},
		{key: "vitality_delta", label: "Vitality delta", group: "Rule", fs: &t.VitalityDelta},
		{key: "jitter", label: "Jitter", group: "Rule", f: &t.Jitter},

		{key: "birth_min", label: "Birth min", group: "Birth", i: &t.BirthMin},
		{key: "birth_max", label: "Birth max", group: "Birth", i: &t.BirthMax},
		{key: "birth_min_avg_vitality", label: "Birth min avg vitality", group: "Birth", f: &t.BirthMinAvgVitality},
		{key: "birth_chance", label: "Birth chance", group: "Birth", f: &t.BirthChance},
		{key: "birth_vitality", label: "Birth vitality", group: "Birth", f: &t.BirthVitality},
		{key: "mutation_chance", label: "Mutation chance", group: "Birth", f: &t.MutationChance},

		{key: "spawn", label: "Spawn mode", group: "Spawning", s: spawn},
		{key: "spawn_pattern_chance", label: "Spawn pattern chance", group: "Spawning", f: &t.SpawnPatternChance},
		{key: "spawn_min", label: "Spawn min", group: "Spawning", i: &t.SpawnMin},
		{key: "spawn_max", label: "Spawn max", group: "Spawning", i: &t.SpawnMax},
		{key: "spawn_vitality_min", label: "Spawn vitality min", group: "Spawning", f: &t.SpawnVitalityMin},
		{key: "spawn_vitality_max", label: "Spawn vitality max", group: "Spawning", f: &t.SpawnVitalityMax},
		{key: "spawn_kinds", label: "Spawn kinds", group: "Spawning", ks: &t.SpawnKinds},

		{key: "opacity", label: "Opacity", group: "Render", f: &t.Opacity},
		{key: "accent_opacity", label: "Accent opacity", group: "Render", f: &t.AccentOpacity},
		{key: "opacity_curve", label: "Opacity curve", group: "Render", s: &t.OpacityCurve},
		{key: "pulse_amplitude", label: "Pulse amplitude", group: "Render", f: &t.PulseAmplitude},
		{key: "pulse_speed", label: "Pulse speed", group: "Render", f: &t.PulseSpeed},
		{key: "global_pulse_amplitude", label: "Global pulse amplitude", group: "Render", f: &t.GlobalPulseAmplitude},
		{key: "global_pulse_speed", label: "Global pulse speed", group: "Render", f: &t.GlobalPulseSpeed},
	}
}

func (b binding) assign(value string) error {
	value = strings.TrimSpace(value)
	switch {
	case b.i != nil:
		v, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		*b.i = v
	case b.f != nil:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		*b.f = v
	case b.s != nil:
		*b.s = value
	case b.k != nil:
		k, err := ParseKind(value)
		if err != nil {
			return err
		}
		*b.k = k
	case b.ks != nil:
		ks, err := ParseKinds(value)
		if err != nil {
			return err
		}
		*b.ks = ks
	case b.fs != nil:
		var out []float64
		for _, part := range strings.Split(value, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return err
			}
			out = append(out, v)
		}
		*b.fs = out
	}
	return nil
}

func (b binding) param() core.Parameter {
	switch {
	case b.i != nil:
		return core.IntParam(b.key, b.label, *b.i)
	case b.f != nil:
		return core.FloatParam(b.key, b.label, *b.f)
	case b.s != nil:
		return core.StringParam(b.key, b.label, *b.s)
	case b.k != nil:
		return core.StringParam(b.key, b.label, b.k.String())
	case b.ks != nil:
		return core.StringParam(b.key, b.label, formatKinds(*b.ks))
	default:
		parts := make([]string, len(*b.fs))
		for i, v := range *b.fs {
			parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		return core.StringParam(b.key, b.label, strings.Join(parts, ","))
	}
}

// Apply overrides fields from flag-style key/value pairs and validates the
// result. On error the tuning is left unchanged.
func (t *Tuning) Apply(overrides map[string]string) error {
	if len(overrides) == 0 {
		return nil
	}
	next := t.Clone()
	index := map[string]binding{}
	for _, b := range next.bindings() {
		index[b.key] = b
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		b, ok := index[key]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownParameter, key)
		}
		if err := b.assign(overrides[key]); err != nil {
			return fmt.Errorf("parameter %s: %w", key, err)
		}
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*t = next
	return nil
}

// ParseOverrides splits key=value pairs.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("override %q is not in key=value form", kv)
		}
		out[strings.TrimSpace(key)] = value
	}
	return out, nil
}

// Parameters exposes the tuning for display.
func (t *Tuning) Parameters() core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	groupIdx := map[string]int{}
	for _, b := range t.bindings() {
		i, ok := groupIdx[b.group]
		if !ok {
			i = len(snap.Groups)
			groupIdx[b.group] = i
			snap.Groups = append(snap.Groups, core.ParameterGroup{Name: b.group})
		}
		snap.Groups[i].Params = append(snap.Groups[i].Params, b.param())
	}
	return snap
}
