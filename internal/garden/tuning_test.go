package garden

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestPresetsValidate(t *testing.T) {
	names := PresetNames()
	if !reflect.DeepEqual(names, []string{"classic", "glow", "meadow"}) {
		t.Fatalf("PresetNames() = %v", names)
	}
	for _, name := range names {
		tune, ok := Preset(name)
		if !ok {
			t.Fatalf("Preset(%q) missing", name)
		}
		if tune.Name != name {
			t.Fatalf("preset %q reports name %q", name, tune.Name)
		}
		if err := tune.Validate(); err != nil {
			t.Fatalf("preset %q: %v", name, err)
		}
	}
	if _, ok := Preset("jungle"); ok {
		t.Fatal("unknown preset should not resolve")
	}
}

func TestPresetsAreIndependentCopies(t *testing.T) {
	a, _ := Preset("classic")
	a.VitalityDelta[3] = 0.9
	a.ClusterKinds[0] = KindSoil
	b, _ := Preset("classic")
	if b.VitalityDelta[3] != 0.1 || b.ClusterKinds[0] != KindMoss {
		t.Fatal("mutating a preset leaked into later copies")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Tuning){
		"cell size":       func(t *Tuning) { t.CellSize = 1 },
		"interval":        func(t *Tuning) { t.UpdateInterval = 0 },
		"seeding":         func(t *Tuning) { t.Seeding = "spiral" },
		"liveness":        func(t *Tuning) { t.LivenessThreshold = 1.5 },
		"delta length":    func(t *Tuning) { t.VitalityDelta = t.VitalityDelta[:4] },
		"birth band":      func(t *Tuning) { t.BirthMin, t.BirthMax = 4, 3 },
		"birth zero":      func(t *Tuning) { t.BirthMin = 0 },
		"birth vitality":  func(t *Tuning) { t.BirthVitality = 0 },
		"fallback":        func(t *Tuning) { t.FallbackKind = KindNone },
		"spawn mode":      func(t *Tuning) { t.Spawn = "rain" },
		"spawn kinds":     func(t *Tuning) { t.SpawnKinds = nil },
		"curve":           func(t *Tuning) { t.OpacityCurve = "bounce" },
		"accent vitality": func(t *Tuning) { t.AccentVitality = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			tune := Classic()
			mutate(&tune)
			err := tune.Validate()
			if !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("Validate() = %v, want ErrInvalidTuning", err)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	tune := Classic()
	err := tune.Apply(map[string]string{
		"cell_size":          "5",
		"birth_chance":       "0.25",
		"spawn":              "scatter",
		"spawn_min":          "2",
		"spawn_max":          "4",
		"spawn_vitality_min": "0.3",
		"spawn_vitality_max": "0.6",
		"spawn_kinds":        "glow, matrix",
		"fallback_kind":      "amber",
		"vitality_delta":     "0,0,0.1,0.1,0,0,0,0,-1",
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if tune.CellSize != 5 || tune.BirthChance != 0.25 || tune.Spawn != SpawnScatter {
		t.Fatalf("overrides not applied: %+v", tune)
	}
	if !reflect.DeepEqual(tune.SpawnKinds, []Kind{KindGlow, KindMatrix}) {
		t.Fatalf("spawn kinds = %v", tune.SpawnKinds)
	}
	if tune.FallbackKind != KindAmber || tune.Delta(8) != -1 {
		t.Fatal("kind and slice overrides not applied")
	}
}

func TestApplyLeavesTuningOnError(t *testing.T) {
	tune := Classic()
	err := tune.Apply(map[string]string{"cell_size": "4", "colour": "red"})
	if !errors.Is(err, ErrUnknownParameter) {
		t.Fatalf("unknown key error = %v", err)
	}
	if tune.CellSize != 8 {
		t.Fatal("failed Apply must not modify the tuning")
	}

	err = tune.Apply(map[string]string{"birth_min": "6", "birth_max": "5"})
	if !errors.Is(err, ErrInvalidTuning) {
		t.Fatalf("invalid band error = %v", err)
	}
	if tune.BirthMin != 3 {
		t.Fatal("invalid Apply must not modify the tuning")
	}

	if err := tune.Apply(map[string]string{"jitter": "lots"}); err == nil {
		t.Fatal("unparsable value should fail")
	}
}

func TestParseOverrides(t *testing.T) {
	got, err := ParseOverrides([]string{"cell_size=6", " jitter =0.1", "spawn_kinds=moss,amber"})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"cell_size": "6", "jitter": "0.1", "spawn_kinds": "moss,amber"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseOverrides = %v", got)
	}
	if _, err := ParseOverrides([]string{"cell_size"}); err == nil {
		t.Fatal("missing '=' should fail")
	}
	if _, err := ParseOverrides([]string{"=3"}); err == nil {
		t.Fatal("empty key should fail")
	}
}

func TestParameters(t *testing.T) {
	tune := Meadow()
	snap := tune.Parameters()
	if len(snap.Groups) != 6 || snap.Groups[0].Name != "Grid" {
		t.Fatalf("groups = %+v", snap.Groups)
	}
	p, ok := snap.Lookup("cell_size")
	if !ok || p.Value != "7" {
		t.Fatalf("cell_size parameter = %+v", p)
	}
	p, ok = snap.Lookup("spawn_kinds")
	if !ok || p.Value != "moss,moss,amber,soil" {
		t.Fatalf("spawn_kinds parameter = %+v", p)
	}
}

func TestParseTuningInheritsPreset(t *testing.T) {
	tune, err := ParseTuning([]byte("name: glow\ncell_size: 10\nspawn_kinds: [terminal]\n"))
	if err != nil {
		t.Fatal(err)
	}
	glow := Glow()
	if tune.CellSize != 10 || tune.Seeding != SeedDensity || tune.Density != glow.Density {
		t.Fatalf("tuning did not inherit glow: %+v", tune)
	}
	if !reflect.DeepEqual(tune.SpawnKinds, []Kind{KindTerminal}) {
		t.Fatalf("spawn kinds = %v", tune.SpawnKinds)
	}

	tune, err = ParseTuning([]byte("birth_chance: 0.5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if tune.Name != "classic" || tune.BirthChance != 0.5 {
		t.Fatalf("nameless tuning should extend classic: %+v", tune)
	}

	if _, err := ParseTuning([]byte("fallback_kind: lava\n")); err == nil {
		t.Fatal("unknown kind should fail")
	}
	if _, err := ParseTuning([]byte("cell_size: 1\n")); !errors.Is(err, ErrInvalidTuning) {
		t.Fatalf("invalid tuning error = %v", err)
	}
}

func TestSaveAndLoadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meadow.yaml")
	want := Meadow()
	want.Jitter = 0.07
	if err := SaveTuning(path, want); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "fallback_kind: moss") {
		t.Fatalf("kinds should be written by name:\n%s", data)
	}
	got, err := LoadTuning(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file should fail")
	}
}
