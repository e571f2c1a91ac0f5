// Package sweep runs headless gardens in bulk: one run for population
// statistics, or a parameter grid across a worker pool.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"

	"pixel-garden/internal/garden"
)

// Scenario is one headless run.
type Scenario struct {
	Tuning    garden.Tuning
	Overrides map[string]string
	Seed      int64
	Cols      int
	Rows      int
	Steps     int
}

// Label describes the scenario's overrides in key order.
func (s Scenario) Label() string {
	if len(s.Overrides) == 0 {
		return s.Tuning.Name
	}
	keys := make([]string, 0, len(s.Overrides))
	for k := range s.Overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + s.Overrides[k]
	}
	return s.Tuning.Name + " " + strings.Join(parts, " ")
}

// Result summarises a run.
type Result struct {
	Scenario Scenario
	// History holds the population after seeding and after every step.
	History []int
	// Extinctions counts steps that ended with an empty grid.
	Extinctions int
	Peak        int
	Trough      int
	Final       int
	Census      map[garden.Kind]int
	Err         error
}

// Survived reports whether the grid was never left empty.
func (r Result) Survived() bool { return r.Err == nil && r.Extinctions == 0 }

// Simulate runs one scenario to completion.
func Simulate(ctx context.Context, s Scenario) Result {
	res := Result{Scenario: s}
	t := s.Tuning.Clone()
	if err := t.Apply(s.Overrides); err != nil {
		res.Err = err
		return res
	}
	world := garden.NewWorld(s.Cols, s.Rows, t, s.Seed)
	pop := world.Population()
	steps := max(s.Steps, 0)
	res.History = make([]int, 0, steps+1)
	res.History = append(res.History, pop)
	res.Peak, res.Trough = pop, pop
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			res.Err = err
			break
		}
		world.Step()
		pop = world.Population()
		res.History = append(res.History, pop)
		if pop == 0 {
			res.Extinctions++
		}
		res.Peak = max(res.Peak, pop)
		res.Trough = min(res.Trough, pop)
	}
	res.Final = pop
	res.Census = world.Census()
	return res
}

// Grid expands every combination of the varied values on top of base.
// Keys are iterated in sorted order so the output is deterministic.
func Grid(base map[string]string, vary map[string][]string) []map[string]string {
	keys := make([]string, 0, len(vary))
	for k := range vary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	combos := []map[string]string{clone(base)}
	for _, k := range keys {
		var next []map[string]string
		for _, combo := range combos {
			for _, v := range vary[k] {
				c := clone(combo)
				c[k] = v
				next = append(next, c)
			}
		}
		if len(next) > 0 {
			combos = next
		}
	}
	return combos
}

func clone(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ParseVary parses key=v1,v2,... pairs.
func ParseVary(pairs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(pairs))
	for _, kv := range pairs {
		key, values, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" || values == "" {
			return nil, fmt.Errorf("vary %q is not in key=v1,v2 form", kv)
		}
		for _, v := range strings.Split(values, ",") {
			out[key] = append(out[key], strings.TrimSpace(v))
		}
	}
	return out, nil
}

// Run simulates every scenario across workers goroutines. Results come back
// in scenario order.
func Run(ctx context.Context, scenarios []Scenario, workers int) []Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(scenarios))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = Simulate(ctx, scenarios[idx])
			}
		}()
	}
	for i := range scenarios {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

// Rank orders results: survivors first, then by final population.
func Rank(results []Result) []Result {
	out := append([]Result(nil), results...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Survived() != b.Survived() {
			return a.Survived()
		}
		if a.Extinctions != b.Extinctions {
			return a.Extinctions < b.Extinctions
		}
		return a.Final > b.Final
	})
	return out
}
