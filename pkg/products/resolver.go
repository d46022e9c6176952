package products

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// TimeWindow is the observation window a resolution runs against. A
// zero-length window (Start == End) is legal.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Validate rejects unset or inverted windows. It runs before any catalog
// work so a bad boundary fails fast instead of surfacing as a confusing
// empty coverage.
func (w TimeWindow) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return errors.New("time window boundaries must both be set")
	}
	if w.Start.After(w.End) {
		return fmt.Errorf("time window start %s is after end %s",
			w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
	}
	return nil
}

// ErrNoCoverage reports that no (center, project, solution) combination
// covers the requested window. This is a business outcome, not a
// malfunction: callers may retry with a wider window or a smaller
// category set.
var ErrNoCoverage = errors.New("no valid product combination for the requested window")

// Coverage maps each analysis center to its covering combinations, sorted
// by project then solution type.
type Coverage map[string][]Combination

// Centers returns the analysis centers with coverage, sorted.
func (c Coverage) Centers() []string {
	centers := make([]string, 0, len(c))
	for center := range c {
		centers = append(centers, center)
	}
	sort.Strings(centers)
	return centers
}

// ProjectTypes returns the distinct covering project types for one
// center, in combination order.
func (c Coverage) ProjectTypes(center string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, combo := range c[center] {
		if _, ok := seen[combo.ProjectType]; ok {
			continue
		}
		seen[combo.ProjectType] = struct{}{}
		out = append(out, combo.ProjectType)
	}
	return out
}

// SolutionTypes returns the distinct covering solution types for one
// center, in combination order.
func (c Coverage) SolutionTypes(center string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, combo := range c[center] {
		if _, ok := seen[combo.SolutionType]; ok {
			continue
		}
		seen[combo.SolutionType] = struct{}{}
		out = append(out, combo.SolutionType)
	}
	return out
}

// Contains reports whether the given (center, project, solution) tuple is
// covered. Used to validate user-supplied tuples.
func (c Coverage) Contains(center, project, solution string) bool {
	for _, combo := range c[center] {
		if combo.ProjectType == project && combo.SolutionType == solution {
			return true
		}
	}
	return false
}

// Resolve determines which (center, project, solution) combinations have
// complete, gap-free coverage of the window given the required file
// categories. It runs in two passes because coverage has two independent
// failure modes and conflating them would hide which one occurred.
//
// The upper-bound pass keeps every combination with at least one record
// whose end validity plus duration reaches the window end. That is a
// necessary condition only: the product line exists far enough forward.
//
// The lower-bound pass walks each candidate's records settled at or
// before the window start, grouped by distinct end-validity epoch. Every
// epoch must carry all required categories; a single incomplete epoch
// disqualifies the whole combination no matter how many other epochs are
// complete. A candidate with zero settled epochs passes vacuously: a
// brand-new product line has no history to disqualify it. That edge case
// is deliberate and pinned by tests.
//
// When both passes leave nothing, Resolve returns ErrNoCoverage rather
// than an empty map, so "found nothing" is distinguishable from "nothing
// to check".
func Resolve(catalog *Catalog, window TimeWindow, required []string) (Coverage, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	// Upper-bound pass: forward reach to the window end.
	candidates := make(map[Identity]struct{})
	for _, r := range catalog.CoveringOrPast(window.End) {
		candidates[r.Identity()] = struct{}{}
	}

	// Lower-bound pass: per-epoch category completeness up to the start.
	settled := make(map[Identity]map[time.Time]map[string]struct{})
	for _, r := range catalog.SettledBy(window.Start) {
		id := r.Identity()
		if _, ok := candidates[id]; !ok {
			continue
		}
		epochs := settled[id]
		if epochs == nil {
			epochs = make(map[time.Time]map[string]struct{})
			settled[id] = epochs
		}
		categories := epochs[r.EndValidity]
		if categories == nil {
			categories = make(map[string]struct{})
			epochs[r.EndValidity] = categories
		}
		categories[r.FileCategory] = struct{}{}
	}

	coverage := make(Coverage)
	for id := range candidates {
		if !epochsComplete(settled[id], required) {
			continue
		}
		coverage[id.AnalysisCenter] = append(coverage[id.AnalysisCenter], Combination{
			ProjectType:  id.ProjectType,
			SolutionType: id.SolutionType,
		})
	}
	if len(coverage) == 0 {
		return nil, ErrNoCoverage
	}

	for _, combos := range coverage {
		sort.Slice(combos, func(i, j int) bool {
			if combos[i].ProjectType != combos[j].ProjectType {
				return combos[i].ProjectType < combos[j].ProjectType
			}
			return combos[i].SolutionType < combos[j].SolutionType
		})
	}
	return coverage, nil
}

// epochsComplete reports whether every settled epoch carries all required
// categories. An empty epoch set is complete by definition.
func epochsComplete(epochs map[time.Time]map[string]struct{}, required []string) bool {
	for _, categories := range epochs {
		for _, want := range required {
			if _, ok := categories[want]; !ok {
				return false
			}
		}
	}
	return true
}
