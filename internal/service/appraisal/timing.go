package appraisal

import (
	"fmt"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/appraisal"
)

// TimingResolver holds the per-period timing configuration of one
// in-progress cycle. Selection changes are applied as a merge patch
// keyed by stable period id: newly selected ids get defaults, ids still
// selected keep their current values, and deselected ids leave the
// active set but their edits stay cached for the rest of the session.
// Toggling a period off and back on therefore restores the values
// entered before, right up until submission.
type TimingResolver struct {
	configs  map[string]appraisal.TimingConfig
	selected map[string]struct{}
	global   appraisal.TimingConfig
}

func NewTimingResolver() *TimingResolver {
	return &TimingResolver{
		configs:  make(map[string]appraisal.TimingConfig),
		selected: make(map[string]struct{}),
		global:   appraisal.DefaultTimingConfig(),
	}
}

// ApplySelection patches the active set against the new selection. Ids
// seen for the first time this session get the default config; ids that
// carry a cached edit from an earlier selection get that edit back.
func (r *TimingResolver) ApplySelection(selectedIDs []string) {
	r.selected = make(map[string]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		r.selected[id] = struct{}{}
		if _, ok := r.configs[id]; !ok {
			r.configs[id] = appraisal.DefaultTimingConfig()
		}
	}
}

// Set records a user edit for a selected period.
func (r *TimingResolver) Set(periodID string, cfg appraisal.TimingConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, ok := r.selected[periodID]; !ok {
		return fmt.Errorf("period %s is not selected", periodID)
	}
	r.configs[periodID] = cfg
	return nil
}

// SetGlobal records a user edit of the global fallback config.
func (r *TimingResolver) SetGlobal(cfg appraisal.TimingConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	r.global = cfg
	return nil
}

// Get returns the config for a period in the active selection.
func (r *TimingResolver) Get(periodID string) (appraisal.TimingConfig, bool) {
	if _, ok := r.selected[periodID]; !ok {
		return appraisal.TimingConfig{}, false
	}
	return r.configs[periodID], true
}

// ResolveGlobal returns the single fallback config used only when no
// calendar is selected.
func (r *TimingResolver) ResolveGlobal() appraisal.TimingConfig {
	return r.global
}

// Snapshot returns a copy of the configs for the active selection only,
// keyed by period id. The copy is safe to hand to the schedule computer
// while the resolver keeps mutating.
func (r *TimingResolver) Snapshot() map[string]appraisal.TimingConfig {
	out := make(map[string]appraisal.TimingConfig, len(r.selected))
	for id := range r.selected {
		out[id] = r.configs[id]
	}
	return out
}
