package appraisal

import (
	"testing"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/domain/appraisal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimingResolver_NewSelectionGetsDefaults(t *testing.T) {
	t.Parallel()

	r := NewTimingResolver()
	r.ApplySelection([]string{"p1", "p2"})

	cfg, ok := r.Get("p1")
	require.True(t, ok)
	assert.Equal(t, appraisal.DefaultTimingConfig(), cfg)

	_, ok = r.Get("p3")
	assert.False(t, ok)
}

func TestTimingResolver_EditSurvivesDeselectReselect(t *testing.T) {
	t.Parallel()

	r := NewTimingResolver()
	r.ApplySelection([]string{"p1", "p2"})

	edited := appraisal.TimingConfig{DaysToInitiate: 7, DaysToClose: 45, NumberOfReminders: 5}
	require.NoError(t, r.Set("p1", edited))

	// Deselect p1, keep p2, then bring p1 back.
	r.ApplySelection([]string{"p2"})
	_, ok := r.Get("p1")
	require.False(t, ok)

	r.ApplySelection([]string{"p1", "p2"})
	cfg, ok := r.Get("p1")
	require.True(t, ok)
	assert.Equal(t, edited, cfg, "reselecting must restore the earlier edits")
}

func TestTimingResolver_EditOnStillSelectedPeriodIsKept(t *testing.T) {
	t.Parallel()

	r := NewTimingResolver()
	r.ApplySelection([]string{"p1", "p2"})

	edited := appraisal.TimingConfig{DaysToInitiate: 7, DaysToClose: 45, NumberOfReminders: 5}
	require.NoError(t, r.Set("p2", edited))

	// Reapplying a selection that still contains p2 must not reset it.
	r.ApplySelection([]string{"p2", "p3"})
	cfg, ok := r.Get("p2")
	require.True(t, ok)
	assert.Equal(t, edited, cfg)

	cfg, ok = r.Get("p3")
	require.True(t, ok)
	assert.Equal(t, appraisal.DefaultTimingConfig(), cfg)
}

func TestTimingResolver_SetRejectsUnselectedPeriod(t *testing.T) {
	t.Parallel()

	r := NewTimingResolver()
	r.ApplySelection([]string{"p1"})

	err := r.Set("p9", appraisal.DefaultTimingConfig())
	assert.Error(t, err)
}

func TestTimingResolver_SetRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	r := NewTimingResolver()
	r.ApplySelection([]string{"p1"})

	err := r.Set("p1", appraisal.TimingConfig{DaysToInitiate: -1, DaysToClose: 30, NumberOfReminders: 3})
	assert.ErrorIs(t, err, appraisal.ErrInvalidTimingConfig)

	err = r.Set("p1", appraisal.TimingConfig{DaysToInitiate: 0, DaysToClose: 0, NumberOfReminders: 3})
	assert.ErrorIs(t, err, appraisal.ErrInvalidTimingConfig)

	err = r.Set("p1", appraisal.TimingConfig{DaysToInitiate: 0, DaysToClose: 30, NumberOfReminders: 11})
	assert.ErrorIs(t, err, appraisal.ErrInvalidTimingConfig)
}

func TestTimingResolver_GlobalFallback(t *testing.T) {
	t.Parallel()

	r := NewTimingResolver()
	assert.Equal(t, appraisal.DefaultTimingConfig(), r.ResolveGlobal())

	edited := appraisal.TimingConfig{DaysToInitiate: 3, DaysToClose: 14, NumberOfReminders: 2}
	require.NoError(t, r.SetGlobal(edited))
	assert.Equal(t, edited, r.ResolveGlobal())

	err := r.SetGlobal(appraisal.TimingConfig{DaysToInitiate: 0, DaysToClose: 30, NumberOfReminders: 0})
	assert.ErrorIs(t, err, appraisal.ErrInvalidTimingConfig)
	assert.Equal(t, edited, r.ResolveGlobal(), "rejected edit must not stick")
}

func TestTimingResolver_SnapshotIsDetached(t *testing.T) {
	t.Parallel()

	r := NewTimingResolver()
	r.ApplySelection([]string{"p1"})

	snap := r.Snapshot()
	require.Len(t, snap, 1)

	r.ApplySelection(nil)
	assert.Len(t, snap, 1, "snapshot must not track later selection changes")
	assert.Empty(t, r.Snapshot())
}
