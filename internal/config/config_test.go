package config

import (
	"flag"
	"log/slog"
	"testing"

	"gotest.tools/v3/assert"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NilError(t, Default().Validate())
}

func TestLimitsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Limits)
		errMsg string
	}{
		{"zero name length", func(l *Limits) { l.MaxNameLength = 0 }, "max name length must be positive, got 0"},
		{"zero table capacity", func(l *Limits) { l.InitialTableCapacity = 0 }, "initial table capacity must be positive, got 0"},
		{"zero column capacity", func(l *Limits) { l.InitialColumnCapacity = 0 }, "initial column capacity must be positive, got 0"},
		{"zero buckets", func(l *Limits) { l.IndexBuckets = 0 }, "index buckets must be positive, got 0"},
		{"unknown growth", func(l *Limits) { l.IndexGrowth = "sometimes" }, `invalid index growth: "sometimes" (must be 'fixed' or 'grow')`},
		{"zero load factor", func(l *Limits) { l.IndexMaxLoadFactor = 0 }, "index max load factor must be positive, got 0"},
		{"negative budget", func(l *Limits) { l.MemoryBudget = -1 }, "memory budget must not be negative, got -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLimits()
			tt.mutate(&l)
			assert.Error(t, l.Validate(), tt.errMsg)
		})
	}
}

func TestFixedGrowthIgnoresLoadFactor(t *testing.T) {
	l := DefaultLimits()
	l.IndexGrowth = GrowthFixed
	l.IndexMaxLoadFactor = 0
	assert.NilError(t, l.Validate())
}

func TestRegisterFlags(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)

	err := fs.Parse([]string{
		"-max-name-length", "16",
		"-initial-rows", "4",
		"-index-growth", "FIXED",
		"-memory-budget", "100",
		"-log-level", "debug",
	})
	assert.NilError(t, err)

	assert.Equal(t, cfg.Limits.MaxNameLength, 16)
	assert.Equal(t, cfg.Limits.InitialColumnCapacity, 4)
	assert.Equal(t, cfg.Limits.IndexGrowth, GrowthFixed)
	assert.Equal(t, cfg.Limits.MemoryBudget, 100)
	assert.Equal(t, cfg.Limits.InitialTableCapacity, DefaultLimits().InitialTableCapacity)
	assert.NilError(t, cfg.Validate())
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	assert.NilError(t, err)
	assert.Equal(t, level, slog.LevelWarn)

	_, err = ParseLevel("loud")
	assert.Error(t, err, `invalid log level: "loud"`)
}
