package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Output", cfg.Output, "trace.vcd"},
		{"LogDir", cfg.LogDir, ""},
		{"Timescale", cfg.Timescale, ""},
		{"Atomic", cfg.Atomic, false},
		{"Trace", cfg.Trace, true},
		{"Workers", cfg.Workers, 1},
		{"StepsPerCycle", cfg.StepsPerCycle, uint(4)},
		{"Cycles", cfg.Cycles, 16},
		{"Bits", cfg.Bits, 8},
		{"Verbose", cfg.Verbose, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper(t)
	t.Setenv("HWTRACE_BITS", "12")
	t.Setenv("HWTRACE_TIMESCALE", "10ps")
	t.Setenv("HWTRACE_ATOMIC", "true")
	viper.SetEnvPrefix("HWTRACE")
	viper.AutomaticEnv()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Bits)
	assert.Equal(t, "10ps", cfg.Timescale)
	assert.True(t, cfg.Atomic)
}

func TestLoad_Explicit(t *testing.T) {
	resetViper(t)
	viper.Set("output", "out/counter.vcd")
	viper.Set("trace", false)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "out/counter.vcd", cfg.Output)
	assert.False(t, cfg.Trace)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key string
		val any
	}{
		{"bits", 0},
		{"bits", 65},
		{"cycles", -1},
		{"output", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			resetViper(t)
			viper.Set(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
