package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	for _, script := range []string{"counter.toml", "counter.yaml"} {
		t.Run(script, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "play.vcd")
			stdout, err := execute(t, "play", "-o", out, filepath.Join("..", "stimulus", "testdata", script))
			require.NoError(t, err)
			assert.Equal(t, out+": 2 signals, time 4\n", stdout)
			assertGolden(t, "play", readTrace(t, out))
		})
	}
}

func TestPlay_timescaleOverride(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "s.yaml")
	require.NoError(t, os.WriteFile(script, []byte("signals:\n  - {name: a, width: 1}\nsteps:\n  - {delay: 3, set: [{signal: a, value: 1}]}\n"), 0o644))
	out := filepath.Join(dir, "s.vcd")

	_, err := execute(t, "play", "-o", out, "--timescale", "10ps", script)
	require.NoError(t, err)
	assert.Equal(t, "$timescale 10ps $end\n$var wire 1 ! a $end\n$enddefinitions $end\n$dumpvars\n0!\n$end\n#0\n#3\n1!\n",
		string(readTrace(t, out)))
}

func TestPlay_errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("signals:\n  - {name: a, width: 1}\nsteps:\n  - set: [{signal: a, value: 2}]\n"), 0o644))

	tests := []struct {
		name string
		args []string
	}{
		{"no script", []string{"play"}},
		{"missing script", []string{"play", filepath.Join(dir, "missing.toml")}},
		{"bad extension", []string{"play", filepath.Join(dir, "x.json")}},
		{"out of range", []string{"play", "-o", filepath.Join(dir, "bad.vcd"), bad}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
