package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"sweep.hcl"}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	require.Equal(t, "sweep.hcl", cfg.SweepPath)
	require.Zero(t, cfg.Workers)
	require.False(t, cfg.Graph)
	require.Empty(t, cfg.OutputPath)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestParse_AllFlags(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, exit, err := Parse([]string{
		"-workers", "8",
		"-graph",
		"-o", "result.json",
		"-log-format", "json",
		"-log-level", "debug",
		"my-sweep.hcl",
	}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	require.Equal(t, "my-sweep.hcl", cfg.SweepPath)
	require.Equal(t, 8, cfg.Workers)
	require.True(t, cfg.Graph)
	require.Equal(t, "result.json", cfg.OutputPath)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, exit, err := Parse(nil, &out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
	}{
		{name: "two positional args", args: []string{"a.hcl", "b.hcl"}},
		{name: "bad log format", args: []string{"-log-format", "xml", "a.hcl"}},
		{name: "bad log level", args: []string{"-log-level", "loud", "a.hcl"}},
		{name: "unknown flag", args: []string{"-frobnicate", "a.hcl"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			_, _, err := Parse(tc.args, &out)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
		})
	}
}
