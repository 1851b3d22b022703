package hclgrid

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jkingslake/gridsweep/grid"
)

func writeSweepFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweep.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFile_Success(t *testing.T) {
	t.Parallel()

	path := writeSweepFile(t, `
sweep "demo" {
  command = "./evaluate.sh"
  args    = ["--fast"]
  workers = 4

  param "alpha" { values = [0.1, 0.2] }
  param "beta"  { values = [1.0, 2.0, 3.0] }
}
`)

	sw, err := NewLoader().LoadFile(context.Background(), path)
	require.NoError(t, err)

	require.Equal(t, "demo", sw.Name)
	require.Equal(t, "./evaluate.sh", sw.Command)
	require.Equal(t, []string{"--fast"}, sw.Args)
	require.Equal(t, 4, sw.Workers)

	// Param file order defines axis order.
	require.Equal(t, []string{"alpha", "beta"}, sw.Set.Names())
	require.Equal(t, []int{2, 3}, sw.Set.Shape())
	require.Equal(t, 6, sw.Set.Size())

	alpha := sw.Set.Params()[0]
	f, _ := alpha.Values[1].AsBigFloat().Float64()
	require.InDelta(t, 0.2, f, 1e-12)
}

func TestLoadFile_Defaults(t *testing.T) {
	t.Parallel()

	path := writeSweepFile(t, `
sweep "min" {
  command = "true"
  param "a" { values = ["x", "y"] }
}
`)

	sw, err := NewLoader().LoadFile(context.Background(), path)
	require.NoError(t, err)
	require.Zero(t, sw.Workers)
	require.Empty(t, sw.Args)
	require.Equal(t, "x", sw.Set.Params()[0].Values[0].AsString())
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		check    func(t *testing.T, err error)
	}{
		{
			name:     "no sweep block",
			contents: ``,
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, ErrNoSweep)
			},
		},
		{
			name: "two sweep blocks",
			contents: `
sweep "a" {
  command = "true"
  param "p" { values = [1] }
}
sweep "b" {
  command = "true"
  param "p" { values = [1] }
}
`,
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, ErrNoSweep)
			},
		},
		{
			name: "values not a list",
			contents: `
sweep "bad" {
  command = "true"
  param "p" { values = 42 }
}
`,
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, ErrNotIterable)
			},
		},
		{
			name: "empty values list",
			contents: `
sweep "bad" {
  command = "true"
  param "p" { values = [] }
}
`,
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, grid.ErrEmptyValues)
			},
		},
		{
			name: "duplicate param",
			contents: `
sweep "bad" {
  command = "true"
  param "p" { values = [1] }
  param "p" { values = [2] }
}
`,
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, grid.ErrDuplicateParam)
			},
		},
		{
			name:     "malformed hcl",
			contents: `sweep "broken" {`,
			check: func(t *testing.T, err error) {
				require.Error(t, err)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeSweepFile(t, tc.contents)
			_, err := NewLoader().LoadFile(context.Background(), path)
			tc.check(t, err)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().LoadFile(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
}
