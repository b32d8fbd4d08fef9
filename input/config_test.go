package input_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/raybox/grid"
	"github.com/katalvlaran/raybox/input"
)

func TestReadConfig(t *testing.T) {
	src := "# board\n" +
		"3\n" +
		"\n" +
		"2 2\n" +
		"  # inline comment line\n" +
		"1 3 10\n"
	cfg, err := input.ReadConfig(strings.NewReader(src), "cfg.txt")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Size)
	assert.Equal(t, []input.Placement{
		{Row: 2, Column: 2, Strength: 0, Line: 4},
		{Row: 1, Column: 3, Strength: 10, Line: 6},
	}, cfg.Placements)
}

func TestReadConfig_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		line string
	}{
		{"Empty", "# nothing\n\n", input.ErrEmptyConfig, ""},
		{"BadSize", "x\n", input.ErrMalformedLine, "cfg:1:"},
		{"ZeroSize", "0\n", grid.ErrInvalidSize, "cfg:1:"},
		{"TooFewFields", "3\n1\n", input.ErrMalformedLine, "cfg:2:"},
		{"TooManyFields", "3\n1 1 1 1\n", input.ErrMalformedLine, "cfg:2:"},
		{"NotInteger", "3\n1 a\n", input.ErrMalformedLine, "cfg:2:"},
		{"RowZero", "3\n\n0 1\n", grid.ErrInvalidCoordinate, "cfg:3:"},
		{"ColumnTooLarge", "3\n1 4\n", grid.ErrInvalidCoordinate, "cfg:2:"},
		{"NegativeStrength", "3\n1 1 -1\n", grid.ErrInvalidStrength, "cfg:2:"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := input.ReadConfig(strings.NewReader(tc.src), "cfg")
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestConfig_Build(t *testing.T) {
	cfg, err := input.ReadConfig(strings.NewReader("2\n1 1 10\n"), "cfg")
	require.NoError(t, err)

	g, err := cfg.Build()
	require.NoError(t, err)
	assert.True(t, g.Indexed())
	assert.Equal(t, 2, g.Len())

	m, ok := g.Mirror(0, 0)
	require.True(t, ok)
	assert.Equal(t, 10, m.Strength)
}

func TestConfig_BuildDuplicate(t *testing.T) {
	cfg, err := input.ReadConfig(strings.NewReader("2\n1 1 10\n1 1 10\n"), "cfg")
	require.NoError(t, err)

	_, err = cfg.Build(grid.WithMaxSteps(3))
	assert.ErrorIs(t, err, grid.ErrDuplicateMirror)
	assert.Contains(t, err.Error(), "line 3")
}

func TestDecodeJSONConfig(t *testing.T) {
	cfg, err := input.DecodeJSONConfig([]byte(`{"size":3,"mirrors":[{"row":2,"column":2},{"row":1,"column":1,"strength":4}]}`), "cfg.json")
	require.NoError(t, err)
	assert.Equal(t, input.Config{
		Size: 3,
		Placements: []input.Placement{
			{Row: 2, Column: 2},
			{Row: 1, Column: 1, Strength: 4},
		},
	}, cfg)

	_, err = input.DecodeJSONConfig([]byte(`{"size":0}`), "cfg.json")
	assert.ErrorIs(t, err, grid.ErrInvalidSize)

	_, err = input.DecodeJSONConfig([]byte(`{"size":2,"mirrors":[{"row":3,"column":1}]}`), "cfg.json")
	assert.ErrorIs(t, err, grid.ErrInvalidCoordinate)
	assert.Contains(t, err.Error(), "mirrors[0]")

	_, err = input.DecodeJSONConfig([]byte(`{"size":`), "cfg.json")
	assert.ErrorIs(t, err, input.ErrMalformedLine)
}

func TestLoadConfigFiles(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "config.txt")
	js := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(txt, []byte("4\n2 2 1\n"), 0o600))
	require.NoError(t, os.WriteFile(js, []byte(`{"size":4,"mirrors":[{"row":2,"column":2,"strength":1}]}`), 0o600))

	fromText, err := input.LoadConfig(txt)
	require.NoError(t, err)
	fromJSON, err := input.LoadJSONConfig(js)
	require.NoError(t, err)

	assert.Equal(t, fromText.Size, fromJSON.Size)
	require.Len(t, fromText.Placements, 1)
	require.Len(t, fromJSON.Placements, 1)
	fromText.Placements[0].Line = 0
	assert.Equal(t, fromText.Placements, fromJSON.Placements)

	_, err = input.LoadConfig(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
