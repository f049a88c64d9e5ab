package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/brimdata/zenum/cmd/zenum/root"
	zerr "github.com/brimdata/zenum/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const planets = `
Planets:
  constants:
    MERCURY: {mass: 3.303e+23, radius: 2.4397e6}
    VENUS: {mass: 4.869e+24, radius: 6.0518e6}
    EARTH: {mass: 5.976e+24, radius: 6.37814e6}
  methods: [surfaceGravity]
Colors: [RED, GREEN, BLUE]
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(planets), 0644))
	var buf bytes.Buffer
	root.Output = &buf
	defer func() { root.Output = os.Stdout }()
	args = append([]string{"-log.path", "/dev/null"}, args...)
	err := root.Zenum.ExecRoot(append(args, path))
	return buf.String(), err
}

func TestShow(t *testing.T) {
	out, err := run(t, "show")
	require.NoError(t, err)
	assert.Equal(t, "Colors { RED, GREEN, BLUE }\nPlanets { MERCURY, VENUS, EARTH }\n", out)
}

func TestShowCount(t *testing.T) {
	out, err := run(t, "show", "-count")
	require.NoError(t, err)
	assert.Equal(t, "Colors { RED, GREEN, BLUE } (3 constants)\nPlanets { MERCURY, VENUS, EARTH } (3 constants)\n2 types\n", out)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "-version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version: ")
}

func TestValues(t *testing.T) {
	out, err := run(t, "values", "-type", "Planets")
	require.NoError(t, err)
	assert.Equal(t, "0 MERCURY\n1 VENUS\n2 EARTH\n", out)

	_, err = run(t, "values", "-type", "Moons")
	assert.True(t, zerr.Is(err, zerr.NotFound))

	_, err = run(t, "values")
	assert.EqualError(t, err, "values: -type is required")
}

func TestLookup(t *testing.T) {
	out, err := run(t, "lookup", "-type", "Planets", "-name", "VENUS")
	require.NoError(t, err)
	assert.Equal(t, "Planets.VENUS ordinal=1\n  mass: 4.869e+24\n  radius: 6.0518e+06\n  methods: [surfaceGravity]\n", out)

	_, err = run(t, "lookup", "-type", "Planets", "-name", "PLUTO")
	assert.EqualError(t, err, "unknown constant: Planets does not have a constant with name PLUTO")

	_, err = run(t, "lookup", "-type", "Planets", "-name", "VENU")
	assert.EqualError(t, err, "unknown constant: Planets does not have a constant with name VENU (did you mean VENUS?)")
	assert.True(t, zerr.Is(err, zerr.UnknownConstant))
}
