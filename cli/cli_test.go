package cli

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	saved := version
	defer func() { version = saved }()
	version = "v1.2.3"
	assert.Equal(t, "v1.2.3", Version())
	version = ""
	assert.NotEmpty(t, Version())
}

func TestFlags(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetFlags(fs)
	assert.False(t, f.ShowVersion())
	require.NoError(t, fs.Parse([]string{"-version"}))
	assert.True(t, f.ShowVersion())
}
