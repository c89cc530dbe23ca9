package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.ValidatorFailEvery)
}

func TestLoad_EmptyPath(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "flowdemo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("httpAddr: \":18080\"\nrequestTimeout: 250ms\nvalidatorFailEvery: 2\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":18080", cfg.HTTPAddr)
	assert.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 2, cfg.ValidatorFailEvery)
	assert.Equal(t, Default().GRPCAddr, cfg.GRPCAddr)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_CollectsEveryProblem(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("httpAddr: \"\"\ndbPath: \"\"\nvalidatorFailEvery: 0\n"))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)

	_, err = Parse([]byte("httpAddr: [oops"))
	assert.ErrorContains(t, err, "parse config")
}
