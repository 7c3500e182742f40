package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perf-analysis/bvhtraverse/internal/testutil"
)

func TestLoad_DefaultValues(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
log:
  level: info
`
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(configFile)
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, 100, cfg.BVH.MinChunk)
	assert.Equal(t, 0, cfg.BVH.ParallelismHint)
	assert.Equal(t, 1024, cfg.BVH.BlockSize)
}

func TestLoad_CustomValues(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
bvh:
  parallelism_hint: 4
  min_chunk: 256
  block_size: 4096
log:
  level: debug
  format: json
`
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.BVH.ParallelismHint)
	assert.Equal(t, 256, cfg.BVH.MinChunk)
	assert.Equal(t, 4096, cfg.BVH.BlockSize)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_InvalidMinChunk(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
bvh:
  min_chunk: 0
`
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	_, err = Load(configFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "min_chunk")
}

func TestValidate_NegativeParallelismHint(t *testing.T) {
	cfg := &Config{
		BVH: BVHConfig{
			MinChunk:        100,
			ParallelismHint: -1,
		},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parallelism_hint")
}

func TestValidate_NegativeBlockSize(t *testing.T) {
	cfg := &Config{
		BVH: BVHConfig{
			MinChunk:  100,
			BlockSize: -1,
		},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "block_size")
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	// Should not return error, use defaults
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, 100, cfg.BVH.MinChunk)
}

func TestLoadFromReader_UsesTestdataFixture(t *testing.T) {
	content := testutil.LoadFixtureString(t, "config.yaml")

	cfg, err := LoadFromReader("yaml", []byte(content))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.BVH.ParallelismHint)
	assert.Equal(t, 128, cfg.BVH.MinChunk)
	assert.Equal(t, 2048, cfg.BVH.BlockSize)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromReader(t *testing.T) {
	content := []byte(`
bvh:
  min_chunk: 50
  parallelism_hint: 2
log:
  level: warn
`)
	cfg, err := LoadFromReader("yaml", content)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.BVH.MinChunk)
	assert.Equal(t, 2, cfg.BVH.ParallelismHint)
	assert.Equal(t, "warn", cfg.Log.Level)
}
