package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "render.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"mesh": "models/teapot.obj",
		"size": 512,
		"frames": 90,
		"distance": 4.5
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "models/teapot.obj", cfg.Mesh)
	assert.Equal(t, 512, cfg.Size)
	assert.Equal(t, 90, cfg.Frames)
	assert.InDelta(t, 4.5, cfg.Distance, 1e-6)
	assert.Zero(t, cfg.Workers, "unset fields stay zero until Resolve")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.json")

	_, err = Load(writeConfig(t, "{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, "frames", cfg.OutputDir)
	assert.Equal(t, 256, cfg.Size)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Equal(t, 60, cfg.Frames)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.InDelta(t, 20, cfg.Elevation, 1e-6)
	assert.Zero(t, cfg.Distance, "distance 0 means auto-fit")
}

func TestResolveFlagsWinOverFile(t *testing.T) {
	cfg := Config{
		Mesh:    "from-file.obj",
		Size:    512,
		Workers: 3,
	}
	cfg.Resolve(Flags{Mesh: "from-flag.obj", Size: 128})

	assert.Equal(t, "from-flag.obj", cfg.Mesh)
	assert.Equal(t, 128, cfg.Size)
	assert.Equal(t, 3, cfg.Workers, "file value survives when the flag is unset")
}
