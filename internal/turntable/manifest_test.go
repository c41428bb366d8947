package turntable

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	results := []Result{
		{Frame: 0, Path: "frames/frame_000.webp", Success: true},
		{Frame: 1, Path: "frames/frame_001.webp", Error: "encode failed"},
		{Frame: 2, Path: "frames/frame_002.webp", Success: true},
	}
	require.NoError(t, WriteManifest(path, 64, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, 64, m.Size)
	assert.Equal(t, []string{"frame_000.webp", "frame_002.webp"}, m.Frames)
}
