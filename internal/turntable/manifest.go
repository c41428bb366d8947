package turntable

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Manifest describes a finished turntable render.
type Manifest struct {
	Size   int      `json:"size"`
	Frames []string `json:"frames"`
}

// WriteManifest writes a manifest listing the successfully rendered
// frame files in order.
func WriteManifest(path string, size int, results []Result) error {
	m := Manifest{Size: size, Frames: make([]string, 0, len(results))}
	for _, r := range results {
		if r.Success {
			m.Frames = append(m.Frames, filepath.Base(r.Path))
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
