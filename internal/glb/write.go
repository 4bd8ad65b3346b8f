package glb

import (
	"os"
	"path/filepath"

	"planforge/internal/scene"
)

// Write exports the scene and writes it to path all-or-nothing: the
// bytes go to a temporary file in the destination directory which is
// renamed over path only after a successful write, so a failure partway
// never leaves a truncated file at the final location.
func Write(s *scene.Scene, path string) error {
	data, err := Export(s)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".planforge-*.glb")
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &ExportError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &ExportError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return &ExportError{Path: path, Err: err}
	}
	return nil
}
