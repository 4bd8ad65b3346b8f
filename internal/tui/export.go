package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"planforge/internal/glb"
)

// convertAndWrite builds the 3D scene from the loaded plan and writes it
// to out as GLB, reporting the outcome on the status line.
func (m *Model) convertAndWrite(out string) {
	s, err := m.builder.Build(m.doc)
	if err != nil {
		m.status = "convert error: " + err.Error()
		return
	}
	if err := glb.Write(s, out); err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	var size int64
	if fi, err := os.Stat(out); err == nil {
		size = fi.Size()
	}
	m.status = fmt.Sprintf("exported %s  geometries=%d bytes=%d", filepath.Base(out), s.Len(), size)
}
