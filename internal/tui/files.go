package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"planforge/internal/geom"
	"planforge/internal/plan"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.ToLower(filepath.Ext(name)) == ".json" {
			items = append(items, fileItem{title: name, desc: ".json", path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no .json floor plans in current directory"
	}
}

// loadPath parses a floor-plan file and prepares the footprint preview.
func (m *Model) loadPath(p string) {
	doc, err := plan.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.setDocument(doc, filepath.Base(p))
}

// setDocument installs a parsed plan and derives the preview footprints
// from the engine's wall thickness.
func (m *Model) setDocument(doc plan.Document, label string) {
	cfg := m.builder.Config()
	fps := make([]geom.Ring, 0, len(doc.Walls))
	for i, w := range doc.Walls {
		fp, err := geom.Footprint(w.Start, w.End, cfg.WallThickness, i)
		if err != nil {
			m.status = "plan error: " + err.Error()
			return
		}
		fps = append(fps, fp)
	}
	m.doc = doc
	m.hasDoc = true
	m.footprints = fps
	if len(fps) > 0 {
		m.bbox = geom.Bounds(fps).Expand(cfg.FloorMargin)
	} else {
		m.bbox = geom.BBox{}
	}
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.status = fmt.Sprintf("loaded: %s  counts: walls=%d rooms=%d", label, len(doc.Walls), len(doc.Rooms))
	if m.showRooms {
		m.refreshRooms()
	}
}

// exportGLB runs the full conversion on the loaded plan and writes the
// result next to the source file (or plan.glb for pasted plans).
func (m *Model) exportGLB() {
	if !m.hasDoc {
		m.status = "nothing to export: load a plan first"
		return
	}
	out := "plan.glb"
	if m.selPath != "" {
		out = strings.TrimSuffix(m.selPath, filepath.Ext(m.selPath)) + ".glb"
	}
	m.convertAndWrite(out)
}
