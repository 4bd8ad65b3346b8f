package tui

import "strings"

// cellToXY converts a map cell coordinate back to plan coordinates using
// bbox, zoom, and pan.
func (m Model) cellToXY(cx, cy, w, h int) (float64, float64, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	x := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	y := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return x, y, true
}

// renderPlan draws the wall footprints (filled, with crisp braille
// edges) into a w x h cell viewport.
func (m Model) renderPlan(w, h int) string {
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		lines[y] = strings.Repeat(" ", w)
	}
	br := newBrailleBuf(w, h)

	for _, fp := range m.footprints {
		ring := make([][2]int, 0, len(fp))
		for _, p := range fp {
			mx, my, ok := m.screenXYMicro(p.X, p.Y, w, h)
			if !ok {
				continue
			}
			ring = append(ring, [2]int{mx, my})
		}
		if len(ring) < 3 {
			continue
		}
		br.fillRingMicro(ring)
		br.outlineRingMicro(ring)
	}

	// Composite braille overlay onto base lines
	braLines := br.toLines()
	for y := 0; y < h && y < len(braLines); y++ {
		if len(braLines[y]) == 0 {
			continue
		}
		base := []rune(lines[y])
		over := []rune(braLines[y])
		for x := 0; x < len(base) && x < len(over); x++ {
			if over[x] != ' ' {
				base[x] = over[x]
			}
		}
		lines[y] = string(base)
	}
	return strings.Join(lines, "\n")
}

// screenXYMicro maps plan coords into a 2x4 microgrid per cell for
// braille rendering.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	nx := (x - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (y - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}
