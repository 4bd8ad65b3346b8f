package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"planforge/internal/plan"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; will be refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				raw := strings.TrimSpace(m.ta.Value())
				if raw == "" {
					m.status = "paste: empty"
					return m, nil
				}
				doc, err := plan.Parse([]byte(raw))
				if err != nil {
					m.status = "plan error: " + err.Error()
					return m, nil
				}
				m.selPath = ""
				m.setDocument(doc, "<pasted>")
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			m.popup = ""
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "r":
			m.showRooms = !m.showRooms
			if m.showRooms {
				m.refreshRooms()
			}
		case "s":
			if m.hasDoc {
				m.popup = m.doc.Summary()
				m.status = "room summary"
			} else {
				m.status = "no plan loaded"
			}
		case "d":
			m.selPath = ""
			m.setDocument(plan.Sample(), "sample plan")
		case "x":
			m.exportGLB()
		case "i":
			if m.hasDoc {
				name := m.doc.Name
				if name == "" {
					name = "<unnamed>"
				}
				cfg := m.builder.Config()
				meta := []string{
					fmt.Sprintf("plan: %s", name),
					fmt.Sprintf("path: %s", m.selPath),
					fmt.Sprintf("walls: %d  rooms: %d", len(m.doc.Walls), len(m.doc.Rooms)),
					fmt.Sprintf("bounds: [%.2f, %.2f, %.2f, %.2f]", m.bbox.MinX, m.bbox.MinY, m.bbox.MaxX, m.bbox.MaxY),
					fmt.Sprintf("thickness: %g  height: %g", cfg.WallThickness, cfg.WallHeight),
					fmt.Sprintf("floor offset: %g  margin: %g", cfg.FloorOffset, cfg.FloorMargin),
				}
				m.popup = strings.Join(meta, "\n")
				m.status = "inspect popup"
			} else {
				m.popup = "no plan loaded"
				m.status = m.popup
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
					m.status = "loaded " + filepath.Base(it.path) + "  " + m.status
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		// track hover over the map area; layout must match View
		sidebarWidth := 0
		if m.showSidebar {
			sidebarWidth = 28
		}
		headerHeight := 1
		footerHeight := 2
		contentHeight := m.height - headerHeight - footerHeight
		if contentHeight < 4 {
			contentHeight = 4
		}
		contentWidth := max(10, m.width)
		mapWidth := contentWidth - sidebarWidth - 1
		if mapWidth < 10 {
			mapWidth = 10
		}
		mapHeight := contentHeight
		mapOriginX := sidebarWidth
		if m.showSidebar {
			mapOriginX++
		}
		mapOriginY := headerHeight
		cx, cy := msg.X, msg.Y
		if cx >= mapOriginX && cx < mapOriginX+mapWidth && cy >= mapOriginY && cy < mapOriginY+mapHeight {
			if x, y, ok := m.cellToXY(cx-mapOriginX, cy-mapOriginY, mapWidth, mapHeight); ok {
				m.hoverHasXY = true
				m.hoverX = x
				m.hoverY = y
			} else {
				m.hoverHasXY = false
			}
		} else {
			m.hoverHasXY = false
		}
	}
	if m.showRooms {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}
