package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshRooms rebuilds the table columns/rows from the loaded plan's
// room metadata.
func (m *Model) refreshRooms() {
	if !m.hasDoc || len(m.doc.Rooms) == 0 {
		// Do not touch table internals here to avoid re-render during SetColumns
		m.showRooms = false
		m.status = "no room metadata in current plan"
		return
	}
	pal := m.builder.Palette()
	tcols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 18},
		{Title: "Type", Width: 14},
		{Title: "Dimensions", Width: 14},
		{Title: "Area", Width: 10},
		{Title: "Color", Width: 9},
	}
	trows := make([]table.Row, 0, len(m.doc.Rooms))
	for i, r := range m.doc.Rooms {
		trows = append(trows, table.Row{
			fmt.Sprintf("%d", i+1),
			r.Name,
			r.Type,
			fmt.Sprintf("%.2f × %.2f", r.Dimensions[0], r.Dimensions[1]),
			fmt.Sprintf("%.2f", r.Area),
			pal.Resolve(r.Type).Hex(),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}
