package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"planforge/internal/geom"
	"planforge/internal/plan"
	"planforge/internal/scene"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// Engine + loaded plan
	builder    *scene.Builder
	doc        plan.Document
	hasDoc     bool
	footprints []geom.Ring
	bbox       geom.BBox

	// paste mode (floor-plan JSON)
	pasteMode bool
	ta        textarea.Model

	// info popup (plan stats or room summary)
	popup string

	// hover state
	hoverHasXY bool
	hoverX     float64
	hoverY     float64

	// rooms table
	showRooms bool
	tbl       table.Model
}

func New() Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "planforge ready",
	}
	m.builder, _ = scene.NewBuilder(scene.DefaultConfig())
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Floor Plans"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = `Paste floor-plan JSON here ({"walls": [[[x1,y1],[x2,y2]], ...]}). Press Enter to load; Esc to cancel.`
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// rooms table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a floor-plan file at launch.
func NewWithPath(path string) Model {
	m := New()
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
