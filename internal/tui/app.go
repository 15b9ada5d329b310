package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/paneldock/internal/config"
	"github.com/1broseidon/paneldock/internal/dialog"
	"github.com/1broseidon/paneldock/internal/placement"
)

// SimulatedHost is a dialog.Host with a synthetic display. The
// inspector runs against it so placement can be explored without a live
// X server; placement behaves exactly as it would on a real display.
type SimulatedHost struct {
	Display placement.Size
}

func (h *SimulatedHost) Attach(dialog.Handle) {}

func (h *SimulatedHost) DisplaySize() placement.Size {
	return h.Display
}

// panel is the in-memory dialog handle behind the inspector.
type panel struct {
	x, y      int
	width     int
	height    int
	refreshes int
	closed    bool
}

func (p *panel) Pos() (x, y int)           { return p.x, p.y }
func (p *panel) SetPos(x, y int)           { p.x, p.y = x, y }
func (p *panel) Size() (width, height int) { return p.width, p.height }
func (p *panel) Close()                    { p.closed = true }
func (p *panel) Refresh()                  { p.refreshes++ }

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// model is the root bubbletea model for the placement inspector.
type model struct {
	cfg      *config.Config
	registry *dialog.Registry
	display  placement.Size

	presets   []string // sorted preset names, cycled by "o"
	nextIndex int
	nextSeq   int
	openOrder []string // keys in open order, for "x"/"r"
	status    string

	width  int
	height int
}

func newModel(cfg *config.Config, registry *dialog.Registry, display placement.Size) model {
	return model{
		cfg:      cfg,
		registry: registry,
		display:  display,
		presets:  cfg.DialogNames(),
		status:   "press o to open a dialog",
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "o":
			m.openNext()
		case "x":
			m.closeLast()
		case "r":
			m.refreshLast()
		case "C":
			count := m.registry.Len()
			m.registry.Clear()
			m.openOrder = m.openOrder[:0]
			m.status = fmt.Sprintf("cleared %d dialog(s)", count)
		}
	}
	return m, nil
}

func (m *model) openNext() {
	if len(m.presets) == 0 {
		m.status = "no dialog presets configured"
		return
	}

	name := m.presets[m.nextIndex%len(m.presets)]
	m.nextIndex++
	preset := m.cfg.Dialogs[name]

	m.nextSeq++
	key := fmt.Sprintf("%s-%d", name, m.nextSeq)
	h := &panel{width: preset.Width, height: preset.Height}
	m.registry.Open(key, h)
	m.openOrder = append(m.openOrder, key)

	x, y := h.Pos()
	m.status = fmt.Sprintf("opened %s at (%d,%d)", key, x, y)
}

func (m *model) closeLast() {
	for len(m.openOrder) > 0 {
		key := m.openOrder[len(m.openOrder)-1]
		m.openOrder = m.openOrder[:len(m.openOrder)-1]
		if _, open := m.registry.Get(key); open {
			m.registry.Close(key)
			m.status = fmt.Sprintf("closed %s", key)
			return
		}
	}
	m.status = "nothing to close"
}

func (m *model) refreshLast() {
	if len(m.openOrder) == 0 {
		m.status = "nothing to refresh"
		return
	}
	key := m.openOrder[len(m.openOrder)-1]
	m.registry.Refresh(key)
	m.status = fmt.Sprintf("refreshed %s", key)
}

// View implements tea.Model.
func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("paneldock inspector — display %dx%d", m.display.Width, m.display.Height)))
	b.WriteString("\n\n")

	keys := m.registry.Keys()
	if len(keys) == 0 {
		b.WriteString("  (no open dialogs)\n")
	}
	for i, key := range keys {
		h, open := m.registry.Get(key)
		if !open {
			continue
		}
		x, y := h.Pos()
		w, hgt := h.Size()
		b.WriteString(fmt.Sprintf("  %d. %s  (%d,%d)  %dx%d\n", i+1, keyStyle.Render(key), x, y, w, hgt))
	}
	b.WriteString("\n")

	mapW, mapH := m.mapSize(len(keys))
	for _, line := range renderMap(m.registry.Rects(), m.display, mapW, mapH) {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render("  " + m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  o open • x close last • r refresh last • C clear • q quit"))
	b.WriteString("\n")

	return b.String()
}

// mapSize fits the display map into the terminal, leaving room for the
// dialog list above and the status/help lines below.
func (m model) mapSize(listLen int) (width, height int) {
	width = m.width - 4
	if width < 20 {
		width = 20
	}
	if width > 100 {
		width = 100
	}

	height = m.height - listLen - 8
	if height < 8 {
		height = 8
	}
	if height > 30 {
		height = 30
	}
	return width, height
}

// Run starts the placement inspector with a simulated 1920x1080 display.
func Run(cfg *config.Config) error {
	display := placement.Size{Width: 1920, Height: 1080}
	host := &SimulatedHost{Display: display}
	registry := dialog.NewRegistry(host, cfg.PlacementParams(), nil)

	p := tea.NewProgram(newModel(cfg, registry, display), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
