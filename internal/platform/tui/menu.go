package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// MenuKeyMap defines the key bindings for the variant menu.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevScheme key.Binding
	NextScheme key.Binding
	Select     key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevScheme, k.NextScheme, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevScheme, k.NextScheme},
		{k.Select, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		PrevScheme: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "prev colours"),
		),
		NextScheme: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "next colours"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuItem represents a selectable variant in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Scheme string
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items    []registry.GameInfo
	schemes  []string
	scheme   int
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	config   core.RuntimeConfig
	quitting bool
	selected *MenuItem // Set when user selects a game
}

// NewMenuModel creates a new menu model. scheme preselects a colour scheme.
func NewMenuModel(cfg core.RuntimeConfig, scheme string) MenuModel {
	schemes := t2048.ThemeNames()
	idx := slices.Index(schemes, scheme)
	if idx < 0 {
		idx = slices.Index(schemes, t2048.DefaultTheme)
	}

	m := MenuModel{
		items:   registry.List(),
		schemes: schemes,
		scheme:  max(idx, 0),
		help:    help.New(),
		keys:    DefaultMenuKeyMap(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		config:  cfg,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the variant table.
func (m MenuModel) createTable() table.Model {
	rows := make([]table.Row, len(m.items))
	for i, item := range m.items {
		rows[i] = table.Row{item.ID, item.Title}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Variant", Width: 12},
			{Title: "Board", Width: 14},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+2, max(m.height-10, 3))), // Height includes the header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)

	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)

	case key.Matches(msg, m.keys.PrevScheme):
		m.scheme = (m.scheme + len(m.schemes) - 1) % len(m.schemes)

	case key.Matches(msg, m.keys.NextScheme):
		m.scheme = (m.scheme + 1) % len(m.schemes)

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			item := m.items[m.table.Cursor()]
			m.selected = &MenuItem{
				GameID: item.ID,
				Title:  item.Title,
				Scheme: m.Scheme(),
			}
			return m, tea.Quit // Exit menu to start game
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText("Select a board", m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerBlock(tableStyle.Render(m.table.View()), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText("Colours: < "+m.Scheme()+" >", m.width))
	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Scheme returns the currently chosen colour scheme.
func (m MenuModel) Scheme() string {
	if len(m.schemes) == 0 {
		return t2048.DefaultTheme
	}
	return m.schemes[m.scheme]
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID string
	Scheme string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, scheme string) (MenuResult, error) {
	model := NewMenuModel(cfg, scheme)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
		Scheme: m.Scheme(),
	}

	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.GameID = m.Selected().GameID
	return result, nil
}
