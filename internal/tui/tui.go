// Package tui provides a Bubble Tea terminal user interface for previewing
// output templates against loaded track records.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"songpath/internal/config"
	"songpath/internal/format"
	"songpath/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	previewStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// maxPreviews caps how many tracks are rendered at once.
const maxPreviews = 12

// Model is the Bubble Tea model for the TUI.
type Model struct {
	textInput textinput.Model
	settings  *config.Settings
	songs     []*model.Song

	restrict bool
	short    bool
	query    bool

	width  int
	height int
}

// NewModel creates a new TUI model over the given tracks.
func NewModel(songs []*model.Song, settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "{artist}/{album}/{title}.{output-ext}"
	ti.SetValue(settings.OutputTemplate)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	return Model{
		textInput: ti,
		settings:  settings,
		songs:     songs,
		restrict:  settings.Restrict,
		short:     settings.Short,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		if m.textInput.Width > 80 {
			m.textInput.Width = 80
		}
		if m.textInput.Width < 20 {
			m.textInput.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+r":
			m.restrict = !m.restrict
			return m, nil

		case "ctrl+s":
			m.short = !m.short
			return m, nil

		case "ctrl+q":
			m.query = !m.query
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("songpath"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Preview file names derived from an output template"))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("Template:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	restrictCheck := "[ ]"
	if m.restrict {
		restrictCheck = "[×]"
	}
	shortCheck := "[ ]"
	if m.short {
		shortCheck = "[×]"
	}
	queryCheck := "[ ]"
	if m.query {
		queryCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Restrict characters (ctrl+r)\n", restrictCheck))
	b.WriteString(fmt.Sprintf("  %s Primary artist only (ctrl+s)\n", shortCheck))
	b.WriteString(fmt.Sprintf("  %s Search queries instead of paths (ctrl+q)\n", queryCheck))
	b.WriteString("\n")

	b.WriteString(m.renderPreviews())

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("esc: quit"))

	return b.String()
}

func (m Model) renderPreviews() string {
	var b strings.Builder

	shown := m.songs
	if len(shown) > maxPreviews {
		shown = shown[:maxPreviews]
	}

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Preview (%d of %d tracks):", len(shown), len(m.songs))))
	b.WriteString("\n")

	template := m.textInput.Value()
	for _, song := range shown {
		value, err := m.derive(song, template)
		if err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("  ✗ %s: %v", song.DisplayName(), err)))
		} else {
			b.WriteString(previewStyle.Render("  ♪ " + value))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) derive(song *model.Song, template string) (string, error) {
	if m.query {
		return format.SearchQuery(song, template, false, m.settings.Format, m.short)
	}
	return format.FileName(song, template, m.settings.Format, m.restrict, m.short)
}

// Run starts the TUI application.
func Run(songs []*model.Song, settings *config.Settings) error {
	p := tea.NewProgram(NewModel(songs, settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
