// Package tui renders the project log as a full-screen terminal table.
//
// The view is static: the row set is computed once by the caller and never
// refreshed. The only transition out of the running state is a `q` (or
// ctrl+c) keypress. Terminal state, including the alternate screen and raw
// input mode, is restored by bubbletea on every exit path, panics included.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Row is one (version, project) pair of the flattened log.
type Row struct {
	Version      string
	Project      string
	CreatedAt    string
	LastAccessed string
}

// Model is the bubbletea model for the project table.
type Model struct {
	table    table.Model
	rows     int
	quitting bool
}

// NewModel builds the table model from a precomputed row set. An empty row
// set still renders the header row.
func NewModel(rows []Row) Model {
	columns := []table.Column{
		{Title: "Version", Width: 10},
		{Title: "Project", Width: 24},
		{Title: "Created At", Width: 14},
		{Title: "Last Accessed", Width: 14},
	}

	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row{r.Version, r.Project, r.CreatedAt, r.LastAccessed})
	}

	height := len(rows) + 1 // rows plus header
	if height < 2 {
		height = 2
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = headerStyle
	// No row cursor: the table is display-only
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)

	return Model{table: t, rows: len(rows)}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Only `q` and ctrl+c terminate; every other
// key event is ignored and the view keeps running.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		height := msg.Height - 5 // borders, title and footer
		if height < 2 {
			height = 2
		}
		if height > m.rows+1 {
			height = m.rows + 1
		}
		m.table.SetHeight(height)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render("Python Projects")
	count := footerStyle.Render(fmt.Sprintf("%d project(s)", m.rows))
	footer := footerKeyStyle.Render("[q]") + footerStyle.Render(" quit")

	return containerStyle.Render(title+"\n"+m.table.View()) + "\n" + count + "  " + footer + "\n"
}

// Run displays the table until the user quits.
func Run(rows []Row) error {
	p := tea.NewProgram(NewModel(rows), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run table view: %w", err)
	}
	return nil
}
