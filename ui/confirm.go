package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is a yes/no prompt shown before irreversible deletions.
type ConfirmModel struct {
	files     []string
	confirmed bool
	answered  bool
}

// NewConfirmModel creates a confirmation prompt listing the files pending
// deletion.
func NewConfirmModel(files []string) ConfirmModel {
	return ConfirmModel{files: files}
}

// Confirmed reports whether the operator accepted the deletion.
func (m ConfirmModel) Confirmed() bool {
	return m.answered && m.confirmed
}

// Init implements tea.Model
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			m.confirmed = true
			m.answered = true
			return m, tea.Quit

		case "n", "N", "esc", "q", "ctrl+c":
			m.answered = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m ConfirmModel) View() string {
	if m.answered {
		return ""
	}

	var content strings.Builder

	content.WriteString(HeaderStyle.Render("⚠️  Confirm Deletion"))
	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("Are you sure you want to delete %d file(s)?\n\n", len(m.files)))

	for _, file := range m.files {
		content.WriteString(fmt.Sprintf("  • %s\n", file))
	}

	content.WriteString("\n")
	content.WriteString(ErrorStyle.Render("This action cannot be undone!"))
	content.WriteString("\n\n")
	content.WriteString("Press 'y' to confirm, 'n' to cancel")

	return content.String()
}
