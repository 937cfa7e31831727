package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestStyles_RenderText(t *testing.T) {
	styles := map[string]lipgloss.Style{
		"HeaderStyle":     HeaderStyle,
		"SuccessStyle":    SuccessStyle,
		"ErrorStyle":      ErrorStyle,
		"InfoStyle":       InfoStyle,
		"ProcessingStyle": ProcessingStyle,
	}

	for name, style := range styles {
		t.Run(name, func(t *testing.T) {
			rendered := style.Render("sample output")
			if !strings.Contains(rendered, "sample output") {
				t.Errorf("%s.Render() dropped its input, got %q", name, rendered)
			}
		})
	}
}
