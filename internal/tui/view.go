package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rversteeg/importeer/internal/output"
)

var (
	appStyle    = lipgloss.NewStyle().Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Width(22)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	resultStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

var fieldLabels = [fieldCount]string{
	fieldCO2:          "CO2-uitstoot (g/km)",
	fieldFuel:         "Brandstof",
	fieldRegistration: "Eerste toelating",
}

// View renders the application (required by tea.Model interface)
func (m Model) View() string {
	b := &strings.Builder{}

	fmt.Fprintln(b, titleStyle.Render("BPM-calculator"))
	fmt.Fprintln(b)

	for i, input := range m.inputs {
		fmt.Fprintf(b, "%s%s\n", labelStyle.Render(fieldLabels[i]), input.View())
	}
	fmt.Fprintln(b)

	switch {
	case m.err != nil:
		fmt.Fprintln(b, errorStyle.Render(m.err.Error()))
	case m.result != nil:
		fmt.Fprintln(b, resultStyle.Render(output.FormatTaxResult(m.result)))
	}

	fmt.Fprintln(b)
	fmt.Fprintln(b, helpStyle.Render("tab: volgend veld • enter: bereken • esc: afsluiten"))

	return appStyle.Render(b.String())
}
