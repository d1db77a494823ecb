// Package tui is a small interactive BPM calculator: type the vehicle
// facts, see the keuzerecht outcome update on every calculation.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rversteeg/importeer/internal/bpm"
	"github.com/rversteeg/importeer/internal/domain"
)

const (
	fieldCO2 = iota
	fieldFuel
	fieldRegistration
	fieldCount
)

// Model represents the application state
type Model struct {
	inputs  []textinput.Model
	focused int

	calculator *bpm.Calculator

	result *domain.TaxResult
	err    error

	width  int
	height int
}

// NewModel creates a new application model
func NewModel() Model {
	inputs := make([]textinput.Model, fieldCount)

	co2 := textinput.New()
	co2.Placeholder = "bijv. 120"
	co2.CharLimit = 4
	co2.Focus()
	inputs[fieldCO2] = co2

	fuel := textinput.New()
	fuel.Placeholder = "benzine / diesel / elektrisch / hybride / lpg"
	fuel.CharLimit = 40
	inputs[fieldFuel] = fuel

	registration := textinput.New()
	registration.Placeholder = "2014-04-01"
	registration.CharLimit = 10
	inputs[fieldRegistration] = registration

	return Model{
		inputs:     inputs,
		calculator: bpm.NewCalculator(),
		width:      80,
		height:     24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
