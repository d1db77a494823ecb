package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rversteeg/importeer/internal/bpm"
	"github.com/rversteeg/importeer/internal/normalize"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.setFocus((m.focused + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focused + fieldCount - 1) % fieldCount)
			return m, nil
		case "enter":
			m.calculate()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(index int) {
	m.inputs[m.focused].Blur()
	m.focused = index
	m.inputs[m.focused].Focus()
}

func (m *Model) calculate() {
	m.result = nil

	co2, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldCO2].Value()))
	if err != nil {
		m.err = fmt.Errorf("CO2-uitstoot moet een getal zijn")
		return
	}

	fuel, ok := normalize.FuelType(m.inputs[fieldFuel].Value())
	if !ok {
		m.err = fmt.Errorf("onbekende brandstof %q", m.inputs[fieldFuel].Value())
		return
	}

	registration, err := normalize.Date(m.inputs[fieldRegistration].Value())
	if err != nil {
		m.err = fmt.Errorf("datum eerste toelating niet herkend")
		return
	}

	result, err := m.calculator.Calculate(bpm.TaxInput{
		CO2GKM:            co2,
		FuelType:          fuel,
		FirstRegistration: registration,
	})
	if err != nil {
		m.err = err
		return
	}

	m.result = result
	m.err = nil
}
