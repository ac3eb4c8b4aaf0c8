package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case PackageReadyMsg:
		return m.handlePackageReady(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		// Plain q quits outside the form so typing product names still works.
		if m.State != StateForm {
			return m, tea.Quit
		}
	case "esc":
		if m.State == StateResult || m.State == StateError {
			m.State = StateForm
			m.errMsg = ""
			return m, nil
		}
	}

	if m.State != StateForm {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.focus = (m.focus + 1) % fieldCount
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		return m, nil
	case tea.KeyEnter:
		if m.focus < fieldCount-1 {
			m.focus++
			return m, nil
		}
		return m.submit()
	case tea.KeyBackspace:
		if cur := m.inputs[m.focus]; cur != "" {
			r := []rune(cur)
			m.inputs[m.focus] = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.inputs[m.focus] += " "
		return m, nil
	case tea.KeyRunes:
		// Pasting a catalog API record into the description autofills the
		// whole form; anything else is typed (or pasted) text.
		text := string(msg.Runes)
		if (msg.Paste || len(msg.Runes) > 1) && m.focus == fieldDescription {
			if m.autofill(text) {
				return m, nil
			}
		}
		m.inputs[m.focus] += text
		return m, nil
	}

	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	data := m.ProductData()
	if data.ProductName == "" {
		m.errMsg = "product name is required"
		return m, nil
	}

	m.State = StateGenerating
	m.errMsg = ""
	return m, generate(m.generator, data)
}

// handlePackageReady processes generation completion
func (m Model) handlePackageReady(msg PackageReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.errMsg = msg.Err.Error()
		return m, nil
	}
	m.pkg = msg.Package
	m.State = StateResult
	return m, nil
}
