package counts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type stage int

const (
	stageSelect stage = iota
	stageCustom
	stageConfirm
)

type choice struct {
	n       int
	checked bool
}

type model struct {
	theme Theme

	stage   stage
	choices []choice
	cursor  int

	input    textinput.Model
	inputErr string

	confirmed bool
	aborted   bool
}

// newModel pre-selects every default choice, matching the wizard's
// long-standing behavior: highlighted partitions will be generated.
func newModel(defaults []int) model {
	choices := make([]choice, 0, len(defaults))
	for _, n := range defaults {
		choices = append(choices, choice{n: n, checked: true})
	}

	ti := textinput.New()
	ti.Placeholder = "e.g. 1024"
	ti.CharLimit = 8
	ti.Width = 20

	return model{
		theme:   DefaultTheme(),
		stage:   stageSelect,
		choices: choices,
		input:   ti,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.String() == "ctrl+c" {
		m.aborted = true
		return m, tea.Quit
	}

	switch m.stage {
	case stageSelect:
		return m.updateSelect(key)
	case stageCustom:
		return m.updateCustom(key)
	case stageConfirm:
		return m.updateConfirm(key)
	}
	return m, nil
}

func (m model) updateSelect(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		m.aborted = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}

	case " ":
		if len(m.choices) > 0 {
			m.choices[m.cursor].checked = !m.choices[m.cursor].checked
		}

	case "a":
		m.stage = stageCustom
		m.inputErr = ""
		m.input.SetValue("")
		return m, m.input.Focus()

	case "enter":
		m.stage = stageConfirm
	}
	return m, nil
}

func (m model) updateCustom(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.stage = stageSelect
		m.input.Blur()
		return m, nil

	case "enter":
		n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
		if err != nil || n <= 0 {
			m.inputErr = fmt.Sprintf("%q is not a positive integer", m.input.Value())
			return m, nil
		}
		m.addChoice(n)
		m.stage = stageSelect
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m model) updateConfirm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y", "enter":
		m.confirmed = true
		return m, tea.Quit
	case "n", "N", "q", "esc":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

// addChoice appends a custom count, pre-checked. An existing entry is
// checked instead of duplicated.
func (m *model) addChoice(n int) {
	for i := range m.choices {
		if m.choices[i].n == n {
			m.choices[i].checked = true
			return
		}
	}
	m.choices = append(m.choices, choice{n: n, checked: true})
}

func (m model) selected() []int {
	var out []int
	for _, c := range m.choices {
		if c.checked {
			out = append(out, c.n)
		}
	}
	return out
}

func (m model) View() string {
	var b strings.Builder

	switch m.stage {
	case stageSelect:
		b.WriteString(m.theme.Title.Render("Select the number of partitions"))
		b.WriteString("\n\n")
		for i, c := range m.choices {
			cursor := "  "
			if i == m.cursor {
				cursor = m.theme.Cursor.Render("> ")
			}
			mark := "[ ]"
			line := fmt.Sprintf("%s %d", mark, c.n)
			if c.checked {
				line = m.theme.Checked.Render(fmt.Sprintf("[x] %d", c.n))
			}
			b.WriteString(cursor + line + "\n")
		}
		b.WriteString("\n")
		b.WriteString(m.theme.Help.Render("space toggle · a add custom · enter continue · q quit"))

	case stageCustom:
		b.WriteString(m.theme.Title.Render("Enter the number of partitions"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.inputErr != "" {
			b.WriteString(m.theme.ErrorMsg.Render(m.inputErr))
			b.WriteString("\n")
		}
		b.WriteString(m.theme.Help.Render("enter add · esc back"))

	case stageConfirm:
		b.WriteString(m.theme.Title.Render("Proceed with partitioning?"))
		b.WriteString("\n\n")
		sel := m.selected()
		if len(sel) == 0 {
			b.WriteString("No partition counts selected.\n")
		} else {
			for _, n := range sel {
				b.WriteString(fmt.Sprintf("  - %d\n", n))
			}
		}
		b.WriteString("\n")
		b.WriteString(m.theme.Help.Render("y proceed · n cancel"))
	}

	b.WriteString("\n")
	return b.String()
}
