package ui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pnattawut/bgm-tui/internal/ui/styles"
)

var errFeeInvalid = errors.New("invalid fee")

func newTextInputModel(value string, placeholder string) textinput.Model {
	input := textinput.New()
	input.SetValue(value)
	input.CharLimit = 64
	input.Placeholder = placeholder
	input.PromptStyle = styles.NoStyle
	input.Cursor.Style = styles.CursorStyle

	return input
}

type inputValidator interface {
	validate(value string) error
}

func newValidatingTextInputModel(label string, value string, placeholder string, validators ...inputValidator) *validatingTextInputModel {
	input := newTextInputModel(value, placeholder)

	if len(validators) > 0 {
		input.Validate = func(s string) error {
			for _, validator := range validators {
				if err := validator.validate(s); err != nil {
					return err
				}
			}

			return nil
		}
	}

	return &validatingTextInputModel{input: input, active: false, label: label}
}

type validatingTextInputModel struct {
	label  string
	input  textinput.Model
	active bool
}

func (m *validatingTextInputModel) Init() tea.Cmd {
	return nil
}

func (m *validatingTextInputModel) Update(msg tea.Msg) (*validatingTextInputModel, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *validatingTextInputModel) View() string {
	var errRow string
	if m.input.Err != nil {
		errRow = lipgloss.NewStyle().Foreground(styles.Red).Render("Validation Error: " + m.input.Err.Error())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpStyle.Render(m.label+": "),
		lipgloss.JoinVertical(lipgloss.Top, m.input.View(), errRow))
}

func (m *validatingTextInputModel) focus() tea.Cmd {
	m.input.PromptStyle = styles.FocusedStyle
	m.input.TextStyle = styles.FocusedStyle

	return m.input.Focus()
}

func (m *validatingTextInputModel) blur() {
	m.input.PromptStyle = styles.NoStyle
	m.input.TextStyle = styles.NoStyle
	m.input.Blur()
}

// feeValidator accepts whole, non-negative baht amounts.
type feeValidator struct{}

func (v feeValidator) validate(value string) error {
	if value == "" {
		return fmt.Errorf("%w: Cannot be empty", errFeeInvalid)
	}

	fee, errParse := strconv.Atoi(value)
	if errParse != nil {
		return fmt.Errorf("%w: Must be a whole number", errFeeInvalid)
	}
	if fee < 0 {
		return fmt.Errorf("%w: Cannot be negative", errFeeInvalid)
	}

	return nil
}
