package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driving/tui/styles"
)

func TestNewField(t *testing.T) {
	field := NewField(styles.DefaultStyles(), "Name", "BGW01", 5)

	assert.Empty(t, field.Value())
	assert.False(t, field.Focused())
}

func TestNewField_NilStyles(t *testing.T) {
	field := NewField(nil, "Name", "", 5)

	assert.NotNil(t, field)
	assert.NotPanics(t, func() { _ = field.View() })
}

func TestField_FocusBlur(t *testing.T) {
	field := NewField(styles.DefaultStyles(), "Name", "", 5)

	field.Focus()
	assert.True(t, field.Focused())

	field.Blur()
	assert.False(t, field.Focused())
}

func TestField_UpdateAcceptsTyping(t *testing.T) {
	field := NewField(styles.DefaultStyles(), "Name", "", 5)
	field.Focus()

	for _, r := range "BGW01" {
		field.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "BGW01", field.Value())
}

func TestField_CharLimit(t *testing.T) {
	field := NewField(styles.DefaultStyles(), "Name", "", 5)
	field.Focus()

	for _, r := range "TOOLONG" {
		field.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "TOOLO", field.Value())
}

func TestField_SetValueAndReset(t *testing.T) {
	field := NewField(styles.DefaultStyles(), "Name", "", 5)

	field.SetValue("ALT01")
	assert.Equal(t, "ALT01", field.Value())

	field.Reset()
	assert.Empty(t, field.Value())
}

func TestField_View(t *testing.T) {
	field := NewField(styles.DefaultStyles(), "Coordinates", "N 33 15.750", 64)

	view := field.View()

	assert.Contains(t, view, "Coordinates:")
}

func TestField_SetWidthFloor(t *testing.T) {
	field := NewField(styles.DefaultStyles(), "Name", "", 5)

	field.SetWidth(10)

	assert.Equal(t, 20, field.textinput.Width)
}
