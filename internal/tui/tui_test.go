package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/niuniu/internal/display"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestSubmit(t *testing.T) {
	display.SetColor(false)

	t.Run("valid hand renders result", func(t *testing.T) {
		m := New(quietLogger())
		assert.False(t, m.Submit("K 5 5 Q J"))

		require.Len(t, m.Entries(), 1)
		assert.Contains(t, m.Entries()[0], "Niu Niu!")
	})

	t.Run("bad input reported inline", func(t *testing.T) {
		m := New(quietLogger())
		assert.False(t, m.Submit("K 5"))

		require.Len(t, m.Entries(), 1)
		assert.Contains(t, m.Entries()[0], "expected 5 cards, got 2")
	})

	t.Run("blank line ignored", func(t *testing.T) {
		m := New(quietLogger())
		assert.False(t, m.Submit(""))
		assert.Empty(t, m.Entries())
	})

	t.Run("quit words", func(t *testing.T) {
		m := New(quietLogger())
		for _, word := range []string{"quit", "EXIT", "q"} {
			assert.True(t, m.Submit(word), word)
		}
	})
}

func TestUpdate(t *testing.T) {
	display.SetColor(false)

	t.Run("enter evaluates and clears input", func(t *testing.T) {
		m := New(quietLogger())
		m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
		m.input.SetValue("1 2 3 4 5")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Nil(t, cmd)
		assert.Empty(t, m.input.Value())
		require.Len(t, m.Entries(), 1)
		assert.Contains(t, m.View(), "Niu Niu Calculator")
	})

	t.Run("ctrl+c quits", func(t *testing.T) {
		m := New(quietLogger())
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.View())
	})

	t.Run("quit typed", func(t *testing.T) {
		m := New(quietLogger())
		m.input.SetValue("quit")
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})
}
