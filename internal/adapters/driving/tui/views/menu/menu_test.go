package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/est22/snatch/internal/adapters/driving/tui/messages"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewView(t *testing.T) {
	v := NewView(nil)

	require.NotNil(t, v)
	assert.Equal(t, 0, v.Selected())
}

func TestView_Update_Navigation(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 24)

	v, _ = v.Update(keyMsg("down"))
	assert.Equal(t, 1, v.Selected())

	v, _ = v.Update(keyMsg("j"))
	assert.Equal(t, 2, v.Selected())

	v, _ = v.Update(keyMsg("up"))
	assert.Equal(t, 1, v.Selected())

	v, _ = v.Update(keyMsg("k"))
	assert.Equal(t, 0, v.Selected())

	// Does not navigate above the first item.
	v, _ = v.Update(keyMsg("up"))
	assert.Equal(t, 0, v.Selected())
}

func TestView_Update_SelectCapture(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 24)

	_, cmd := v.Update(keyMsg("enter"))

	require.NotNil(t, cmd)
	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewCapture, changed.View)
}

func TestView_Update_SelectQuit(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 24)

	// Navigate to the last item (Quit).
	for i := 0; i < 4; i++ {
		v, _ = v.Update(keyMsg("down"))
	}
	_, cmd := v.Update(keyMsg("enter"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_Update_QKeyQuits(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 24)

	_, cmd := v.Update(keyMsg("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_View_ShowsDueCount(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 24)
	v.SetDueCount(7)

	out := v.View()

	assert.Contains(t, out, "Review")
	assert.Contains(t, out, "7 due")
}

func TestView_View_NotReady(t *testing.T) {
	v := NewView(nil)

	assert.Equal(t, "Initialising...", v.View())
}
