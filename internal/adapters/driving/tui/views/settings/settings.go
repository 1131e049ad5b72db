// Package settings provides the language pair configuration view for
// the TUI.
package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/est22/snatch/internal/adapters/driving/tui/messages"
	"github.com/est22/snatch/internal/adapters/driving/tui/styles"
	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driving"
)

// field identifies which input is focused.
type field int

const (
	fieldNative field = iota
	fieldLearning
)

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService
	ctx             context.Context

	pair    domain.LanguagePair
	loaded  bool
	saved   bool
	focused field

	nativeInput   textinput.Model
	learningInput textinput.Model

	err error

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	nativeInput := textinput.New()
	nativeInput.Placeholder = "ko"
	nativeInput.CharLimit = 16
	nativeInput.Width = 12
	nativeInput.Focus()

	learningInput := textinput.New()
	learningInput.Placeholder = "en"
	learningInput.CharLimit = 16
	learningInput.Width = 12

	return &View{
		styles:          s,
		settingsService: settingsService,
		ctx:             context.Background(),
		nativeInput:     nativeInput,
		learningInput:   learningInput,
		width:           80,
		height:          24,
	}
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads the active pair.
func (v *View) Init() tea.Cmd {
	return v.loadPair()
}

// Reset clears transient state and reloads inputs from the pair.
func (v *View) Reset() {
	v.saved = false
	v.err = nil
	v.focused = fieldNative
	v.nativeInput.Focus()
	v.learningInput.Blur()
}

// loadPair returns a command that loads the active language pair.
func (v *View) loadPair() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.PairLoaded{Err: fmt.Errorf("settings service not available")}
		}
		pair, err := v.settingsService.LanguagePair(v.ctx)
		return messages.PairLoaded{Pair: pair, Err: err}
	}
}

// savePair returns a command that stores the entered pair.
func (v *View) savePair(native, learning string) tea.Cmd {
	return func() tea.Msg {
		pair, err := v.settingsService.SetLanguagePair(v.ctx, native, learning)
		return messages.PairSaved{Pair: pair, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.PairLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.pair = msg.Pair
		v.loaded = true
		v.nativeInput.SetValue(string(msg.Pair.Native))
		v.learningInput.SetValue(string(msg.Pair.Learning))
		return v, nil

	case messages.PairSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.saved = false
			return v, nil
		}
		v.err = nil
		v.pair = msg.Pair
		v.saved = true
		v.nativeInput.SetValue(string(msg.Pair.Native))
		v.learningInput.SetValue(string(msg.Pair.Learning))
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.Reset()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case "tab", "shift+tab", "up", "down":
		if v.focused == fieldNative {
			v.focused = fieldLearning
			v.nativeInput.Blur()
			return v, v.learningInput.Focus()
		}
		v.focused = fieldNative
		v.learningInput.Blur()
		return v, v.nativeInput.Focus()

	case "enter":
		v.saved = false
		return v, v.savePair(v.nativeInput.Value(), v.learningInput.Value())
	}

	var cmd tea.Cmd
	if v.focused == fieldNative {
		v.nativeInput, cmd = v.nativeInput.Update(msg)
	} else {
		v.learningInput, cmd = v.learningInput.Update(msg)
	}
	return v, cmd
}

// View renders the settings view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.loaded {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf(
			"Current pair: %s → %s", v.pair.Native, v.pair.Learning)))
		b.WriteString("\n\n")
	}

	nativeLabel := v.styles.Normal.Render("Native   ")
	learningLabel := v.styles.Normal.Render("Learning ")
	if v.focused == fieldNative {
		nativeLabel = v.styles.Subtitle.Render("Native   ")
	} else {
		learningLabel = v.styles.Subtitle.Render("Learning ")
	}

	b.WriteString(nativeLabel + v.styles.InputField.Render(v.nativeInput.View()))
	b.WriteString("\n")
	b.WriteString(learningLabel + v.styles.InputField.Render(v.learningInput.View()))
	b.WriteString("\n\n")

	if v.saved {
		b.WriteString(v.styles.Success.Render("Saved."))
		b.WriteString("\n\n")
	}
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(
			"Invalid language code. Use ISO 639-1 codes like ko, en, ja."))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render("[Tab] Switch  [Enter] Save  [Esc] Back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Pair returns the active pair as last loaded or saved.
func (v *View) Pair() domain.LanguagePair {
	return v.pair
}

// Saved reports whether the last save succeeded.
func (v *View) Saved() bool {
	return v.saved
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
