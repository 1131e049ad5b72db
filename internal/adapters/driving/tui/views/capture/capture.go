// Package capture provides the text capture view for the TUI.
// Text is pasted or typed into a textarea, classified into word
// candidates against the active language pair, and the selected
// candidates are saved as vocabulary entries.
package capture

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/est22/snatch/internal/adapters/driving/tui/messages"
	"github.com/est22/snatch/internal/adapters/driving/tui/styles"
	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driving"
)

// Stage tracks which step of the capture flow is active.
type Stage int

const (
	// StageInput is the textarea paste/type step.
	StageInput Stage = iota
	// StageCandidates is the candidate toggle list step.
	StageCandidates
	// StageSaved shows the persisted entries.
	StageSaved
)

// View is the capture view.
type View struct {
	styles         *styles.Styles
	captureService driving.CaptureService
	ctx            context.Context

	stage      Stage
	input      textarea.Model
	candidates []domain.WordCandidate
	checked    []bool
	selected   int
	saved      []domain.Entry
	loading    bool
	err        error

	width  int
	height int
	ready  bool
}

// NewView creates a new capture view.
func NewView(s *styles.Styles, captureService driving.CaptureService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	input := textarea.New()
	input.Placeholder = "Paste or type text to capture..."
	input.CharLimit = 0
	input.SetWidth(70)
	input.SetHeight(8)
	input.Focus()

	return &View{
		styles:         s,
		captureService: captureService,
		ctx:            context.Background(),
		stage:          StageInput,
		input:          input,
		width:          80,
		height:         24,
	}
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the capture view.
func (v *View) Init() tea.Cmd {
	return textarea.Blink
}

// Reset returns the view to the input stage with an empty textarea.
func (v *View) Reset() {
	v.stage = StageInput
	v.input.Reset()
	v.input.Focus()
	v.candidates = nil
	v.checked = nil
	v.selected = 0
	v.saved = nil
	v.loading = false
	v.err = nil
	if v.captureService != nil {
		v.captureService.Reset()
	}
}

// classify returns a command that runs the capture pipeline on the
// entered text.
func (v *View) classify(text string) tea.Cmd {
	return func() tea.Msg {
		if v.captureService == nil {
			return messages.CandidatesClassified{Err: fmt.Errorf("capture service not available")}
		}
		candidates, err := v.captureService.ClassifyText(v.ctx, text)
		return messages.CandidatesClassified{Candidates: candidates, Err: err}
	}
}

// accept returns a command that persists the checked candidates.
func (v *View) accept() tea.Cmd {
	selected := make([]domain.WordCandidate, 0, len(v.candidates))
	for i, c := range v.candidates {
		if v.checked[i] {
			selected = append(selected, c)
		}
	}
	return func() tea.Msg {
		entries, err := v.captureService.AcceptCandidates(v.ctx, selected)
		return messages.CandidatesAccepted{Entries: entries, Err: err}
	}
}

// Update handles messages for the capture view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.input.SetWidth(min(msg.Width-4, 100))
		v.ready = true
		return v, nil

	case messages.CandidatesClassified:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.candidates = msg.Candidates
		// Learning-language words are preselected.
		v.checked = make([]bool, len(msg.Candidates))
		for i, c := range msg.Candidates {
			v.checked[i] = c.IsLearningLanguage
		}
		v.selected = 0
		v.stage = StageCandidates
		return v, nil

	case messages.CandidatesAccepted:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.saved = msg.Entries
		v.stage = StageSaved
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.stage {
	case StageInput:
		return v.handleInputKeys(msg)
	case StageCandidates:
		return v.handleCandidateKeys(msg)
	case StageSaved:
		return v.handleSavedKeys(msg)
	}
	return v, nil
}

func (v *View) handleInputKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.Reset()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case "ctrl+s":
		text := strings.TrimSpace(v.input.Value())
		if text == "" {
			return v, nil
		}
		v.loading = true
		v.input.Blur()
		return v, v.classify(text)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleCandidateKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Back to the textarea, keeping the entered text.
		v.stage = StageInput
		v.candidates = nil
		v.checked = nil
		v.input.Focus()
		if v.captureService != nil {
			v.captureService.Reset()
		}
		return v, nil

	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case "down", "j":
		if v.selected < len(v.candidates)-1 {
			v.selected++
		}
		return v, nil

	case " ":
		if v.selected >= 0 && v.selected < len(v.checked) {
			v.checked[v.selected] = !v.checked[v.selected]
		}
		return v, nil

	case "a":
		for i := range v.checked {
			v.checked[i] = true
		}
		return v, nil

	case "enter":
		if v.checkedCount() == 0 {
			return v, nil
		}
		v.loading = true
		return v, v.accept()
	}

	return v, nil
}

func (v *View) handleSavedKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		v.Reset()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "c":
		// Capture more text.
		v.Reset()
		return v, nil
	}
	return v, nil
}

func (v *View) checkedCount() int {
	n := 0
	for _, c := range v.checked {
		if c {
			n++
		}
	}
	return n
}

// View renders the capture view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Capture"))
	b.WriteString("\n\n")

	switch v.stage {
	case StageInput:
		b.WriteString(v.input.View())
		b.WriteString("\n\n")
		if v.loading {
			b.WriteString(v.styles.Muted.Render("Classifying..."))
		} else {
			b.WriteString(v.styles.Help.Render("[Ctrl+S] Classify  [Esc] Back"))
		}

	case StageCandidates:
		b.WriteString(v.styles.Subtitle.Render(
			fmt.Sprintf("%d candidates", len(v.candidates))))
		b.WriteString("\n\n")
		for i, c := range v.candidates {
			cursor := "  "
			if i == v.selected {
				cursor = "> "
			}
			check := "[ ]"
			if v.checked[i] {
				check = "[x]"
			}
			word := v.styles.Normal.Render(c.Text)
			if c.IsLearningLanguage {
				word = v.styles.Learning.Render(c.Text)
			}
			line := fmt.Sprintf("%s%s %s %s", cursor, check, word,
				v.styles.Muted.Render(string(c.LangCode)))
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if v.loading {
			b.WriteString(v.styles.Muted.Render("Saving..."))
		} else {
			b.WriteString(v.styles.Help.Render(
				"[Space] Toggle  [a] All  [Enter] Save  [Esc] Back"))
		}

	case StageSaved:
		b.WriteString(v.styles.Success.Render(
			fmt.Sprintf("Saved %d entries", len(v.saved))))
		b.WriteString("\n\n")
		for _, e := range v.saved {
			b.WriteString("  " + v.styles.Normal.Render(e.Word))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("[c] Capture more  [Enter/Esc] Menu"))
	}

	if v.err != nil {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(min(width-4, 100))
	v.ready = true
}

// Stage returns the current stage.
func (v *View) Stage() Stage {
	return v.stage
}

// Candidates returns the classified candidates.
func (v *View) Candidates() []domain.WordCandidate {
	return v.candidates
}

// Checked reports whether the candidate at index i is selected.
func (v *View) Checked(i int) bool {
	if i < 0 || i >= len(v.checked) {
		return false
	}
	return v.checked[i]
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

