// Package review provides the flashcard review view for the TUI.
// Due entries are shown one at a time, front first. The card is
// revealed with enter, answered with y/n, and the Leitner box
// transition is persisted before the next card is shown.
package review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/est22/snatch/internal/adapters/driving/tui/messages"
	"github.com/est22/snatch/internal/adapters/driving/tui/styles"
	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driving"
)

// View is the flashcard review view.
type View struct {
	styles        *styles.Styles
	reviewService driving.ReviewService
	ctx           context.Context

	session  *domain.ReviewSession
	revealed bool
	noCards  bool
	loading  bool
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new review view.
func NewView(s *styles.Styles, reviewService driving.ReviewService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:        s,
		reviewService: reviewService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and starts a session.
func (v *View) Init() tea.Cmd {
	return v.startSession()
}

// Reset discards the current session.
func (v *View) Reset() {
	v.session = nil
	v.revealed = false
	v.noCards = false
	v.loading = false
	v.err = nil
}

// startSession returns a command that starts a review session.
func (v *View) startSession() tea.Cmd {
	v.loading = true
	return func() tea.Msg {
		if v.reviewService == nil {
			return messages.SessionStarted{Err: fmt.Errorf("review service not available")}
		}
		session, err := v.reviewService.StartSession(v.ctx)
		return messages.SessionStarted{Session: session, Err: err}
	}
}

// submitAnswer returns a command that applies the answer to the current
// card.
func (v *View) submitAnswer(correct bool) tea.Cmd {
	return func() tea.Msg {
		err := v.reviewService.SubmitAnswer(v.ctx, v.session, correct)
		return messages.AnswerSubmitted{Err: err}
	}
}

// Update handles messages for the review view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.SessionStarted:
		v.loading = false
		if msg.Err != nil {
			if errors.Is(msg.Err, domain.ErrNoCards) {
				v.noCards = true
				return v, nil
			}
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.session = msg.Session
		v.revealed = false
		return v, nil

	case messages.AnswerSubmitted:
		v.loading = false
		if msg.Err != nil {
			// The session was not advanced; the same card is retried.
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.revealed = false
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == "esc" || msg.String() == "q" {
		v.Reset()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.loading || v.session == nil {
		return v, nil
	}

	if v.session.Finished() {
		if msg.String() == "enter" {
			v.Reset()
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		return v, nil
	}

	switch msg.String() {
	case "enter", " ":
		v.revealed = true
		return v, nil

	case "y":
		if v.revealed {
			v.loading = true
			return v, v.submitAnswer(true)
		}

	case "n":
		if v.revealed {
			v.loading = true
			return v, v.submitAnswer(false)
		}
	}

	return v, nil
}

// View renders the review view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Review"))
	b.WriteString("\n\n")

	switch {
	case v.noCards:
		b.WriteString(v.styles.Muted.Render("Nothing due. Come back later."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[Esc] Menu"))

	case v.session == nil:
		b.WriteString(v.styles.Muted.Render("Loading..."))

	case v.session.Finished():
		b.WriteString(v.styles.Subtitle.Render("Session complete"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Success.Render(
			fmt.Sprintf("  Correct: %d", v.session.CorrectCount)))
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(
			fmt.Sprintf("  Wrong:   %d", v.session.WrongCount)))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[Enter/Esc] Menu"))

	default:
		card, _ := v.session.Current()
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf(
			"Card %d of %d", v.session.Position+1, v.session.Size())))
		b.WriteString("\n\n")

		front := v.styles.Learning.Render(card.Word) + "\n" +
			v.styles.Muted.Render(fmt.Sprintf("box %d · %s", card.BoxLevel, card.LangCode))
		if v.revealed {
			back := front
			if card.ExampleSentence != "" && card.ExampleSentence != card.Word {
				back += "\n\n" + v.styles.Normal.Render(card.ExampleSentence)
			}
			b.WriteString(v.styles.Card.Render(back))
			b.WriteString("\n\n")
			b.WriteString(v.styles.Help.Render("[y] Correct  [n] Wrong  [Esc] Quit"))
		} else {
			b.WriteString(v.styles.Card.Render(front))
			b.WriteString("\n\n")
			b.WriteString(v.styles.Help.Render("[Enter] Reveal  [Esc] Quit"))
		}
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
	v.ready = true
}

// Session returns the active session.
func (v *View) Session() *domain.ReviewSession {
	return v.session
}

// Revealed reports whether the current card has been flipped.
func (v *View) Revealed() bool {
	return v.revealed
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
