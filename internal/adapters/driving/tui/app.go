package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/est22/snatch/internal/adapters/driving/tui/messages"
	"github.com/est22/snatch/internal/adapters/driving/tui/styles"
	"github.com/est22/snatch/internal/adapters/driving/tui/views/capture"
	"github.com/est22/snatch/internal/adapters/driving/tui/views/menu"
	"github.com/est22/snatch/internal/adapters/driving/tui/views/review"
	"github.com/est22/snatch/internal/adapters/driving/tui/views/settings"
	"github.com/est22/snatch/internal/adapters/driving/tui/views/vocabulary"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// captureView is the text capture and candidate selection view.
	captureView *capture.View

	// reviewView is the flashcard review view.
	reviewView *review.View

	// vocabularyView is the stored entry browser.
	vocabularyView *vocabulary.View

	// settingsView is the language pair configuration view.
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		menuView:       menu.NewView(s),
		captureView:    capture.NewView(s, ports.Capture),
		reviewView:     review.NewView(s, ports.Review),
		vocabularyView: vocabulary.NewView(s, ports.Vocabulary),
		settingsView:   settings.NewView(s, ports.Settings),
		currentView:    messages.ViewMenu,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.captureView.WithContext(ctx)
	a.reviewView.WithContext(ctx)
	a.vocabularyView.WithContext(ctx)
	a.settingsView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("snatch"),
		a.loadDueCount(),
	)
}

// loadDueCount returns a command that refreshes the due count shown on
// the menu.
func (a *App) loadDueCount() tea.Cmd {
	return func() tea.Msg {
		count, err := a.ports.Review.DueCount(a.ctx)
		if err != nil {
			// The menu simply shows no badge when the count is unknown.
			return nil
		}
		return dueCountLoaded{count: count}
	}
}

// dueCountLoaded is an app-internal message carrying the due count.
type dueCountLoaded struct {
	count int
}

// Update implements tea.Model.
// It routes messages to the active view and handles navigation.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.captureView.SetDimensions(msg.Width, msg.Height)
		a.reviewView.SetDimensions(msg.Width, msg.Height)
		a.vocabularyView.SetDimensions(msg.Width, msg.Height)
		a.settingsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case dueCountLoaded:
		a.menuView.SetDueCount(msg.count)
		return a, nil

	case tea.KeyMsg:
		// Global quit.
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewCapture:
			a.captureView, cmd = a.captureView.Update(msg)
			return a, cmd

		case messages.ViewReview:
			a.reviewView, cmd = a.reviewView.Update(msg)
			return a, cmd

		case messages.ViewVocabulary:
			a.vocabularyView, cmd = a.vocabularyView.Update(msg)
			return a, cmd

		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them.
		switch msg.View {
		case messages.ViewCapture:
			a.captureView.Reset()
			return a, a.captureView.Init()
		case messages.ViewReview:
			a.reviewView.Reset()
			return a, a.reviewView.Init()
		case messages.ViewVocabulary:
			a.vocabularyView.Reset()
			return a, a.vocabularyView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu:
			// Returning to the menu refreshes the due badge.
			return a, a.loadDueCount()
		}
		return a, nil

	case messages.CandidatesClassified, messages.CandidatesAccepted:
		a.captureView, cmd = a.captureView.Update(msg)
		a.err = a.captureView.Err()
		return a, cmd

	case messages.SessionStarted, messages.AnswerSubmitted:
		a.reviewView, cmd = a.reviewView.Update(msg)
		a.err = a.reviewView.Err()
		return a, cmd

	case messages.EntriesLoaded, messages.EntryDeleted, messages.FavoriteToggled:
		a.vocabularyView, cmd = a.vocabularyView.Update(msg)
		a.err = a.vocabularyView.Err()
		return a, cmd

	case messages.PairLoaded, messages.PairSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		a.err = a.settingsView.Err()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil
	}

	// Forward other messages to the active view.
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewCapture:
		a.captureView, cmd = a.captureView.Update(msg)
	case messages.ViewReview:
		a.reviewView, cmd = a.reviewView.Update(msg)
	case messages.ViewVocabulary:
		a.vocabularyView, cmd = a.vocabularyView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewCapture:
		return a.captureView.View()
	case messages.ViewReview:
		return a.reviewView.View()
	case messages.ViewVocabulary:
		return a.vocabularyView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	default:
		return a.menuView.View()
	}
}

// SetDimensions sets the app dimensions and fans them out to views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.captureView.SetDimensions(width, height)
	a.reviewView.SetDimensions(width, height)
	a.vocabularyView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready reports whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}
