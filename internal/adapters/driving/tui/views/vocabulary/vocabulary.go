// Package vocabulary provides the stored entry browser view for the TUI.
package vocabulary

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/est22/snatch/internal/adapters/driving/tui/components/status"
	"github.com/est22/snatch/internal/adapters/driving/tui/keymap"
	"github.com/est22/snatch/internal/adapters/driving/tui/messages"
	"github.com/est22/snatch/internal/adapters/driving/tui/styles"
	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driving"
)

const visibleRows = 15

// View is the vocabulary browser view.
type View struct {
	styles            *styles.Styles
	vocabularyService driving.VocabularyService
	ctx               context.Context

	entries       []domain.Entry
	selected      int
	offset        int
	favoritesOnly bool
	searching     bool
	searchInput   textinput.Model
	statusBar     *status.Bar
	err           error

	width  int
	height int
	ready  bool
}

// NewView creates a new vocabulary browser view.
func NewView(s *styles.Styles, vocabularyService driving.VocabularyService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	searchInput := textinput.New()
	searchInput.Placeholder = "Search word or example..."
	searchInput.CharLimit = 128
	searchInput.Width = 40

	km := keymap.DefaultKeyMap()
	bar := status.NewBar(s, km)
	bar.SetBindings(km.VocabularyHelp())

	return &View{
		styles:            s,
		vocabularyService: vocabularyService,
		ctx:               context.Background(),
		searchInput:       searchInput,
		statusBar:         bar,
		width:             80,
		height:            24,
	}
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads entries.
func (v *View) Init() tea.Cmd {
	return v.loadEntries()
}

// Reset clears filters and selection.
func (v *View) Reset() {
	v.selected = 0
	v.offset = 0
	v.favoritesOnly = false
	v.searching = false
	v.searchInput.Reset()
	v.err = nil
}

// filter builds the entry filter from the current browser state.
func (v *View) filter() domain.EntryFilter {
	return domain.EntryFilter{
		FavoritesOnly: v.favoritesOnly,
		Search:        strings.TrimSpace(v.searchInput.Value()),
	}
}

// loadEntries returns a command that loads entries for the current
// filter.
func (v *View) loadEntries() tea.Cmd {
	filter := v.filter()
	return func() tea.Msg {
		if v.vocabularyService == nil {
			return messages.EntriesLoaded{Err: fmt.Errorf("vocabulary service not available")}
		}
		entries, err := v.vocabularyService.List(v.ctx, filter)
		return messages.EntriesLoaded{Entries: entries, Err: err}
	}
}

// deleteSelected returns a command that deletes the selected entry.
func (v *View) deleteSelected() tea.Cmd {
	id := v.entries[v.selected].ID
	return func() tea.Msg {
		err := v.vocabularyService.Delete(v.ctx, id)
		return messages.EntryDeleted{ID: id, Err: err}
	}
}

// toggleFavorite returns a command that flips the selected entry's
// favorite flag.
func (v *View) toggleFavorite() tea.Cmd {
	id := v.entries[v.selected].ID
	return func() tea.Msg {
		favorite, err := v.vocabularyService.ToggleFavorite(v.ctx, id)
		return messages.FavoriteToggled{ID: id, Favorite: favorite, Err: err}
	}
}

// Update handles messages for the vocabulary view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.statusBar.SetWidth(msg.Width)
		v.ready = true
		return v, nil

	case messages.EntriesLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusBar.SetState(status.StateError)
			v.statusBar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.entries = msg.Entries
		if v.selected >= len(v.entries) {
			v.selected = len(v.entries) - 1
		}
		if v.selected < 0 {
			v.selected = 0
		}
		v.clampOffset()
		v.statusBar.Clear()
		v.statusBar.SetCount(len(v.entries))
		return v, nil

	case messages.EntryDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.loadEntries()

	case messages.FavoriteToggled:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.loadEntries()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.searching {
		switch msg.String() {
		case "enter":
			v.searching = false
			v.searchInput.Blur()
			v.selected = 0
			v.offset = 0
			return v, v.loadEntries()
		case "esc":
			v.searching = false
			v.searchInput.Blur()
			v.searchInput.Reset()
			return v, v.loadEntries()
		default:
			var cmd tea.Cmd
			v.searchInput, cmd = v.searchInput.Update(msg)
			return v, cmd
		}
	}

	switch msg.String() {
	case "esc":
		v.Reset()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.clampOffset()
		}
		return v, nil

	case "down", "j":
		if v.selected < len(v.entries)-1 {
			v.selected++
			v.clampOffset()
		}
		return v, nil

	case "/":
		v.searching = true
		return v, v.searchInput.Focus()

	case "v":
		v.favoritesOnly = !v.favoritesOnly
		v.selected = 0
		v.offset = 0
		return v, v.loadEntries()

	case "f":
		if len(v.entries) > 0 {
			return v, v.toggleFavorite()
		}
		return v, nil

	case "d":
		if len(v.entries) > 0 {
			return v, v.deleteSelected()
		}
		return v, nil
	}

	return v, nil
}

// clampOffset keeps the selection inside the visible window.
func (v *View) clampOffset() {
	if v.selected < v.offset {
		v.offset = v.selected
	}
	if v.selected >= v.offset+visibleRows {
		v.offset = v.selected - visibleRows + 1
	}
}

// View renders the vocabulary browser.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Vocabulary"))
	if v.favoritesOnly {
		b.WriteString(v.styles.Favorite.Render("  ★ favorites"))
	}
	b.WriteString("\n\n")

	if v.searching {
		b.WriteString(v.styles.InputField.Render(v.searchInput.View()))
		b.WriteString("\n\n")
	} else if q := strings.TrimSpace(v.searchInput.Value()); q != "" {
		b.WriteString(v.styles.Muted.Render("filter: " + q))
		b.WriteString("\n\n")
	}

	if len(v.entries) == 0 {
		b.WriteString(v.styles.Muted.Render("No entries."))
		b.WriteString("\n")
	}

	end := v.offset + visibleRows
	if end > len(v.entries) {
		end = len(v.entries)
	}
	for i := v.offset; i < end; i++ {
		e := v.entries[i]
		cursor := "  "
		if i == v.selected {
			cursor = "> "
		}
		star := "  "
		if e.IsFavorite {
			star = v.styles.Favorite.Render("★ ")
		}
		word := v.styles.Normal.Render(e.Word)
		if e.Category == domain.CategoryLearning {
			word = v.styles.Learning.Render(e.Word)
		}
		meta := v.styles.Muted.Render(fmt.Sprintf("  %s · box %d", e.LangCode, e.BoxLevel))
		b.WriteString(cursor + star + word + meta)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.statusBar.View())
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(
		"[/] Search  [v] Favorites  [f] Star  [d] Delete  [Esc] Back"))

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.statusBar.SetWidth(width)
	v.ready = true
}

// Entries returns the loaded entries.
func (v *View) Entries() []domain.Entry {
	return v.entries
}

// Selected returns the selected index.
func (v *View) Selected() int {
	return v.selected
}

// FavoritesOnly reports whether the favorites filter is active.
func (v *View) FavoritesOnly() bool {
	return v.favoritesOnly
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
