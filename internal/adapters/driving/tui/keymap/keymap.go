// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Toggle flips a candidate or favorite on the selected item.
	Toggle key.Binding

	// Classify runs the capture pipeline on the entered text.
	Classify key.Binding

	// Reveal flips a flashcard to its back.
	Reveal key.Binding

	// Correct marks the current card as answered correctly.
	Correct key.Binding

	// Wrong marks the current card as answered incorrectly.
	Wrong key.Binding

	// Favorite toggles the favorite flag on the selected entry.
	Favorite key.Binding

	// Delete removes the selected entry.
	Delete key.Binding

	// Search focuses the search input in the vocabulary browser.
	Search key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Classify: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "classify"),
		),
		Reveal: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "reveal"),
		),
		Correct: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "correct"),
		),
		Wrong: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "wrong"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
	}
}

// ShortHelp returns a short list of keybindings for footers.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Back}
}

// ReviewHelp returns keybindings for the review view.
func (k *KeyMap) ReviewHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Correct, k.Wrong, k.Back}
}

// VocabularyHelp returns keybindings for the vocabulary browser.
func (k *KeyMap) VocabularyHelp() []key.Binding {
	return []key.Binding{k.Search, k.Favorite, k.Delete, k.Back}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
