package ui

import (
	"errors"

	"github.com/fr4nk3nst1ner/jobads/internal/board"
	"github.com/pterm/pterm"
)

// Session actions offered in interactive mode.
const (
	ActionSearch   = "Search"
	ActionSort     = "Toggle sort"
	ActionNext     = "Next page"
	ActionPrev     = "Previous page"
	ActionQuit     = "Quit"
	suggestionSize = 3
)

// Prompter asks the user for input.
type Prompter interface {
	Select(label string, options []string) (string, error)
	Input(label string) (string, error)
}

// PtermPrompter prompts with pterm's interactive printers.
type PtermPrompter struct{}

func (PtermPrompter) Select(label string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.WithOptions(options).Show(label)
}

func (PtermPrompter) Input(label string) (string, error) {
	return pterm.DefaultInteractiveTextInput.Show(label)
}

// Session is the interactive board: each action updates the search, sort
// or page and re-renders.
type Session struct {
	State    board.ViewState
	Search   string
	Sort     board.SortOption
	Format   string
	Prompter Prompter
	Renderer *Renderer
}

// Show renders the current state.
func (s *Session) Show() error {
	var page board.Page
	page, s.State = s.State.Render(s.Search, s.Sort)

	var suggestions []string
	if len(page.Items) == 0 {
		suggestions = board.Suggest(s.State.Records, s.Search, suggestionSize)
	}
	return s.Renderer.Render(s.Format, page, s.Search, suggestions)
}

// Run shows the board and loops until the user quits.
func (s *Session) Run() error {
	if err := s.Show(); err != nil {
		return err
	}
	for {
		action, err := s.Prompter.Select(s.sortLabel(), []string{ActionSearch, ActionSort, ActionNext, ActionPrev, ActionQuit})
		if err != nil {
			return err
		}
		done, err := s.Step(action)
		if err != nil || done {
			return err
		}
	}
}

// Step applies one action. It reports true when the session should end.
func (s *Session) Step(action string) (bool, error) {
	switch action {
	case ActionSearch:
		q, err := s.Prompter.Input("Search jobs")
		if err != nil {
			return false, err
		}
		s.Search = q
	case ActionSort:
		if s.Sort == board.SortLatest {
			s.Sort = board.SortEarliest
		} else {
			s.Sort = board.SortLatest
		}
	case ActionNext:
		s.State = s.State.Next(s.Search)
	case ActionPrev:
		s.State = s.State.Prev()
	case ActionQuit:
		return true, nil
	default:
		return false, errors.New("unknown action: " + action)
	}
	return false, s.Show()
}

func (s *Session) sortLabel() string {
	if s.Sort == board.SortLatest {
		return "Sorted by latest deadline"
	}
	return "Sorted by earliest deadline"
}
