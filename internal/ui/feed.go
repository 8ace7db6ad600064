package ui

import (
	"eatgo/internal/model"
	"eatgo/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// stateFeed turns store notifications into Bubble Tea messages. Pending
// notifications coalesce into one; the message always carries the latest
// snapshot, so a slow UI never sees a stale state.
type stateFeed struct {
	store  *store.Store
	signal chan struct{}
}

func newStateFeed(s *store.Store) (*stateFeed, func()) {
	f := &stateFeed{
		store:  s,
		signal: make(chan struct{}, 1),
	}
	unsubscribe := s.Subscribe(func(model.State) { f.notify() })
	return f, unsubscribe
}

func (f *stateFeed) notify() {
	select {
	case f.signal <- struct{}{}:
	default:
	}
}

// wait blocks until the store changes.
func (f *stateFeed) wait() tea.Cmd {
	return func() tea.Msg {
		<-f.signal
		return model.StateChangedMsg{State: f.store.State()}
	}
}
