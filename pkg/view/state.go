package view

import (
	"time"

	"github.com/siddhityagi17/event-manager/pkg/client"
)

// ListState is the client-side list with explicit transitions instead of
// reactive bindings, so the state machine is testable without rendering.
// The snapshot is stale the moment a mutation succeeds elsewhere; callers
// reconcile by re-fetching.
type ListState struct {
	Events  []client.Event
	Loading bool
	Err     string
}

func NewListState() *ListState {
	return &ListState{Loading: true}
}

func (s *ListState) OnLoadSucceeded(events []client.Event) {
	s.Events = events
	s.Loading = false
	s.Err = ""
}

func (s *ListState) OnLoadFailed() {
	s.Events = nil
	s.Loading = false
	s.Err = "Failed to load events."
}

func (s *ListState) OnCreateSucceeded(event client.Event) {
	s.Events = append(s.Events, event)
	s.Err = ""
}

func (s *ListState) OnUpdateSucceeded(event client.Event) {
	for i := range s.Events {
		if s.Events[i].ID == event.ID {
			s.Events[i] = event
		}
	}
	s.Err = ""
}

func (s *ListState) OnDeleteSucceeded(id string) {
	kept := s.Events[:0]
	for _, e := range s.Events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.Events = kept
	s.Err = ""
}

func (s *ListState) OnRSVPSucceeded(event client.Event) {
	s.OnUpdateSucceeded(event)
}

// OnActionFailed records the fixed user-facing message for a failed
// mutation; local state stays unchanged.
func (s *ListState) OnActionFailed(action string) {
	s.Err = "Could not " + action + " event."
}

// Visible is the list as displayed for the given filter, search and now.
func (s *ListState) Visible(filter Filter, search string, now time.Time) []client.Event {
	return Apply(s.Events, filter, search, now)
}
