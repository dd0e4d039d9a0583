package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/siddhityagi17/event-manager/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEvents(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/events", r.URL.Path)
			json.NewEncoder(w).Encode([]client.Event{
				{ID: "1", Title: "Launch", Date: "2025-01-10T00:00:00Z", Attendees: []string{}},
			})
		}))
		defer server.Close()

		events, err := client.New(server.URL).GetEvents(context.Background())

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Launch", events[0].Title)
	})

	t.Run("Failed - server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := client.New(server.URL).GetEvents(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load events")
	})

	t.Run("Failed - network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // nothing listening anymore

		_, err := client.New(server.URL).GetEvents(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load events")
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/events", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var params client.CreateEventParams
			require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
			assert.Equal(t, "Launch", params.Title)

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(client.Event{
				ID: "abc", Title: params.Title, Date: params.Date, Attendees: []string{},
			})
		}))
		defer server.Close()

		created, err := client.New(server.URL).CreateEvent(context.Background(), client.CreateEventParams{
			Title: "Launch",
			Date:  "2025-01-10",
		})

		require.NoError(t, err)
		assert.Equal(t, "abc", created.ID)
	})

	t.Run("Failed - validation rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		_, err := client.New(server.URL).CreateEvent(context.Background(), client.CreateEventParams{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not add event")
	})
}

func TestUpdateEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/events/abc", r.URL.Path)
			json.NewEncoder(w).Encode(client.Event{
				ID: "abc", Title: "Launch v2", Date: "2025-01-10T00:00:00Z", Attendees: []string{},
			})
		}))
		defer server.Close()

		title := "Launch v2"
		updated, err := client.New(server.URL).UpdateEvent(context.Background(), "abc", client.UpdateEventParams{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, "Launch v2", updated.Title)
	})

	t.Run("Failed - unknown id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		title := "Launch v2"
		_, err := client.New(server.URL).UpdateEvent(context.Background(), "abc", client.UpdateEventParams{Title: &title})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not update event")
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/events/abc", r.URL.Path)
			json.NewEncoder(w).Encode(client.DeleteResult{Message: "Event deleted", ID: "abc"})
		}))
		defer server.Close()

		result, err := client.New(server.URL).DeleteEvent(context.Background(), "abc")

		require.NoError(t, err)
		assert.Equal(t, "abc", result.ID)
	})

	t.Run("Failed - unknown id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := client.New(server.URL).DeleteEvent(context.Background(), "abc")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not delete event")
	})
}

func TestRSVP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/events/abc/rsvp", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Ana", body["attendee"])

			json.NewEncoder(w).Encode(client.Event{
				ID: "abc", Title: "Launch", Date: "2025-01-10T00:00:00Z", Attendees: []string{"Ana"},
			})
		}))
		defer server.Close()

		updated, err := client.New(server.URL).RSVP(context.Background(), "abc", "Ana")

		require.NoError(t, err)
		assert.Equal(t, []string{"Ana"}, updated.Attendees)
	})

	t.Run("Failed - unknown event", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := client.New(server.URL).RSVP(context.Background(), "abc", "Ana")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not rsvp to event")
	})
}
