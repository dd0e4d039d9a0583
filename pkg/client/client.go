// Package client is a typed wrapper over the event manager REST API.
// Every failure surfaces as a per-action error so callers can show a
// stable user-facing message without inspecting status codes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Event mirrors the wire shape. Date stays a raw string: the view layer
// decides what to do with dates that do not parse.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Attendees   []string `json:"attendees"`
}

type CreateEventParams struct {
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}

type UpdateEventParams struct {
	Title *string `json:"title,omitempty"`
	Date  *string `json:"date,omitempty"`
}

type rsvpRequest struct {
	Attendee string `json:"attendee"`
}

type DeleteResult struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the given base URL, e.g. http://localhost:8080.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

func (c *Client) GetEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.do(ctx, http.MethodGet, "/api/events", nil, &events); err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	return events, nil
}

func (c *Client) CreateEvent(ctx context.Context, params CreateEventParams) (*Event, error) {
	var event Event
	if err := c.do(ctx, http.MethodPost, "/api/events", params, &event); err != nil {
		return nil, fmt.Errorf("could not add event: %w", err)
	}
	return &event, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, params UpdateEventParams) (*Event, error) {
	var event Event
	if err := c.do(ctx, http.MethodPut, "/api/events/"+id, params, &event); err != nil {
		return nil, fmt.Errorf("could not update event: %w", err)
	}
	return &event, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) (*DeleteResult, error) {
	var result DeleteResult
	if err := c.do(ctx, http.MethodDelete, "/api/events/"+id, nil, &result); err != nil {
		return nil, fmt.Errorf("could not delete event: %w", err)
	}
	return &result, nil
}

func (c *Client) RSVP(ctx context.Context, id, attendee string) (*Event, error) {
	var event Event
	if err := c.do(ctx, http.MethodPost, "/api/events/"+id+"/rsvp", rsvpRequest{Attendee: attendee}, &event); err != nil {
		return nil, fmt.Errorf("could not rsvp to event: %w", err)
	}
	return &event, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
