package model

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Date        time.Time `json:"date" db:"date"`
	Description *string   `json:"description,omitempty" db:"description"`
	Location    *string   `json:"location,omitempty" db:"location"`
	Attendees   []string  `json:"attendees" db:"attendees"`
	CreatedAt   time.Time `json:"-" db:"created_at"`
	UpdatedAt   time.Time `json:"-" db:"updated_at"`
}

// CreateEventInput carries raw request fields; the service validates them.
type CreateEventInput struct {
	Title       string
	Date        string
	Description *string
	Location    *string
}

type UpdateEventInput struct {
	Title *string
	Date  *string
}

// UpdateEventParams holds validated fields to merge into a stored event.
type UpdateEventParams struct {
	Title *string
	Date  *time.Time
}

// dateLayouts are the formats accepted at the boundary. Clients submit
// plain YYYY-MM-DD; stored dates round-trip as RFC 3339.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func ParseEventDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
