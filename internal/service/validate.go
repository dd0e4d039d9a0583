package service

import (
	"strings"
	"time"

	"github.com/siddhityagi17/event-manager/internal/model"
	"github.com/siddhityagi17/event-manager/pkg/apperrors"
)

type validatedCreate struct {
	Title string
	Date  time.Time
}

// validateCreate enforces the record schema before anything reaches the
// store: title non-empty after trimming, date parseable.
func validateCreate(input model.CreateEventInput) (validatedCreate, error) {
	fields := []string{}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		fields = append(fields, "title")
	}

	var date time.Time
	if strings.TrimSpace(input.Date) == "" {
		fields = append(fields, "date")
	} else {
		parsed, err := model.ParseEventDate(input.Date)
		if err != nil {
			fields = append(fields, "date")
		} else {
			date = parsed
		}
	}

	if len(fields) > 0 {
		return validatedCreate{}, apperrors.NewValidationError(fields...)
	}

	return validatedCreate{Title: title, Date: date}, nil
}

// validateUpdate applies the same rules to whichever fields are present
// and requires at least one of them.
func validateUpdate(input model.UpdateEventInput) (model.UpdateEventParams, error) {
	if input.Title == nil && input.Date == nil {
		return model.UpdateEventParams{}, apperrors.NewValidationError("title", "date")
	}

	fields := []string{}
	params := model.UpdateEventParams{}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			fields = append(fields, "title")
		} else {
			params.Title = &title
		}
	}

	if input.Date != nil {
		parsed, err := model.ParseEventDate(*input.Date)
		if err != nil {
			fields = append(fields, "date")
		} else {
			params.Date = &parsed
		}
	}

	if len(fields) > 0 {
		return model.UpdateEventParams{}, apperrors.NewValidationError(fields...)
	}

	return params, nil
}

func validateAttendee(attendee string) (string, error) {
	name := strings.TrimSpace(attendee)
	if name == "" {
		return "", apperrors.NewValidationError("attendee")
	}
	return name, nil
}
