package service

import (
	"context"

	"github.com/siddhityagi17/event-manager/internal/cache"
	"github.com/siddhityagi17/event-manager/internal/model"
	"github.com/siddhityagi17/event-manager/internal/repository"
	"github.com/siddhityagi17/event-manager/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	List(ctx context.Context) ([]*model.Event, error)
	Create(ctx context.Context, input model.CreateEventInput) (*model.Event, error)
	Update(ctx context.Context, id uuid.UUID, input model.UpdateEventInput) (*model.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddAttendee(ctx context.Context, id uuid.UUID, attendee string) (*model.Event, error)
}

type EventServiceImpl struct {
	repo      repository.EventRepository
	listCache cache.EventCache
}

func NewEventService(repo repository.EventRepository, listCache cache.EventCache) EventService {
	return &EventServiceImpl{repo: repo, listCache: listCache}
}

func (s *EventServiceImpl) List(ctx context.Context) ([]*model.Event, error) {
	cached, err := s.listCache.GetEvents(ctx)
	if err != nil {
		logger.WithComponent("service").Warn("Event list cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.listCache.SetEvents(ctx, events); err != nil {
		logger.WithComponent("service").Warn("Event list cache write failed", zap.Error(err))
	}

	return events, nil
}

func (s *EventServiceImpl) Create(ctx context.Context, input model.CreateEventInput) (*model.Event, error) {
	validated, err := validateCreate(input)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		Title:       validated.Title,
		Date:        validated.Date,
		Description: input.Description,
		Location:    input.Location,
		Attendees:   []string{},
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return created, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, id uuid.UUID, input model.UpdateEventInput) (*model.Event, error) {
	params, err := validateUpdate(input)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return updated, nil
}

func (s *EventServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateList(ctx)
	return nil
}

func (s *EventServiceImpl) AddAttendee(ctx context.Context, id uuid.UUID, attendee string) (*model.Event, error) {
	name, err := validateAttendee(attendee)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.AddAttendee(ctx, id, name)
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return updated, nil
}

// invalidateList is best effort; a stale cache entry expires on its own.
func (s *EventServiceImpl) invalidateList(ctx context.Context) {
	if err := s.listCache.Invalidate(ctx); err != nil {
		logger.WithComponent("service").Warn("Event list cache invalidation failed", zap.Error(err))
	}
}
