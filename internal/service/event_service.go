package service

import (
	"context"
	"errors"
	"time"

	"go-event-registration/internal/cache"
	"go-event-registration/internal/model"
	"go-event-registration/internal/repository"
	apperrors "go-event-registration/pkg/app_errors"
	"go-event-registration/pkg/logger"

	"go.uber.org/zap"
)

// EventService produces the open-event listing used to populate the
// registration form. An empty result is a normal outcome; callers render a
// "no events available" state.
type EventService interface {
	ListOpen(ctx context.Context) ([]*model.EventOption, error)
}

type EventServiceImpl struct {
	repo  repository.EventRepository
	cache cache.RedisEventCache
	clock func() time.Time
}

func NewEventService(repo repository.EventRepository, eventCache cache.RedisEventCache, clock func() time.Time) EventService {
	return &EventServiceImpl{repo: repo, cache: eventCache, clock: clock}
}

func (s *EventServiceImpl) ListOpen(ctx context.Context) ([]*model.EventOption, error) {
	log := logger.WithComponent("service").With(zap.String("operation", "ListOpen"))
	now := s.clock()

	events, err := s.cache.GetOpenEvents(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrCacheMiss) {
			// cache trouble never blocks the listing
			log.Warn("event cache read failed", zap.Error(err))
		}

		events, err = s.repo.FindOpen(ctx, now)
		if err != nil {
			log.Error("failed to load open events", zap.Error(err))
			return nil, apperrors.ErrEventsUnavailable
		}

		if err := s.cache.SetOpenEvents(ctx, events); err != nil {
			log.Warn("event cache write failed", zap.Error(err))
		}
	}

	options := make([]*model.EventOption, 0, len(events))
	for _, event := range events {
		// a cached listing may contain events whose window closed since it
		// was written
		if !event.IsOpenAt(now) {
			continue
		}
		options = append(options, &model.EventOption{
			ID:    event.ID,
			Label: event.DisplayLabel(),
		})
	}

	return options, nil
}
