package usecase

import (
	"context"
	"fmt"
	"time"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/pkg/logger"
)

type EventUseCase struct {
	eventRepo    repository.EventRepository
	activityRepo repository.ActivityRepository
}

func NewEventUseCase(eventRepo repository.EventRepository, activityRepo repository.ActivityRepository) *EventUseCase {
	return &EventUseCase{
		eventRepo:    eventRepo,
		activityRepo: activityRepo,
	}
}

type CreateEventInput struct {
	ClientID    string
	Title       string
	Date        string
	Time        string
	Description string
	CreatedBy   string
}

func (uc *EventUseCase) CreateEvent(ctx context.Context, input CreateEventInput) (*entity.Event, error) {
	event := &entity.Event{
		ClientID:    input.ClientID,
		Title:       input.Title,
		Date:        input.Date,
		Time:        input.Time,
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
	}

	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	activity := &entity.Activity{
		UserID:  input.ClientID,
		Message: fmt.Sprintf("New event scheduled: %s", input.Title),
	}
	if err := uc.activityRepo.Create(ctx, activity); err != nil {
		logger.Warn("Failed to record event activity: %v", err)
	}

	return event, nil
}

// ListUpcoming returns events from today onward. An empty clientID lists
// all clients' events (admin calendar).
func (uc *EventUseCase) ListUpcoming(ctx context.Context, clientID string) ([]*entity.Event, error) {
	today := time.Now().Format("2006-01-02")
	return uc.eventRepo.ListUpcoming(ctx, clientID, today)
}

func (uc *EventUseCase) DeleteEvent(ctx context.Context, id string) error {
	return uc.eventRepo.Delete(ctx, id)
}
