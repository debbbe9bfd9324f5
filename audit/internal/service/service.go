package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bookkeep/lending-service/audit/internal/model"
	"github.com/bookkeep/lending-service/audit/internal/repository"
	"github.com/bookkeep/lending-service/pkg/kafka"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

// Record persists one consumed lending event.
func (s *Service) Record(ctx context.Context, ev kafka.LendingEvent) error {
	return s.repo.InsertEvent(ctx, model.AuditEvent{
		EventType:  string(ev.Type),
		PatronID:   ev.PatronID,
		BookID:     ev.BookID,
		OccurredAt: ev.OccurredAt,
		LateFee:    ev.LateFee,
	})
}

// PatronActivity replays a patron's event stream into a summary.
func (s *Service) PatronActivity(ctx context.Context, patronID string) (model.PatronActivity, error) {
	events, err := s.repo.EventsByPatron(ctx, patronID)
	if err != nil {
		return model.PatronActivity{}, err
	}

	activity := model.PatronActivity{
		PatronID: patronID,
		Events:   events,
	}
	for _, ev := range events {
		switch kafka.EventType(ev.EventType) {
		case kafka.EventBorrowed:
			activity.Borrows++
		case kafka.EventReturned:
			activity.Returns++
			activity.LateFeesTotal += ev.LateFee
		}
	}
	return activity, nil
}
