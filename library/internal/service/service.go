package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bookkeep/lending-service/library/internal/model"
	"github.com/bookkeep/lending-service/library/internal/repository"
	"github.com/bookkeep/lending-service/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

// PaymentGateway is the external charging capability. It is treated as
// untrusted: a non-nil error means the collaborator itself failed and must be
// converted into a reported outcome, never propagated.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, patronID string, amount float64, description string) (model.PaymentOutcome, error)
	RefundPayment(ctx context.Context, transactionID string, amount float64) (model.RefundOutcome, error)
}

// Publisher emits lending events after successful state transitions.
// Publishing is best-effort; failures are logged, not surfaced.
type Publisher interface {
	LendingEvent(ctx context.Context, ev kafka.LendingEvent) error
}

type Service struct {
	log     *zap.Logger
	repo    repository.Repository
	gateway PaymentGateway
	events  Publisher
	policy  model.Policy

	now func() time.Time
}

func NewService(repo repository.Repository, gateway PaymentGateway, events Publisher, policy model.Policy, log *zap.Logger) *Service {
	return &Service{
		log:     log,
		repo:    repo,
		gateway: gateway,
		events:  events,
		policy:  policy,
		now:     time.Now,
	}
}

func (s *Service) publish(ctx context.Context, ev kafka.LendingEvent) {
	if err := s.events.LendingEvent(ctx, ev); err != nil {
		s.log.Warn("publish lending event", zap.String("type", string(ev.Type)), zap.Error(err))
	}
}
