package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/bookkeep/lending-service/audit/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go -package=mocks

// Repository is an append-only event store.
type Repository interface {
	InsertEvent(ctx context.Context, ev model.AuditEvent) error
	EventsByPatron(ctx context.Context, patronID string) ([]model.AuditEvent, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const eventsTableName = `lending_events`

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var eventColumns = []string{"id", "event_type", "patron_id", "book_id", "occurred_at", "late_fee", "recorded_at"}

func (r *repository) InsertEvent(ctx context.Context, ev model.AuditEvent) error {
	query, args, err := qb.Insert(eventsTableName).
		Columns("event_type", "patron_id", "book_id", "occurred_at", "late_fee").
		Values(ev.EventType, ev.PatronID, ev.BookID, ev.OccurredAt, ev.LateFee).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.log.Error("InsertEvent", zap.String("q", query), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) EventsByPatron(ctx context.Context, patronID string) ([]model.AuditEvent, error) {
	query, args, err := qb.Select(eventColumns...).
		From(eventsTableName).
		Where(sq.Eq{"patron_id": patronID}).
		OrderBy("occurred_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	events := make([]model.AuditEvent, 0)
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, err
	}
	return events, nil
}
