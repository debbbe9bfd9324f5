package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookkeep/lending-service/audit/internal/model"
	"github.com/bookkeep/lending-service/audit/internal/repository/mocks"
	"github.com/bookkeep/lending-service/pkg/kafka"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockRepository(ctrl)
	return NewService(repo, zap.NewNop()), repo
}

func TestRecord(t *testing.T) {
	s, repo := newTestService(t)

	repo.EXPECT().InsertEvent(gomock.Any(), model.AuditEvent{
		EventType:  "RETURNED",
		PatronID:   "123456",
		BookID:     1,
		OccurredAt: testNow,
		LateFee:    7.50,
	}).Return(nil)

	err := s.Record(context.Background(), kafka.LendingEvent{
		Type:       kafka.EventReturned,
		PatronID:   "123456",
		BookID:     1,
		OccurredAt: testNow,
		LateFee:    7.50,
	})
	require.NoError(t, err)
}

func TestPatronActivity(t *testing.T) {
	s, repo := newTestService(t)

	events := []model.AuditEvent{
		{EventType: "BORROWED", PatronID: "123456", BookID: 1, OccurredAt: testNow.AddDate(0, 0, -30)},
		{EventType: "RETURNED", PatronID: "123456", BookID: 1, OccurredAt: testNow.AddDate(0, 0, -10), LateFee: 3.00},
		{EventType: "BORROWED", PatronID: "123456", BookID: 2, OccurredAt: testNow.AddDate(0, 0, -5)},
	}
	repo.EXPECT().EventsByPatron(gomock.Any(), "123456").Return(events, nil)

	activity, err := s.PatronActivity(context.Background(), "123456")
	require.NoError(t, err)
	require.Equal(t, 2, activity.Borrows)
	require.Equal(t, 1, activity.Returns)
	require.InDelta(t, 3.00, activity.LateFeesTotal, 1e-9)
	require.Len(t, activity.Events, 3)
}

func TestPatronActivity_Empty(t *testing.T) {
	s, repo := newTestService(t)

	repo.EXPECT().EventsByPatron(gomock.Any(), "654321").Return([]model.AuditEvent{}, nil)

	activity, err := s.PatronActivity(context.Background(), "654321")
	require.NoError(t, err)
	require.Zero(t, activity.Borrows)
	require.Zero(t, activity.Returns)
	require.Empty(t, activity.Events)
}

func TestPatronActivity_StoreFailure(t *testing.T) {
	s, repo := newTestService(t)

	repo.EXPECT().EventsByPatron(gomock.Any(), "123456").Return(nil, errors.New("db internal"))

	_, err := s.PatronActivity(context.Background(), "123456")
	require.Error(t, err)
}
