package service

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"github.com/bookkeep/lending-service/library/internal/events"
	"github.com/bookkeep/lending-service/library/internal/model"
	repoMocks "github.com/bookkeep/lending-service/library/internal/repository/mocks"
	svcMocks "github.com/bookkeep/lending-service/library/internal/service/mocks"
)

// testNow keeps date arithmetic in the suite deterministic.
var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	repo    *repoMocks.MockRepository
	gateway *svcMocks.MockPaymentGateway
}

func newTestService(t *testing.T) (*Service, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := repoMocks.NewMockRepository(ctrl)
	gw := svcMocks.NewMockPaymentGateway(ctrl)

	s := NewService(repo, gw, events.Noop{}, model.DefaultPolicy(), zap.NewNop())
	s.now = func() time.Time { return testNow }

	return s, testDeps{repo: repo, gateway: gw}
}

// newMockSet is for tests that need expectations on the event publisher too.
func newMockSet(ctrl *gomock.Controller) (*repoMocks.MockRepository, *svcMocks.MockPaymentGateway, *svcMocks.MockPublisher) {
	return repoMocks.NewMockRepository(ctrl), svcMocks.NewMockPaymentGateway(ctrl), svcMocks.NewMockPublisher(ctrl)
}

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}
