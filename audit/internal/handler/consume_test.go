package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookkeep/lending-service/pkg/kafka"
)

func TestConsumerSetupAcrossSessions(t *testing.T) {
	// the group loop hands the same Consumer to every new session after a
	// rebalance, so Setup/Cleanup must tolerate being called repeatedly
	consumer := NewConsumer(func(context.Context, kafka.LendingEvent) error { return nil }, zap.NewNop())

	require.NotPanics(t, func() {
		require.NoError(t, consumer.Setup(nil))
		require.NoError(t, consumer.Cleanup(nil))
		require.NoError(t, consumer.Setup(nil))
		require.NoError(t, consumer.Cleanup(nil))
	})
}
