package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/bookkeep/lending-service/library/internal/errs"
	"github.com/bookkeep/lending-service/library/internal/model"
)

func overdueRecord(days int) model.BorrowRecord {
	return model.BorrowRecord{
		PatronID:   "123456",
		BookID:     1,
		BorrowDate: daysAgo(days + 14),
		DueDate:    daysAgo(days),
	}
}

func TestPayLateFees_Success(t *testing.T) {
	s, deps := newTestService(t)

	deps.repo.EXPECT().LatestRecord(gomock.Any(), "123456", 1).Return(overdueRecord(11), nil)
	deps.repo.EXPECT().GetBookByID(gomock.Any(), 1).Return(model.Book{ID: 1, Title: "A Brief History of Time"}, nil)
	deps.gateway.EXPECT().
		ProcessPayment(gomock.Any(), "123456", 7.50, "Late fees for 'A Brief History of Time'").
		Return(model.PaymentOutcome{Approved: true, TransactionID: "txn_123456_late_fee"}, nil)

	res := s.PayLateFees(context.Background(), "123456", 1)

	require.True(t, res.Success)
	require.Contains(t, res.Message, "Payment successful")
	require.Contains(t, res.Message, "txn_123456_late_fee")
	require.Equal(t, "txn_123456_late_fee", res.TransactionID)
}

func TestPayLateFees_InvalidPatronID(t *testing.T) {
	// gateway and store must never be reached
	s, _ := newTestService(t)

	res := s.PayLateFees(context.Background(), "12ab56", 1)

	require.False(t, res.Success)
	require.Contains(t, res.Message, "Invalid patron ID")
	require.Empty(t, res.TransactionID)
}

func TestPayLateFees_NothingOwed(t *testing.T) {
	s, deps := newTestService(t)

	rec := model.BorrowRecord{
		PatronID:   "123456",
		BookID:     1,
		BorrowDate: daysAgo(3),
		DueDate:    testNow.AddDate(0, 0, 11),
	}
	deps.repo.EXPECT().LatestRecord(gomock.Any(), "123456", 1).Return(rec, nil)

	res := s.PayLateFees(context.Background(), "123456", 1)

	require.False(t, res.Success)
	require.Contains(t, res.Message, "No late fees to pay")
}

func TestPayLateFees_FeeLookupFailure(t *testing.T) {
	s, deps := newTestService(t)

	deps.repo.EXPECT().LatestRecord(gomock.Any(), "123456", 1).Return(model.BorrowRecord{}, errors.New("db internal"))

	res := s.PayLateFees(context.Background(), "123456", 1)

	require.False(t, res.Success)
	require.Contains(t, res.Message, "Unable to calculate late fees")
}

func TestPayLateFees_BookLookupFailure(t *testing.T) {
	s, deps := newTestService(t)

	deps.repo.EXPECT().LatestRecord(gomock.Any(), "123456", 1).Return(overdueRecord(11), nil)
	deps.repo.EXPECT().GetBookByID(gomock.Any(), 1).Return(model.Book{}, errs.ErrNotFound)

	res := s.PayLateFees(context.Background(), "123456", 1)

	require.False(t, res.Success)
	require.Contains(t, res.Message, "Book not found")
}

func TestPayLateFees_Declined(t *testing.T) {
	s, deps := newTestService(t)

	deps.repo.EXPECT().LatestRecord(gomock.Any(), "123456", 1).Return(overdueRecord(11), nil)
	deps.repo.EXPECT().GetBookByID(gomock.Any(), 1).Return(model.Book{ID: 1, Title: "A Brief History of Time"}, nil)
	deps.gateway.EXPECT().
		ProcessPayment(gomock.Any(), "123456", 7.50, gomock.Any()).
		Return(model.PaymentOutcome{Approved: false, Detail: "Card declined"}, nil)

	res := s.PayLateFees(context.Background(), "123456", 1)

	require.False(t, res.Success)
	require.Contains(t, res.Message, "Payment failed: Card declined")
	require.Empty(t, res.TransactionID)
}

func TestPayLateFees_GatewayError(t *testing.T) {
	s, deps := newTestService(t)

	deps.repo.EXPECT().LatestRecord(gomock.Any(), "123456", 1).Return(overdueRecord(11), nil)
	deps.repo.EXPECT().GetBookByID(gomock.Any(), 1).Return(model.Book{ID: 1, Title: "A Brief History of Time"}, nil)
	deps.gateway.EXPECT().
		ProcessPayment(gomock.Any(), "123456", 7.50, gomock.Any()).
		Return(model.PaymentOutcome{}, errors.New("network timeout"))

	res := s.PayLateFees(context.Background(), "123456", 1)

	require.False(t, res.Success)
	require.Contains(t, res.Message, "Payment processing error: network timeout")
}

func TestRefundLateFeePayment_Success(t *testing.T) {
	s, deps := newTestService(t)

	deps.gateway.EXPECT().
		RefundPayment(gomock.Any(), "txn_123456_late_fee", 7.50).
		Return(model.RefundOutcome{Approved: true, Detail: "Refund of $7.50 processed"}, nil)

	res := s.RefundLateFeePayment(context.Background(), "txn_123456_late_fee", 7.50)

	require.True(t, res.Success)
	require.Contains(t, res.Message, "Refund processed")
	require.Contains(t, res.Message, "$7.50")
}

func TestRefundLateFeePayment_InvalidTransactionID(t *testing.T) {
	var tests = []struct {
		name string
		id   string
	}{
		{"no prefix", "bad_txn_123"},
		{"prefix only", "txn_"},
		{"empty", ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestService(t)

			res := s.RefundLateFeePayment(context.Background(), tt.id, 5.00)

			require.False(t, res.Success)
			require.Contains(t, res.Message, "Invalid transaction ID")
		})
	}
}

func TestRefundLateFeePayment_InvalidAmount(t *testing.T) {
	var tests = []struct {
		name        string
		amount      float64
		expectedMsg string
	}{
		{"negative", -5.00, "Refund amount must be greater than 0"},
		{"zero", 0, "Refund amount must be greater than 0"},
		{"over maximum", 20.00, "Refund amount exceeds maximum allowed ($15.00)"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestService(t)

			res := s.RefundLateFeePayment(context.Background(), "txn_123456_late_fee", tt.amount)

			require.False(t, res.Success)
			require.Contains(t, res.Message, tt.expectedMsg)
		})
	}
}

func TestRefundLateFeePayment_Declined(t *testing.T) {
	s, deps := newTestService(t)

	deps.gateway.EXPECT().
		RefundPayment(gomock.Any(), "txn_123456_late_fee", 7.50).
		Return(model.RefundOutcome{Approved: false, Detail: "Insufficient funds"}, nil)

	res := s.RefundLateFeePayment(context.Background(), "txn_123456_late_fee", 7.50)

	require.False(t, res.Success)
	require.Contains(t, res.Message, "Refund failed: Insufficient funds")
}

func TestRefundLateFeePayment_GatewayError(t *testing.T) {
	s, deps := newTestService(t)

	deps.gateway.EXPECT().
		RefundPayment(gomock.Any(), "txn_123456_late_fee", 7.50).
		Return(model.RefundOutcome{}, errors.New("network error"))

	res := s.RefundLateFeePayment(context.Background(), "txn_123456_late_fee", 7.50)

	require.False(t, res.Success)
	require.Contains(t, res.Message, "Refund processing error: network error")
}
