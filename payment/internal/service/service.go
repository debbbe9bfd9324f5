package service

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bookkeep/lending-service/payment/internal/model"
)

// Service is a sandbox processor: it approves any charge up to the configured
// single-charge limit, mints txn_-prefixed transaction ids and keeps an
// in-memory ledger so refunds can be validated against what was charged.
type Service struct {
	log       *zap.Logger
	maxCharge float64

	mu      sync.Mutex
	charges map[string]*charge
}

type charge struct {
	amount   float64
	refunded float64
}

func NewService(maxCharge float64, log *zap.Logger) *Service {
	return &Service{
		log:       log,
		maxCharge: maxCharge,
		charges:   make(map[string]*charge),
	}
}

func (s *Service) ProcessPayment(req model.PaymentRequest) model.PaymentResponse {
	if req.Amount > s.maxCharge {
		return model.PaymentResponse{
			Approved: false,
			Detail:   "Amount exceeds single charge limit",
		}
	}

	id := "txn_" + uuid.NewString()

	s.mu.Lock()
	s.charges[id] = &charge{amount: req.Amount}
	s.mu.Unlock()

	s.log.Info("charge approved",
		zap.String("transactionID", id),
		zap.String("patronID", req.PatronID),
		zap.Float64("amount", req.Amount))

	return model.PaymentResponse{
		Approved:      true,
		TransactionID: id,
		Detail:        "Payment approved",
	}
}

func (s *Service) RefundPayment(req model.RefundRequest) model.RefundResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.charges[req.TransactionID]
	if !ok {
		return model.RefundResponse{Approved: false, Detail: "Transaction not found"}
	}
	if c.refunded+req.Amount > c.amount {
		return model.RefundResponse{Approved: false, Detail: "Refund exceeds charged amount"}
	}
	c.refunded += req.Amount

	s.log.Info("refund approved",
		zap.String("transactionID", req.TransactionID),
		zap.Float64("amount", req.Amount))

	return model.RefundResponse{Approved: true, Detail: "Refund successful"}
}
