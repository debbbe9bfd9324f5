package service

import (
	"context"
	"fmt"

	"github.com/bookkeep/lending-service/library/internal/model"
)

// PayLateFees charges the patron's outstanding late fee for a book through the
// payment gateway. The gateway is only reached once every local check has
// passed; a declined or errored charge is terminal for this call, never
// retried.
func (s *Service) PayLateFees(ctx context.Context, patronID string, bookID int) model.PaymentResult {
	if !validPatronID(patronID) {
		return payFail(msgInvalidPatronID)
	}

	fee, err := s.lateFee(ctx, patronID, bookID)
	if err != nil {
		return payFail("Unable to calculate late fees")
	}
	if fee.FeeAmount <= 0 {
		return payFail("No late fees to pay")
	}

	book, err := s.repo.GetBookByID(ctx, bookID)
	if err != nil {
		return payFail("Book not found")
	}

	outcome, err := s.gateway.ProcessPayment(ctx, patronID, fee.FeeAmount, fmt.Sprintf("Late fees for '%s'", book.Title))
	if err != nil {
		return payFail("Payment processing error: " + err.Error())
	}
	if !outcome.Approved {
		return payFail("Payment failed: " + outcome.Detail)
	}

	return model.PaymentResult{
		Success:       true,
		Message:       "Payment successful. Transaction ID: " + outcome.TransactionID,
		TransactionID: outcome.TransactionID,
	}
}

// RefundLateFeePayment refunds a prior late-fee charge. All validation happens
// before the gateway is touched.
func (s *Service) RefundLateFeePayment(ctx context.Context, transactionID string, amount float64) model.OpResult {
	if !validTransactionID(transactionID) {
		return fail("Invalid transaction ID")
	}
	if amount <= 0 {
		return fail("Refund amount must be greater than 0")
	}
	if amount > s.policy.MaxRefund {
		return fail(fmt.Sprintf("Refund amount exceeds maximum allowed ($%.2f)", s.policy.MaxRefund))
	}

	outcome, err := s.gateway.RefundPayment(ctx, transactionID, amount)
	if err != nil {
		return fail("Refund processing error: " + err.Error())
	}
	if !outcome.Approved {
		return fail("Refund failed: " + outcome.Detail)
	}

	return ok("Refund processed: " + outcome.Detail)
}

func payFail(msg string) model.PaymentResult {
	return model.PaymentResult{Success: false, Message: msg}
}
