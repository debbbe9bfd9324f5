package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookkeep/lending-service/library/internal/errs"
	"github.com/bookkeep/lending-service/library/internal/model"
)

const (
	statusNoRecord   = "No borrow record found"
	statusNotOverdue = "No fee - book is not overdue"
	statusFeeOwed    = "Late fee calculated successfully"
)

// CalculateLateFee projects the fee owed for (patron, book) out of persisted
// state plus wall-clock time. It never mutates the store; failures surface
// through the status field rather than as errors.
func (s *Service) CalculateLateFee(ctx context.Context, patronID string, bookID int) model.LateFeeResult {
	if !validPatronID(patronID) {
		return model.LateFeeResult{Status: "Invalid patron ID"}
	}

	res, err := s.lateFee(ctx, patronID, bookID)
	if err != nil {
		s.log.Error("late fee lookup", zap.String("patronID", patronID), zap.Int("bookID", bookID), zap.Error(err))
		return model.LateFeeResult{Status: "Unable to calculate late fees"}
	}
	return res
}

// lateFee reads the most relevant borrow record (outstanding preferred, else
// most recently returned) and prices its overdueness. The error return is
// reserved for store failures; a missing record is a normal result.
func (s *Service) lateFee(ctx context.Context, patronID string, bookID int) (model.LateFeeResult, error) {
	rec, err := s.repo.LatestRecord(ctx, patronID, bookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.LateFeeResult{Status: statusNoRecord}, nil
		}
		return model.LateFeeResult{}, err
	}
	return s.feeForRecord(rec, s.now()), nil
}

// feeForRecord prices a single record: reference point is the return date if
// set, otherwise now.
func (s *Service) feeForRecord(rec model.BorrowRecord, now time.Time) model.LateFeeResult {
	reference := now
	if rec.ReturnDate != nil {
		reference = *rec.ReturnDate
	}

	days := wholeDays(reference.Sub(rec.DueDate))
	status := statusNotOverdue
	if days > 0 {
		status = statusFeeOwed
	}
	return model.LateFeeResult{
		FeeAmount:   s.policy.LateFee(days),
		DaysOverdue: days,
		Status:      status,
	}
}

func wholeDays(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d.Hours() / 24)
}
