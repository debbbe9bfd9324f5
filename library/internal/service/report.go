package service

import (
	"context"

	"github.com/bookkeep/lending-service/library/internal/model"
)

// PatronStatusReport aggregates a patron's outstanding loans, full history and
// the total late fees accrued on what is still out.
func (s *Service) PatronStatusReport(ctx context.Context, patronID string) model.StatusReportResult {
	if !validPatronID(patronID) {
		return model.StatusReportResult{Message: msgInvalidPatronID}
	}

	records, err := s.repo.RecordsByPatron(ctx, patronID)
	if err != nil {
		return model.StatusReportResult{Message: "Database error occurred while reading borrow records"}
	}

	now := s.now()
	outstanding := make([]model.BorrowRecord, 0)
	totalLate := 0.0
	for _, rec := range records {
		if !rec.Outstanding() {
			continue
		}
		outstanding = append(outstanding, rec)
		totalLate += s.feeForRecord(rec, now).FeeAmount
	}

	return model.StatusReportResult{
		Success: true,
		Report: &model.PatronStatusReport{
			PatronID:          patronID,
			CurrentlyBorrowed: outstanding,
			BorrowingHistory:  records,
			NumberBorrowed:    len(outstanding),
			TotalLate:         totalLate,
		},
	}
}
