package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bookkeep/lending-service/library/internal/model"
	"github.com/bookkeep/lending-service/pkg/kafka"
)

const msgInvalidPatronID = "Invalid patron ID. Must be exactly 6 digits."

// BorrowBook runs the borrow sequence: patron id, book lookup, availability,
// borrowing limit, record insert, availability decrement. First failure wins.
//
// The insert and the decrement are two separate store writes without a
// transaction around them: if the decrement fails the borrow record stays.
// That inconsistency window is a documented property of the sequence, not
// something this layer masks.
func (s *Service) BorrowBook(ctx context.Context, patronID string, bookID int) model.OpResult {
	if !validPatronID(patronID) {
		return fail(msgInvalidPatronID)
	}

	book, err := s.repo.GetBookByID(ctx, bookID)
	if err != nil {
		return fail("Book not found")
	}

	if book.AvailableCopies <= 0 {
		return fail("This book is currently not available")
	}

	outstanding, err := s.repo.OutstandingCount(ctx, patronID)
	if err != nil {
		return fail("Database error occurred while checking borrow records")
	}
	if outstanding >= s.policy.MaxLoans {
		return fail(fmt.Sprintf("Patron has reached the maximum borrowing limit of %d books", s.policy.MaxLoans))
	}

	now := s.now()
	due := now.AddDate(0, 0, s.policy.LoanPeriodDays)
	rec := model.BorrowRecord{
		PatronID:   patronID,
		BookID:     book.ID,
		BorrowDate: now,
		DueDate:    due,
	}
	if err := s.repo.InsertBorrowRecord(ctx, rec); err != nil {
		return fail("Database error occurred while creating borrow record")
	}

	if err := s.repo.UpdateBookAvailability(ctx, book.ID, book.AvailableCopies-1); err != nil {
		return fail("Database error occurred while updating book availability")
	}

	s.publish(ctx, kafka.LendingEvent{
		Type:       kafka.EventBorrowed,
		PatronID:   patronID,
		BookID:     book.ID,
		OccurredAt: now,
	})

	return ok(fmt.Sprintf("Successfully borrowed %q. Due date: %s", book.Title, due.Format(time.DateOnly)))
}

// ReturnBook closes the patron's outstanding record for the book and restores
// availability, reporting any late fee in the message.
func (s *Service) ReturnBook(ctx context.Context, patronID string, bookID int) model.OpResult {
	if !validPatronID(patronID) {
		return fail(msgInvalidPatronID)
	}

	rec, err := s.repo.OutstandingRecord(ctx, patronID, bookID)
	if err != nil {
		return fail("Book not borrowed by patron")
	}

	now := s.now()
	fee := s.feeForRecord(rec, now)

	if err := s.repo.UpdateReturnDate(ctx, patronID, bookID, now); err != nil {
		return fail("Failed to update return record")
	}

	book, err := s.repo.GetBookByID(ctx, rec.BookID)
	if err != nil {
		return fail("Failed to update book availability")
	}
	if err := s.repo.UpdateBookAvailability(ctx, book.ID, book.AvailableCopies+1); err != nil {
		return fail("Failed to update book availability")
	}

	s.publish(ctx, kafka.LendingEvent{
		Type:       kafka.EventReturned,
		PatronID:   patronID,
		BookID:     rec.BookID,
		OccurredAt: now,
		LateFee:    fee.FeeAmount,
	})

	msg := "Book returned successfully."
	if fee.DaysOverdue > 0 {
		msg = fmt.Sprintf("Book returned successfully. Late fee: $%.2f (%d days late)", fee.FeeAmount, fee.DaysOverdue)
	}
	return ok(msg)
}
