package model

import (
	"time"
)

type Book struct {
	ID              int    `json:"id" db:"id"`
	Title           string `json:"title" db:"title"`
	Author          string `json:"author" db:"author"`
	ISBN            string `json:"isbn" db:"isbn"`
	TotalCopies     int    `json:"totalCopies" db:"total_copies"`
	AvailableCopies int    `json:"availableCopies" db:"available_copies"`
}

type AddBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	TotalCopies int    `json:"totalCopies"`
}

type SearchField string

const (
	FieldTitle  SearchField = "title"
	FieldAuthor SearchField = "author"
	FieldISBN   SearchField = "isbn"
)

// BorrowRecord is never deleted; a return sets ReturnDate once.
type BorrowRecord struct {
	ID         int        `json:"-" db:"id"`
	PatronID   string     `json:"patronId" db:"patron_id"`
	BookID     int        `json:"bookId" db:"book_id"`
	BorrowDate time.Time  `json:"borrowDate" db:"borrow_date"`
	DueDate    time.Time  `json:"dueDate" db:"due_date"`
	ReturnDate *time.Time `json:"returnDate,omitempty" db:"return_date"`
}

// Outstanding reports whether the book has not been returned yet.
func (r BorrowRecord) Outstanding() bool {
	return r.ReturnDate == nil
}

// OpResult is the stable pair shape rendered by the presentation layer.
// Message text is part of the contract, not just the flag.
type OpResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LateFeeResult struct {
	FeeAmount   float64 `json:"feeAmount"`
	DaysOverdue int     `json:"daysOverdue"`
	Status      string  `json:"status"`
}

type PaymentResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transactionId,omitempty"`
}

type PatronStatusReport struct {
	PatronID          string         `json:"patronId"`
	CurrentlyBorrowed []BorrowRecord `json:"currentlyBorrowed"`
	BorrowingHistory  []BorrowRecord `json:"borrowingHistory"`
	NumberBorrowed    int            `json:"numberBorrowed"`
	TotalLate         float64        `json:"totalLate"`
}

// StatusReportResult is a tagged result: the failure variant carries only the
// message, the success variant carries the report.
type StatusReportResult struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Report  *PatronStatusReport `json:"report,omitempty"`
}

// PaymentOutcome is the gateway's answer to a charge. A declined charge is an
// outcome, not an error; errors mean the collaborator itself failed.
type PaymentOutcome struct {
	Approved      bool   `json:"approved"`
	TransactionID string `json:"transactionId"`
	Detail        string `json:"detail"`
}

type RefundOutcome struct {
	Approved bool   `json:"approved"`
	Detail   string `json:"detail"`
}
