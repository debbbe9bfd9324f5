package handler

import (
	"context"

	"github.com/bookkeep/lending-service/library/internal/model"
	"github.com/bookkeep/lending-service/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

type LibraryService interface {
	AddBook(ctx context.Context, req model.AddBookRequest) model.OpResult
	SearchBooks(ctx context.Context, term string, field model.SearchField) ([]model.Book, error)
	BorrowBook(ctx context.Context, patronID string, bookID int) model.OpResult
	ReturnBook(ctx context.Context, patronID string, bookID int) model.OpResult
	CalculateLateFee(ctx context.Context, patronID string, bookID int) model.LateFeeResult
	PayLateFees(ctx context.Context, patronID string, bookID int) model.PaymentResult
	RefundLateFeePayment(ctx context.Context, transactionID string, amount float64) model.OpResult
	PatronStatusReport(ctx context.Context, patronID string) model.StatusReportResult
}

var _ LibraryService = (*service.Service)(nil)
