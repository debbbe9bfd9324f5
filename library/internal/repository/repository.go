package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookkeep/lending-service/library/internal/errs"
	"github.com/bookkeep/lending-service/library/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go -package=mocks

// Repository is the record store port. It exclusively owns persisted Book and
// BorrowRecord state; the engine re-reads through it before every mutation.
type Repository interface {
	InsertBook(ctx context.Context, book model.Book) (int, error)
	GetBookByID(ctx context.Context, id int) (model.Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (model.Book, error)
	SearchBooksByTitle(ctx context.Context, term string) ([]model.Book, error)
	SearchBooksByAuthor(ctx context.Context, term string) ([]model.Book, error)
	UpdateBookAvailability(ctx context.Context, bookID, available int) error

	InsertBorrowRecord(ctx context.Context, rec model.BorrowRecord) error
	UpdateReturnDate(ctx context.Context, patronID string, bookID int, returnedAt time.Time) error
	OutstandingCount(ctx context.Context, patronID string) (int, error)
	OutstandingRecord(ctx context.Context, patronID string, bookID int) (model.BorrowRecord, error)
	LatestRecord(ctx context.Context, patronID string, bookID int) (model.BorrowRecord, error)
	RecordsByPatron(ctx context.Context, patronID string) ([]model.BorrowRecord, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName         = `books`
	borrowRecordsTableName = `borrow_records`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var bookColumns = []string{"id", "title", "author", "isbn", "total_copies", "available_copies"}

var recordColumns = []string{"id", "patron_id", "book_id", "borrow_date", "due_date", "return_date"}

func (r *repository) InsertBook(ctx context.Context, book model.Book) (int, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "total_copies", "available_copies").
		Values(book.Title, book.Author, book.ISBN, book.TotalCopies, book.AvailableCopies).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, errs.ErrDuplicateISBN
		}
		r.log.Error("InsertBook", zap.String("q", query), zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *repository) GetBookByID(ctx context.Context, id int) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBookByISBN(ctx context.Context, isbn string) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"isbn": isbn}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) SearchBooksByTitle(ctx context.Context, term string) ([]model.Book, error) {
	return r.searchBooks(ctx, "title", term)
}

func (r *repository) SearchBooksByAuthor(ctx context.Context, term string) ([]model.Book, error) {
	return r.searchBooks(ctx, "author", term)
}

func (r *repository) searchBooks(ctx context.Context, column, term string) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.ILike{column: "%" + term + "%"}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) UpdateBookAvailability(ctx context.Context, bookID, available int) error {
	query, args, err := qb.Update(booksTableName).
		Set("available_copies", available).
		Where(sq.Eq{"id": bookID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) InsertBorrowRecord(ctx context.Context, rec model.BorrowRecord) error {
	query, args, err := qb.Insert(borrowRecordsTableName).
		Columns("patron_id", "book_id", "borrow_date", "due_date").
		Values(rec.PatronID, rec.BookID, rec.BorrowDate, rec.DueDate).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.log.Error("InsertBorrowRecord", zap.String("q", query), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) UpdateReturnDate(ctx context.Context, patronID string, bookID int, returnedAt time.Time) error {
	query, args, err := qb.Update(borrowRecordsTableName).
		Set("return_date", returnedAt).
		Where(sq.Eq{"patron_id": patronID, "book_id": bookID, "return_date": nil}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) OutstandingCount(ctx context.Context, patronID string) (int, error) {
	q := `
select count(*) from borrow_records
where patron_id = $1 and return_date is null`

	var count int
	if err := r.db.QueryRowContext(ctx, q, patronID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) OutstandingRecord(ctx context.Context, patronID string, bookID int) (model.BorrowRecord, error) {
	query, args, err := qb.Select(recordColumns...).
		From(borrowRecordsTableName).
		Where(sq.Eq{"patron_id": patronID, "book_id": bookID, "return_date": nil}).
		OrderBy("borrow_date desc").
		Limit(1).
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}

	var rec model.BorrowRecord
	if err := r.db.GetContext(ctx, &rec, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRecord{}, errs.ErrNotFound
		}
		return model.BorrowRecord{}, err
	}
	return rec, nil
}

// LatestRecord prefers an outstanding record and falls back to the most
// recently returned one.
func (r *repository) LatestRecord(ctx context.Context, patronID string, bookID int) (model.BorrowRecord, error) {
	q := `
select id, patron_id, book_id, borrow_date, due_date, return_date
from borrow_records
where patron_id = $1 and book_id = $2
order by (return_date is null) desc, return_date desc, borrow_date desc
limit 1`

	var rec model.BorrowRecord
	if err := r.db.GetContext(ctx, &rec, q, patronID, bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRecord{}, errs.ErrNotFound
		}
		return model.BorrowRecord{}, err
	}
	return rec, nil
}

func (r *repository) RecordsByPatron(ctx context.Context, patronID string) ([]model.BorrowRecord, error) {
	query, args, err := qb.Select(recordColumns...).
		From(borrowRecordsTableName).
		Where(sq.Eq{"patron_id": patronID}).
		OrderBy("borrow_date").
		ToSql()
	if err != nil {
		return nil, err
	}

	recs := make([]model.BorrowRecord, 0)
	if err := r.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, err
	}
	return recs, nil
}
