package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jenidevops/studentdb/internal/app/models"
	"github.com/jenidevops/studentdb/internal/pkg/dberrors"
	"github.com/jenidevops/studentdb/internal/pkg/logger"
)

const bookColumns = "id, title, author, isbn, category, available, borrowed_by, borrow_date, due_date"

// bookJoinColumns selects book fields plus the borrower's name/email for
// read-enrichment. The join is against the weak borrowed_by reference, so a
// borrowed book whose student was deleted still comes back (borrower nil).
const bookJoinColumns = "b.id, b.title, b.author, b.isbn, b.category, b.available, " +
	"b.borrowed_by, b.borrow_date, b.due_date, s.name, s.email"

// BookRepository handles book database operations
type BookRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBookRepository creates a new BookRepository
func NewBookRepository(db *pgxpool.Pool) *BookRepository {
	return &BookRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanBook(row pgx.Row) (*models.Book, error) {
	book := &models.Book{}
	err := row.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.ISBN,
		&book.Category,
		&book.Available,
		&book.BorrowedBy,
		&book.BorrowDate,
		&book.DueDate,
	)
	if err != nil {
		return nil, err
	}
	return book, nil
}

func scanBookWithBorrower(row pgx.Row) (*models.Book, error) {
	book := &models.Book{}
	var borrowerName, borrowerEmail *string
	err := row.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.ISBN,
		&book.Category,
		&book.Available,
		&book.BorrowedBy,
		&book.BorrowDate,
		&book.DueDate,
		&borrowerName,
		&borrowerEmail,
	)
	if err != nil {
		return nil, err
	}
	if borrowerName != nil {
		book.Borrower = &models.Borrower{Name: *borrowerName, Email: borrowerEmail}
	}
	return book, nil
}

func applyBookDefaults(book *models.Book) {
	if book.ID == uuid.Nil {
		book.ID = uuid.New()
	}
	if book.BorrowedBy == nil {
		book.Available = true
	}
}

// Create inserts a new book and returns its store-assigned ID.
func (r *BookRepository) Create(ctx context.Context, book *models.Book) (uuid.UUID, error) {
	applyBookDefaults(book)

	sql, args, err := r.sb.Insert("books").
		Columns("id", "title", "author", "isbn", "category", "available").
		Values(book.ID, book.Title, book.Author, book.ISBN, book.Category, book.Available).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create book SQL")
		return uuid.Nil, fmt.Errorf("failed to build create book query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return uuid.Nil, ErrDuplicateISBN
		}
		logger.Error().Err(err).Msg("Error executing create book query")
		return uuid.Nil, fmt.Errorf("error creating book: %w", err)
	}

	return book.ID, nil
}

// CreateMany inserts a batch of books in a single statement.
func (r *BookRepository) CreateMany(ctx context.Context, books []*models.Book) error {
	if len(books) == 0 {
		return nil
	}

	builder := r.sb.Insert("books").
		Columns("id", "title", "author", "isbn", "category", "available")
	for _, book := range books {
		applyBookDefaults(book)
		builder = builder.Values(book.ID, book.Title, book.Author, book.ISBN, book.Category, book.Available)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create books SQL")
		return fmt.Errorf("failed to build create books query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrDuplicateISBN
		}
		logger.Error().Err(err).Int("count", len(books)).Msg("Error executing create books query")
		return fmt.Errorf("error creating books: %w", err)
	}

	return nil
}

// Find retrieves all books matching the given predicate, each enriched with
// its borrower's name and email when lent out. A nil predicate matches all.
func (r *BookRepository) Find(ctx context.Context, pred squirrel.Sqlizer) ([]*models.Book, error) {
	sql, args, err := r.sb.Select(bookJoinColumns).
		From("books b").
		LeftJoin("students s ON s.id = b.borrowed_by").
		Where(pred).
		OrderBy("b.title ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find books SQL")
		return nil, fmt.Errorf("failed to build find books query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find books query")
		return nil, fmt.Errorf("error querying books: %w", err)
	}
	defer rows.Close()

	books := []*models.Book{}
	for rows.Next() {
		book, err := scanBookWithBorrower(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning book row")
			return nil, fmt.Errorf("error scanning book row: %w", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating book rows")
		return nil, fmt.Errorf("error iterating book rows: %w", err)
	}

	return books, nil
}

// GetByID retrieves a book by ID
func (r *BookRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Book, error) {
	sql, args, err := r.sb.Select(bookColumns).
		From("books").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get book by ID SQL")
		return nil, fmt.Errorf("failed to build get book query: %w", err)
	}

	book, err := scanBook(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("bookID", id.String()).Msg("Error scanning book row")
		return nil, fmt.Errorf("error getting book by ID: %w", err)
	}

	return book, nil
}

// Borrow atomically transitions a book to the borrowed state. The
// availability check is part of the write predicate, so two racing borrows
// cannot both succeed: the loser sees ErrNotFound and the caller
// disambiguates against the book's current state.
func (r *BookRepository) Borrow(ctx context.Context, bookID, studentID uuid.UUID, borrowedAt, dueAt time.Time) (*models.Book, error) {
	sql, args, err := r.sb.Update("books").
		SetMap(map[string]interface{}{
			"available":   false,
			"borrowed_by": studentID,
			"borrow_date": borrowedAt,
			"due_date":    dueAt,
		}).
		Where(squirrel.Eq{"id": bookID, "available": true}).
		Suffix("RETURNING " + bookColumns).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building borrow book SQL")
		return nil, fmt.Errorf("failed to build borrow query: %w", err)
	}

	book, err := scanBook(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("bookID", bookID.String()).Msg("Error executing borrow book query")
		return nil, fmt.Errorf("error borrowing book: %w", err)
	}

	return book, nil
}

// Return atomically transitions a book back to the available state, clearing
// the borrow fields. Mirrors Borrow: the borrowed precondition is part of
// the write predicate.
func (r *BookRepository) Return(ctx context.Context, bookID uuid.UUID) (*models.Book, error) {
	sql, args, err := r.sb.Update("books").
		SetMap(map[string]interface{}{
			"available":   true,
			"borrowed_by": nil,
			"borrow_date": nil,
			"due_date":    nil,
		}).
		Where(squirrel.Eq{"id": bookID, "available": false}).
		Suffix("RETURNING " + bookColumns).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building return book SQL")
		return nil, fmt.Errorf("failed to build return query: %w", err)
	}

	book, err := scanBook(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("bookID", bookID.String()).Msg("Error executing return book query")
		return nil, fmt.Errorf("error returning book: %w", err)
	}

	return book, nil
}

// Count reports how many books match the predicate.
func (r *BookRepository) Count(ctx context.Context, pred squirrel.Sqlizer) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("books").
		Where(pred).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count books SQL")
		return 0, fmt.Errorf("failed to build count books query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing count books query")
		return 0, fmt.Errorf("error counting books: %w", err)
	}

	return count, nil
}
