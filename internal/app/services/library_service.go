package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jenidevops/studentdb/internal/app/filters"
	"github.com/jenidevops/studentdb/internal/app/models"
	"github.com/jenidevops/studentdb/internal/app/models/dto"
	"github.com/jenidevops/studentdb/internal/app/repositories"
	"github.com/jenidevops/studentdb/internal/pkg/apperrors"
	"github.com/jenidevops/studentdb/internal/seed"
)

// loanPeriod is how long a borrowed book is lent out for.
const loanPeriod = 14 * 24 * time.Hour

// LibraryService defines the interface for the book catalog and the
// borrow/return lending workflow
type LibraryService interface {
	ListBooks(ctx context.Context) ([]*models.Book, error)
	AddBook(ctx context.Context, req dto.CreateBookRequest) (*models.Book, error)
	AvailableBooks(ctx context.Context) ([]*models.Book, error)
	BooksByCategory(ctx context.Context, category string) ([]*models.Book, error)
	InsertSampleData(ctx context.Context) ([]*models.Book, error)
	Borrow(ctx context.Context, bookID, studentID uuid.UUID) (*models.Book, error)
	Return(ctx context.Context, bookID uuid.UUID) (*models.Book, error)
}

// libraryServiceImpl implements the LibraryService interface
type libraryServiceImpl struct {
	books    BookStore
	students StudentStore
	now      func() time.Time
}

// NewLibraryService creates a new library service instance
func NewLibraryService(books BookStore, students StudentStore) LibraryService {
	return &libraryServiceImpl{
		books:    books,
		students: students,
		now:      time.Now,
	}
}

// ListBooks retrieves all books, each enriched with its borrower when lent out
func (s *libraryServiceImpl) ListBooks(ctx context.Context) ([]*models.Book, error) {
	books, err := s.books.Find(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error retrieving books: %w", err)
	}
	return books, nil
}

// AddBook inserts a new book into the catalog
func (s *libraryServiceImpl) AddBook(ctx context.Context, req dto.CreateBookRequest) (*models.Book, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Author) == "" {
		return nil, fmt.Errorf("%w: author cannot be empty", apperrors.ErrValidationFailed)
	}

	book := &models.Book{
		Title:  req.Title,
		Author: req.Author,
	}
	if req.ISBN != "" {
		book.ISBN = &req.ISBN
	}
	if req.Category != "" {
		book.Category = &req.Category
	}

	if _, err := s.books.Create(ctx, book); err != nil {
		if errors.Is(err, repositories.ErrDuplicateISBN) {
			return nil, fmt.Errorf("%w: a book with this ISBN already exists", apperrors.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("error adding book: %w", err)
	}
	return book, nil
}

// AvailableBooks retrieves books that are currently available for borrowing
func (s *libraryServiceImpl) AvailableBooks(ctx context.Context) ([]*models.Book, error) {
	books, err := s.books.Find(ctx, filters.Available())
	if err != nil {
		return nil, fmt.Errorf("error retrieving available books: %w", err)
	}
	return books, nil
}

// BooksByCategory retrieves books whose category matches the given text,
// case-insensitively
func (s *libraryServiceImpl) BooksByCategory(ctx context.Context, category string) ([]*models.Book, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("%w: category cannot be empty", apperrors.ErrValidationFailed)
	}

	books, err := s.books.Find(ctx, filters.CategoryMatches(category))
	if err != nil {
		return nil, fmt.Errorf("error retrieving books by category: %w", err)
	}
	return books, nil
}

// InsertSampleData inserts the canned demo catalog
func (s *libraryServiceImpl) InsertSampleData(ctx context.Context) ([]*models.Book, error) {
	books := seed.SampleBooks()
	if err := s.books.CreateMany(ctx, books); err != nil {
		if errors.Is(err, repositories.ErrDuplicateISBN) {
			return nil, fmt.Errorf("%w: sample books already inserted", apperrors.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("error inserting sample books: %w", err)
	}
	return books, nil
}

// Borrow lends a book to a student for the loan period. The availability
// check happens twice: once up front for a precise error, and again inside
// the store write so a concurrent borrow of the same book cannot slip
// through.
func (s *libraryServiceImpl) Borrow(ctx context.Context, bookID, studentID uuid.UUID) (*models.Book, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrBookNotFound
		}
		return nil, fmt.Errorf("error looking up book: %w", err)
	}
	if !book.Available {
		return nil, apperrors.ErrBookAlreadyBorrowed
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error looking up student: %w", err)
	}

	borrowedAt := s.now().UTC()
	book, err = s.books.Borrow(ctx, bookID, studentID, borrowedAt, borrowedAt.Add(loanPeriod))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// The book existed and was available a moment ago, so zero
			// rows means a concurrent borrow won the race.
			return nil, apperrors.ErrBookAlreadyBorrowed
		}
		return nil, fmt.Errorf("error borrowing book: %w", err)
	}

	// The conditional write returns bare book columns; resolve the borrower
	// from the student fetched above.
	book.Borrower = &models.Borrower{Name: student.Name, Email: student.Email}

	return book, nil
}

// Return puts a borrowed book back on the shelf, clearing its borrow fields
func (s *libraryServiceImpl) Return(ctx context.Context, bookID uuid.UUID) (*models.Book, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrBookNotFound
		}
		return nil, fmt.Errorf("error looking up book: %w", err)
	}
	if book.Available {
		return nil, apperrors.ErrBookNotBorrowed
	}

	book, err = s.books.Return(ctx, bookID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrBookNotBorrowed
		}
		return nil, fmt.Errorf("error returning book: %w", err)
	}

	return book, nil
}
