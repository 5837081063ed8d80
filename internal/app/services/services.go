package services

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/jenidevops/studentdb/internal/app/models"
)

// Services defined in this package:
// - StudentService: CRUD and query operations over the students collection
// - LibraryService: book catalog plus the borrow/return lending workflow
// - StatsService: collection counts for the diagnostics endpoints

// StudentStore is the persistence contract the student service consumes.
// Satisfied by *repositories.StudentRepository.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) (uuid.UUID, error)
	CreateMany(ctx context.Context, students []*models.Student) error
	Find(ctx context.Context, pred squirrel.Sqlizer) ([]*models.Student, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	UpdateByID(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*models.Student, error)
	UpdateMany(ctx context.Context, pred squirrel.Sqlizer, changes map[string]interface{}) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	DeleteMany(ctx context.Context, pred squirrel.Sqlizer) (int64, error)
	Count(ctx context.Context, pred squirrel.Sqlizer) (int64, error)
}

// BookStore is the persistence contract the library service consumes.
// Satisfied by *repositories.BookRepository.
type BookStore interface {
	Create(ctx context.Context, book *models.Book) (uuid.UUID, error)
	CreateMany(ctx context.Context, books []*models.Book) error
	Find(ctx context.Context, pred squirrel.Sqlizer) ([]*models.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Book, error)
	Borrow(ctx context.Context, bookID, studentID uuid.UUID, borrowedAt, dueAt time.Time) (*models.Book, error)
	Return(ctx context.Context, bookID uuid.UUID) (*models.Book, error)
	Count(ctx context.Context, pred squirrel.Sqlizer) (int64, error)
}
