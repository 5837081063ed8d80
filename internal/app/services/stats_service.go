package services

import (
	"context"
	"fmt"

	"github.com/jenidevops/studentdb/internal/app/filters"
	"github.com/jenidevops/studentdb/internal/app/models"
	"github.com/jenidevops/studentdb/internal/app/models/dto"
)

// StatsService reports collection counts for the diagnostics endpoints
type StatsService interface {
	Collect(ctx context.Context) (*dto.StatsResponse, error)
}

// statsServiceImpl implements the StatsService interface
type statsServiceImpl struct {
	students StudentStore
	books    BookStore
	dbName   string
}

// NewStatsService creates a new stats service instance
func NewStatsService(students StudentStore, books BookStore, dbName string) StatsService {
	return &statsServiceImpl{
		students: students,
		books:    books,
		dbName:   dbName,
	}
}

// Collect gathers student and book counts in one pass
func (s *statsServiceImpl) Collect(ctx context.Context) (*dto.StatsResponse, error) {
	totalStudents, err := s.students.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	byStatus := dto.StudentStatusCounts{}
	for status, target := range map[models.StudentStatus]*int64{
		models.StatusEnrolled:  &byStatus.Enrolled,
		models.StatusCompleted: &byStatus.Completed,
		models.StatusDropped:   &byStatus.Dropped,
	} {
		count, err := s.students.Count(ctx, filters.StatusEquals(status))
		if err != nil {
			return nil, fmt.Errorf("error counting %s students: %w", status, err)
		}
		*target = count
	}

	totalBooks, err := s.books.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error counting books: %w", err)
	}

	availableBooks, err := s.books.Count(ctx, filters.Available())
	if err != nil {
		return nil, fmt.Errorf("error counting available books: %w", err)
	}

	return &dto.StatsResponse{
		Database: s.dbName,
		Students: dto.StudentStats{
			Total:    totalStudents,
			ByStatus: byStatus,
		},
		Books: dto.BookStats{
			Total:     totalBooks,
			Available: availableBooks,
			Borrowed:  totalBooks - availableBooks,
		},
	}, nil
}
