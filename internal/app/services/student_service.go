package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jenidevops/studentdb/internal/app/filters"
	"github.com/jenidevops/studentdb/internal/app/models"
	"github.com/jenidevops/studentdb/internal/app/models/dto"
	"github.com/jenidevops/studentdb/internal/app/repositories"
	"github.com/jenidevops/studentdb/internal/pkg/apperrors"
	"github.com/jenidevops/studentdb/internal/seed"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error)
	CreateMany(ctx context.Context, reqs []dto.CreateStudentRequest) ([]*models.Student, error)
	InsertSampleData(ctx context.Context) ([]*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	FilterByCourse(ctx context.Context, course string) ([]*models.Student, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateStudentRequest) (*models.Student, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) (*models.Student, error)
	BulkUpdate(ctx context.Context, req dto.BulkUpdateStudentsRequest) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Student, error)
	DeleteByCondition(ctx context.Context, req dto.DeleteByConditionRequest) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	ByAgeRange(ctx context.Context, minAge, maxAge int) ([]*models.Student, error)
	ByCourses(ctx context.Context, courses []string) ([]*models.Student, error)
	ComplexQuery(ctx context.Context, queryType string) ([]*models.Student, string, error)
	AdvancedSearch(ctx context.Context) ([]*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore) StudentService {
	return &studentServiceImpl{
		students: students,
	}
}

// validateNewStudent validates student data before database operations
func validateNewStudent(req dto.CreateStudentRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if req.Age == nil {
		return fmt.Errorf("%w: age is required", apperrors.ErrValidationFailed)
	}
	if *req.Age < 0 {
		return fmt.Errorf("%w: age cannot be negative", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(req.Course) == "" {
		return fmt.Errorf("%w: course cannot be empty", apperrors.ErrValidationFailed)
	}

	if req.Status != "" && !models.StudentStatus(req.Status).Valid() {
		return fmt.Errorf("%w: status must be one of enrolled, completed, dropped", apperrors.ErrValidationFailed)
	}

	return nil
}

func studentFromCreateRequest(req dto.CreateStudentRequest) *models.Student {
	student := &models.Student{
		Name:   req.Name,
		Age:    *req.Age,
		Course: req.Course,
		Status: models.StudentStatus(req.Status),
	}
	if req.Email != "" {
		student.Email = &req.Email
	}
	if req.Phone != "" {
		student.Phone = &req.Phone
	}
	return student
}

// Create inserts a single student
func (s *studentServiceImpl) Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	if err := validateNewStudent(req); err != nil {
		return nil, err
	}

	student := studentFromCreateRequest(req)
	if _, err := s.students.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}
	return student, nil
}

// CreateMany inserts a batch of students
func (s *studentServiceImpl) CreateMany(ctx context.Context, reqs []dto.CreateStudentRequest) ([]*models.Student, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: expected a non-empty array of students", apperrors.ErrValidationFailed)
	}

	students := make([]*models.Student, 0, len(reqs))
	for i, req := range reqs {
		if err := validateNewStudent(req); err != nil {
			return nil, fmt.Errorf("student %d: %w", i, err)
		}
		students = append(students, studentFromCreateRequest(req))
	}

	if err := s.students.CreateMany(ctx, students); err != nil {
		return nil, fmt.Errorf("error creating students: %w", err)
	}
	return students, nil
}

// InsertSampleData inserts the canned demo dataset
func (s *studentServiceImpl) InsertSampleData(ctx context.Context) ([]*models.Student, error) {
	students := seed.SampleStudents()
	if err := s.students.CreateMany(ctx, students); err != nil {
		return nil, fmt.Errorf("error inserting sample students: %w", err)
	}
	return students, nil
}

// List retrieves all students
func (s *studentServiceImpl) List(ctx context.Context) ([]*models.Student, error) {
	students, err := s.students.Find(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// FilterByCourse retrieves students enrolled in the given course.
// An empty course matches all students.
func (s *studentServiceImpl) FilterByCourse(ctx context.Context, course string) ([]*models.Student, error) {
	students, err := s.students.Find(ctx, filters.CourseEquals(course))
	if err != nil {
		return nil, fmt.Errorf("error retrieving filtered students: %w", err)
	}
	return students, nil
}

// Update applies a partial update to one student
func (s *studentServiceImpl) Update(ctx context.Context, id uuid.UUID, req dto.UpdateStudentRequest) (*models.Student, error) {
	changes := map[string]interface{}{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
		}
		changes["name"] = *req.Name
	}
	if req.Age != nil {
		if *req.Age < 0 {
			return nil, fmt.Errorf("%w: age cannot be negative", apperrors.ErrValidationFailed)
		}
		changes["age"] = *req.Age
	}
	if req.Course != nil {
		if strings.TrimSpace(*req.Course) == "" {
			return nil, fmt.Errorf("%w: course cannot be empty", apperrors.ErrValidationFailed)
		}
		changes["course"] = *req.Course
	}
	if req.Status != nil {
		if !models.StudentStatus(*req.Status).Valid() {
			return nil, fmt.Errorf("%w: status must be one of enrolled, completed, dropped", apperrors.ErrValidationFailed)
		}
		changes["status"] = *req.Status
	}
	if req.Email != nil {
		changes["email"] = *req.Email
	}
	if req.Phone != nil {
		changes["phone"] = *req.Phone
	}

	if len(changes) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", apperrors.ErrValidationFailed)
	}

	student, err := s.students.UpdateByID(ctx, id, changes)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return student, nil
}

// MarkCompleted sets a student's status to completed
func (s *studentServiceImpl) MarkCompleted(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	student, err := s.students.UpdateByID(ctx, id, map[string]interface{}{
		"status": models.StatusCompleted,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error updating student status: %w", err)
	}
	return student, nil
}

// BulkUpdate applies the restricted change set to every matching student and
// reports how many rows were touched.
func (s *studentServiceImpl) BulkUpdate(ctx context.Context, req dto.BulkUpdateStudentsRequest) (int64, error) {
	changes := filters.ChangesFromStudentUpdate(req.Update)
	if len(changes) == 0 {
		return 0, fmt.Errorf("%w: update must set at least one of status, course", apperrors.ErrValidationFailed)
	}
	if req.Update.Status != nil && !models.StudentStatus(*req.Update.Status).Valid() {
		return 0, fmt.Errorf("%w: status must be one of enrolled, completed, dropped", apperrors.ErrValidationFailed)
	}

	updated, err := s.students.UpdateMany(ctx, filters.FromStudentFilter(req.Filter), changes)
	if err != nil {
		return 0, fmt.Errorf("error updating students: %w", err)
	}
	return updated, nil
}

// Delete removes one student and returns the deleted record
func (s *studentServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	student, err := s.students.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error deleting student: %w", err)
	}
	return student, nil
}

// DeleteByCondition removes every student matching the given condition.
// An empty condition is rejected rather than deleting the whole collection.
func (s *studentServiceImpl) DeleteByCondition(ctx context.Context, req dto.DeleteByConditionRequest) (int64, error) {
	pred := filters.FromStudentFilter(req.Condition)
	if pred == nil {
		return 0, fmt.Errorf("%w: condition must set at least one field", apperrors.ErrValidationFailed)
	}

	deleted, err := s.students.DeleteMany(ctx, pred)
	if err != nil {
		return 0, fmt.Errorf("error deleting students by condition: %w", err)
	}
	if deleted == 0 {
		return 0, apperrors.ErrStudentNotFound
	}
	return deleted, nil
}

// DeleteAll removes every student and reports the count
func (s *studentServiceImpl) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := s.students.DeleteMany(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("error deleting all students: %w", err)
	}
	return deleted, nil
}

// ByAgeRange retrieves students strictly between the two bounds
func (s *studentServiceImpl) ByAgeRange(ctx context.Context, minAge, maxAge int) ([]*models.Student, error) {
	if minAge < 0 || maxAge < 0 {
		return nil, fmt.Errorf("%w: age bounds cannot be negative", apperrors.ErrValidationFailed)
	}

	students, err := s.students.Find(ctx, filters.AgeBetween(minAge, maxAge))
	if err != nil {
		return nil, fmt.Errorf("error retrieving students by age range: %w", err)
	}
	return students, nil
}

// ByCourses retrieves students enrolled in any of the given courses
func (s *studentServiceImpl) ByCourses(ctx context.Context, courses []string) ([]*models.Student, error) {
	students, err := s.students.Find(ctx, filters.CourseIn(courses))
	if err != nil {
		return nil, fmt.Errorf("error retrieving students by courses: %w", err)
	}
	return students, nil
}

// ComplexQuery runs one of the fixed demonstration queries and returns the
// matching students along with a description of the applied filter.
func (s *studentServiceImpl) ComplexQuery(ctx context.Context, queryType string) ([]*models.Student, string, error) {
	var (
		pred        = filters.AgeRangeAndCourse()
		description string
	)

	switch queryType {
	case "and":
		pred = filters.AgeRangeAndCourse()
		description = "Students aged 22-25 AND enrolled in MERN Stack"
	case "or":
		pred = filters.CompletedOrOlderThan24()
		description = "Students either completed OR aged above 24"
	case "exists":
		pred = filters.HasEmail()
		description = "Students who have email field"
	default:
		pred = nil
		description = "All students"
	}

	students, err := s.students.Find(ctx, pred)
	if err != nil {
		return nil, "", fmt.Errorf("error executing complex query: %w", err)
	}
	return students, description, nil
}

// AdvancedSearch runs the fixed combined-operator demonstration query
func (s *studentServiceImpl) AdvancedSearch(ctx context.Context) ([]*models.Student, error) {
	students, err := s.students.Find(ctx, filters.AdvancedSearch())
	if err != nil {
		return nil, fmt.Errorf("error executing advanced search: %w", err)
	}
	return students, nil
}
