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
	"github.com/jenidevops/studentdb/internal/pkg/logger"
)

const studentColumns = "id, name, age, course, status, enrollment_date, email, phone"

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Age,
		&student.Course,
		&student.Status,
		&student.EnrollmentDate,
		&student.Email,
		&student.Phone,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// applyStudentDefaults fills in store-assigned fields before an insert.
func applyStudentDefaults(student *models.Student) {
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	if student.Status == "" {
		student.Status = models.StatusEnrolled
	}
	if student.EnrollmentDate.IsZero() {
		student.EnrollmentDate = time.Now().UTC()
	}
}

// Create inserts a new student and returns its store-assigned ID.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (uuid.UUID, error) {
	applyStudentDefaults(student)

	sql, args, err := r.sb.Insert("students").
		Columns("id", "name", "age", "course", "status", "enrollment_date", "email", "phone").
		Values(student.ID, student.Name, student.Age, student.Course, student.Status,
			student.EnrollmentDate, student.Email, student.Phone).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return uuid.Nil, fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create student query")
		return uuid.Nil, fmt.Errorf("error creating student: %w", err)
	}

	return student.ID, nil
}

// CreateMany inserts a batch of students in a single statement.
func (r *StudentRepository) CreateMany(ctx context.Context, students []*models.Student) error {
	if len(students) == 0 {
		return nil
	}

	builder := r.sb.Insert("students").
		Columns("id", "name", "age", "course", "status", "enrollment_date", "email", "phone")
	for _, student := range students {
		applyStudentDefaults(student)
		builder = builder.Values(student.ID, student.Name, student.Age, student.Course,
			student.Status, student.EnrollmentDate, student.Email, student.Phone)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create students SQL")
		return fmt.Errorf("failed to build create students query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int("count", len(students)).Msg("Error executing create students query")
		return fmt.Errorf("error creating students: %w", err)
	}

	return nil
}

// Find retrieves all students matching the given predicate.
// A nil predicate matches every student.
func (r *StudentRepository) Find(ctx context.Context, pred squirrel.Sqlizer) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(pred).
		OrderBy("enrollment_date ASC, name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find students SQL")
		return nil, fmt.Errorf("failed to build find students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("studentID", id.String()).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// UpdateByID applies a partial update to one student and returns the updated row.
func (r *StudentRepository) UpdateByID(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*models.Student, error) {
	sql, args, err := r.sb.Update("students").
		SetMap(changes).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + studentColumns).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return nil, fmt.Errorf("failed to build update student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("studentID", id.String()).Msg("Error executing update student query")
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return student, nil
}

// updateManySQL builds the bulk update statement. Unlike SelectBuilder,
// UpdateBuilder has no nil guard on Where: chaining a nil predicate renders
// a dangling WHERE clause, so it is only added when present.
func (r *StudentRepository) updateManySQL(pred squirrel.Sqlizer, changes map[string]interface{}) (string, []interface{}, error) {
	builder := r.sb.Update("students").SetMap(changes)
	if pred != nil {
		builder = builder.Where(pred)
	}
	return builder.ToSql()
}

// deleteManySQL builds the bulk delete statement, with the same nil-predicate
// handling as updateManySQL.
func (r *StudentRepository) deleteManySQL(pred squirrel.Sqlizer) (string, []interface{}, error) {
	builder := r.sb.Delete("students")
	if pred != nil {
		builder = builder.Where(pred)
	}
	return builder.ToSql()
}

// UpdateMany applies the given changes to every student matching the predicate
// and reports how many rows were touched.
func (r *StudentRepository) UpdateMany(ctx context.Context, pred squirrel.Sqlizer, changes map[string]interface{}) (int64, error) {
	sql, args, err := r.updateManySQL(pred, changes)
	if err != nil {
		logger.Error().Err(err).Msg("Error building bulk update students SQL")
		return 0, fmt.Errorf("failed to build bulk update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing bulk update students query")
		return 0, fmt.Errorf("error updating students: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// DeleteByID deletes one student and returns the deleted row.
func (r *StudentRepository) DeleteByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + studentColumns).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return nil, fmt.Errorf("failed to build delete student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("studentID", id.String()).Msg("Error executing delete student query")
		return nil, fmt.Errorf("error deleting student: %w", err)
	}

	return student, nil
}

// DeleteMany deletes every student matching the predicate and reports the count.
// A nil predicate deletes all students.
func (r *StudentRepository) DeleteMany(ctx context.Context, pred squirrel.Sqlizer) (int64, error) {
	sql, args, err := r.deleteManySQL(pred)
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete students SQL")
		return 0, fmt.Errorf("failed to build delete students query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete students query")
		return 0, fmt.Errorf("error deleting students: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// Count reports how many students match the predicate.
func (r *StudentRepository) Count(ctx context.Context, pred squirrel.Sqlizer) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("students").
		Where(pred).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count students SQL")
		return 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing count students query")
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return count, nil
}
