package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenidevops/studentdb/internal/app/models"
	"github.com/jenidevops/studentdb/internal/app/models/dto"
	"github.com/jenidevops/studentdb/internal/app/services"
	"github.com/jenidevops/studentdb/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validCreateRequest() dto.CreateStudentRequest {
	return dto.CreateStudentRequest{
		Name:   "John Doe",
		Age:    intPtr(22),
		Course: "MERN Stack",
	}
}

func Test_CreateStudent_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CreateStudentRequest)
	}{
		{
			name:   "empty_name",
			mutate: func(r *dto.CreateStudentRequest) { r.Name = "  " },
		},
		{
			name:   "missing_age",
			mutate: func(r *dto.CreateStudentRequest) { r.Age = nil },
		},
		{
			name:   "negative_age",
			mutate: func(r *dto.CreateStudentRequest) { r.Age = intPtr(-1) },
		},
		{
			name:   "empty_course",
			mutate: func(r *dto.CreateStudentRequest) { r.Course = "" },
		},
		{
			name:   "unknown_status",
			mutate: func(r *dto.CreateStudentRequest) { r.Status = "graduated" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := services.NewStudentService(newFakeStudentStore())

			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func Test_CreateStudent_DefaultsToEnrolled(t *testing.T) {
	svc := services.NewStudentService(newFakeStudentStore())

	student, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, student.ID)
	assert.Equal(t, models.StatusEnrolled, student.Status)
	assert.Equal(t, 22, student.Age)
}

func Test_CreateStudent_ZeroAgeIsValid(t *testing.T) {
	svc := services.NewStudentService(newFakeStudentStore())

	req := validCreateRequest()
	req.Age = intPtr(0)

	student, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, student.Age)
}

func Test_CreateManyStudents_RejectsEmptyBatch(t *testing.T) {
	svc := services.NewStudentService(newFakeStudentStore())

	_, err := svc.CreateMany(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func Test_CreateManyStudents_AllOrNothingValidation(t *testing.T) {
	store := newFakeStudentStore()
	svc := services.NewStudentService(store)

	bad := validCreateRequest()
	bad.Course = ""

	_, err := svc.CreateMany(context.Background(), []dto.CreateStudentRequest{validCreateRequest(), bad})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, store.students)
}

func Test_UpdateStudent(t *testing.T) {
	t.Run("unknown_student", func(t *testing.T) {
		svc := services.NewStudentService(newFakeStudentStore())

		_, err := svc.Update(context.Background(), uuid.New(), dto.UpdateStudentRequest{Name: strPtr("New Name")})
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("no_fields", func(t *testing.T) {
		student := enrolledStudent()
		svc := services.NewStudentService(newFakeStudentStore(student))

		_, err := svc.Update(context.Background(), student.ID, dto.UpdateStudentRequest{})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("partial_update_leaves_other_fields", func(t *testing.T) {
		student := enrolledStudent()
		svc := services.NewStudentService(newFakeStudentStore(student))

		updated, err := svc.Update(context.Background(), student.ID, dto.UpdateStudentRequest{Course: strPtr("Data Science")})
		require.NoError(t, err)
		assert.Equal(t, "Data Science", updated.Course)
		assert.Equal(t, "John Doe", updated.Name)
	})
}

func Test_MarkCompleted(t *testing.T) {
	student := enrolledStudent()
	svc := services.NewStudentService(newFakeStudentStore(student))

	updated, err := svc.MarkCompleted(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)

	_, err = svc.MarkCompleted(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func Test_BulkUpdate_RejectsEmptyChangeSet(t *testing.T) {
	svc := services.NewStudentService(newFakeStudentStore())

	_, err := svc.BulkUpdate(context.Background(), dto.BulkUpdateStudentsRequest{
		Filter: dto.StudentFilter{Course: strPtr("MERN Stack")},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func Test_DeleteByCondition(t *testing.T) {
	t.Run("empty_condition_is_rejected", func(t *testing.T) {
		svc := services.NewStudentService(newFakeStudentStore(enrolledStudent()))

		_, err := svc.DeleteByCondition(context.Background(), dto.DeleteByConditionRequest{})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("no_match_reports_not_found", func(t *testing.T) {
		svc := services.NewStudentService(newFakeStudentStore())

		_, err := svc.DeleteByCondition(context.Background(), dto.DeleteByConditionRequest{
			Condition: dto.StudentFilter{Course: strPtr("MERN Stack")},
		})
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}

func Test_ByAgeRange_RejectsNegativeBounds(t *testing.T) {
	svc := services.NewStudentService(newFakeStudentStore())

	_, err := svc.ByAgeRange(context.Background(), -1, 25)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func Test_ComplexQuery_Descriptions(t *testing.T) {
	svc := services.NewStudentService(newFakeStudentStore())

	tests := []struct {
		queryType string
		want      string
	}{
		{queryType: "and", want: "Students aged 22-25 AND enrolled in MERN Stack"},
		{queryType: "or", want: "Students either completed OR aged above 24"},
		{queryType: "exists", want: "Students who have email field"},
		{queryType: "", want: "All students"},
		{queryType: "unknown", want: "All students"},
	}

	for _, tt := range tests {
		_, description, err := svc.ComplexQuery(context.Background(), tt.queryType)
		require.NoError(t, err)
		assert.Equal(t, tt.want, description)
	}
}

func Test_InsertSampleStudents(t *testing.T) {
	store := newFakeStudentStore()
	svc := services.NewStudentService(store)

	students, err := svc.InsertSampleData(context.Background())
	require.NoError(t, err)
	assert.Len(t, students, 5)
	assert.Len(t, store.students, 5)
}
