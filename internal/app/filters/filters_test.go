package filters_test

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenidevops/studentdb/internal/app/filters"
	"github.com/jenidevops/studentdb/internal/app/models"
	"github.com/jenidevops/studentdb/internal/app/models/dto"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func Test_StudentPredicates(t *testing.T) {
	tests := []struct {
		name     string
		pred     squirrel.Sqlizer
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "course_equals",
			pred:     filters.CourseEquals("MERN Stack"),
			wantSQL:  "course = ?",
			wantArgs: []interface{}{"MERN Stack"},
		},
		{
			name:     "age_between_uses_strict_bounds",
			pred:     filters.AgeBetween(22, 25),
			wantSQL:  "(age > ? AND age < ?)",
			wantArgs: []interface{}{22, 25},
		},
		{
			name:     "course_in_defaults_when_empty",
			pred:     filters.CourseIn(nil),
			wantSQL:  "course IN (?,?)",
			wantArgs: []interface{}{"MERN Stack", "Python Development"},
		},
		{
			name:     "course_in_with_explicit_courses",
			pred:     filters.CourseIn([]string{"Data Science"}),
			wantSQL:  "course IN (?)",
			wantArgs: []interface{}{"Data Science"},
		},
		{
			name:     "has_email_requires_present_and_non_empty",
			pred:     filters.HasEmail(),
			wantSQL:  "(email IS NOT NULL AND email <> ?)",
			wantArgs: []interface{}{""},
		},
		{
			name:     "age_range_and_course_conjunction",
			pred:     filters.AgeRangeAndCourse(),
			wantSQL:  "(age >= ? AND age <= ? AND course = ?)",
			wantArgs: []interface{}{22, 25, "MERN Stack"},
		},
		{
			name:     "completed_or_older_than_24_disjunction",
			pred:     filters.CompletedOrOlderThan24(),
			wantSQL:  "(status = ? OR age > ?)",
			wantArgs: []interface{}{models.StatusCompleted, 24},
		},
		{
			name: "advanced_search_combines_all_operators",
			pred: filters.AdvancedSearch(),
			wantSQL: "(age >= ? AND age <= ? AND course IN (?,?,?) AND email IS NOT NULL" +
				" AND (status = ? OR status = ?))",
			wantArgs: []interface{}{
				20, 25,
				"MERN Stack", "Python Development", "Data Science",
				models.StatusEnrolled, models.StatusCompleted,
			},
		},
		{
			name:     "status_equals",
			pred:     filters.StatusEquals(models.StatusDropped),
			wantSQL:  "status = ?",
			wantArgs: []interface{}{models.StatusDropped},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.pred.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_CourseEquals_EmptyCourseMeansNoFilter(t *testing.T) {
	assert.Nil(t, filters.CourseEquals(""))
}

func Test_BookPredicates(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		sql, args, err := filters.Available().ToSql()
		require.NoError(t, err)
		assert.Equal(t, "available = ?", sql)
		assert.Equal(t, []interface{}{true}, args)
	})

	t.Run("borrowed", func(t *testing.T) {
		sql, args, err := filters.Borrowed().ToSql()
		require.NoError(t, err)
		assert.Equal(t, "available = ?", sql)
		assert.Equal(t, []interface{}{false}, args)
	})

	t.Run("category_matches_is_case_insensitive_contains", func(t *testing.T) {
		sql, args, err := filters.CategoryMatches("programming").ToSql()
		require.NoError(t, err)
		assert.Equal(t, "category ILIKE ?", sql)
		assert.Equal(t, []interface{}{"%programming%"}, args)
	})
}

func Test_FromStudentFilter(t *testing.T) {
	t.Run("empty_filter_yields_nil", func(t *testing.T) {
		assert.Nil(t, filters.FromStudentFilter(dto.StudentFilter{}))
	})

	t.Run("all_fields_combine_with_and", func(t *testing.T) {
		pred := filters.FromStudentFilter(dto.StudentFilter{
			Course: strPtr("MERN Stack"),
			Status: strPtr("enrolled"),
			MinAge: intPtr(20),
			MaxAge: intPtr(25),
		})
		require.NotNil(t, pred)

		sql, args, err := pred.ToSql()
		require.NoError(t, err)
		assert.Equal(t, "(course = ? AND status = ? AND age >= ? AND age <= ?)", sql)
		assert.Equal(t, []interface{}{"MERN Stack", "enrolled", 20, 25}, args)
	})
}

func Test_ChangesFromStudentUpdate(t *testing.T) {
	t.Run("empty_change_set_yields_empty_map", func(t *testing.T) {
		assert.Empty(t, filters.ChangesFromStudentUpdate(dto.StudentChanges{}))
	})

	t.Run("only_status_and_course_are_reachable", func(t *testing.T) {
		changes := filters.ChangesFromStudentUpdate(dto.StudentChanges{
			Status: strPtr("completed"),
			Course: strPtr("Python Development"),
		})
		assert.Equal(t, map[string]interface{}{
			"status": "completed",
			"course": "Python Development",
		}, changes)
	})
}
