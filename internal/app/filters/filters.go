// Package filters translates externally supplied query parameters into the
// squirrel predicates the repositories evaluate. Every constructor is pure:
// the same inputs always yield the same predicate structure.
package filters

import (
	"github.com/Masterminds/squirrel"

	"github.com/jenidevops/studentdb/internal/app/models"
	"github.com/jenidevops/studentdb/internal/app/models/dto"
)

// DefaultCourses is the course list applied when the courses parameter is absent.
var DefaultCourses = []string{"MERN Stack", "Python Development"}

// Default age bounds for the age-range query when a bound is missing.
const (
	DefaultMinAge = 0
	DefaultMaxAge = 100
)

// CourseEquals matches students enrolled in exactly the given course.
// An empty course yields a nil predicate, i.e. no filtering.
func CourseEquals(course string) squirrel.Sqlizer {
	if course == "" {
		return nil
	}
	return squirrel.Eq{"course": course}
}

// AgeBetween matches students strictly inside the open interval (minAge, maxAge).
func AgeBetween(minAge, maxAge int) squirrel.Sqlizer {
	return squirrel.And{
		squirrel.Gt{"age": minAge},
		squirrel.Lt{"age": maxAge},
	}
}

// CourseIn matches students enrolled in any of the given courses.
func CourseIn(courses []string) squirrel.Sqlizer {
	if len(courses) == 0 {
		courses = DefaultCourses
	}
	return squirrel.Eq{"course": courses}
}

// HasEmail matches students whose email field is present and non-empty.
func HasEmail() squirrel.Sqlizer {
	return squirrel.And{
		squirrel.NotEq{"email": nil},
		squirrel.NotEq{"email": ""},
	}
}

// AgeRangeAndCourse is the fixed conjunctive demo query: students aged 22-25
// (inclusive) enrolled in MERN Stack.
func AgeRangeAndCourse() squirrel.Sqlizer {
	return squirrel.And{
		squirrel.GtOrEq{"age": 22},
		squirrel.LtOrEq{"age": 25},
		squirrel.Eq{"course": "MERN Stack"},
	}
}

// CompletedOrOlderThan24 is the fixed disjunctive demo query: students who
// completed their course or are older than 24.
func CompletedOrOlderThan24() squirrel.Sqlizer {
	return squirrel.Or{
		squirrel.Eq{"status": models.StatusCompleted},
		squirrel.Gt{"age": 24},
	}
}

// AdvancedSearch is the fixed combined demo query: age 20-25, one of three
// courses, email present, and status enrolled or completed.
func AdvancedSearch() squirrel.Sqlizer {
	return squirrel.And{
		squirrel.GtOrEq{"age": 20},
		squirrel.LtOrEq{"age": 25},
		squirrel.Eq{"course": []string{"MERN Stack", "Python Development", "Data Science"}},
		squirrel.NotEq{"email": nil},
		squirrel.Or{
			squirrel.Eq{"status": models.StatusEnrolled},
			squirrel.Eq{"status": models.StatusCompleted},
		},
	}
}

// Available matches books that can currently be borrowed.
func Available() squirrel.Sqlizer {
	return squirrel.Eq{"available": true}
}

// Borrowed matches books that are currently lent out.
func Borrowed() squirrel.Sqlizer {
	return squirrel.Eq{"available": false}
}

// CategoryMatches matches books whose category contains the given text,
// case-insensitively.
func CategoryMatches(category string) squirrel.Sqlizer {
	return squirrel.ILike{"category": "%" + category + "%"}
}

// StatusEquals matches students with the given status.
func StatusEquals(status models.StudentStatus) squirrel.Sqlizer {
	return squirrel.Eq{"status": status}
}

// FromStudentFilter combines the provided fields of a bulk-operation filter
// with AND semantics. An empty filter yields nil, matching every student.
func FromStudentFilter(f dto.StudentFilter) squirrel.Sqlizer {
	var conj squirrel.And

	if f.Course != nil {
		conj = append(conj, squirrel.Eq{"course": *f.Course})
	}
	if f.Status != nil {
		conj = append(conj, squirrel.Eq{"status": *f.Status})
	}
	if f.MinAge != nil {
		conj = append(conj, squirrel.GtOrEq{"age": *f.MinAge})
	}
	if f.MaxAge != nil {
		conj = append(conj, squirrel.LtOrEq{"age": *f.MaxAge})
	}

	if len(conj) == 0 {
		return nil
	}
	return conj
}

// ChangesFromStudentUpdate translates the restricted bulk change set into
// column assignments. Only status and course are reachable here, so bulk
// updates cannot touch anything the lending workflow owns.
func ChangesFromStudentUpdate(u dto.StudentChanges) map[string]interface{} {
	changes := map[string]interface{}{}
	if u.Status != nil {
		changes["status"] = *u.Status
	}
	if u.Course != nil {
		changes["course"] = *u.Course
	}
	return changes
}
