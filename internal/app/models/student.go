package models

import (
	"time"

	"github.com/google/uuid"
)

// StudentStatus is the closed set of enrollment states a student can be in.
type StudentStatus string

const (
	StatusEnrolled  StudentStatus = "enrolled"
	StatusCompleted StudentStatus = "completed"
	StatusDropped   StudentStatus = "dropped"
)

// Valid reports whether s is one of the recognized status variants.
func (s StudentStatus) Valid() bool {
	switch s {
	case StatusEnrolled, StatusCompleted, StatusDropped:
		return true
	}
	return false
}

// Student defines the student model based on the 'students' table
type Student struct {
	ID             uuid.UUID     `json:"id" db:"id"`
	Name           string        `json:"name" db:"name" example:"John Doe"`
	Age            int           `json:"age" db:"age" example:"22"`
	Course         string        `json:"course" db:"course" example:"MERN Stack"`
	Status         StudentStatus `json:"status" db:"status" example:"enrolled"`
	EnrollmentDate time.Time     `json:"enrollmentDate" db:"enrollment_date"`
	Email          *string       `json:"email,omitempty" db:"email"`
	Phone          *string       `json:"phone,omitempty" db:"phone"`
}
