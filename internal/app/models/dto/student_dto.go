package dto

// CreateStudentRequest is the body for inserting a single student.
// Age is a pointer so that a missing field can be told apart from zero.
type CreateStudentRequest struct {
	Name   string `json:"name" binding:"required" example:"John Doe"`
	Age    *int   `json:"age" binding:"required,gte=0" example:"22"`
	Course string `json:"course" binding:"required" example:"MERN Stack"`
	Status string `json:"status" binding:"omitempty,oneof=enrolled completed dropped" example:"enrolled"`
	Email  string `json:"email" binding:"omitempty,email" example:"john@email.com"`
	Phone  string `json:"phone" example:"123-456-7890"`
}

// UpdateStudentRequest is the body for a partial update of a single student.
// All fields are optional; absent fields are left untouched.
type UpdateStudentRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1"`
	Age    *int    `json:"age" binding:"omitempty,gte=0"`
	Course *string `json:"course" binding:"omitempty,min=1"`
	Status *string `json:"status" binding:"omitempty,oneof=enrolled completed dropped"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
}

// StudentFilter selects students for bulk operations. Provided fields are
// combined with AND semantics; an empty filter matches every student.
type StudentFilter struct {
	Course *string `json:"course"`
	Status *string `json:"status" binding:"omitempty,oneof=enrolled completed dropped"`
	MinAge *int    `json:"minAge" binding:"omitempty,gte=0"`
	MaxAge *int    `json:"maxAge" binding:"omitempty,gte=0"`
}

// StudentChanges is the restricted change set a bulk update may apply.
// Deliberately narrower than UpdateStudentRequest: only status and course
// can be rewritten in bulk.
type StudentChanges struct {
	Status *string `json:"status" binding:"omitempty,oneof=enrolled completed dropped"`
	Course *string `json:"course" binding:"omitempty,min=1"`
}

// BulkUpdateStudentsRequest is the body for PUT /students/bulk.
type BulkUpdateStudentsRequest struct {
	Filter StudentFilter  `json:"filter"`
	Update StudentChanges `json:"update" binding:"required"`
}

// DeleteByConditionRequest is the body for DELETE /students/by-condition.
type DeleteByConditionRequest struct {
	Condition StudentFilter `json:"condition" binding:"required"`
}
