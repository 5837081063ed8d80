package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jenidevops/studentdb/internal/app/filters"
	"github.com/jenidevops/studentdb/internal/app/models/dto"
	"github.com/jenidevops/studentdb/internal/app/services"
	"github.com/jenidevops/studentdb/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// InsertStudent handles single student creation
// @Summary Insert a single student
// @Description Creates a new student record with the provided information
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse "Student inserted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/single [post]
func (c *StudentController) InsertStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student data", err))
		return
	}

	student, err := c.studentService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(student, "Student inserted successfully"))
}

// InsertStudents handles batch student creation
// @Summary Insert multiple students
// @Description Creates a batch of student records in a single operation
// @Tags students
// @Accept json
// @Produce json
// @Param request body []dto.CreateStudentRequest true "Array of students"
// @Success 201 {object} dto.APIResponse "Students inserted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/multiple [post]
func (c *StudentController) InsertStudents(ctx *gin.Context) {
	var reqs []dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student data", err))
		return
	}

	students, err := c.studentService.CreateMany(ctx, reqs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewListResponse(students, len(students), "Students inserted successfully"))
}

// InsertSampleData inserts the canned demo students
// @Summary Insert sample students
// @Description Inserts the built-in demo student dataset
// @Tags students
// @Produce json
// @Success 201 {object} dto.APIResponse "Sample students inserted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/sample-data [post]
func (c *StudentController) InsertSampleData(ctx *gin.Context) {
	students, err := c.studentService.InsertSampleData(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewListResponse(students, len(students), "Sample students inserted successfully"))
}

// GetAllStudents retrieves all students
// @Summary Get all students
// @Description Retrieves every student record
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(students, len(students), "Students retrieved successfully"))
}

// FilterStudents retrieves students filtered by course
// @Summary Filter students by course
// @Description Retrieves students enrolled in the given course; no course means all students
// @Tags students
// @Produce json
// @Param course query string false "Course name"
// @Success 200 {object} dto.APIResponse "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/filter [get]
func (c *StudentController) FilterStudents(ctx *gin.Context) {
	course := ctx.Query("course")

	students, err := c.studentService.FilterByCourse(ctx, course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(students, len(students), "Students retrieved successfully").
		WithFilter(gin.H{"course": course}))
}

// GetMernStackStudents retrieves students enrolled in the MERN Stack course
// @Summary Get MERN Stack students
// @Description Retrieves students enrolled in the fixed MERN Stack course
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/mern-stack [get]
func (c *StudentController) GetMernStackStudents(ctx *gin.Context) {
	students, err := c.studentService.FilterByCourse(ctx, "MERN Stack")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(students, len(students), "MERN Stack students retrieved successfully"))
}

// GetStudentsByAgeRange retrieves students strictly between the given age bounds
// @Summary Get students by age range
// @Description Retrieves students whose age lies strictly between minAge and maxAge
// @Tags students
// @Produce json
// @Param minAge query int false "Lower age bound (exclusive)" default(0)
// @Param maxAge query int false "Upper age bound (exclusive)" default(100)
// @Success 200 {object} dto.APIResponse "Students retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid age bounds"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/age-range [get]
func (c *StudentController) GetStudentsByAgeRange(ctx *gin.Context) {
	minAge, err := queryIntDefault(ctx, "minAge", filters.DefaultMinAge)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("minAge must be a valid number", err))
		return
	}
	maxAge, err := queryIntDefault(ctx, "maxAge", filters.DefaultMaxAge)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("maxAge must be a valid number", err))
		return
	}

	students, err := c.studentService.ByAgeRange(ctx, minAge, maxAge)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(students, len(students), "Students retrieved successfully").
		WithFilter(gin.H{"minAge": minAge, "maxAge": maxAge}))
}

// GetStudentsByCourses retrieves students enrolled in any of the given courses
// @Summary Get students by course list
// @Description Retrieves students enrolled in any of the comma-separated courses
// @Tags students
// @Produce json
// @Param courses query string false "Comma-separated course names"
// @Success 200 {object} dto.APIResponse "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/courses [get]
func (c *StudentController) GetStudentsByCourses(ctx *gin.Context) {
	courses := splitCSV(ctx.Query("courses"))
	if len(courses) == 0 {
		courses = filters.DefaultCourses
	}

	students, err := c.studentService.ByCourses(ctx, courses)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(students, len(students), "Students retrieved successfully").
		WithFilter(gin.H{"courses": courses}))
}

// ComplexQuery runs one of the fixed demonstration queries
// @Summary Run a fixed demonstration query
// @Description Runs one of the canned and/or/exists queries over the students collection
// @Tags students
// @Produce json
// @Param queryType query string false "Query type" Enums(and, or, exists)
// @Success 200 {object} dto.APIResponse "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/complex [get]
func (c *StudentController) ComplexQuery(ctx *gin.Context) {
	queryType := ctx.Query("queryType")

	students, description, err := c.studentService.ComplexQuery(ctx, queryType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(students, len(students), "Students retrieved successfully").
		WithFilter(gin.H{"queryType": queryType, "description": description}))
}

// AdvancedSearch runs the fixed combined-operator search
// @Summary Run the advanced search
// @Description Runs the fixed combined-operator search over the students collection
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/advanced-search [get]
func (c *StudentController) AdvancedSearch(ctx *gin.Context) {
	students, err := c.studentService.AdvancedSearch(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(students, len(students), "Students retrieved successfully"))
}

// UpdateStudent applies a partial update to one student
// @Summary Update a student
// @Description Applies a partial update to the student with the given ID
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student ID", err))
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student data", err))
		return
	}

	student, err := c.studentService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(student, "Student updated successfully"))
}

// CompleteStudent marks a student's course as completed
// @Summary Mark a student completed
// @Description Sets the student's status to completed
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse "Student marked as completed"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/complete [put]
func (c *StudentController) CompleteStudent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student ID", err))
		return
	}

	student, err := c.studentService.MarkCompleted(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(student, "Student marked as completed"))
}

// BulkUpdateStudents applies a restricted change set to every matching student
// @Summary Bulk update students
// @Description Applies the status/course change set to every student matching the filter
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.BulkUpdateStudentsRequest true "Filter and change set"
// @Success 200 {object} dto.APIResponse "Students updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/bulk [put]
func (c *StudentController) BulkUpdateStudents(ctx *gin.Context) {
	var req dto.BulkUpdateStudentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid bulk update data", err))
		return
	}

	updated, err := c.studentService.BulkUpdate(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.BulkUpdateResult{
		MatchedCount:  updated,
		ModifiedCount: updated,
	}, "Students updated successfully"))
}

// DeleteStudent removes one student
// @Summary Delete a student
// @Description Deletes the student with the given ID and returns the deleted record
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student ID", err))
		return
	}

	student, err := c.studentService.Delete(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(student, "Student deleted successfully"))
}

// DeleteStudentsByCondition removes every student matching a typed condition
// @Summary Delete students by condition
// @Description Deletes every student matching the given filter condition
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.DeleteByConditionRequest true "Delete condition"
// @Success 200 {object} dto.APIResponse "Students deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "No student matched the condition"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/by-condition [delete]
func (c *StudentController) DeleteStudentsByCondition(ctx *gin.Context) {
	var req dto.DeleteByConditionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid delete condition", err))
		return
	}

	deleted, err := c.studentService.DeleteByCondition(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.DeleteResult{DeletedCount: deleted}, "Students deleted successfully"))
}

// DeleteAllStudents removes every student
// @Summary Delete all students
// @Description Deletes every student record and reports the count
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse "All students deleted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/all [delete]
func (c *StudentController) DeleteAllStudents(ctx *gin.Context) {
	deleted, err := c.studentService.DeleteAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.DeleteResult{DeletedCount: deleted}, "All students deleted successfully"))
}

// queryIntDefault reads an integer query parameter, falling back to def when absent.
func queryIntDefault(ctx *gin.Context, name string, def int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// splitCSV splits a comma-separated parameter into trimmed non-empty parts.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
