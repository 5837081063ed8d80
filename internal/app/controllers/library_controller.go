package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jenidevops/studentdb/internal/app/models/dto"
	"github.com/jenidevops/studentdb/internal/app/services"
	"github.com/jenidevops/studentdb/internal/middleware"
)

// LibraryController handles the book catalog and the lending workflow
type LibraryController struct {
	libraryService services.LibraryService
}

// NewLibraryController creates a new LibraryController
func NewLibraryController(libraryService services.LibraryService) *LibraryController {
	return &LibraryController{
		libraryService: libraryService,
	}
}

// GetAllBooks retrieves all books with borrower enrichment
// @Summary Get all books
// @Description Retrieves every book, each enriched with its borrower when lent out
// @Tags library
// @Produce json
// @Success 200 {object} dto.APIResponse "Books retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library/books [get]
func (c *LibraryController) GetAllBooks(ctx *gin.Context) {
	books, err := c.libraryService.ListBooks(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(books, len(books), "Books retrieved successfully"))
}

// AddBook adds a new book to the catalog
// @Summary Add a book
// @Description Creates a new book record in the library catalog
// @Tags library
// @Accept json
// @Produce json
// @Param request body dto.CreateBookRequest true "Book information"
// @Success 201 {object} dto.APIResponse "Book added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate ISBN"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library/books [post]
func (c *LibraryController) AddBook(ctx *gin.Context) {
	var req dto.CreateBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid book data", err))
		return
	}

	book, err := c.libraryService.AddBook(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(book, "Book added successfully"))
}

// GetAvailableBooks retrieves books currently available for borrowing
// @Summary Get available books
// @Description Retrieves books that can currently be borrowed
// @Tags library
// @Produce json
// @Success 200 {object} dto.APIResponse "Available books retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library/available [get]
func (c *LibraryController) GetAvailableBooks(ctx *gin.Context) {
	books, err := c.libraryService.AvailableBooks(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(books, len(books), "Available books retrieved successfully"))
}

// GetBooksByCategory retrieves books whose category matches the given text
// @Summary Get books by category
// @Description Retrieves books whose category contains the given text, case-insensitively
// @Tags library
// @Produce json
// @Param category path string true "Category text"
// @Success 200 {object} dto.APIResponse "Books retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid category"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library/category/{category} [get]
func (c *LibraryController) GetBooksByCategory(ctx *gin.Context) {
	category := ctx.Param("category")

	books, err := c.libraryService.BooksByCategory(ctx, category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(books, len(books), "Books retrieved successfully").
		WithFilter(gin.H{"category": category}))
}

// InsertSampleData inserts the canned demo catalog
// @Summary Insert sample books
// @Description Inserts the built-in demo book dataset
// @Tags library
// @Produce json
// @Success 201 {object} dto.APIResponse "Sample books inserted"
// @Failure 400 {object} dto.ErrorResponse "Sample books already inserted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library/sample-data [post]
func (c *LibraryController) InsertSampleData(ctx *gin.Context) {
	books, err := c.libraryService.InsertSampleData(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewListResponse(books, len(books), "Sample books inserted successfully"))
}

// BorrowBook lends a book to a student
// @Summary Borrow a book
// @Description Lends the book to the student for the loan period
// @Tags library
// @Accept json
// @Produce json
// @Param request body dto.BorrowBookRequest true "Book and student IDs"
// @Success 200 {object} dto.APIResponse "Book borrowed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or book unavailable"
// @Failure 404 {object} dto.ErrorResponse "Book or student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library/borrow [post]
func (c *LibraryController) BorrowBook(ctx *gin.Context) {
	var req dto.BorrowBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid borrow request", err))
		return
	}

	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid book ID", err))
		return
	}
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student ID", err))
		return
	}

	book, err := c.libraryService.Borrow(ctx, bookID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(book, "Book borrowed successfully"))
}

// ReturnBook puts a borrowed book back on the shelf
// @Summary Return a book
// @Description Marks the book as returned, clearing its borrow fields
// @Tags library
// @Accept json
// @Produce json
// @Param request body dto.ReturnBookRequest true "Book ID"
// @Success 200 {object} dto.APIResponse "Book returned successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or book not borrowed"
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library/return [post]
func (c *LibraryController) ReturnBook(ctx *gin.Context) {
	var req dto.ReturnBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid return request", err))
		return
	}

	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid book ID", err))
		return
	}

	book, err := c.libraryService.Return(ctx, bookID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(book, "Book returned successfully"))
}
