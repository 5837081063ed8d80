package dto

// CreateBookRequest is the body for adding a book to the library.
type CreateBookRequest struct {
	Title    string `json:"title" binding:"required" example:"Clean Code"`
	Author   string `json:"author" binding:"required" example:"Robert C. Martin"`
	ISBN     string `json:"isbn" example:"978-0132350884"`
	Category string `json:"category" example:"Programming"`
}

// BorrowBookRequest is the body for POST /library/borrow.
type BorrowBookRequest struct {
	BookID    string `json:"bookId" binding:"required,uuid"`
	StudentID string `json:"studentId" binding:"required,uuid"`
}

// ReturnBookRequest is the body for POST /library/return.
type ReturnBookRequest struct {
	BookID string `json:"bookId" binding:"required,uuid"`
}
