package models

import (
	"time"

	"github.com/google/uuid"
)

// Book defines the book model based on the 'books' table.
// BorrowedBy is a weak reference to a student record: it carries the relation
// only, deleting the student does not cascade to the book.
type Book struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	Title      string     `json:"title" db:"title" example:"Clean Code"`
	Author     string     `json:"author" db:"author" example:"Robert C. Martin"`
	ISBN       *string    `json:"isbn,omitempty" db:"isbn"`
	Category   *string    `json:"category,omitempty" db:"category"`
	Available  bool       `json:"available" db:"available"`
	BorrowedBy *uuid.UUID `json:"borrowedBy,omitempty" db:"borrowed_by"`
	BorrowDate *time.Time `json:"borrowDate,omitempty" db:"borrow_date"`
	DueDate    *time.Time `json:"dueDate,omitempty" db:"due_date"`

	// Borrower is read-enriched from the students table, never stored.
	Borrower *Borrower `json:"borrower,omitempty"`
}

// Borrower carries the resolved name/email of the student a book is lent to.
type Borrower struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

// Consistent reports whether the availability flag agrees with the borrow
// fields: available books carry none of them, borrowed books carry all three.
func (b *Book) Consistent() bool {
	if b.Available {
		return b.BorrowedBy == nil && b.BorrowDate == nil && b.DueDate == nil
	}
	return b.BorrowedBy != nil && b.BorrowDate != nil && b.DueDate != nil
}
