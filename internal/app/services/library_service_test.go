package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenidevops/studentdb/internal/app/models"
	"github.com/jenidevops/studentdb/internal/app/models/dto"
	"github.com/jenidevops/studentdb/internal/app/repositories"
	"github.com/jenidevops/studentdb/internal/app/services"
	"github.com/jenidevops/studentdb/internal/pkg/apperrors"
)

// fakeBookStore keeps books in memory and mimics the conditional writes of
// the real repository: a borrow of an unavailable book (or a return of an
// available one) reports ErrNotFound, exactly like a zero-row UPDATE.
type fakeBookStore struct {
	books map[uuid.UUID]*models.Book
}

func newFakeBookStore(books ...*models.Book) *fakeBookStore {
	s := &fakeBookStore{books: map[uuid.UUID]*models.Book{}}
	for _, b := range books {
		s.books[b.ID] = b
	}
	return s
}

func (s *fakeBookStore) Create(_ context.Context, book *models.Book) (uuid.UUID, error) {
	if book.ID == uuid.Nil {
		book.ID = uuid.New()
	}
	if book.BorrowedBy == nil {
		book.Available = true
	}
	s.books[book.ID] = book
	return book.ID, nil
}

func (s *fakeBookStore) CreateMany(ctx context.Context, books []*models.Book) error {
	for _, b := range books {
		if _, err := s.Create(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

func (s *fakeBookStore) Find(context.Context, squirrel.Sqlizer) ([]*models.Book, error) {
	books := make([]*models.Book, 0, len(s.books))
	for _, b := range s.books {
		books = append(books, b)
	}
	return books, nil
}

func (s *fakeBookStore) GetByID(_ context.Context, id uuid.UUID) (*models.Book, error) {
	book, ok := s.books[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *book
	return &copied, nil
}

func (s *fakeBookStore) Borrow(_ context.Context, bookID, studentID uuid.UUID, borrowedAt, dueAt time.Time) (*models.Book, error) {
	book, ok := s.books[bookID]
	if !ok || !book.Available {
		return nil, repositories.ErrNotFound
	}
	book.Available = false
	book.BorrowedBy = &studentID
	book.BorrowDate = &borrowedAt
	book.DueDate = &dueAt
	copied := *book
	return &copied, nil
}

func (s *fakeBookStore) Return(_ context.Context, bookID uuid.UUID) (*models.Book, error) {
	book, ok := s.books[bookID]
	if !ok || book.Available {
		return nil, repositories.ErrNotFound
	}
	book.Available = true
	book.BorrowedBy = nil
	book.BorrowDate = nil
	book.DueDate = nil
	copied := *book
	return &copied, nil
}

func (s *fakeBookStore) Count(context.Context, squirrel.Sqlizer) (int64, error) {
	return int64(len(s.books)), nil
}

// fakeStudentStore implements the student persistence contract over a map.
type fakeStudentStore struct {
	students map[uuid.UUID]*models.Student
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	s := &fakeStudentStore{students: map[uuid.UUID]*models.Student{}}
	for _, st := range students {
		s.students[st.ID] = st
	}
	return s
}

func (s *fakeStudentStore) Create(_ context.Context, student *models.Student) (uuid.UUID, error) {
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	if student.Status == "" {
		student.Status = models.StatusEnrolled
	}
	s.students[student.ID] = student
	return student.ID, nil
}

func (s *fakeStudentStore) CreateMany(ctx context.Context, students []*models.Student) error {
	for _, st := range students {
		if _, err := s.Create(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func (s *fakeStudentStore) Find(context.Context, squirrel.Sqlizer) ([]*models.Student, error) {
	students := make([]*models.Student, 0, len(s.students))
	for _, st := range s.students {
		students = append(students, st)
	}
	return students, nil
}

func (s *fakeStudentStore) GetByID(_ context.Context, id uuid.UUID) (*models.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return student, nil
}

func (s *fakeStudentStore) UpdateByID(_ context.Context, id uuid.UUID, changes map[string]interface{}) (*models.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if status, ok := changes["status"]; ok {
		switch v := status.(type) {
		case models.StudentStatus:
			student.Status = v
		case string:
			student.Status = models.StudentStatus(v)
		}
	}
	if course, ok := changes["course"].(string); ok {
		student.Course = course
	}
	if name, ok := changes["name"].(string); ok {
		student.Name = name
	}
	if age, ok := changes["age"].(int); ok {
		student.Age = age
	}
	return student, nil
}

func (s *fakeStudentStore) UpdateMany(context.Context, squirrel.Sqlizer, map[string]interface{}) (int64, error) {
	return int64(len(s.students)), nil
}

func (s *fakeStudentStore) DeleteByID(_ context.Context, id uuid.UUID) (*models.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	delete(s.students, id)
	return student, nil
}

func (s *fakeStudentStore) DeleteMany(context.Context, squirrel.Sqlizer) (int64, error) {
	count := int64(len(s.students))
	s.students = map[uuid.UUID]*models.Student{}
	return count, nil
}

func (s *fakeStudentStore) Count(context.Context, squirrel.Sqlizer) (int64, error) {
	return int64(len(s.students)), nil
}

func availableBook() *models.Book {
	return &models.Book{
		ID:        uuid.New(),
		Title:     "Clean Code",
		Author:    "Robert C. Martin",
		Available: true,
	}
}

func enrolledStudent() *models.Student {
	return &models.Student{
		ID:     uuid.New(),
		Name:   "John Doe",
		Age:    22,
		Course: "MERN Stack",
		Status: models.StatusEnrolled,
	}
}

func Test_Borrow_LendsAvailableBookForFourteenDays(t *testing.T) {
	book := availableBook()
	student := enrolledStudent()
	svc := services.NewLibraryService(newFakeBookStore(book), newFakeStudentStore(student))

	borrowed, err := svc.Borrow(context.Background(), book.ID, student.ID)
	require.NoError(t, err)

	assert.False(t, borrowed.Available)
	require.NotNil(t, borrowed.BorrowedBy)
	assert.Equal(t, student.ID, *borrowed.BorrowedBy)
	require.NotNil(t, borrowed.BorrowDate)
	require.NotNil(t, borrowed.DueDate)
	assert.Equal(t, 14*24*time.Hour, borrowed.DueDate.Sub(*borrowed.BorrowDate))
	assert.True(t, borrowed.Consistent())
}

func Test_Borrow_ResolvesBorrower(t *testing.T) {
	book := availableBook()
	student := enrolledStudent()
	email := "john@email.com"
	student.Email = &email
	svc := services.NewLibraryService(newFakeBookStore(book), newFakeStudentStore(student))

	borrowed, err := svc.Borrow(context.Background(), book.ID, student.ID)
	require.NoError(t, err)

	require.NotNil(t, borrowed.Borrower)
	assert.Equal(t, student.Name, borrowed.Borrower.Name)
	require.NotNil(t, borrowed.Borrower.Email)
	assert.Equal(t, email, *borrowed.Borrower.Email)
}

func Test_Borrow_UnknownBook(t *testing.T) {
	student := enrolledStudent()
	svc := services.NewLibraryService(newFakeBookStore(), newFakeStudentStore(student))

	_, err := svc.Borrow(context.Background(), uuid.New(), student.ID)
	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)
}

func Test_Borrow_UnavailableBookReportsConflict(t *testing.T) {
	book := availableBook()
	student := enrolledStudent()
	store := newFakeBookStore(book)
	svc := services.NewLibraryService(store, newFakeStudentStore(student))

	_, err := svc.Borrow(context.Background(), book.ID, student.ID)
	require.NoError(t, err)

	_, err = svc.Borrow(context.Background(), book.ID, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrBookAlreadyBorrowed)
}

func Test_Borrow_UnknownStudent(t *testing.T) {
	book := availableBook()
	svc := services.NewLibraryService(newFakeBookStore(book), newFakeStudentStore())

	_, err := svc.Borrow(context.Background(), book.ID, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func Test_Return_ClearsBorrowFields(t *testing.T) {
	book := availableBook()
	student := enrolledStudent()
	svc := services.NewLibraryService(newFakeBookStore(book), newFakeStudentStore(student))

	_, err := svc.Borrow(context.Background(), book.ID, student.ID)
	require.NoError(t, err)

	returned, err := svc.Return(context.Background(), book.ID)
	require.NoError(t, err)

	assert.True(t, returned.Available)
	assert.Nil(t, returned.BorrowedBy)
	assert.Nil(t, returned.BorrowDate)
	assert.Nil(t, returned.DueDate)
	assert.True(t, returned.Consistent())
}

func Test_Return_NotBorrowedReportsConflict(t *testing.T) {
	book := availableBook()
	svc := services.NewLibraryService(newFakeBookStore(book), newFakeStudentStore())

	_, err := svc.Return(context.Background(), book.ID)
	assert.ErrorIs(t, err, apperrors.ErrBookNotBorrowed)
}

func Test_Return_UnknownBook(t *testing.T) {
	svc := services.NewLibraryService(newFakeBookStore(), newFakeStudentStore())

	_, err := svc.Return(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)
}

func Test_BorrowReturnBorrow_RoundTrip(t *testing.T) {
	book := availableBook()
	first := enrolledStudent()
	second := enrolledStudent()
	svc := services.NewLibraryService(newFakeBookStore(book), newFakeStudentStore(first, second))

	_, err := svc.Borrow(context.Background(), book.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.Return(context.Background(), book.ID)
	require.NoError(t, err)

	borrowed, err := svc.Borrow(context.Background(), book.ID, second.ID)
	require.NoError(t, err)
	require.NotNil(t, borrowed.BorrowedBy)
	assert.Equal(t, second.ID, *borrowed.BorrowedBy)
}

func Test_AddBook_RejectsMissingFields(t *testing.T) {
	svc := services.NewLibraryService(newFakeBookStore(), newFakeStudentStore())

	_, err := svc.AddBook(context.Background(), dto.CreateBookRequest{Author: "Someone"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.AddBook(context.Background(), dto.CreateBookRequest{Title: "Something"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func Test_AddBook_NewBookIsAvailable(t *testing.T) {
	svc := services.NewLibraryService(newFakeBookStore(), newFakeStudentStore())

	book, err := svc.AddBook(context.Background(), dto.CreateBookRequest{
		Title:  "The Pragmatic Programmer",
		Author: "David Thomas, Andrew Hunt",
		ISBN:   "978-0201616224",
	})
	require.NoError(t, err)

	assert.True(t, book.Available)
	assert.NotEqual(t, uuid.Nil, book.ID)
	assert.True(t, book.Consistent())
}

func Test_InsertSampleData_ReturnsCatalog(t *testing.T) {
	svc := services.NewLibraryService(newFakeBookStore(), newFakeStudentStore())

	books, err := svc.InsertSampleData(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 5)
	for _, b := range books {
		assert.True(t, b.Available)
	}
}
