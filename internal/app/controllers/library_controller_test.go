package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenidevops/studentdb/internal/app/controllers"
	"github.com/jenidevops/studentdb/internal/app/models"
	"github.com/jenidevops/studentdb/internal/app/models/dto"
	"github.com/jenidevops/studentdb/internal/pkg/apperrors"
)

// stubLibraryService returns canned values so the tests can focus on status
// code mapping and response envelopes.
type stubLibraryService struct {
	book *models.Book
	err  error
}

func (s *stubLibraryService) ListBooks(context.Context) ([]*models.Book, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*models.Book{s.book}, nil
}

func (s *stubLibraryService) AddBook(context.Context, dto.CreateBookRequest) (*models.Book, error) {
	return s.book, s.err
}

func (s *stubLibraryService) AvailableBooks(context.Context) ([]*models.Book, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*models.Book{s.book}, nil
}

func (s *stubLibraryService) BooksByCategory(context.Context, string) ([]*models.Book, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*models.Book{s.book}, nil
}

func (s *stubLibraryService) InsertSampleData(context.Context) ([]*models.Book, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*models.Book{s.book}, nil
}

func (s *stubLibraryService) Borrow(context.Context, uuid.UUID, uuid.UUID) (*models.Book, error) {
	return s.book, s.err
}

func (s *stubLibraryService) Return(context.Context, uuid.UUID) (*models.Book, error) {
	return s.book, s.err
}

func setupLibraryRouter(svc *stubLibraryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	controller := controllers.NewLibraryController(svc)
	router.GET("/library/books", controller.GetAllBooks)
	router.POST("/library/books", controller.AddBook)
	router.POST("/library/borrow", controller.BorrowBook)
	router.POST("/library/return", controller.ReturnBook)

	return router
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	return payload
}

func Test_BorrowBook_StatusMapping(t *testing.T) {
	validBody := dto.BorrowBookRequest{
		BookID:    uuid.NewString(),
		StudentID: uuid.NewString(),
	}

	tests := []struct {
		name       string
		serviceErr error
		body       interface{}
		wantStatus int
	}{
		{
			name:       "success",
			body:       validBody,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing_ids",
			body:       map[string]string{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed_book_id",
			body:       map[string]string{"bookId": "not-a-uuid", "studentId": uuid.NewString()},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "book_not_found",
			body:       validBody,
			serviceErr: apperrors.ErrBookNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "student_not_found",
			body:       validBody,
			serviceErr: apperrors.ErrStudentNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "book_already_borrowed",
			body:       validBody,
			serviceErr: apperrors.ErrBookAlreadyBorrowed,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupLibraryRouter(&stubLibraryService{
				book: &models.Book{ID: uuid.New(), Title: "Clean Code", Author: "Robert C. Martin"},
				err:  tt.serviceErr,
			})

			recorder := performJSON(t, router, http.MethodPost, "/library/borrow", tt.body)
			assert.Equal(t, tt.wantStatus, recorder.Code)

			payload := decodeEnvelope(t, recorder)
			assert.Equal(t, tt.wantStatus == http.StatusOK, payload["success"])
		})
	}
}

func Test_ReturnBook_StatusMapping(t *testing.T) {
	validBody := dto.ReturnBookRequest{BookID: uuid.NewString()}

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "book_not_found", serviceErr: apperrors.ErrBookNotFound, wantStatus: http.StatusNotFound},
		{name: "not_borrowed", serviceErr: apperrors.ErrBookNotBorrowed, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupLibraryRouter(&stubLibraryService{
				book: &models.Book{ID: uuid.New(), Title: "Clean Code", Author: "Robert C. Martin", Available: true},
				err:  tt.serviceErr,
			})

			recorder := performJSON(t, router, http.MethodPost, "/library/return", validBody)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func Test_GetAllBooks_ListEnvelope(t *testing.T) {
	router := setupLibraryRouter(&stubLibraryService{
		book: &models.Book{ID: uuid.New(), Title: "Clean Code", Author: "Robert C. Martin", Available: true},
	})

	recorder := performJSON(t, router, http.MethodGet, "/library/books", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	payload := decodeEnvelope(t, recorder)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, float64(1), payload["count"])
	assert.NotNil(t, payload["data"])
}

func Test_AddBook_ValidationAndDuplicate(t *testing.T) {
	t.Run("missing_title_fails_binding", func(t *testing.T) {
		router := setupLibraryRouter(&stubLibraryService{})

		recorder := performJSON(t, router, http.MethodPost, "/library/books", map[string]string{"author": "Someone"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("duplicate_isbn_maps_to_bad_request", func(t *testing.T) {
		router := setupLibraryRouter(&stubLibraryService{err: apperrors.ErrDuplicateKey})

		recorder := performJSON(t, router, http.MethodPost, "/library/books", dto.CreateBookRequest{
			Title:  "Clean Code",
			Author: "Robert C. Martin",
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("created", func(t *testing.T) {
		router := setupLibraryRouter(&stubLibraryService{
			book: &models.Book{ID: uuid.New(), Title: "Clean Code", Author: "Robert C. Martin", Available: true},
		})

		recorder := performJSON(t, router, http.MethodPost, "/library/books", dto.CreateBookRequest{
			Title:  "Clean Code",
			Author: "Robert C. Martin",
		})
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})
}
