package v1

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type StubCVRepo struct {
	mock.Mock
}

func (m *StubCVRepo) GetByID(ctx context.Context, id int64) (*domain.CVDocument, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*domain.CVDocument); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StubCVRepo) ListByUserID(ctx context.Context, userID string) ([]domain.CVDocument, error) {
	args := m.Called(ctx, userID)
	if docs, ok := args.Get(0).([]domain.CVDocument); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StubCVRepo) Create(ctx context.Context, doc *domain.CVDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *StubCVRepo) Update(ctx context.Context, doc *domain.CVDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *StubCVRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newCVTestRouter(repo domain.CVRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()
	cfg := &config.Config{JWTSecret: testJWTSecret}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	protected := r.Group("/v1")
	protected.Use(middleware.AuthMiddleware(cfg))
	noLimit := func(c *gin.Context) { c.Next() }
	NewCVHandler(protected, usecase.NewCVUsecase(repo, validation.NewEngine()), noLimit)

	return r
}

func multipartCV(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, w.WriteField("label", "Main CV"))
	assert.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadCVFile(t *testing.T) {
	repo := new(StubCVRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *domain.CVDocument) bool {
		return d.UserID == "user-1" &&
			d.Status == domain.CVStatusProcessing &&
			d.MimeType == "application/pdf"
	})).Return(nil)

	router := newCVTestRouter(repo)

	body, contentType := multipartCV(t, "resume.pdf", []byte("%PDF-1.7 minimal document body"))
	req := httptest.NewRequest(http.MethodPost, "/v1/cvs/file", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"processing"`)
	repo.AssertExpectations(t)
}

func TestUploadCVFileRejectsSpoofedContent(t *testing.T) {
	repo := new(StubCVRepo)
	router := newCVTestRouter(repo)

	// ELF header dressed up with a .pdf extension
	body, contentType := multipartCV(t, "resume.pdf", []byte{0x7F, 0x45, 0x4C, 0x46, 0x02, 0x01, 0x01, 0x00})
	req := httptest.NewRequest(http.MethodPost, "/v1/cvs/file", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "does not match extension")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUploadCVFileRejectsUnknownExtension(t *testing.T) {
	repo := new(StubCVRepo)
	router := newCVTestRouter(repo)

	body, contentType := multipartCV(t, "resume.exe", []byte{0x4D, 0x5A, 0x90, 0x00})
	req := httptest.NewRequest(http.MethodPost, "/v1/cvs/file", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "extension not allowed")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
