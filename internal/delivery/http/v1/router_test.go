package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "test-secret"

type StubProfileRepo struct {
	mock.Mock
}

func (m *StubProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if p, ok := args.Get(0).(*domain.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StubProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *StubProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func newTestRouter(repo domain.ProfileRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()
	cfg := &config.Config{JWTSecret: testJWTSecret}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	protected := r.Group("/v1")
	protected.Use(middleware.AuthMiddleware(cfg))
	NewProfileHandler(protected, usecase.NewProfileUsecase(repo, validation.NewEngine()))

	return r
}

func signToken(t *testing.T, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": "dina@example.com",
		"role":  "candidate",
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	assert.NoError(t, err)
	return signed
}

// The middleware stores identity with gin's string-keyed c.Set, while
// the usecases read it through context.Context. This exercises the full
// chain so a mismatch between the two key forms cannot regress.
func TestAuthenticatedCreateProfile(t *testing.T) {
	repo := new(StubProfileRepo)
	repo.On("GetByUserID", mock.Anything, "user-1").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.UserID == "user-1"
	})).Return(nil)

	router := newTestRouter(repo)

	body := `{"headline":"Backend Engineer","skills":["go","postgres"],"remote_preference":"remote"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/profiles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"success":true`)
	repo.AssertExpectations(t)
}

func TestAuthenticatedGetOwnProfile(t *testing.T) {
	repo := new(StubProfileRepo)
	repo.On("GetByUserID", mock.Anything, "user-1").Return(&domain.Profile{
		ID:               7,
		UserID:           "user-1",
		Headline:         "Backend Engineer",
		Skills:           []string{"Go"},
		RemotePreference: "remote",
	}, nil)

	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Backend Engineer")
}

func TestMissingTokenRejected(t *testing.T) {
	router := newTestRouter(new(StubProfileRepo))

	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMalformedTokenRejected(t *testing.T) {
	router := newTestRouter(new(StubProfileRepo))

	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
