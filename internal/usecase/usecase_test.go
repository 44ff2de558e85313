package usecase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
	"go-jobboard-backend/pkg/verifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var engine = validation.NewEngine()

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

// Mock Repositories

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockCVRepo struct {
	mock.Mock
}

func (m *MockCVRepo) GetByID(ctx context.Context, id int64) (*domain.CVDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CVDocument), args.Error(1)
}

func (m *MockCVRepo) ListByUserID(ctx context.Context, userID string) ([]domain.CVDocument, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CVDocument), args.Error(1)
}

func (m *MockCVRepo) Create(ctx context.Context, doc *domain.CVDocument) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *MockCVRepo) Update(ctx context.Context, doc *domain.CVDocument) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *MockCVRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockPortfolioRepo struct {
	mock.Mock
}

func (m *MockPortfolioRepo) GetByID(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioRepo) ListByUserID(ctx context.Context, userID string) ([]domain.PortfolioItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioRepo) Create(ctx context.Context, item *domain.PortfolioItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockPortfolioRepo) Update(ctx context.Context, item *domain.PortfolioItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockPortfolioRepo) UpdateValidationStatus(ctx context.Context, id int64, status domain.PortfolioVerification) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockPortfolioRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestProfileOwnership(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockRepo, engine)

	t.Run("Should fail when context UserID does not match argument UserID", func(t *testing.T) {
		_, err := uc.GetProfile(authedCtx("user1"), "user2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only view your own profile")
	})

	t.Run("Should fail safely when context UserID is missing", func(t *testing.T) {
		_, err := uc.GetProfile(context.Background(), "user1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not authenticated")
	})
}

func TestProfileCreateValidation(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockRepo, engine)
	ctx := authedCtx("user1")

	t.Run("inverted salary range is rejected before persistence", func(t *testing.T) {
		_, _, err := uc.CreateProfile(ctx, &domain.ProfileCreateInput{
			Headline:             "Backend Engineer",
			Skills:               []string{"Go"},
			RemotePreference:     "remote",
			SalaryExpectationMin: intPtr(80000),
			SalaryExpectationMax: intPtr(60000),
		})
		require.Error(t, err)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
		details := appErr.Details.([]validation.FieldError)
		require.Len(t, details, 1)
		assert.Equal(t, "salary_expectation_max", details[0].Field)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("skills are sanitized before persistence", func(t *testing.T) {
		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(nil, nil).Once()
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Profile")).
			Return(nil).Once().
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*domain.Profile)
				assert.Equal(t, []string{"React", "Node"}, p.Skills)
				assert.Equal(t, "user1", p.UserID)
			})

		profile, warnings, err := uc.CreateProfile(ctx, &domain.ProfileCreateInput{
			Headline:         "Backend Engineer",
			Skills:           []string{" react ", "Node"},
			RemotePreference: "remote",
		})
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, []string{"React", "Node"}, profile.Skills)
		mockRepo.AssertExpectations(t)
	})

	t.Run("entry-level heuristic surfaces as a warning, not an error", func(t *testing.T) {
		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(nil, nil).Once()
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil).Once()

		skills := []string{"Go", "Rust", "Python", "Java", "Kotlin", "Swift", "Ruby", "Elixir", "Scala", "Haskell", "Zig"}
		_, warnings, err := uc.CreateProfile(ctx, &domain.ProfileCreateInput{
			Headline:         "Junior Developer",
			ExperienceYears:  0,
			Skills:           skills,
			RemotePreference: "hybrid",
		})
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "0 years")
	})
}

func TestCVStatusTransitions(t *testing.T) {
	ctx := authedCtx("user1")

	newDoc := func(status domain.CVStatus) *domain.CVDocument {
		return &domain.CVDocument{ID: 7, UserID: "user1", Label: "CV", Status: status}
	}

	t.Run("processing to active succeeds", func(t *testing.T) {
		mockRepo := new(MockCVRepo)
		uc := usecase.NewCVUsecase(mockRepo, engine)
		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(newDoc(domain.CVStatusProcessing), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.CVDocument")).Return(nil)

		doc, err := uc.Update(ctx, 7, &domain.CVUpdateInput{Status: strPtr("active")})
		require.NoError(t, err)
		assert.Equal(t, domain.CVStatusActive, doc.Status)
	})

	t.Run("active to processing is rejected", func(t *testing.T) {
		mockRepo := new(MockCVRepo)
		uc := usecase.NewCVUsecase(mockRepo, engine)
		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(newDoc(domain.CVStatusActive), nil)

		_, err := uc.Update(ctx, 7, &domain.CVUpdateInput{Status: strPtr("processing")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot transition cv from active to processing")
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("failed to processing is the retry path", func(t *testing.T) {
		mockRepo := new(MockCVRepo)
		uc := usecase.NewCVUsecase(mockRepo, engine)
		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(newDoc(domain.CVStatusFailed), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.CVDocument")).Return(nil)

		doc, err := uc.Update(ctx, 7, &domain.CVUpdateInput{Status: strPtr("processing")})
		require.NoError(t, err)
		assert.Equal(t, domain.CVStatusProcessing, doc.Status)
	})

	t.Run("render options reject near-white primary colors", func(t *testing.T) {
		mockRepo := new(MockCVRepo)
		uc := usecase.NewCVUsecase(mockRepo, engine)
		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(newDoc(domain.CVStatusActive), nil)

		err := uc.ValidateRenderOptions(ctx, 7, &domain.CVRenderInput{PrimaryColor: "#FFFFFF"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too light")
	})
}

func TestPortfolioVerifyLinks(t *testing.T) {
	ctx := authedCtx("user1")

	okSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer okSrv.Close()
	brokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer brokenSrv.Close()

	mockRepo := new(MockPortfolioRepo)
	v := verifier.New(verifier.WithPrivateAddressesAllowed())
	uc := usecase.NewPortfolioUsecase(mockRepo, engine, v)

	items := []domain.PortfolioItem{
		{ID: 1, UserID: "user1", Type: "link", ExternalURL: okSrv.URL, ValidationStatus: domain.VerificationPending},
		{ID: 2, UserID: "user1", Type: "link", ExternalURL: brokenSrv.URL, ValidationStatus: domain.VerificationPending},
		{ID: 3, UserID: "user1", Type: "document", FileName: "paper.pdf", ValidationStatus: domain.VerificationPending},
	}
	mockRepo.On("ListByUserID", mock.Anything, "user1").Return(items, nil)
	mockRepo.On("UpdateValidationStatus", mock.Anything, int64(1), domain.VerificationValid).Return(nil)
	mockRepo.On("UpdateValidationStatus", mock.Anything, int64(2), domain.VerificationInvalid).Return(nil)

	verified, err := uc.VerifyLinks(ctx)
	require.NoError(t, err)
	require.Len(t, verified, 3)

	byID := map[int64]domain.PortfolioVerification{}
	for _, it := range verified {
		byID[it.ID] = it.ValidationStatus
	}
	assert.Equal(t, domain.VerificationValid, byID[1])
	assert.Equal(t, domain.VerificationInvalid, byID[2])
	// items without a URL are never probed
	assert.Equal(t, domain.VerificationPending, byID[3])
	mockRepo.AssertNotCalled(t, "UpdateValidationStatus", mock.Anything, int64(3), mock.Anything)
}

func TestPortfolioURLChangeResetsVerification(t *testing.T) {
	ctx := authedCtx("user1")
	mockRepo := new(MockPortfolioRepo)
	uc := usecase.NewPortfolioUsecase(mockRepo, engine, verifier.New())

	item := &domain.PortfolioItem{
		ID: 4, UserID: "user1", Title: "Homepage", Type: "link",
		ExternalURL: "https://old.example.com", ValidationStatus: domain.VerificationValid,
	}
	mockRepo.On("GetByID", mock.Anything, int64(4)).Return(item, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.PortfolioItem")).Return(nil)

	updated, _, err := uc.Update(ctx, 4, &domain.PortfolioUpdateInput{
		ExternalURL: strPtr("https://new.example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationPending, updated.ValidationStatus)
}
