package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := r.Group("/profiles")
	{
		profiles.GET("/me", handler.GetMine)
		profiles.POST("", handler.Create)
		profiles.PUT("/me", handler.Update)
	}
}

// GetMine godoc
// @Summary      Get own profile
// @Description  Get the profile of the currently logged-in candidate
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetProfile(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	if profile == nil {
		c.Error(apperror.NotFound("Profile not found"))
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

// Create godoc
// @Summary      Create profile
// @Description  Create the candidate profile for the logged-in user
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.ProfileCreateInput  true  "Profile JSON"
// @Success      201  {object}  response.Response{data=domain.Profile}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /profiles [post]
// @Security     BearerAuth
func (h *ProfileHandler) Create(c *gin.Context) {
	var in domain.ProfileCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, warnings, err := h.profileUC.CreateProfile(c, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.SuccessWithWarnings(c, http.StatusCreated, "Profile created", profile, warnings)
}

// Update godoc
// @Summary      Update profile
// @Description  Partially update the candidate profile; absent fields are left unchanged
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.ProfileUpdateInput  true  "Profile patch JSON"
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /profiles/me [put]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	var in domain.ProfileUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, warnings, err := h.profileUC.UpdateProfile(c, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.SuccessWithWarnings(c, http.StatusOK, "Profile updated", profile, warnings)
}
