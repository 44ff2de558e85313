package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PrivacyHandler struct {
	privacyUC domain.PrivacySettingsUsecase
}

func NewPrivacyHandler(r *gin.RouterGroup, privacyUC domain.PrivacySettingsUsecase) {
	handler := &PrivacyHandler{privacyUC: privacyUC}

	privacy := r.Group("/privacy")
	{
		privacy.GET("", handler.Get)
		privacy.PUT("", handler.Replace)
	}
}

// Get godoc
// @Summary      Get privacy settings
// @Tags         privacy
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.PrivacySettings}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /privacy [get]
// @Security     BearerAuth
func (h *PrivacyHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	settings, err := h.privacyUC.GetSettings(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	if settings == nil {
		c.Error(apperror.NotFound("Privacy settings not found"))
		return
	}

	response.Success(c, http.StatusOK, "Privacy settings", settings)
}

// Replace godoc
// @Summary      Replace privacy settings
// @Description  Replace the full privacy settings document; partial updates are not supported
// @Tags         privacy
// @Accept       json
// @Produce      json
// @Param        settings  body      domain.PrivacySettingsInput  true  "Settings JSON"
// @Success      200  {object}  response.Response{data=domain.PrivacySettings}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /privacy [put]
// @Security     BearerAuth
func (h *PrivacyHandler) Replace(c *gin.Context) {
	var in domain.PrivacySettingsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	settings, err := h.privacyUC.ReplaceSettings(c, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Privacy settings updated", settings)
}
