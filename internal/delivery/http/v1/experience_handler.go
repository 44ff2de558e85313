package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	experienceUC domain.WorkExperienceUsecase
}

func NewExperienceHandler(r *gin.RouterGroup, experienceUC domain.WorkExperienceUsecase) {
	handler := &ExperienceHandler{experienceUC: experienceUC}

	experiences := r.Group("/experiences")
	{
		experiences.GET("", handler.List)
		experiences.POST("", handler.Create)
		experiences.PUT("/:id", handler.Update)
		experiences.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List work experiences
// @Tags         experiences
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.WorkExperience}
// @Failure      401  {object}  response.Response
// @Router       /experiences [get]
// @Security     BearerAuth
func (h *ExperienceHandler) List(c *gin.Context) {
	entries, err := h.experienceUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Work experiences", entries)
}

// Create godoc
// @Summary      Add work experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        experience  body      domain.WorkExperienceCreateInput  true  "Experience JSON"
// @Success      201  {object}  response.Response{data=domain.WorkExperience}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /experiences [post]
// @Security     BearerAuth
func (h *ExperienceHandler) Create(c *gin.Context) {
	var in domain.WorkExperienceCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	entry, err := h.experienceUC.Create(c, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Work experience added", entry)
}

// Update godoc
// @Summary      Update work experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        id          path      int                               true  "Experience ID"
// @Param        experience  body      domain.WorkExperienceUpdateInput  true  "Experience patch JSON"
// @Success      200  {object}  response.Response{data=domain.WorkExperience}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /experiences/{id} [put]
// @Security     BearerAuth
func (h *ExperienceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var in domain.WorkExperienceUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	entry, err := h.experienceUC.Update(c, id, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Work experience updated", entry)
}

// Delete godoc
// @Summary      Delete work experience
// @Tags         experiences
// @Produce      json
// @Param        id  path      int  true  "Experience ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experiences/{id} [delete]
// @Security     BearerAuth
func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.experienceUC.Delete(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Work experience deleted", nil)
}
