package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	educationUC domain.EducationUsecase
}

func NewEducationHandler(r *gin.RouterGroup, educationUC domain.EducationUsecase) {
	handler := &EducationHandler{educationUC: educationUC}

	educations := r.Group("/educations")
	{
		educations.GET("", handler.List)
		educations.POST("", handler.Create)
		educations.PUT("/:id", handler.Update)
		educations.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List education entries
// @Tags         educations
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Education}
// @Failure      401  {object}  response.Response
// @Router       /educations [get]
// @Security     BearerAuth
func (h *EducationHandler) List(c *gin.Context) {
	entries, err := h.educationUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education entries", entries)
}

// Create godoc
// @Summary      Add education entry
// @Tags         educations
// @Accept       json
// @Produce      json
// @Param        education  body      domain.EducationCreateInput  true  "Education JSON"
// @Success      201  {object}  response.Response{data=domain.Education}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /educations [post]
// @Security     BearerAuth
func (h *EducationHandler) Create(c *gin.Context) {
	var in domain.EducationCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	entry, err := h.educationUC.Create(c, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Education entry added", entry)
}

// Update godoc
// @Summary      Update education entry
// @Tags         educations
// @Accept       json
// @Produce      json
// @Param        id         path      int                          true  "Education ID"
// @Param        education  body      domain.EducationUpdateInput  true  "Education patch JSON"
// @Success      200  {object}  response.Response{data=domain.Education}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /educations/{id} [put]
// @Security     BearerAuth
func (h *EducationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var in domain.EducationUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	entry, err := h.educationUC.Update(c, id, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education entry updated", entry)
}

// Delete godoc
// @Summary      Delete education entry
// @Tags         educations
// @Produce      json
// @Param        id  path      int  true  "Education ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /educations/{id} [delete]
// @Security     BearerAuth
func (h *EducationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.educationUC.Delete(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education entry deleted", nil)
}
