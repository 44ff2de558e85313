package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

func NewPortfolioHandler(r *gin.RouterGroup, portfolioUC domain.PortfolioUsecase, verifyLimiter gin.HandlerFunc) {
	handler := &PortfolioHandler{portfolioUC: portfolioUC}

	portfolio := r.Group("/portfolio")
	{
		portfolio.GET("", handler.List)
		portfolio.POST("", handler.Create)
		portfolio.PUT("/:id", handler.Update)
		portfolio.POST("/verify", verifyLimiter, handler.VerifyLinks)
		portfolio.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List portfolio items
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.PortfolioItem}
// @Failure      401  {object}  response.Response
// @Router       /portfolio [get]
// @Security     BearerAuth
func (h *PortfolioHandler) List(c *gin.Context) {
	items, err := h.portfolioUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Portfolio items", items)
}

// Create godoc
// @Summary      Add portfolio item
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Param        item  body      domain.PortfolioCreateInput  true  "Portfolio item JSON"
// @Success      201  {object}  response.Response{data=domain.PortfolioItem}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /portfolio [post]
// @Security     BearerAuth
func (h *PortfolioHandler) Create(c *gin.Context) {
	var in domain.PortfolioCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	item, warnings, err := h.portfolioUC.Create(c, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.SuccessWithWarnings(c, http.StatusCreated, "Portfolio item added", item, warnings)
}

// Update godoc
// @Summary      Update portfolio item
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Param        id    path      int                          true  "Portfolio item ID"
// @Param        item  body      domain.PortfolioUpdateInput  true  "Portfolio item patch JSON"
// @Success      200  {object}  response.Response{data=domain.PortfolioItem}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /portfolio/{id} [put]
// @Security     BearerAuth
func (h *PortfolioHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var in domain.PortfolioUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	item, warnings, err := h.portfolioUC.Update(c, id, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.SuccessWithWarnings(c, http.StatusOK, "Portfolio item updated", item, warnings)
}

// VerifyLinks godoc
// @Summary      Verify portfolio links
// @Description  Probe the external URLs of all portfolio items and record their reachability
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.PortfolioItem}
// @Failure      401  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /portfolio/verify [post]
// @Security     BearerAuth
func (h *PortfolioHandler) VerifyLinks(c *gin.Context) {
	items, err := h.portfolioUC.VerifyLinks(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Portfolio links verified", items)
}

// Delete godoc
// @Summary      Delete portfolio item
// @Tags         portfolio
// @Produce      json
// @Param        id  path      int  true  "Portfolio item ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /portfolio/{id} [delete]
// @Security     BearerAuth
func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.portfolioUC.Delete(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Portfolio item deleted", nil)
}
