package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchUC domain.SearchUsecase
}

func NewSearchHandler(r *gin.RouterGroup, searchUC domain.SearchUsecase) {
	handler := &SearchHandler{searchUC: searchUC}

	r.POST("/search", handler.Search)
}

// SearchResult wraps a page of matching profiles.
type SearchResult struct {
	Profiles []domain.Profile `json:"profiles"`
	Total    int64            `json:"total"`
}

// Search godoc
// @Summary      Search candidate profiles
// @Description  Search visible candidate profiles by keywords, skills, location and salary range
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        query  body      domain.SearchQuery  true  "Search query JSON"
// @Success      200  {object}  response.Response{data=SearchResult}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /search [post]
// @Security     BearerAuth
func (h *SearchHandler) Search(c *gin.Context) {
	var q domain.SearchQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profiles, total, err := h.searchUC.Search(c, &q)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Search results", SearchResult{Profiles: profiles, Total: total})
}
