package v1

import (
	"io"
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

type CVHandler struct {
	cvUC domain.CVUsecase
}

func NewCVHandler(r *gin.RouterGroup, cvUC domain.CVUsecase, uploadLimiter gin.HandlerFunc) {
	handler := &CVHandler{cvUC: cvUC}

	cvs := r.Group("/cvs")
	{
		cvs.GET("", handler.List)
		cvs.POST("", uploadLimiter, handler.Upload)
		cvs.POST("/file", uploadLimiter, handler.UploadFile)
		cvs.PUT("/:id", handler.Update)
		cvs.POST("/:id/render", handler.ValidateRender)
		cvs.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List CV documents
// @Tags         cvs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.CVDocument}
// @Failure      401  {object}  response.Response
// @Router       /cvs [get]
// @Security     BearerAuth
func (h *CVHandler) List(c *gin.Context) {
	docs, err := h.cvUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV documents", docs)
}

// Upload godoc
// @Summary      Register CV upload
// @Description  Validate the upload descriptor and register a new CV document in processing state
// @Tags         cvs
// @Accept       json
// @Produce      json
// @Param        cv  body      domain.CVUploadInput  true  "Upload descriptor JSON"
// @Success      201  {object}  response.Response{data=domain.CVDocument}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /cvs [post]
// @Security     BearerAuth
func (h *CVHandler) Upload(c *gin.Context) {
	var in domain.CVUploadInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	doc, err := h.cvUC.Upload(c, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "CV document registered", doc)
}

// UploadFile godoc
// @Summary      Upload CV file
// @Description  Validate the file bytes (extension, magic bytes, MIME) and register a new CV document in processing state
// @Tags         cvs
// @Accept       multipart/form-data
// @Produce      json
// @Param        file        formData  file    true   "CV document (pdf, doc or docx)"
// @Param        label       formData  string  false  "Display label"
// @Param        is_default  formData  bool    false  "Mark as default CV"
// @Success      201  {object}  response.Response{data=domain.CVDocument}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /cvs/file [post]
// @Security     BearerAuth
func (h *CVHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer src.Close()

	// Read one byte past the cap so oversized files are caught even
	// when the multipart header lies about the size.
	data, err := io.ReadAll(io.LimitReader(src, upload.MaxFileSize+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	// Detect content type from file bytes (more reliable than header)
	detected := http.DetectContentType(data)
	result := upload.ValidateFile(fileHeader.Filename, data, detected)
	if !result.Valid {
		c.Error(apperror.BadRequest(result.Error))
		return
	}

	label := c.DefaultPostForm("label", fileHeader.Filename)
	in := &domain.CVUploadInput{
		Label:     label,
		IsDefault: c.PostForm("is_default") == "true",
		FileName:  fileHeader.Filename,
		FileSize:  int64(len(data)),
		MimeType:  upload.CanonicalMIME(result.Extension),
	}

	doc, err := h.cvUC.Upload(c, in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "CV file uploaded", doc)
}

// Update godoc
// @Summary      Update CV document
// @Description  Edit CV metadata; status changes are checked against the document lifecycle
// @Tags         cvs
// @Accept       json
// @Produce      json
// @Param        id  path      int                   true  "CV ID"
// @Param        cv  body      domain.CVUpdateInput  true  "CV patch JSON"
// @Success      200  {object}  response.Response{data=domain.CVDocument}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /cvs/{id} [put]
// @Security     BearerAuth
func (h *CVHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var in domain.CVUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	doc, err := h.cvUC.Update(c, id, &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV document updated", doc)
}

// ValidateRender godoc
// @Summary      Validate CV render options
// @Description  Check template color and custom sections before the document is rendered
// @Tags         cvs
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "CV ID"
// @Param        options  body      domain.CVRenderInput  true  "Render options JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /cvs/{id}/render [post]
// @Security     BearerAuth
func (h *CVHandler) ValidateRender(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var in domain.CVRenderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.cvUC.ValidateRenderOptions(c, id, &in); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Render options accepted", nil)
}

// Delete godoc
// @Summary      Delete CV document
// @Tags         cvs
// @Produce      json
// @Param        id  path      int  true  "CV ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /cvs/{id} [delete]
// @Security     BearerAuth
func (h *CVHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.cvUC.Delete(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV document deleted", nil)
}
