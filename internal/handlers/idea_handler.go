package handlers

import (
	"mime/multipart"
	"net/http"

	"bcommune_backend/internal/services"
	"bcommune_backend/internal/services/dto"
	"bcommune_backend/internal/validator"
	"bcommune_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type IdeaHandler struct {
	BaseHandler
	ideaService services.IdeaService
	maxUpload   int64
}

func NewIdeaHandler(v *validator.Validator, ideaService services.IdeaService, maxUpload int64) *IdeaHandler {
	return &IdeaHandler{
		BaseHandler: NewBaseHandler(v),
		ideaService: ideaService,
		maxUpload:   maxUpload,
	}
}

func (h *IdeaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ideas := rg.Group("/ideas")
	{
		ideas.POST("", h.Create)
		ideas.GET("", h.List)
	}
}

// Create accepts the multipart idea form. Text fields bind into the request
// struct, photo and video arrive as optional file parts.
func (h *IdeaHandler) Create(c *gin.Context) {
	var req dto.CreateIdeaRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	var attachments []services.Attachment
	closers := make([]multipart.File, 0, 2)
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()

	for field, usage := range map[string]string{
		"photo": "idea_photo",
		"video": "idea_video",
	} {
		fileHeader, err := c.FormFile(field)
		if err != nil {
			continue
		}
		if fileHeader.Size > h.maxUpload {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Uploaded file exceeds the size limit"))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			apperrors.HandleError(c, apperrors.InternalError(err))
			return
		}
		closers = append(closers, file)

		attachments = append(attachments, services.Attachment{
			Usage:       usage,
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Reader:      file,
		})
	}

	idea, err := h.ideaService.Create(c.Request.Context(), h.GetDB(c), &req, attachments)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Idea submitted successfully",
		"idea":    idea,
	})
}

func (h *IdeaHandler) List(c *gin.Context) {
	ideas, err := h.ideaService.ListAll(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ideas": ideas})
}
