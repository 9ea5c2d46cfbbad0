package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"bcommune_backend/internal/models"
	"bcommune_backend/internal/repositories"
	"bcommune_backend/internal/services/dto"
	"bcommune_backend/internal/storage"
	"bcommune_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attachment is an uploaded idea file as it arrives from the multipart form.
// Bytes are stored as-is: the board does no format validation.
type Attachment struct {
	Usage       string // "idea_photo" or "idea_video"
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type IdeaService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateIdeaRequest, attachments []Attachment) (*dto.IdeaResponse, error)
	ListAll(ctx context.Context, db *gorm.DB) ([]dto.IdeaResponse, error)
}

type IdeaServiceImpl struct {
	ideaRepo   repositories.IdeaRepository
	uploadRepo repositories.UploadRepository
	store      storage.Storage
}

func NewIdeaService(
	ideaRepo repositories.IdeaRepository,
	uploadRepo repositories.UploadRepository,
	store storage.Storage,
) IdeaService {
	return &IdeaServiceImpl{
		ideaRepo:   ideaRepo,
		uploadRepo: uploadRepo,
		store:      store,
	}
}

func (s *IdeaServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreateIdeaRequest, attachments []Attachment) (*dto.IdeaResponse, error) {
	if req.Fund != nil && *req.Fund < 0 {
		return nil, apperrors.ValidationError(map[string]string{"fund": "Must be at least 0"})
	}

	idea := &models.Idea{
		Title:             req.Title,
		PatentNumber:      req.PatentNumber,
		BriefDescription:  req.BriefDescription,
		ApplicationNumber: req.ApplicationNumber,
		ProblemStatement:  req.ProblemStatement,
		Solution:          req.Solution,
		Visibility:        models.IdeaVisibility(req.Visibility),
		Details:           req.Details,
		Fund:              req.Fund,
		Category:          req.Category,
		TeamInfo:          req.TeamInfo,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.ideaRepo.Create(tx, idea); err != nil {
			return err
		}

		for _, att := range attachments {
			path, err := s.saveAttachment(ctx, idea.ID, att)
			if err != nil {
				return err
			}

			upload := &models.Upload{
				EntityType: "idea",
				EntityID:   idea.ID,
				Usage:      att.Usage,
				Path:       path,
				MimeType:   att.ContentType,
				Size:       att.Size,
			}
			if err := s.uploadRepo.Create(tx, upload); err != nil {
				return err
			}

			switch att.Usage {
			case "idea_photo":
				idea.PhotoPath = &path
			case "idea_video":
				idea.VideoPath = &path
			}
		}

		if idea.PhotoPath != nil || idea.VideoPath != nil {
			return tx.Model(idea).Updates(map[string]interface{}{
				"photo_path": idea.PhotoPath,
				"video_path": idea.VideoPath,
			}).Error
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := s.toResponse(ctx, idea)
	return &resp, nil
}

func (s *IdeaServiceImpl) ListAll(ctx context.Context, db *gorm.DB) ([]dto.IdeaResponse, error) {
	ideas, err := s.ideaRepo.ListAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.IdeaResponse, 0, len(ideas))
	for i := range ideas {
		responses = append(responses, s.toResponse(ctx, &ideas[i]))
	}
	return responses, nil
}

func (s *IdeaServiceImpl) saveAttachment(ctx context.Context, ideaID string, att Attachment) (string, error) {
	ext := filepath.Ext(att.Filename)
	path := fmt.Sprintf("ideas/%s/%s%s", ideaID, uuid.NewString(), ext)

	if err := s.store.Save(ctx, path, att.Reader, att.ContentType); err != nil {
		return "", err
	}
	return path, nil
}

func (s *IdeaServiceImpl) toResponse(ctx context.Context, idea *models.Idea) dto.IdeaResponse {
	resp := dto.IdeaResponse{
		ID:                idea.ID,
		Title:             idea.Title,
		PatentNumber:      idea.PatentNumber,
		BriefDescription:  idea.BriefDescription,
		ApplicationNumber: idea.ApplicationNumber,
		ProblemStatement:  idea.ProblemStatement,
		Solution:          idea.Solution,
		Visibility:        idea.Visibility,
		Details:           idea.Details,
		Fund:              idea.Fund,
		Category:          idea.Category,
		TeamInfo:          idea.TeamInfo,
		CreatedAt:         idea.CreatedAt,
	}

	if idea.PhotoPath != nil {
		if url, err := s.store.GetURL(ctx, *idea.PhotoPath); err == nil {
			resp.PhotoURL = &url
		}
	}
	if idea.VideoPath != nil {
		if url, err := s.store.GetURL(ctx, *idea.VideoPath); err == nil {
			resp.VideoURL = &url
		}
	}
	return resp
}
