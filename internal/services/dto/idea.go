package dto

import (
	"time"

	"bcommune_backend/internal/models"
)

// CreateIdeaRequest binds the multipart idea form. Photo and video arrive as
// file parts and are handled by the handler, not bound here.
type CreateIdeaRequest struct {
	Title             string   `form:"title" validate:"required,max=200"`
	PatentNumber      *string  `form:"patent_number" validate:"omitempty,max=100"`
	BriefDescription  string   `form:"brief_description" validate:"required"`
	ApplicationNumber *string  `form:"application_number" validate:"omitempty,max=100"`
	ProblemStatement  string   `form:"problem_statement" validate:"required"`
	Solution          string   `form:"solution" validate:"required"`
	Visibility        string   `form:"visibility" validate:"required,is-visibility"`
	Details           *string  `form:"details"`
	Fund              *float64 `form:"fund" validate:"omitempty,min=0"`
	Category          string   `form:"category" validate:"required,max=100"`
	TeamInfo          *string  `form:"team_info"`
}

type IdeaResponse struct {
	ID                string                `json:"id"`
	Title             string                `json:"title"`
	PatentNumber      *string               `json:"patent_number,omitempty"`
	BriefDescription  string                `json:"brief_description"`
	ApplicationNumber *string               `json:"application_number,omitempty"`
	ProblemStatement  string                `json:"problem_statement"`
	Solution          string                `json:"solution"`
	Visibility        models.IdeaVisibility `json:"visibility"`
	Details           *string               `json:"details,omitempty"`
	Fund              *float64              `json:"fund,omitempty"`
	Category          string                `json:"category"`
	PhotoURL          *string               `json:"photo_url,omitempty"`
	VideoURL          *string               `json:"video_url,omitempty"`
	TeamInfo          *string               `json:"team_info,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
}
