package dto

import "time"

type CreateJobRequest struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Company      string   `json:"company" validate:"required,max=200"`
	Location     string   `json:"location" validate:"required,max=200"`
	Description  string   `json:"description" validate:"required"`
	Requirements string   `json:"requirements" validate:"required,max=200"`
	Salary       string   `json:"salary" validate:"omitempty,max=200"`
	Skills       []string `json:"skills" validate:"omitempty,dive,max=100"`
}

type JobResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Salary       string    `json:"salary"`
	Skills       []string  `json:"skills,omitempty"`
	PostedAt     time.Time `json:"posted_date"`
}
