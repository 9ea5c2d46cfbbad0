package models

import "gorm.io/datatypes"

// Upload is the bookkeeping row for a stored blob. The bytes themselves live
// behind the storage package; no format validation happens here.
type Upload struct {
	BaseModel
	EntityType string `gorm:"not null;index"` // "idea"
	EntityID   string `gorm:"index"`
	Usage      string // "idea_photo", "idea_video"
	Path       string `gorm:"not null"`
	MimeType   string
	Size       int64
	Metadata   datatypes.JSON `gorm:"type:jsonb"`
}
