package models

// Idea carries no owner reference and its visibility flag is stored but not
// enforced by any listing. Both match the original board behaviour; whether
// private ideas should actually be hidden is an open product question.
type Idea struct {
	BaseModel
	Title             string `gorm:"not null"`
	PatentNumber      *string
	BriefDescription  string `gorm:"not null"`
	ApplicationNumber *string
	ProblemStatement  string         `gorm:"not null"`
	Solution          string         `gorm:"not null"`
	Visibility        IdeaVisibility `gorm:"type:varchar(10);not null"`
	Details           *string
	Fund              *float64
	Category          string `gorm:"not null"`
	PhotoPath         *string
	VideoPath         *string
	TeamInfo          *string
}
