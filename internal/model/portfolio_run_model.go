package model

import (
	"time"

	"github.com/google/uuid"
)

// Wizard states. Transitions only move forward; "failed" is reachable only
// from a file-extraction error, the AI stages always degrade to fallbacks.
const (
	RunStatusUploading        = "uploading"
	RunStatusReviewing        = "reviewing"
	RunStatusTemplateSelected = "template_selected"
	RunStatusGenerating       = "generating"
	RunStatusCompleted        = "completed"
	RunStatusFailed           = "failed"
)

// Content provenance for the two AI-produced payloads.
const (
	ContentSourceModel    = "model"
	ContentSourceFallback = "fallback"
)

type PortfolioRun struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Status     string    `gorm:"type:varchar(50)" json:"status"`
	Filename   string    `gorm:"type:varchar(255)" json:"filename"`
	CVText     string    `gorm:"type:text" json:"cv_text"`
	CVData     string    `gorm:"type:jsonb" json:"cv_data"`
	CVSource   string    `gorm:"type:varchar(20)" json:"cv_source"`
	TemplateID string    `gorm:"type:varchar(50)" json:"template_id"`
	HTML       string    `gorm:"type:text" json:"html"`
	HTMLSource string    `gorm:"type:varchar(20)" json:"html_source"`
	DeployURL  string    `gorm:"type:varchar(255)" json:"deploy_url"`
	Error      string    `gorm:"type:text" json:"error"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r *PortfolioRun) TableName() string {
	return "portfolio_runs"
}
