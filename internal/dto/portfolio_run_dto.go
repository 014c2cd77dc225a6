package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PortfolioRunDTO is the API view of a run. The extracted raw text and the
// generated HTML are deliberately absent; the HTML has its own
// preview/download endpoints.
type PortfolioRunDTO struct {
	ID         uuid.UUID       `json:"id"`
	Status     string          `json:"status"`
	Filename   string          `json:"filename"`
	CVData     json.RawMessage `json:"cv_data,omitempty"`
	CVSource   string          `json:"cv_source,omitempty"`
	TemplateID string          `json:"template_id,omitempty"`
	HTMLSource string          `json:"html_source,omitempty"`
	DeployURL  string          `json:"deploy_url,omitempty"`
	Error      string          `json:"error,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type SelectTemplateRequest struct {
	TemplateID string `json:"templateId"`
}

type GeneratePortfolioRequest struct {
	Prompt string `json:"prompt"`
}
