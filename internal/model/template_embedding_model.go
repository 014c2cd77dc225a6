package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

type TemplateEmbedding struct {
	ID        string          `gorm:"type:varchar(50);primaryKey" json:"id"`
	Embedding pgvector.Vector `gorm:"type:vector(3072)" json:"embedding"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (t *TemplateEmbedding) TableName() string {
	return "template_embeddings"
}
