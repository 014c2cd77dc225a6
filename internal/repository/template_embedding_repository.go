package repository

import (
	"printfolio/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TemplateEmbeddingRepository struct {
	db *gorm.DB
}

func NewTemplateEmbeddingRepository(db *gorm.DB) *TemplateEmbeddingRepository {
	return &TemplateEmbeddingRepository{db}
}

func (r *TemplateEmbeddingRepository) Upsert(e *model.TemplateEmbedding) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(e).Error
}

// NearestTemplate returns the template id closest to the given embedding.
func (r *TemplateEmbeddingRepository) NearestTemplate(embedding pgvector.Vector) (string, error) {
	var row model.TemplateEmbedding

	// pgvector <-> operator (Euclidean distance)
	err := r.db.Raw(`
        SELECT id FROM template_embeddings
        ORDER BY embedding <-> ?
        LIMIT 1
    `, embedding).Scan(&row).Error
	if err != nil {
		return "", err
	}
	if row.ID == "" {
		return "", gorm.ErrRecordNotFound
	}
	return row.ID, nil
}
