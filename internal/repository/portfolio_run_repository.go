package repository

import (
	"printfolio/internal/model"
	"printfolio/internal/response"

	"gorm.io/gorm"
)

type PortfolioRunRepository struct {
	db *gorm.DB
}

func NewPortfolioRunRepository(db *gorm.DB) *PortfolioRunRepository {
	return &PortfolioRunRepository{db}
}

func (r *PortfolioRunRepository) Create(run *model.PortfolioRun) error {
	return r.db.Create(run).Error
}

func (r *PortfolioRunRepository) Update(run *model.PortfolioRun) error {
	return r.db.Save(run).Error
}

func (r *PortfolioRunRepository) FindByID(id string) (*model.PortfolioRun, error) {
	var run model.PortfolioRun
	err := r.db.First(&run, "id = ?", id).Error
	return &run, err
}

func (r *PortfolioRunRepository) List(page, pageSize int) ([]model.PortfolioRun, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := r.db.Model(&model.PortfolioRun{}).Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var runs []model.PortfolioRun
	offset := (page - 1) * pageSize
	err := r.db.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&runs).Error
	if err != nil {
		return nil, nil, err
	}

	totalPages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPages++
	}
	pagination := &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       offset + 1,
		To:         offset + len(runs),
	}
	if len(runs) == 0 {
		pagination.From = 0
		pagination.To = 0
	}
	return runs, pagination, nil
}
