package repositories

import (
	"context"

	"bridges/internal/models/db_models"
	"gorm.io/gorm"
)

type DistrictRepository interface {
	ListByState(ctx context.Context, stateID uint) ([]db_models.District, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type districtRepository struct {
	db *gorm.DB
}

func NewDistrictRepository(db *gorm.DB) DistrictRepository {
	return &districtRepository{db: db}
}

func (r *districtRepository) ListByState(ctx context.Context, stateID uint) ([]db_models.District, error) {
	var districts []db_models.District
	err := r.db.WithContext(ctx).
		Where("state_id = ?", stateID).
		Order("id").
		Find(&districts).Error
	if err != nil {
		return nil, err
	}
	return districts, nil
}

func (r *districtRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.District{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
