package repositories

import (
	"context"

	"bridges/internal/models/db_models"
	"gorm.io/gorm"
)

type StateRepository interface {
	ListByCountry(ctx context.Context, countryID uint) ([]db_models.State, error)
}

type stateRepository struct {
	db *gorm.DB
}

func NewStateRepository(db *gorm.DB) StateRepository {
	return &stateRepository{db: db}
}

func (r *stateRepository) ListByCountry(ctx context.Context, countryID uint) ([]db_models.State, error) {
	var states []db_models.State
	err := r.db.WithContext(ctx).
		Where("country_id = ?", countryID).
		Order("id").
		Find(&states).Error
	if err != nil {
		return nil, err
	}
	return states, nil
}
