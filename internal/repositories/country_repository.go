package repositories

import (
	"context"

	"bridges/internal/models/db_models"
	"gorm.io/gorm"
)

type CountryRepository interface {
	List(ctx context.Context) ([]db_models.Country, error)
	Exists(ctx context.Context) (bool, error)
}

type countryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) CountryRepository {
	return &countryRepository{db: db}
}

func (r *countryRepository) List(ctx context.Context) ([]db_models.Country, error) {
	var countries []db_models.Country
	if err := r.db.WithContext(ctx).Order("id").Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *countryRepository) Exists(ctx context.Context) (bool, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&db_models.Country{}).Limit(1).Pluck("id", &ids).Error
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}
