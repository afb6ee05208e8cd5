package repositories

import (
	"context"
	"fmt"

	"bridges/internal/models/db_models"
	"gorm.io/gorm"
)

type DistrictSeed struct {
	Name    string
	Bridges []db_models.Bridge
}

type StateSeed struct {
	Name      string
	Districts []DistrictSeed
}

type CountrySeed struct {
	Name   string
	States []StateSeed
}

type SeedRepository interface {
	// InsertTree writes the whole tree in one transaction.
	InsertTree(ctx context.Context, seed CountrySeed) error
}

type seedRepository struct {
	db *gorm.DB
}

func NewSeedRepository(db *gorm.DB) SeedRepository {
	return &seedRepository{db: db}
}

func (r *seedRepository) InsertTree(ctx context.Context, seed CountrySeed) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		country := db_models.Country{Name: seed.Name}
		if err := tx.Create(&country).Error; err != nil {
			return fmt.Errorf("insert country %q: %w", seed.Name, err)
		}

		for _, s := range seed.States {
			state := db_models.State{Name: s.Name, CountryID: country.ID}
			if err := tx.Create(&state).Error; err != nil {
				return fmt.Errorf("insert state %q: %w", s.Name, err)
			}

			for _, d := range s.Districts {
				district := db_models.District{Name: d.Name, StateID: state.ID}
				if err := tx.Create(&district).Error; err != nil {
					return fmt.Errorf("insert district %q: %w", d.Name, err)
				}

				for _, b := range d.Bridges {
					b.DistrictID = district.ID
					if err := tx.Create(&b).Error; err != nil {
						return fmt.Errorf("insert bridge %q: %w", b.Name, err)
					}
				}
			}
		}

		return nil
	})
}
