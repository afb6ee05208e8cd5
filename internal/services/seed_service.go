package services

import (
	"context"

	"bridges/internal/models/db_models"
	"bridges/internal/repositories"
	"bridges/pkg/utils"
	"go.uber.org/zap"
)

type SeedServiceInterface interface {
	// EnsureSeeded fills an empty catalog with sample data. It is safe to
	// call on every request: the store itself records whether seeding ran.
	EnsureSeeded(ctx context.Context) error
}

type SeedService struct {
	countryRepo repositories.CountryRepository
	seedRepo    repositories.SeedRepository
	log         *zap.Logger
}

func NewSeedService(
	countryRepo repositories.CountryRepository,
	seedRepo repositories.SeedRepository,
	log *zap.Logger) SeedServiceInterface {

	return &SeedService{
		countryRepo: countryRepo,
		seedRepo:    seedRepo,
		log:         log,
	}
}

func (s *SeedService) EnsureSeeded(ctx context.Context) error {
	exists, err := s.countryRepo.Exists(ctx)
	if err != nil {
		s.log.Error("check seed state", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if exists {
		return nil
	}

	if err := s.seedRepo.InsertTree(ctx, SampleCatalog()); err != nil {
		// Another request may have seeded between the check and the insert.
		if again, checkErr := s.countryRepo.Exists(ctx); checkErr == nil && again {
			return nil
		}
		s.log.Error("seed catalog", zap.Error(err))
		return utils.ErrDatabaseError
	}

	s.log.Info("sample catalog seeded")
	return nil
}

// SampleCatalog is the data written into an empty store.
func SampleCatalog() repositories.CountrySeed {
	districts := []string{
		"East Godavari",
		"West Godavari",
		"Krishna",
		"Guntur",
		"Prakasam",
		"Nellore",
		"Visakhapatnam",
		"Vizianagaram",
		"Srikakulam",
		"Kurnool",
		"Anantapur",
		"Chittoor",
		"YSR Kadapa",
	}

	bridges := map[string][]db_models.Bridge{
		"East Godavari": {{
			Name:       "Godavari Bridge (Havelock Bridge)",
			RiverName:  strPtr("Godavari River"),
			YearBuilt:  intPtr(1900),
			BridgeType: strPtr("Truss railway bridge"),
			Description: strPtr("Historic railway bridge in Rajahmundry across the Godavari River, " +
				"also known as Havelock Bridge."),
			ImageURL: strPtr("https://img.traveltriangle.com/blog/wp-content/uploads/2024/06/Godavari-Bridge-OG.jpg"),
		}},
		"Krishna": {{
			Name:        "Prakasam Barrage",
			RiverName:   strPtr("Krishna River"),
			YearBuilt:   intPtr(1957),
			BridgeType:  strPtr("Arch bridge"),
			Description: strPtr("A famous barrage across the Krishna River."),
			ImageURL:    strPtr("https://dynamic-media-cdn.tripadvisor.com/media/photo-o/0f/b5/db/4f/prakasam-barrage.jpg?w=1200&h=-1&s=1"),
		}},
	}

	state := repositories.StateSeed{Name: "Andhra Pradesh"}
	for _, name := range districts {
		state.Districts = append(state.Districts, repositories.DistrictSeed{
			Name:    name,
			Bridges: bridges[name],
		})
	}

	return repositories.CountrySeed{
		Name:   "India",
		States: []repositories.StateSeed{state},
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
