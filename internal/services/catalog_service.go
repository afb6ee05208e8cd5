package services

import (
	"context"

	"bridges/internal/models/response_models"
	"bridges/internal/repositories"
	"bridges/pkg/utils"
	"go.uber.org/zap"
)

// HomeBridgeLimit caps the bridge sample on the home page.
const HomeBridgeLimit = 6

type CatalogServiceInterface interface {
	ListCountries(ctx context.Context) ([]response_models.NamedItem, error)
	ListStates(ctx context.Context, countryID uint) ([]response_models.NamedItem, error)
	ListDistricts(ctx context.Context, stateID uint) ([]response_models.NamedItem, error)
	ListBridges(ctx context.Context, districtID uint) ([]response_models.NamedItem, error)
	FeaturedBridges(ctx context.Context) ([]response_models.BridgeSummary, error)
}

type CatalogService struct {
	countryRepo  repositories.CountryRepository
	stateRepo    repositories.StateRepository
	districtRepo repositories.DistrictRepository
	bridgeRepo   repositories.BridgeRepository
	log          *zap.Logger
}

func NewCatalogService(
	countryRepo repositories.CountryRepository,
	stateRepo repositories.StateRepository,
	districtRepo repositories.DistrictRepository,
	bridgeRepo repositories.BridgeRepository,
	log *zap.Logger) CatalogServiceInterface {

	return &CatalogService{
		countryRepo:  countryRepo,
		stateRepo:    stateRepo,
		districtRepo: districtRepo,
		bridgeRepo:   bridgeRepo,
		log:          log,
	}
}

func (s *CatalogService) ListCountries(ctx context.Context) ([]response_models.NamedItem, error) {
	countries, err := s.countryRepo.List(ctx)
	if err != nil {
		s.log.Error("list countries", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.NamedItem, 0, len(countries))
	for _, c := range countries {
		items = append(items, response_models.NamedItem{ID: c.ID, Name: c.Name})
	}
	return items, nil
}

func (s *CatalogService) ListStates(ctx context.Context, countryID uint) ([]response_models.NamedItem, error) {
	states, err := s.stateRepo.ListByCountry(ctx, countryID)
	if err != nil {
		s.log.Error("list states", zap.Uint("country_id", countryID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.NamedItem, 0, len(states))
	for _, st := range states {
		items = append(items, response_models.NamedItem{ID: st.ID, Name: st.Name})
	}
	return items, nil
}

func (s *CatalogService) ListDistricts(ctx context.Context, stateID uint) ([]response_models.NamedItem, error) {
	districts, err := s.districtRepo.ListByState(ctx, stateID)
	if err != nil {
		s.log.Error("list districts", zap.Uint("state_id", stateID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.NamedItem, 0, len(districts))
	for _, d := range districts {
		items = append(items, response_models.NamedItem{ID: d.ID, Name: d.Name})
	}
	return items, nil
}

func (s *CatalogService) ListBridges(ctx context.Context, districtID uint) ([]response_models.NamedItem, error) {
	bridges, err := s.bridgeRepo.ListByDistrict(ctx, districtID)
	if err != nil {
		s.log.Error("list bridges", zap.Uint("district_id", districtID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.NamedItem, 0, len(bridges))
	for _, b := range bridges {
		items = append(items, response_models.NamedItem{ID: b.ID, Name: b.Name})
	}
	return items, nil
}

func (s *CatalogService) FeaturedBridges(ctx context.Context) ([]response_models.BridgeSummary, error) {
	bridges, err := s.bridgeRepo.List(ctx, HomeBridgeLimit)
	if err != nil {
		s.log.Error("list featured bridges", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toSummaries(bridges), nil
}
