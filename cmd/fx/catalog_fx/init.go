package catalog_fx

import (
	"bridges/internal/repositories"
	"bridges/internal/services"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	repositories.NewCountryRepository,
	repositories.NewStateRepository,
	repositories.NewDistrictRepository,
	repositories.NewBridgeRepository,
	repositories.NewSeedRepository,
	services.NewCatalogService,
	services.NewBridgeService,
	services.NewSeedService)
