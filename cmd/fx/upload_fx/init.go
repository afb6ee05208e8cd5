package upload_fx

import (
	"bridges/internal/config"
	"bridges/internal/services"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(provideUploadService)

func provideUploadService(cfg *config.Config, log *zap.Logger) (services.UploadServiceInterface, error) {
	return services.NewUploadService(cfg.UploadDir, cfg.UploadMount, log)
}
