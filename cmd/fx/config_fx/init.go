package config_fx

import (
	"bridges/internal/config"
	"bridges/internal/infra"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Provide(config.Load, provideLogger),
	fx.Invoke(setGinMode))

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return infra.NewLogger(cfg.LogLevel, cfg.GinMode == gin.DebugMode)
}

func setGinMode(cfg *config.Config) {
	gin.SetMode(cfg.GinMode)
}
