package controllers_fx

import (
	"bridges/internal/api"
	"bridges/internal/api/controllers"
	"bridges/internal/config"
	"bridges/internal/services"
	"bridges/pkg/middleware"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPagesController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewEditorController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewBridgesController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(provideCookieConfig, provideRouterConfig),
	fx.Provide(provideSeeder, provideSessionReader),
	fx.Provide(api.NewRouter))

func provideCookieConfig(cfg *config.Config) controllers.CookieConfig {
	return controllers.CookieConfig{
		Name:   cfg.SessionCookie,
		TTL:    cfg.SessionTTL,
		Secure: cfg.SecureCookies,
	}
}

func provideRouterConfig(cfg *config.Config) api.RouterConfig {
	return api.RouterConfig{
		CookieName:  cfg.SessionCookie,
		JWTSecret:   []byte(cfg.JWTSecret),
		StaticDir:   cfg.StaticDir,
		UploadDir:   cfg.UploadDir,
		UploadMount: cfg.UploadMount,
	}
}

func provideSeeder(s services.SeedServiceInterface) middleware.Seeder {
	return s
}

func provideSessionReader(a services.AuthServiceInterface) middleware.SessionReader {
	return a
}
