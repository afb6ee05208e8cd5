package account_fx

import (
	"bridges/internal/config"
	"bridges/internal/services"
	"bridges/pkg/session"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(
	provideCredentialVerifier, provideAuthService)

func provideCredentialVerifier(cfg *config.Config) (services.CredentialVerifier, error) {
	return services.NewStaticCredentials(cfg.Editors)
}

func provideAuthService(cfg *config.Config, verifier services.CredentialVerifier, store session.Store, log *zap.Logger) services.AuthServiceInterface {
	return services.NewAuthService(verifier, store, cfg.SessionTTL, []byte(cfg.JWTSecret), cfg.JWTTTL, log)
}
