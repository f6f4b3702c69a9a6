package di

import (
	"go.uber.org/fx"

	"github.com/devtutor/devtutor-go/internal/config"
	"github.com/devtutor/devtutor-go/internal/security"
)

// SecurityModule provides security-related dependencies
var SecurityModule = fx.Module("security",
	fx.Provide(
		provideJWTProvider,
		providePasswordHasher,
		provideSecurityService,
		provideWebhookVerifier,
	),
)

func provideJWTProvider(cfg *config.JWTConfig) *security.JWTProvider {
	return security.NewJWTProvider(cfg)
}

func providePasswordHasher() *security.PasswordHasher {
	return security.NewPasswordHasher()
}

func provideSecurityService(jwtProvider *security.JWTProvider) *security.SecurityService {
	return security.NewSecurityService(jwtProvider)
}

func provideWebhookVerifier(cfg *config.WebhookConfig) (*security.WebhookVerifier, error) {
	return security.NewWebhookVerifier(cfg)
}
