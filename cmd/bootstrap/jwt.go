package bootstrap

import (
	"classroom-reservation/internal/pkg/config"
	"classroom-reservation/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		newJWTService,
	),
)

func newJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, jwt.WithLeeway(cfg.JWT.Leeway))
}
