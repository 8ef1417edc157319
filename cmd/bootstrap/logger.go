package bootstrap

import (
	"log/slog"

	"classroom-reservation/internal/pkg/config"
	"classroom-reservation/internal/pkg/logger"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return logger.New(cfg.Log)
}
