package bootstrap

import (
	"log/slog"

	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/pkg/config"

	"go.uber.org/fx"
)

// LoggerModule builds the process logger once and sets it as the slog default.
var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}
