package txreplay

import (
	"log/slog"

	"go.uber.org/zap"

	"github.com/finvolt/txreplay/internal/logging"
)

// NewZapLogger wraps a zap sugared logger as a Logger.
//
// Parameters:
//   - logger: Sugared logger to wrap
//
// Returns:
//   - Logger: Logger to pass to WithLogger
//
// Example:
//
//	base, _ := zap.NewProduction()
//	eng, err := txreplay.New(&cfg, txreplay.WithLogger(txreplay.NewZapLogger(base.Sugar())))
func NewZapLogger(logger *zap.SugaredLogger) Logger {
	return logging.NewZap(logger)
}

// NewSlogLogger wraps a slog logger as a Logger.
//
// Parameters:
//   - logger: slog logger to wrap (nil uses slog.Default())
//
// Returns:
//   - Logger: Logger to pass to WithLogger
func NewSlogLogger(logger *slog.Logger) Logger {
	if logger == nil {
		return logging.NewSlogDefault()
	}

	return logging.NewSlog(logger)
}
