// Package telemetry wires structured logging and Prometheus metrics.
package telemetry

import (
	"log/slog"
	"os"
)

// InitLogger installs a JSON logger as the process default.
func InitLogger(serviceName string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler).With(slog.String("service", serviceName)))
}
