package utils

import (
	"strings"

	"go.uber.org/zap"
)

// NewLogger builds the process logger: JSON for production, console otherwise.
func NewLogger(appEnv string) (*zap.Logger, error) {
	switch strings.ToLower(strings.TrimSpace(appEnv)) {
	case "production", "prod":
		return zap.NewProduction()
	default:
		return zap.NewDevelopment()
	}
}

// LogEvent writes a standardized line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(logger *zap.Logger, requestID, module, action, message string, fields ...zap.Field) {
	if logger == nil {
		return
	}
	base := []zap.Field{
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	}
	logger.Info(message, append(base, fields...)...)
}
