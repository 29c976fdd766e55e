package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// DispatchLogger returns a child logger with dispatch-context fields.
func DispatchLogger(base *zap.Logger, requestID, date, title string) *zap.Logger {
	return base.With(
		zap.String("request_id", requestID),
		zap.String("date", date),
		zap.String("title", title),
	)
}
