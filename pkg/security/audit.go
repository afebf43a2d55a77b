package security

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType classifies an auth-related audit event
type EventType string

const (
	EventTokenIssued        EventType = "token_issued"
	EventAuthFailed         EventType = "auth_failed"
	EventOwnershipDenied    EventType = "ownership_denied"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
)

// Event is a single audit record emitted to the structured security log
type Event struct {
	Event     EventType
	Email     string
	IP        string
	RequestID string
	Details   map[string]interface{}
}

// AuditLogger writes auth audit events through Zap. It is deliberately
// separate from the application logger so the audit trail can be shipped
// to its own sink.
type AuditLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewAuditLogger builds a production Zap logger writing to stdout.
func NewAuditLogger(serviceName string) *AuditLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	return &AuditLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: getEnvironment(),
	}
}

// Log emits one audit event. Denials log at warn, the rest at info.
func (al *AuditLogger) Log(event Event) {
	if al == nil || al.zapLogger == nil {
		return
	}

	fields := []zap.Field{
		zap.String("service", al.serviceName),
		zap.String("env", al.environment),
		zap.String("event", string(event.Event)),
		zap.Time("at", time.Now().UTC()),
	}
	if event.Email != "" {
		fields = append(fields, zap.String("email", event.Email))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	switch event.Event {
	case EventAuthFailed, EventOwnershipDenied, EventRateLimitTriggered:
		al.zapLogger.Warn("security event", fields...)
	default:
		al.zapLogger.Info("security event", fields...)
	}
}

// Sync flushes buffered log entries; call on shutdown.
func (al *AuditLogger) Sync() {
	if al != nil && al.zapLogger != nil {
		_ = al.zapLogger.Sync()
	}
}

func getEnvironment() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}
