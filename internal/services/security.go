package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
)

type clientInfoKey struct{}

// ClientInfo describes the caller of a request for the security audit trail.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// WithClientInfo attaches the caller's network details to ctx.
func WithClientInfo(ctx context.Context, info ClientInfo) context.Context {
	return context.WithValue(ctx, clientInfoKey{}, info)
}

// ClientInfoFromContext returns the details stored by WithClientInfo.
func ClientInfoFromContext(ctx context.Context) (ClientInfo, bool) {
	info, ok := ctx.Value(clientInfoKey{}).(ClientInfo)
	return info, ok
}

// recordSecurityEvent appends a security log entry. Audit write failures are logged
// and never fail the operation that triggered them.
func recordSecurityEvent(
	ctx context.Context,
	w SecurityLogWriter,
	userID string,
	eventType string,
	severity models.Severity,
	details models.SecurityDetails,
	at time.Time,
) {
	if w == nil {
		return
	}
	entry := &models.SecurityLog{
		ID:        uuid.NewString(),
		EventType: eventType,
		Severity:  severity,
		Details:   details,
		CreatedAt: at,
	}
	if userID != "" {
		entry.UserID = &userID
	}
	if info, ok := ClientInfoFromContext(ctx); ok {
		if info.IPAddress != "" {
			entry.IPAddress = &info.IPAddress
		}
		if info.UserAgent != "" {
			entry.UserAgent = &info.UserAgent
		}
	}
	// audit rows outlive a cancelled request
	if err := w.Create(context.WithoutCancel(ctx), entry); err != nil {
		logger.Log.Errorw("failed to write security log", "event", eventType, "userID", userID, "error", err)
	}
}

// AuditService exposes the security audit trail to operators.
type AuditService struct {
	logs SecurityLogReader
}

func NewAuditService(logs SecurityLogReader) *AuditService {
	return &AuditService{logs: logs}
}

// List returns the newest security log entries, optionally filtered by severity.
func (s *AuditService) List(ctx context.Context, severity string, limit int) ([]models.SecurityLog, error) {
	var filter *models.Severity
	if severity != "" {
		sv := models.Severity(severity)
		switch sv {
		case models.SeverityLow, models.SeverityMedium, models.SeverityHigh:
		default:
			return nil, fail(ErrInvalidInput, "unknown severity %q", severity)
		}
		filter = &sv
	}
	logs, err := s.logs.List(ctx, filter, clampLimit(limit))
	if err != nil {
		logger.Log.Errorw("failed to list security logs", "error", err)
		return nil, err
	}
	return logs, nil
}

// Listing limits
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	}
	return limit
}
