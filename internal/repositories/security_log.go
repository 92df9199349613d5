package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
)

// SecurityLogRepository appends and reads security_logs.
type SecurityLogRepository struct {
	db *sqlx.DB
}

func NewSecurityLogRepository(db *sqlx.DB) *SecurityLogRepository {
	return &SecurityLogRepository{db: db}
}

// Create appends a security event. It always writes outside any ledger
// transaction so that audit records survive a rolled back operation.
func (r *SecurityLogRepository) Create(ctx context.Context, l *models.SecurityLog) error {
	const query = `
		INSERT INTO security_logs (id, user_id, event_type, severity, ip_address, user_agent, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	args := []any{l.ID, l.UserID, l.EventType, l.Severity, l.IPAddress, l.UserAgent, l.Details, l.CreatedAt}
	_, err := r.db.ExecContext(ctx, query, args...)
	logQuery(query, []any{l.ID, l.EventType, l.Severity}, nil, err)
	return err
}

// List returns up to limit events, newest first, optionally filtered by severity.
func (r *SecurityLogRepository) List(ctx context.Context, severity *models.Severity, limit int) ([]models.SecurityLog, error) {
	const query = `
		SELECT id, user_id, event_type, severity, ip_address, user_agent, details, created_at
		FROM security_logs
		WHERE ($1::VARCHAR IS NULL OR severity = $1)
		ORDER BY created_at DESC
		LIMIT $2
	`
	var logs []models.SecurityLog
	err := r.db.SelectContext(ctx, &logs, query, severity, limit)
	logQuery(query, []any{severity, limit}, len(logs), err)
	return logs, err
}
