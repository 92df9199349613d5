package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultLargeTxThreshold flags transfers for review.
var DefaultLargeTxThreshold = decimal.NewFromInt(10000)

// ComplianceDecision is the outcome of a compliance check.
type ComplianceDecision struct {
	Approved       bool
	RequiresReview bool
	Reason         string
}

// ComplianceGate screens outgoing transfers. It never approves when a check could not run.
type ComplianceGate struct {
	threshold decimal.Decimal
	sanctions SanctionsChecker
	logs      SecurityLogWriter
	now       func() time.Time
}

func NewComplianceGate(threshold decimal.Decimal, sanctions SanctionsChecker, logs SecurityLogWriter) *ComplianceGate {
	if !threshold.IsPositive() {
		threshold = DefaultLargeTxThreshold
	}
	return &ComplianceGate{threshold: threshold, sanctions: sanctions, logs: logs, now: time.Now}
}

// Check approves or denies sending amount to destination on behalf of userID.
// Large amounts are approved with RequiresReview set.
func (g *ComplianceGate) Check(ctx context.Context, userID string, amount decimal.Decimal, destination string) ComplianceDecision {
	if destination == "" {
		return ComplianceDecision{Reason: "destination address is required"}
	}
	if g.sanctions == nil {
		return ComplianceDecision{Reason: "sanctions screening is not configured"}
	}

	sanctioned, err := g.sanctions.IsSanctioned(ctx, destination)
	if err != nil {
		logger.Log.Errorw("sanctions check failed", "userID", userID, "error", err)
		return ComplianceDecision{Reason: "sanctions screening unavailable"}
	}
	if sanctioned {
		return ComplianceDecision{Reason: "destination address is sanctioned"}
	}

	decision := ComplianceDecision{Approved: true}
	if amount.GreaterThanOrEqual(g.threshold) {
		decision.RequiresReview = true
		decision.Reason = "large transaction"
		g.record(ctx, userID, amount, destination)
	}
	return decision
}

func (g *ComplianceGate) record(ctx context.Context, userID string, amount decimal.Decimal, destination string) {
	recordSecurityEvent(ctx, g.logs, userID, models.EventLargeTransaction, models.SeverityMedium, models.SecurityDetails{
		"amount":      amount.String(),
		"destination": destination,
		"threshold":   g.threshold.String(),
	}, g.now())
}
