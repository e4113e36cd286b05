// Package rules holds the alert rule evaluators. Each rule scans current
// facility state and proposes alerts; the shared dedup check keeps at most
// one unresolved alert per (facility, alert type, related entity). Rules run
// inside a single database transaction per generation pass.
package rules

import (
	"context"

	"caretrack/internal/domain/alert"
)

// SystemActor is recorded in the audit trail for rule-driven transitions.
const SystemActor = "system"

// Rule evaluates one compliance condition for a facility and returns the
// alerts it created.
type Rule interface {
	Name() string
	Evaluate(ctx context.Context, facilityID uint, alerts alert.Repository) ([]*alert.Alert, error)
}

// createWithHistory inserts an alert plus its "created" audit row.
func createWithHistory(ctx context.Context, alerts alert.Repository, a *alert.Alert) error {
	if err := alerts.Create(ctx, a); err != nil {
		return err
	}
	return alerts.CreateHistory(ctx, alert.NewHistory(a.ID(), alert.HistoryActionCreated, SystemActor))
}

// resolveWithHistory closes an alert plus its "resolved" audit row.
func resolveWithHistory(ctx context.Context, alerts alert.Repository, a *alert.Alert) error {
	if err := a.Resolve(); err != nil {
		return err
	}
	if err := alerts.Update(ctx, a); err != nil {
		return err
	}
	return alerts.CreateHistory(ctx, alert.NewHistory(a.ID(), alert.HistoryActionResolved, SystemActor))
}
