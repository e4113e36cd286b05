package rules

import (
	"context"
	"fmt"

	"caretrack/internal/domain/alert"
	"caretrack/internal/domain/staff"
	"caretrack/internal/shared/biztime"
	"caretrack/internal/shared/logger"
)

// CertExpiryRule raises alerts for staff certifications approaching or past
// their expiration date. Severity bands by days until expiry: expired and
// within 7 days are critical, 8-30 days warning, 31-60 days info, beyond 60
// days no alert.
type CertExpiryRule struct {
	staffRepo staff.Repository
	logger    logger.Interface
}

func NewCertExpiryRule(staffRepo staff.Repository, logger logger.Interface) *CertExpiryRule {
	return &CertExpiryRule{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

func (r *CertExpiryRule) Name() string {
	return "cert_expiry"
}

func (r *CertExpiryRule) Evaluate(ctx context.Context, facilityID uint, alerts alert.Repository) ([]*alert.Alert, error) {
	certs, err := r.staffRepo.ListCertificationsByFacility(ctx, facilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load certifications: %w", err)
	}

	members, err := r.staffRepo.ListByFacility(ctx, facilityID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff members: %w", err)
	}
	names := make(map[uint]string, len(members))
	for _, m := range members {
		names[m.ID()] = m.FullName()
	}

	now := biztime.NowUTC()
	var created []*alert.Alert

	for _, cert := range certs {
		days := cert.DaysUntilExpiry(now)

		alertType, severity := classifyExpiry(cert.Type(), days)
		if alertType == "" {
			continue
		}

		certID := cert.ID()
		existing, err := alerts.FindUnresolved(ctx, facilityID, alertType, &certID)
		if err != nil {
			return nil, fmt.Errorf("failed to check for duplicate alert: %w", err)
		}
		if existing != nil {
			continue
		}

		name := names[cert.StaffMemberID()]
		if name == "" {
			name = fmt.Sprintf("staff member #%d", cert.StaffMemberID())
		}

		a, err := alert.NewAlert(facilityID, alertType, severity,
			certTitle(cert.Type(), name, days),
			certMessage(cert.Type(), name, days))
		if err != nil {
			return nil, fmt.Errorf("failed to build certification alert: %w", err)
		}
		a.SetRelatedEntity("certification", certID)
		a.SetActionURL("/staff")

		if err := createWithHistory(ctx, alerts, a); err != nil {
			return nil, fmt.Errorf("failed to create certification alert: %w", err)
		}

		r.logger.Infow("certification alert raised",
			"facility_id", facilityID,
			"alert_type", alertType,
			"certification_id", certID,
			"days_until_expiry", days)
		created = append(created, a)
	}

	return created, nil
}

// classifyExpiry maps days-until-expiry to an alert type and severity. An
// empty type means no alert.
func classifyExpiry(certType staff.CertType, days int) (string, alert.Severity) {
	switch {
	case days < 0:
		return alert.TypeCertExpiredPrefix + certType.String(), alert.SeverityCritical
	case days <= 7:
		return alert.TypeCertExpiringPrefix + certType.String(), alert.SeverityCritical
	case days <= 30:
		return alert.TypeCertExpiringPrefix + certType.String(), alert.SeverityWarning
	case days <= 60:
		return alert.TypeCertExpiringPrefix + certType.String(), alert.SeverityInfo
	default:
		return "", ""
	}
}

func certTitle(certType staff.CertType, name string, days int) string {
	if days < 0 {
		return fmt.Sprintf("%s certification expired: %s", certType.Label(), name)
	}
	return fmt.Sprintf("%s certification expiring: %s", certType.Label(), name)
}

func certMessage(certType staff.CertType, name string, days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%s's %s certification expired %d day(s) ago.", name, certType.Label(), -days)
	case days == 0:
		return fmt.Sprintf("%s's %s certification expires today.", name, certType.Label())
	default:
		return fmt.Sprintf("%s's %s certification expires in %d day(s).", name, certType.Label(), days)
	}
}
