package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caretrack/internal/domain/staff"
)

func createStaffMember(t *testing.T, repo staff.Repository, facilityID uint, firstName, lastName string) *staff.StaffMember {
	t.Helper()

	member, err := staff.NewStaffMember(facilityID, firstName, lastName, "teacher", "", "", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), member))
	return member
}

func createCertification(t *testing.T, repo staff.Repository, staffMemberID, facilityID uint, certType staff.CertType, expiresAt time.Time) *staff.Certification {
	t.Helper()

	cert, err := staff.NewCertification(staffMemberID, facilityID, certType,
		expiresAt.AddDate(-2, 0, 0), expiresAt, "Red Cross")
	require.NoError(t, err)
	require.NoError(t, repo.CreateCertification(context.Background(), cert))
	return cert
}

func TestStaffRepository_ListByFacility(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStaffRepository(db)
	ctx := context.Background()

	createStaffMember(t, repo, 1, "Maria", "Lopez")
	inactive := createStaffMember(t, repo, 1, "James", "Chen")
	inactive.Deactivate()
	require.NoError(t, repo.Update(ctx, inactive))
	createStaffMember(t, repo, 2, "Priya", "Patel")

	all, err := repo.ListByFacility(ctx, 1, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := repo.ListByFacility(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Maria Lopez", active[0].FullName())
}

func TestStaffRepository_ListCertificationsByFacility(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStaffRepository(db)
	ctx := context.Background()

	expiresAt := time.Now().UTC().AddDate(0, 6, 0)

	active := createStaffMember(t, repo, 1, "Maria", "Lopez")
	createCertification(t, repo, active.ID(), 1, staff.CertTypeCPR, expiresAt)

	inactive := createStaffMember(t, repo, 1, "James", "Chen")
	createCertification(t, repo, inactive.ID(), 1, staff.CertTypeFirstAid, expiresAt)
	inactive.Deactivate()
	require.NoError(t, repo.Update(ctx, inactive))

	certs, err := repo.ListCertificationsByFacility(ctx, 1)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, staff.CertTypeCPR, certs[0].Type())
	assert.Equal(t, active.ID(), certs[0].StaffMemberID())
}

func TestStaffRepository_RenewCertification(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStaffRepository(db)
	ctx := context.Background()

	member := createStaffMember(t, repo, 1, "Maria", "Lopez")
	cert := createCertification(t, repo, member.ID(), 1, staff.CertTypeCPR, time.Now().UTC().AddDate(0, 0, 10))

	newIssued := time.Now().UTC()
	newExpires := newIssued.AddDate(2, 0, 0)
	require.NoError(t, cert.Renew(newIssued, newExpires, "Red Cross"))
	require.NoError(t, repo.UpdateCertification(ctx, cert))

	found, err := repo.GetCertificationByID(ctx, cert.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.WithinDuration(t, newExpires, found.ExpiresAt(), time.Second)
}
