package staff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caretrack/internal/shared/biztime"
)

func TestCertification_DaysUntilExpiry(t *testing.T) {
	now := biztime.NowUTC()

	tests := []struct {
		name      string
		expiresIn time.Duration
		want      int
	}{
		{name: "expires in a week", expiresIn: 7 * 24 * time.Hour, want: 7},
		{name: "expires today", expiresIn: 0, want: 0},
		{name: "expired yesterday", expiresIn: -24 * time.Hour, want: -1},
		{name: "expired a month ago", expiresIn: -30 * 24 * time.Hour, want: -30},
		{name: "expires in sixty days", expiresIn: 60 * 24 * time.Hour, want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert, err := NewCertification(1, 1, CertTypeCPR, now.Add(-365*24*time.Hour), now.Add(tt.expiresIn), "Red Cross")
			require.NoError(t, err)
			assert.Equal(t, tt.want, cert.DaysUntilExpiry(now))
		})
	}
}

func TestNewCertification(t *testing.T) {
	now := biztime.NowUTC()

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewCertification(1, 1, CertType("scuba"), now, now.Add(24*time.Hour), "")
		assert.Error(t, err)
	})

	t.Run("rejects expiry before issue", func(t *testing.T) {
		_, err := NewCertification(1, 1, CertTypeCPR, now, now.Add(-24*time.Hour), "")
		assert.Error(t, err)
	})

	t.Run("requires staff member", func(t *testing.T) {
		_, err := NewCertification(0, 1, CertTypeCPR, now, now.Add(24*time.Hour), "")
		assert.Error(t, err)
	})
}

func TestCertification_Renew(t *testing.T) {
	now := biztime.NowUTC()
	cert, err := NewCertification(1, 1, CertTypeFirstAid, now.Add(-2*365*24*time.Hour), now.Add(-24*time.Hour), "Red Cross")
	require.NoError(t, err)
	require.Negative(t, cert.DaysUntilExpiry(now))

	require.NoError(t, cert.Renew(now, now.Add(2*365*24*time.Hour), ""))
	assert.Positive(t, cert.DaysUntilExpiry(now))
	assert.Equal(t, "Red Cross", cert.IssuingAuthority())
}

func TestCertType_Label(t *testing.T) {
	assert.Equal(t, "CPR", CertTypeCPR.Label())
	assert.Equal(t, "First Aid", CertTypeFirstAid.Label())
	assert.Equal(t, "Safe Sleep", CertTypeSafeSleep.Label())
}
