package authentication

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/22Vinith/Hospital-Management/configuration"
	"github.com/22Vinith/Hospital-Management/models"
)

func testSecrets() configuration.JWTSecrets {
	return configuration.JWTSecrets{
		AdminSession:   "admin-session-secret",
		DoctorSession:  "doctor-session-secret",
		PatientSession: "patient-session-secret",
		AdminReset:     "admin-reset-secret",
		DoctorReset:    "doctor-reset-secret",
		PatientReset:   "patient-reset-secret",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	ts := NewTokenService(testSecrets())

	token, err := ts.IssueAccessToken(RoleDoctor, 42)
	assert.NoError(t, err)

	id, err := ts.Verify(RoleDoctor, PurposeSession, token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestVerifyRoleIsolation(t *testing.T) {
	ts := NewTokenService(testSecrets())

	token, err := ts.IssueAccessToken(RoleDoctor, 7)
	assert.NoError(t, err)

	_, err = ts.Verify(RoleAdmin, PurposeSession, token)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestVerifyPurposeIsolation(t *testing.T) {
	ts := NewTokenService(testSecrets())

	reset, err := ts.IssueResetToken(RolePatient, 9)
	assert.NoError(t, err)
	session, err := ts.IssueAccessToken(RolePatient, 9)
	assert.NoError(t, err)

	// A reset token must not pass as a session token and vice versa.
	_, err = ts.Verify(RolePatient, PurposeSession, reset)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
	_, err = ts.Verify(RolePatient, PurposeReset, session)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)

	id, err := ts.Verify(RolePatient, PurposeReset, reset)
	assert.NoError(t, err)
	assert.Equal(t, uint(9), id)
}

func TestVerifyExpiredToken(t *testing.T) {
	ts := NewTokenService(testSecrets())

	token, err := ts.issue(RoleAdmin, PurposeSession, 3, -time.Minute)
	assert.NoError(t, err)

	_, err = ts.Verify(RoleAdmin, PurposeSession, token)
	assert.ErrorIs(t, err, models.ErrTokenExpired)
}

func TestVerifyTamperedToken(t *testing.T) {
	ts := NewTokenService(testSecrets())

	token, err := ts.IssueAccessToken(RoleAdmin, 3)
	assert.NoError(t, err)

	_, err = ts.Verify(RoleAdmin, PurposeSession, token+"x")
	assert.ErrorIs(t, err, models.ErrTokenInvalid)

	_, err = ts.Verify(RoleAdmin, PurposeSession, "not-a-token")
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestRotateAccessToken(t *testing.T) {
	ts := NewTokenService(testSecrets())

	refresh, err := ts.IssueRefreshToken(RoleDoctor, 11)
	assert.NoError(t, err)

	access, err := ts.RotateAccessToken(RoleDoctor, refresh)
	assert.NoError(t, err)

	id, err := ts.Verify(RoleDoctor, PurposeSession, access)
	assert.NoError(t, err)
	assert.Equal(t, uint(11), id)
}

func TestRotateAccessTokenMissing(t *testing.T) {
	ts := NewTokenService(testSecrets())

	_, err := ts.RotateAccessToken(RoleDoctor, "")
	assert.ErrorIs(t, err, models.ErrRefreshTokenMissing)
}

func TestRotateAccessTokenInvalid(t *testing.T) {
	ts := NewTokenService(testSecrets())

	// Signed for another role's secret, so rotation must reject it.
	foreign, err := ts.IssueRefreshToken(RoleAdmin, 11)
	assert.NoError(t, err)

	_, err = ts.RotateAccessToken(RoleDoctor, foreign)
	assert.ErrorIs(t, err, models.ErrRefreshTokenInvalid)
}

func TestRotateAccessTokenExpired(t *testing.T) {
	ts := NewTokenService(testSecrets())

	expired, err := ts.issue(RoleDoctor, PurposeSession, 11, -time.Minute)
	assert.NoError(t, err)

	_, err = ts.RotateAccessToken(RoleDoctor, expired)
	assert.ErrorIs(t, err, models.ErrTokenExpired)
}
