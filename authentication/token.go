package authentication

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/22Vinith/Hospital-Management/configuration"
	"github.com/22Vinith/Hospital-Management/models"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// Purpose separates session tokens from password-reset tokens. Each
// (role, purpose) pair signs with its own secret, so a reset token can
// never pass verification as a session token.
type Purpose string

const (
	PurposeSession Purpose = "session"
	PurposeReset   Purpose = "reset"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
	resetTokenTTL   = time.Hour
)

// Claims carry the principal id; nothing else is embedded, the guard
// resolves the full principal from the store on each request.
type Claims struct {
	PrincipalID uint `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed tokens. Secrets are injected
// at construction and must never be logged.
type TokenService struct {
	secrets configuration.JWTSecrets
}

func NewTokenService(secrets configuration.JWTSecrets) *TokenService {
	return &TokenService{secrets: secrets}
}

func (s *TokenService) secret(role Role, purpose Purpose) ([]byte, error) {
	switch {
	case role == RoleAdmin && purpose == PurposeSession:
		return []byte(s.secrets.AdminSession), nil
	case role == RoleDoctor && purpose == PurposeSession:
		return []byte(s.secrets.DoctorSession), nil
	case role == RolePatient && purpose == PurposeSession:
		return []byte(s.secrets.PatientSession), nil
	case role == RoleAdmin && purpose == PurposeReset:
		return []byte(s.secrets.AdminReset), nil
	case role == RoleDoctor && purpose == PurposeReset:
		return []byte(s.secrets.DoctorReset), nil
	case role == RolePatient && purpose == PurposeReset:
		return []byte(s.secrets.PatientReset), nil
	}
	return nil, errors.New("no secret configured for role " + string(role) + " purpose " + string(purpose))
}

func (s *TokenService) issue(role Role, purpose Purpose, principalID uint, ttl time.Duration) (string, error) {
	secret, err := s.secret(role, purpose)
	if err != nil {
		return "", err
	}
	claims := &Claims{
		PrincipalID: principalID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// IssueAccessToken mints a short-lived session token.
func (s *TokenService) IssueAccessToken(role Role, principalID uint) (string, error) {
	return s.issue(role, PurposeSession, principalID, accessTokenTTL)
}

// IssueRefreshToken mints a long-lived session token. The caller is
// responsible for persisting it on the principal record, overwriting
// any previous one (single live refresh token per principal).
func (s *TokenService) IssueRefreshToken(role Role, principalID uint) (string, error) {
	return s.issue(role, PurposeSession, principalID, refreshTokenTTL)
}

// IssueResetToken mints a password-reset token signed with the reset
// purpose secret.
func (s *TokenService) IssueResetToken(role Role, principalID uint) (string, error) {
	return s.issue(role, PurposeReset, principalID, resetTokenTTL)
}

// Verify checks signature and expiry against the (role, purpose) secret
// and returns the embedded principal id.
func (s *TokenService) Verify(role Role, purpose Purpose, tokenString string) (uint, error) {
	secret, err := s.secret(role, purpose)
	if err != nil {
		return 0, err
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, models.ErrTokenExpired
		}
		return 0, models.ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.PrincipalID == 0 {
		return 0, models.ErrTokenInvalid
	}
	return claims.PrincipalID, nil
}

// RotateAccessToken verifies the principal's stored refresh token and,
// when valid, mints a fresh access token for the same principal. There
// is no revocation list; overwriting the stored refresh token is the
// only revocation mechanism.
func (s *TokenService) RotateAccessToken(role Role, storedRefreshToken string) (string, error) {
	if storedRefreshToken == "" {
		return "", models.ErrRefreshTokenMissing
	}
	principalID, err := s.Verify(role, PurposeSession, storedRefreshToken)
	if err != nil {
		if errors.Is(err, models.ErrTokenExpired) {
			return "", models.ErrTokenExpired
		}
		return "", models.ErrRefreshTokenInvalid
	}
	return s.IssueAccessToken(role, principalID)
}
