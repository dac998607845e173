// Package services orchestrates the identity stores, token service,
// specialization registry and mail delivery into the admin, doctor and
// patient use cases.
package services

// TokenPair is the result of a successful login: a short-lived access
// token and the refresh token persisted on the principal record.
type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}
