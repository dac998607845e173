package services

import (
	"go.uber.org/zap"

	"github.com/22Vinith/Hospital-Management/authentication"
	"github.com/22Vinith/Hospital-Management/configuration"
)

func newTestTokens() *authentication.TokenService {
	return authentication.NewTokenService(configuration.JWTSecrets{
		AdminSession:   "admin-session-secret",
		DoctorSession:  "doctor-session-secret",
		PatientSession: "patient-session-secret",
		AdminReset:     "admin-reset-secret",
		DoctorReset:    "doctor-reset-secret",
		PatientReset:   "patient-reset-secret",
	})
}

func newTestLogger() *zap.Logger {
	return zap.NewNop()
}
