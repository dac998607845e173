package configuration

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// JWTSecrets holds one signing secret per (role, purpose) pair. A reset
// secret must differ from the session secret so a reset token can never
// be replayed as a session token.
type JWTSecrets struct {
	AdminSession   string
	DoctorSession  string
	PatientSession string
	AdminReset     string
	DoctorReset    string
	PatientReset   string
}

type Config struct {
	Port          string
	Environment   string
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string
	SMTPHost      string
	SMTPPort      int
	SMTPEmail     string
	SMTPPassword  string
	JWT           JWTSecrets
}

// Load reads configuration from a .env file when present, falling back
// to process environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Port:          envOr("PORT", "8080"),
		Environment:   envOr("ENVIRONMENT", "development"),
		DatabaseDSN:   os.Getenv("DB"),
		RedisAddr:     envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SMTPHost:      envOr("SMTP_HOST", "smtp.gmail.com"),
		SMTPEmail:     os.Getenv("Email"),
		SMTPPassword:  os.Getenv("Password"),
		JWT: JWTSecrets{
			AdminSession:   os.Getenv("JWT_ADMIN"),
			DoctorSession:  os.Getenv("JWT_DOCTOR"),
			PatientSession: os.Getenv("JWT_PATIENT"),
			AdminReset:     os.Getenv("JWT_RESET_ADMIN"),
			DoctorReset:    os.Getenv("JWT_RESET_DOCTOR"),
			PatientReset:   os.Getenv("JWT_RESET_PATIENT"),
		},
	}

	port, err := strconv.Atoi(envOr("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	cfg.SMTPPort = port

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DB connection string is not set")
	}
	for name, secret := range map[string]string{
		"JWT_ADMIN":         cfg.JWT.AdminSession,
		"JWT_DOCTOR":        cfg.JWT.DoctorSession,
		"JWT_PATIENT":       cfg.JWT.PatientSession,
		"JWT_RESET_ADMIN":   cfg.JWT.AdminReset,
		"JWT_RESET_DOCTOR":  cfg.JWT.DoctorReset,
		"JWT_RESET_PATIENT": cfg.JWT.PatientReset,
	} {
		if secret == "" {
			return nil, fmt.Errorf("%s is not set", name)
		}
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
