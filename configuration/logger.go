package configuration

import "go.uber.org/zap"

// NewLogger builds the process logger. Production mode emits JSON,
// anything else gets the human-readable development encoder.
func NewLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
