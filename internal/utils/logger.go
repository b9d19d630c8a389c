package utils

import "go.uber.org/zap"

// InitLogger builds the application logger: human-readable in
// development, JSON in production.
func InitLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
