package utils

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger creates a production logger when ENVIRONMENT is prod and a development logger otherwise
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("ENVIRONMENT") == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
