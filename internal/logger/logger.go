package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds a zap logger appropriate for the environment and installs it
// as the global logger (zap.L()).
func Init(environment string) error {
	var (
		logger *zap.Logger
		err    error
	)

	switch environment {
	case "production":
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
