// Package logger configures the process-wide zap logger.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds a logger appropriate for the environment and installs it as
// the zap global, so packages log through zap.L().
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)
	switch environment {
	case "production":
		l, err = zap.NewProduction()
	default:
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("failed to build logger -> %w", err)
	}

	zap.ReplaceGlobals(l)
	return nil
}
