package commands

import (
	"fmt"

	"github.com/EakDev-hub/asymmetric-crypto/internal/app"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/config"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/logger"
)

// setupLogger initializes the console logger the CLI commands share.
func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger.GetLogger()
}

// setupEngines builds the crypto engine set for a CLI command handler. The
// CLI runs without a database, so services are created with recording
// disabled.
func setupEngines(log logger.Logger) (*app.Engines, error) {
	engines, err := app.NewEngines(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto engines: %w", err)
	}
	return engines, nil
}
