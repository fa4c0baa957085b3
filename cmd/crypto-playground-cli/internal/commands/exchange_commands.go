package commands

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/EakDev-hub/asymmetric-crypto/internal/app"
	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/operations"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/logger"
)

// ExchangeCommandHandler encapsulates the ECDH key-exchange command.
type ExchangeCommandHandler struct {
	exchangeService operations.ExchangeService
	logger          logger.Logger
}

// NewExchangeCommandHandler initializes a new ExchangeCommandHandler.
func NewExchangeCommandHandler() (*ExchangeCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	engines, err := setupEngines(loggerInstance)
	if err != nil {
		return nil, err
	}

	exchangeService, err := app.NewExchangeService(engines, nil, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create exchange service: %w", err)
	}

	return &ExchangeCommandHandler{
		exchangeService: exchangeService,
		logger:          loggerInstance,
	}, nil
}

// ExchangeCmd derives a shared secret from a PEM private key and a peer's
// PEM public key and writes it base64 encoded.
func (commandHandler *ExchangeCommandHandler) ExchangeCmd(cmd *cobra.Command, _ []string) {
	algorithmName, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}
	peerPublicKeyPath, err := cmd.Flags().GetString("peer-public-key")
	if err != nil {
		commandHandler.logger.Error("invalid peer-public-key flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}

	privateKeyPEM, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	peerPublicKeyPEM, err := os.ReadFile(filepath.Clean(peerPublicKeyPath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := commandHandler.exchangeService.DeriveSharedSecret(cmd.Context(), algorithmName, privateKeyPEM, peerPublicKeyPEM)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encoded := base64.StdEncoding.EncodeToString(result.SharedSecret)
	if err := os.WriteFile(outputFile, []byte(encoded), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Derived ", result.Length, " byte shared secret on ", result.Family)
}

// InitExchangeCommands registers the key-exchange command with the root
// command.
func InitExchangeCommands(rootCmd *cobra.Command) error {
	handler, err := NewExchangeCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to initialize exchange command handler: %w", err)
	}

	exchangeCmd := &cobra.Command{
		Use:   "exchange",
		Short: "Derive an ECDH shared secret",
		Run:   handler.ExchangeCmd,
	}
	exchangeCmd.Flags().StringP("algorithm", "a", "", "Algorithm identifier (P-256, P-384, P-521, secp256k1 or X25519)")
	exchangeCmd.Flags().String("private-key", "", "Path to your PEM private key")
	exchangeCmd.Flags().String("peer-public-key", "", "Path to the peer's PEM public key")
	exchangeCmd.Flags().String("output-file", "", "Path to write the base64 shared secret to")
	rootCmd.AddCommand(exchangeCmd)

	return nil
}
