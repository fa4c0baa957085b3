package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/algorithm"
	"github.com/EakDev-hub/asymmetric-crypto/internal/domain/operations"
	"github.com/EakDev-hub/asymmetric-crypto/internal/pkg/logger"

	"github.com/EakDev-hub/asymmetric-crypto/internal/app"
)

// KeyCommandHandler encapsulates key generation and the algorithm catalog
// for the CLI.
type KeyCommandHandler struct {
	keyGenService operations.KeyGenService
	logger        logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	engines, err := setupEngines(loggerInstance)
	if err != nil {
		return nil, err
	}

	keyGenService, err := app.NewKeyGenService(engines, nil, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generation service: %w", err)
	}

	return &KeyCommandHandler{
		keyGenService: keyGenService,
		logger:        loggerInstance,
	}, nil
}

// GenerateKeyCmd generates a key pair and writes both halves as PEM files
// into the selected directory.
func (commandHandler *KeyCommandHandler) GenerateKeyCmd(cmd *cobra.Command, _ []string) {
	algorithmName, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag: ", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: ", err)
		return
	}

	result, err := commandHandler.keyGenService.Generate(cmd.Context(), algorithmName)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	uniqueID := uuid.New()

	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.pem", uniqueID.String()))
	if err := os.WriteFile(privateKeyFilePath, result.PrivateKeyPEM, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.pem", uniqueID.String()))
	if err := os.WriteFile(publicKeyFilePath, result.PublicKeyPEM, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Saved ", result.Algorithm, " key pair to ", keyDir)
}

// ListAlgorithmsCmd prints the capability table.
func (commandHandler *KeyCommandHandler) ListAlgorithmsCmd(cmd *cobra.Command, _ []string) {
	for _, id := range algorithm.All() {
		meta := algorithm.MetadataOf(id)

		var capabilities []string
		for _, c := range algorithm.Capabilities(id) {
			capabilities = append(capabilities, string(c))
		}

		line := fmt.Sprintf("%-10s keySize=%-5d security=%d bits", id, meta.KeySizeBits, meta.ApproxSecurityBits)
		if meta.CurveName != "" {
			line += fmt.Sprintf(" curve=%s", meta.CurveName)
		}
		if hashName := algorithm.HashName(id); hashName != "" {
			line += fmt.Sprintf(" hash=%s", hashName)
		}
		line += fmt.Sprintf(" operations=%s", strings.Join(capabilities, ","))

		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}

// InitKeyCommands registers the key commands with the root command.
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to initialize key command handler: %w", err)
	}

	generateKeyCmd := &cobra.Command{
		Use:   "generate-key",
		Short: "Generate an asymmetric key pair",
		Run:   handler.GenerateKeyCmd,
	}
	generateKeyCmd.Flags().StringP("algorithm", "a", "", "Algorithm identifier (e.g. RSA-2048, P-256, Ed25519, X25519)")
	generateKeyCmd.Flags().StringP("key-dir", "d", ".", "Directory to write the PEM key files into")
	rootCmd.AddCommand(generateKeyCmd)

	listAlgorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported algorithms and their capabilities",
		Run:   handler.ListAlgorithmsCmd,
	}
	rootCmd.AddCommand(listAlgorithmsCmd)

	return nil
}
