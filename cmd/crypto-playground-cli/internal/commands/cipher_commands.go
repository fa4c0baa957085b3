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

// CipherCommandHandler encapsulates the RSA encrypt/decrypt commands.
type CipherCommandHandler struct {
	cipherService operations.CipherService
	logger        logger.Logger
}

// NewCipherCommandHandler initializes a new CipherCommandHandler.
func NewCipherCommandHandler() (*CipherCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	engines, err := setupEngines(loggerInstance)
	if err != nil {
		return nil, err
	}

	cipherService, err := app.NewCipherService(engines, nil, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}

	return &CipherCommandHandler{
		cipherService: cipherService,
		logger:        loggerInstance,
	}, nil
}

// EncryptCmd encrypts a file with a PEM public key and writes the base64
// ciphertext.
func (commandHandler *CipherCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	algorithmName, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag: ", err)
		return
	}
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}

	publicKeyPEM, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	message, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := commandHandler.cipherService.Encrypt(cmd.Context(), algorithmName, message, publicKeyPEM)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encoded := base64.StdEncoding.EncodeToString(result.Ciphertext)
	if err := os.WriteFile(outputFile, []byte(encoded), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
}

// DecryptCmd decrypts a base64 ciphertext file with a PEM private key.
func (commandHandler *CipherCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	algorithmName, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag: ", err)
		return
	}
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}

	privateKeyPEM, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encoded, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ciphertext, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		commandHandler.logger.Error("input file is not valid base64: ", err)
		return
	}

	result, err := commandHandler.cipherService.Decrypt(cmd.Context(), algorithmName, ciphertext, privateKeyPEM)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFile, result.Plaintext, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
}

// InitCipherCommands registers the encrypt/decrypt commands with the root
// command.
func InitCipherCommands(rootCmd *cobra.Command) error {
	handler, err := NewCipherCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to initialize cipher command handler: %w", err)
	}

	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file with RSA-OAEP",
		Run:   handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("algorithm", "a", "RSA-2048", "RSA algorithm identifier (RSA-2048, RSA-3072, RSA-4096)")
	encryptCmd.Flags().String("input-file", "", "Path to the plaintext input file")
	encryptCmd.Flags().String("output-file", "", "Path to write the base64 ciphertext to")
	encryptCmd.Flags().String("public-key", "", "Path to the PEM public key")
	rootCmd.AddCommand(encryptCmd)

	decryptCmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt an RSA-OAEP encrypted file",
		Run:   handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("algorithm", "a", "RSA-2048", "RSA algorithm identifier (RSA-2048, RSA-3072, RSA-4096)")
	decryptCmd.Flags().String("input-file", "", "Path to the base64 ciphertext file")
	decryptCmd.Flags().String("output-file", "", "Path to write the plaintext to")
	decryptCmd.Flags().String("private-key", "", "Path to the PEM private key")
	rootCmd.AddCommand(decryptCmd)

	return nil
}
