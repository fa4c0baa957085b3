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

// SignatureCommandHandler encapsulates the sign/verify commands.
type SignatureCommandHandler struct {
	signatureService operations.SignatureService
	logger           logger.Logger
}

// NewSignatureCommandHandler initializes a new SignatureCommandHandler.
func NewSignatureCommandHandler() (*SignatureCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	engines, err := setupEngines(loggerInstance)
	if err != nil {
		return nil, err
	}

	signatureService, err := app.NewSignatureService(engines, nil, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create signature service: %w", err)
	}

	return &SignatureCommandHandler{
		signatureService: signatureService,
		logger:           loggerInstance,
	}, nil
}

// SignCmd signs a file with a PEM private key and writes the base64
// signature.
func (commandHandler *SignatureCommandHandler) SignCmd(cmd *cobra.Command, _ []string) {
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
	signatureFile, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		commandHandler.logger.Error("invalid signature-file flag: ", err)
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

	message, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := commandHandler.signatureService.Sign(cmd.Context(), algorithmName, message, privateKeyPEM)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encoded := base64.StdEncoding.EncodeToString(result.Signature)
	if err := os.WriteFile(signatureFile, []byte(encoded), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Saved ", result.Hash, " signature to ", signatureFile)
}

// VerifyCmd checks a base64 signature file against a message file and a PEM
// public key.
func (commandHandler *SignatureCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) {
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
	signatureFile, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		commandHandler.logger.Error("invalid signature-file flag: ", err)
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

	encoded, err := os.ReadFile(filepath.Clean(signatureFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signature, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		commandHandler.logger.Error("signature file is not valid base64: ", err)
		return
	}

	result, err := commandHandler.signatureService.Verify(cmd.Context(), algorithmName, message, signature, publicKeyPEM)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if result.Verified {
		commandHandler.logger.Info("Signature is valid")
	} else {
		commandHandler.logger.Info("Signature is NOT valid")
	}
}

// InitSignatureCommands registers the sign/verify commands with the root
// command.
func InitSignatureCommands(rootCmd *cobra.Command) error {
	handler, err := NewSignatureCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to initialize signature command handler: %w", err)
	}

	signCmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a file",
		Run:   handler.SignCmd,
	}
	signCmd.Flags().StringP("algorithm", "a", "", "Algorithm identifier (RSA variants, curves or Ed25519)")
	signCmd.Flags().String("input-file", "", "Path to the message file")
	signCmd.Flags().String("signature-file", "", "Path to write the base64 signature to")
	signCmd.Flags().String("private-key", "", "Path to the PEM private key")
	rootCmd.AddCommand(signCmd)

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a file signature",
		Run:   handler.VerifyCmd,
	}
	verifyCmd.Flags().StringP("algorithm", "a", "", "Algorithm identifier (RSA variants, curves or Ed25519)")
	verifyCmd.Flags().String("input-file", "", "Path to the message file")
	verifyCmd.Flags().String("signature-file", "", "Path to the base64 signature file")
	verifyCmd.Flags().String("public-key", "", "Path to the PEM public key")
	rootCmd.AddCommand(verifyCmd)

	return nil
}
