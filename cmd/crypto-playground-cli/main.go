// Package main is the entry point for the crypto-playground-cli application.
// It initializes the root command and registers the key, cipher, signature and
// key-exchange sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/EakDev-hub/asymmetric-crypto/cmd/crypto-playground-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "crypto-playground-cli",
		Short: "Asymmetric cryptographic operations CLI tool",
		Long: `crypto-playground-cli is a command-line tool for asymmetric cryptographic operations.
Supports RSA, NIST curve, secp256k1, Ed25519 and X25519 key generation, RSA
encryption/decryption, signing and verification, and ECDH shared-secret
derivation. Run 'crypto-playground-cli algorithms' to list the supported
algorithms and their capabilities.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := commands.InitCipherCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize cipher commands: %w", err)
	}

	if err := commands.InitSignatureCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize signature commands: %w", err)
	}

	if err := commands.InitExchangeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize exchange commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
