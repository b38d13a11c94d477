// Package main is the entry point for the creole-cli application.
// It registers administrative sub-commands (migrations, staff accounts,
// catalog seeding) and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/mahamudh472/GlobalCreoleSociety/cmd/creole-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "creole-cli",
		Short: "Administrative CLI for the Global Creole Society backend",
		Long: `creole-cli is a command-line tool for operating the backend.
It runs database migrations, creates staff accounts and seeds the
marketplace catalog.

Configuration is read from the file named by the CONFIG_PATH
environment variable, falling back to ../../configs/rest-app.yaml.`,
	}

	if err := commands.InitAdminCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
