package main

import (
	"os"

	"github.com/spf13/cobra"

	"keybuddy/internal/interfaces/cli/backup"
	"keybuddy/internal/interfaces/cli/migrate"
	"keybuddy/internal/interfaces/cli/server"
	"keybuddy/internal/interfaces/cli/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "keybuddy",
		Short: "KeyBuddy - key management for locksmiths",
		Long:  `KeyBuddy manages customers, key systems and key orders with encrypted document storage, scheduled backups and role-based access control.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		backup.NewCommand(),
		version.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
