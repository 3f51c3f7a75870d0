package backup

import (
	"fmt"

	"github.com/spf13/cobra"

	"keybuddy/internal/infrastructure/backup"
	"keybuddy/internal/infrastructure/config"
	"keybuddy/internal/infrastructure/database"
	"keybuddy/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Database backup tools",
		Long:  `Create, list and restore database backups from the command line.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newCreateCommand(),
		newListCommand(),
		newRestoreCommand(),
	)

	return cmd
}

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a backup now",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, log, cleanup, err := initEnv()
			if err != nil {
				return err
			}
			defer cleanup()

			artifact, err := engine.Create(cmd.Context(), backup.KindManual)
			if err != nil {
				log.Errorw("backup failed", "error", err)
				return fmt.Errorf("backup failed: %w", err)
			}

			log.Infow("backup created", "artifact", artifact)
			fmt.Println(artifact)
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available backups",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, cleanup, err := initEnv()
			if err != nil {
				return err
			}
			defer cleanup()

			artifacts, err := engine.List()
			if err != nil {
				return fmt.Errorf("failed to list backups: %w", err)
			}

			if len(artifacts) == 0 {
				fmt.Println("no backups found")
				return nil
			}
			for _, a := range artifacts {
				fmt.Println(a)
			}
			return nil
		},
	}
}

func newRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <artifact>",
		Short: "Restore the database from a backup",
		Long:  `Restore the database from a named backup artifact. The current database file is replaced; the server should be stopped first.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, log, cleanup, err := initEnv()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := engine.Restore(cmd.Context(), database.Handle{}, args[0]); err != nil {
				log.Errorw("restore failed", "artifact", args[0], "error", err)
				return fmt.Errorf("restore failed: %w", err)
			}

			log.Infow("database restored", "artifact", args[0])
			return nil
		},
	}
}

func initEnv() (*backup.Service, logger.Interface, func(), error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cleanup := func() {
		database.Close()
		logger.Sync()
	}

	return backup.NewService(cfg.Database, cfg.Backup, log), log, cleanup, nil
}
