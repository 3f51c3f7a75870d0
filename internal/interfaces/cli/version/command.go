package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"keybuddy/internal/shared/constants"
	"keybuddy/internal/shared/version"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := version.Current
			if v == "" {
				loaded, err := version.Load(constants.VersionFile)
				if err != nil {
					return fmt.Errorf("failed to read version file: %w", err)
				}
				v = loaded
			}
			fmt.Println(v)
			return nil
		},
	}

	cmd.AddCommand(newBumpCommand())

	return cmd
}

func newBumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bump",
		Short: "Increment the stored version by 0.01",
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := version.Load(constants.VersionFile)
			if err != nil {
				return fmt.Errorf("failed to read version file: %w", err)
			}

			next, err := version.Bump(current)
			if err != nil {
				return fmt.Errorf("failed to bump version: %w", err)
			}

			if err := version.Save(constants.VersionFile, next); err != nil {
				return fmt.Errorf("failed to write version file: %w", err)
			}

			fmt.Printf("%s -> %s\n", current, next)
			return nil
		},
	}
}
