package main

import (
	"fmt"
	"os"

	"headlines/internal/config"
	"headlines/internal/formatter"

	"github.com/spf13/cobra"
)

func newConfigCmd(parent *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := parent.configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}

			if err := config.Default().SaveConfig(path); err != nil {
				return err
			}

			return formatter.Success(cmd.OutOrStdout(), "Wrote "+path)
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	cmd.AddCommand(initCmd)

	return cmd
}
