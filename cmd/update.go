/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clapdb/clapctl/internal/provider"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Update an existing service instance",
	Long: `Update a deployed ClapDB service instance.

Only the settings you pass explicitly are changed; everything else keeps its
previously applied value, so a partial update never resets unrelated
settings. Without --version the currently deployed version stays in place;
an explicit version (including "latest") is verified against the artifact
store before the update starts.

Examples:
  clapctl update analytics --reader-memory 4096   # resize one role only
  clapctl update analytics --version v4           # upgrade the service`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		ctx := cmd.Context()

		p, err := getProvider(cmd)
		if err != nil {
			return err
		}
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		cfg, err := buildDeployConfig(cmd, name, settings, false)
		if err != nil {
			return err
		}

		if err := p.UpdateService(ctx, cfg); err != nil {
			return fmt.Errorf("error updating service %s: %w", name, err)
		}

		if err := p.WatchService(ctx, name, provider.ActionUpdate); err != nil {
			return err
		}

		fmt.Printf("Successfully updated service %s\n", name)
		return nil
	},
}

func init() {
	addDeployFlags(updateCmd)
	rootCmd.AddCommand(updateCmd)
}
