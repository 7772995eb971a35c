/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clapdb/clapctl/internal/prompt"
	"github.com/clapdb/clapctl/internal/provider"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a service instance",
	Long: `Delete a deployed ClapDB service instance and all its resources.

The command prompts for confirmation, requests deletion, and watches until
the stack is gone. A stack that vanishes while being watched counts as a
successful deletion.

WARNING: This operation cannot be undone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		ctx := cmd.Context()

		p, err := getProvider(cmd)
		if err != nil {
			return err
		}

		exists, err := p.HasStack(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to check if service exists: %w", err)
		}
		if !exists {
			fmt.Printf("Service %s does not exist, skipping deletion\n", name)
			return nil
		}

		skipConfirm, _ := cmd.Flags().GetBool("yes")
		if !skipConfirm {
			message := fmt.Sprintf("Do you want to delete service %s? This cannot be undone.", name)
			confirmed, err := prompt.Confirm(message)
			if err != nil {
				return fmt.Errorf("failed to get user confirmation: %w", err)
			}
			if !confirmed {
				fmt.Printf("Deletion of service %s cancelled by user\n", name)
				return nil
			}
		}

		if err := p.DeleteService(ctx, name); err != nil {
			return fmt.Errorf("error deleting service %s: %w", name, err)
		}

		if err := p.WatchService(ctx, name, provider.ActionDelete); err != nil {
			return err
		}

		fmt.Printf("Successfully deleted service %s\n", name)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
