/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// userCmd groups user management subcommands
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage service users",
}

// userAddCmd represents the user add command
var userAddCmd = &cobra.Command{
	Use:   "add <name> <username>",
	Short: "Add a user to a service instance",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, username := args[0], args[1]

		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			return fmt.Errorf("--password is required")
		}

		p, err := getProvider(cmd)
		if err != nil {
			return err
		}

		if err := p.AddUser(cmd.Context(), name, username, password); err != nil {
			return err
		}

		fmt.Printf("Added user %s to service %s\n", username, name)
		return nil
	},
}

func init() {
	userAddCmd.Flags().String("password", "", "password for the new user")
	userCmd.AddCommand(userAddCmd)
	rootCmd.AddCommand(userCmd)
}
