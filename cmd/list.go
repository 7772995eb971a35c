/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List service stacks",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := getProvider(cmd)
		if err != nil {
			return err
		}

		stacks, err := p.ListStacks(cmd.Context())
		if err != nil {
			return err
		}
		if len(stacks) == 0 {
			fmt.Println("No stacks found")
			return nil
		}

		for _, stack := range stacks {
			created := ""
			if stack.CreatedAt != nil {
				created = stack.CreatedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Printf("%-40s %-30s %s\n", stack.Name, renderStatus(stack.Status), created)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
