/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// quotaCmd groups compute quota subcommands
var quotaCmd = &cobra.Command{
	Use:   "quota",
	Short: "Inspect and raise the vendor compute quota",
}

// quotaShowCmd represents the quota show command
var quotaShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current compute quota",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := getProvider(cmd)
		if err != nil {
			return err
		}

		quota, err := p.GetComputeQuota(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Concurrent compute executions: %.0f\n", quota)
		return nil
	},
}

// quotaRequestCmd represents the quota request command
var quotaRequestCmd = &cobra.Command{
	Use:   "request <value>",
	Short: "Request a compute quota increase",
	Long: `Request a compute quota increase from the cloud vendor.

The request is filed with the vendor and approved asynchronously; this
command does not wait for the approval.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid quota value %q: %w", args[0], err)
		}

		p, err := getProvider(cmd)
		if err != nil {
			return err
		}

		if err := p.RequestComputeQuotaIncrease(cmd.Context(), value); err != nil {
			return err
		}

		fmt.Printf("Requested compute quota increase to %.0f\n", value)
		return nil
	},
}

func init() {
	quotaCmd.AddCommand(quotaShowCmd)
	quotaCmd.AddCommand(quotaRequestCmd)
	rootCmd.AddCommand(quotaCmd)
}
