/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// licenseCmd groups license subcommands
var licenseCmd = &cobra.Command{
	Use:   "license",
	Short: "Manage the service license",
}

// licenseShowCmd represents the license show command
var licenseShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the license of a service instance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := getProvider(cmd)
		if err != nil {
			return err
		}

		license, err := p.GetServiceLicense(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s    %s\n", stackKeyStyle.Render("Type:"), license.Type)
		fmt.Printf("%s %s\n", stackKeyStyle.Render("Expires:"), license.ExpiresAt)
		if license.MaxBytes > 0 {
			fmt.Printf("%s %d bytes\n", stackKeyStyle.Render("Storage:"), license.MaxBytes)
		}
		return nil
	},
}

// licenseUpgradeCmd represents the license upgrade command
var licenseUpgradeCmd = &cobra.Command{
	Use:   "upgrade <name> <key>",
	Short: "Upgrade the license of a service instance",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := getProvider(cmd)
		if err != nil {
			return err
		}

		if err := p.UpgradeServiceLicense(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}

		fmt.Printf("Upgraded license of service %s\n", args[0])
		return nil
	},
}

func init() {
	licenseCmd.AddCommand(licenseShowCmd)
	licenseCmd.AddCommand(licenseUpgradeCmd)
	rootCmd.AddCommand(licenseCmd)
}
