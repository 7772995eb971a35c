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

// endpointsCmd represents the endpoints command
var endpointsCmd = &cobra.Command{
	Use:   "endpoints <name>",
	Short: "Show the endpoints of a service instance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := getProvider(cmd)
		if err != nil {
			return err
		}
		return printEndpoints(cmd, p, args[0])
	},
}

// printEndpoints prints the service endpoints read from stack outputs
func printEndpoints(cmd *cobra.Command, p provider.Provider, name string) error {
	ctx := cmd.Context()

	console, err := p.GetConsoleURL(ctx, name)
	if err != nil {
		return err
	}
	dataAPI, err := p.GetDataAPIURL(ctx, name)
	if err != nil {
		return err
	}
	licenseAPI, err := p.GetLicenseAPIURL(ctx, name)
	if err != nil {
		return err
	}
	bucket, err := p.GetStorageBucket(ctx, name)
	if err != nil {
		return err
	}

	fmt.Printf("%s     %s\n", stackKeyStyle.Render("Console:"), console)
	fmt.Printf("%s    %s\n", stackKeyStyle.Render("Data API:"), dataAPI)
	fmt.Printf("%s %s\n", stackKeyStyle.Render("License API:"), licenseAPI)
	fmt.Printf("%s     %s\n", stackKeyStyle.Render("Storage:"), bucket)
	return nil
}

func init() {
	rootCmd.AddCommand(endpointsCmd)
}
