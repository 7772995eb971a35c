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

// artifactCmd groups artifact subcommands
var artifactCmd = &cobra.Command{
	Use:   "artifact",
	Short: "Inspect release artifacts",
}

// artifactInfoCmd represents the artifact info command
var artifactInfoCmd = &cobra.Command{
	Use:   "info [version]",
	Short: "Show release artifact information",
	Long: `Show the latest tagged release, the newest build hash, and whether an
artifact exists for the given version and architecture. Without a version
argument the latest tagged release is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version := ""
		if len(args) > 0 {
			version = args[0]
		}
		bucket, _ := cmd.Flags().GetString("bucket")
		arch, _ := cmd.Flags().GetString("arch")

		p, err := getProvider(cmd)
		if err != nil {
			return err
		}

		info, err := p.GetArtifactInfo(cmd.Context(), bucket, version, provider.Architecture(arch))
		if err != nil {
			return err
		}

		fmt.Printf("%s  %s\n", stackKeyStyle.Render("Latest tag:"), info.LatestTag)
		fmt.Printf("%s %s\n", stackKeyStyle.Render("Latest hash:"), info.LatestHash)
		fmt.Printf("%s      %t\n", stackKeyStyle.Render("Exists:"), info.Exists)
		return nil
	},
}

func init() {
	artifactInfoCmd.Flags().String("bucket", "", "artifact bucket override")
	artifactInfoCmd.Flags().String("arch", "", "artifact architecture (x86_64 or arm64)")
	artifactCmd.AddCommand(artifactInfoCmd)
	rootCmd.AddCommand(artifactCmd)
}
