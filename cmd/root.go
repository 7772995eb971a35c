/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/clapdb/clapctl/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clapctl",
	Short: "Deploy and operate ClapDB managed service instances",
	Long: `Clapctl deploys, updates, deletes, and inspects a ClapDB managed service
instance hosted on a cloud vendor's infrastructure.

A deployment is a named stack managed by the vendor's infrastructure-as-code
engine. Clapctl resolves the requested service version against the release
artifact store, drives the stack lifecycle, and watches long-running
operations until they reach a terminal state.

Note that clapctl does not serialise concurrent invocations against the same
deployment name; run one lifecycle operation per deployment at a time.`,
	Version: version.Short(),
}

// Execute runs the root command. It is called by main.main().
//
// An interrupt cancels the command context: a running watch stops polling,
// while the remote infrastructure operation continues unsupervised.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fang.Execute(ctx, rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "clapctl.yaml", "config file")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "credential profile (overrides config)")
	rootCmd.PersistentFlags().String("provider", "", "cloud provider (overrides config)")
}
