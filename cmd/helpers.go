/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clapdb/clapctl/internal/aws"
	"github.com/clapdb/clapctl/internal/config"
	"github.com/clapdb/clapctl/internal/provider"
)

var (
	// injectedProvider can be set for testing
	injectedProvider provider.Provider

	// registry is built once at startup; tests may replace it
	registry *provider.Registry
)

// SetProvider allows injection of a provider (for testing)
func SetProvider(p provider.Provider) {
	injectedProvider = p
}

// getRegistry returns the provider registry, building the default one (all
// compiled-in vendors) on first use
func getRegistry() *provider.Registry {
	if registry == nil {
		registry = provider.NewRegistry()
		aws.Register(registry)
	}
	return registry
}

// loadSettings reads the config file named by the --config flag
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	filename, _ := cmd.Flags().GetString("config")
	if filename == "" {
		filename = config.DefaultFilename
	}
	return config.Load(filename)
}

// getProvider resolves the provider instance for a command: the injected one
// if set, otherwise one constructed through the registry from config and
// flags
func getProvider(cmd *cobra.Command) (provider.Provider, error) {
	if injectedProvider != nil {
		return injectedProvider, nil
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	name := settings.Provider
	if flagName, _ := cmd.Flags().GetString("provider"); flagName != "" {
		name = flagName
	}
	profile := settings.Profile
	if flagProfile, _ := cmd.Flags().GetString("profile"); flagProfile != "" {
		profile = flagProfile
	}

	p, err := getRegistry().Create(cmd.Context(), name, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}
	return p, nil
}
