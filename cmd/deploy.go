/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clapdb/clapctl/internal/config"
	"github.com/clapdb/clapctl/internal/provider"
)

// deployCmd represents the deploy command
var deployCmd = &cobra.Command{
	Use:   "deploy <name>",
	Short: "Deploy a new service instance",
	Long: `Deploy a new ClapDB service instance as a managed stack.

The requested version is resolved against the release artifact store before
any infrastructure is touched: no version means the latest tagged release,
"latest" means the newest build by content hash, and any other token is
verified to exist for the chosen architecture.

The command blocks until the deployment reaches a terminal state and then
prints the service endpoints.

Examples:
  clapctl deploy analytics                  # latest tagged release
  clapctl deploy analytics --version latest # newest build
  clapctl deploy analytics --version v3 --arch arm64`,
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

		cfg, err := buildDeployConfig(cmd, name, settings, true)
		if err != nil {
			return err
		}

		if err := p.DeployService(ctx, cfg); err != nil {
			return fmt.Errorf("error deploying service %s: %w", name, err)
		}

		if err := p.WatchService(ctx, name, provider.ActionDeploy); err != nil {
			return err
		}

		fmt.Printf("Successfully deployed service %s\n", name)
		return printEndpoints(cmd, p, name)
	},
}

// buildDeployConfig maps command flags (and, for deploys, config-file
// defaults) into a deployment configuration. For updates only explicitly set
// flags produce values, so unset fields submit "use previous value".
func buildDeployConfig(cmd *cobra.Command, name string, settings *config.Settings, applyDefaults bool) (provider.DeployConfig, error) {
	flags := cmd.Flags()

	cfg := provider.DeployConfig{Name: name}

	cfg.Version, _ = flags.GetString("version")
	cfg.Bucket, _ = flags.GetString("bucket")
	if cfg.Bucket == "" {
		cfg.Bucket = settings.Bucket
	}

	if arch, _ := flags.GetString("arch"); arch != "" {
		cfg.Architecture = provider.Architecture(arch)
	} else if applyDefaults && settings.Defaults.Architecture != "" {
		cfg.Architecture = provider.Architecture(settings.Defaults.Architecture)
	}

	for _, m := range []struct {
		flag     string
		fallback int32
		dest     **int32
	}{
		{"reader-memory", settings.Defaults.ReaderMemorySize, &cfg.ReaderMemory},
		{"writer-memory", settings.Defaults.WriterMemorySize, &cfg.WriterMemory},
		{"compactor-memory", settings.Defaults.CompactorMemorySize, &cfg.CompactorMemory},
		{"gateway-memory", settings.Defaults.GatewayMemorySize, &cfg.GatewayMemory},
	} {
		if flags.Changed(m.flag) {
			value, _ := flags.GetInt32(m.flag)
			*m.dest = &value
		} else if applyDefaults && m.fallback != 0 {
			value := m.fallback
			*m.dest = &value
		}
	}

	for _, b := range []struct {
		flag string
		dest **bool
	}{
		{"private-vpc", &cfg.EnablePrivateVPC},
		{"private-endpoint", &cfg.EnablePrivateEndpoint},
		{"logging", &cfg.EnableLogging},
	} {
		if flags.Changed(b.flag) {
			value, _ := flags.GetBool(b.flag)
			*b.dest = &value
		}
	}

	if templateFile, _ := flags.GetString("template"); templateFile != "" {
		content, err := os.ReadFile(templateFile)
		if err != nil {
			return provider.DeployConfig{}, fmt.Errorf("failed to read template file %s: %w", templateFile, err)
		}
		cfg.TemplateBody = string(content)
	}

	return cfg, nil
}

// addDeployFlags registers the flags shared by deploy and update
func addDeployFlags(cmd *cobra.Command) {
	cmd.Flags().String("version", "", "service version token (empty for latest tagged release)")
	cmd.Flags().String("arch", "", "artifact architecture (x86_64 or arm64)")
	cmd.Flags().Int32("reader-memory", provider.DefaultMemorySize, "reader memory size in MB")
	cmd.Flags().Int32("writer-memory", provider.DefaultMemorySize, "writer memory size in MB")
	cmd.Flags().Int32("compactor-memory", provider.DefaultMemorySize, "compactor memory size in MB")
	cmd.Flags().Int32("gateway-memory", provider.DefaultMemorySize, "gateway memory size in MB")
	cmd.Flags().Bool("private-vpc", false, "place the service in a private VPC")
	cmd.Flags().Bool("private-endpoint", false, "expose the service through a private endpoint (requires --private-vpc)")
	cmd.Flags().Bool("logging", false, "enable service logging")
	cmd.Flags().String("bucket", "", "artifact bucket override")
	cmd.Flags().String("template", "", "path to a custom stack template")
}

func init() {
	addDeployFlags(deployCmd)
	rootCmd.AddCommand(deployCmd)
}
