/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the settings file clapctl looks for in the working
// directory
const DefaultFilename = "clapctl.yaml"

// Settings is the clapctl.yaml document. Command-line flags override any
// value set here.
type Settings struct {
	// Provider is the vendor name looked up in the provider registry
	Provider string `yaml:"provider"`

	// Profile is the vendor credential profile to use; the region comes
	// from the profile's shared configuration
	Profile string `yaml:"profile"`

	// Bucket overrides the artifact release bucket
	Bucket string `yaml:"bucket"`

	Defaults Defaults `yaml:"defaults"`
}

// Defaults are deploy-time defaults applied when flags leave a field unset
type Defaults struct {
	Architecture string `yaml:"architecture"`

	ReaderMemorySize    int32 `yaml:"readerMemorySize"`
	WriterMemorySize    int32 `yaml:"writerMemorySize"`
	CompactorMemorySize int32 `yaml:"compactorMemorySize"`
	GatewayMemorySize   int32 `yaml:"gatewayMemorySize"`
}

// Load reads the settings file. A missing file is not an error: every value
// has a flag, so the file is optional.
func Load(filename string) (*Settings, error) {
	settings := &Settings{Provider: "aws"}

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}
	if settings.Provider == "" {
		settings.Provider = "aws"
	}

	return settings, nil
}
