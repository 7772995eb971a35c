/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clapdb/clapctl/internal/provider"
)

func TestGetRegistry_HasAWSProvider(t *testing.T) {
	assert.Contains(t, getRegistry().List(), "aws")
}

func TestGetProvider_PrefersInjectedProvider(t *testing.T) {
	mockProvider := &provider.MockProvider{}
	SetProvider(mockProvider)
	defer SetProvider(nil)

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("provider", "", "")
	cmd.Flags().String("profile", "", "")

	p, err := getProvider(cmd)

	require.NoError(t, err)
	assert.Same(t, mockProvider, p)
}

func TestGetProvider_UnknownProviderName(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("provider", "azure", "")
	cmd.Flags().String("profile", "", "")
	cmd.SetContext(context.Background())

	_, err := getProvider(cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown provider "azure"`)
	assert.Contains(t, err.Error(), "registered providers: aws")
}

func TestLoadSettings_MissingFileGivesDefaults(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "nonexistent.yaml", "")

	settings, err := loadSettings(cmd)

	require.NoError(t, err)
	assert.Equal(t, "aws", settings.Provider)
}
