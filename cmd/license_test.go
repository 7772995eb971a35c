/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clapdb/clapctl/internal/provider"
)

func TestLicenseShowCommand(t *testing.T) {
	mockProvider := &provider.MockProvider{}
	SetProvider(mockProvider)
	defer SetProvider(nil)

	mockProvider.On("GetServiceLicense", mock.Anything, "analytics").Return(&provider.License{
		Type:      "enterprise",
		ExpiresAt: "2026-08-01T00:00:00Z",
		MaxBytes:  1099511627776,
	}, nil).Once()

	rootCmd.SetArgs([]string{"license", "show", "analytics"})
	err := rootCmd.Execute()

	require.NoError(t, err)
	mockProvider.AssertExpectations(t)
}

func TestLicenseUpgradeCommand(t *testing.T) {
	mockProvider := &provider.MockProvider{}
	SetProvider(mockProvider)
	defer SetProvider(nil)

	mockProvider.On("UpgradeServiceLicense", mock.Anything, "analytics", "LIC-12345").Return(nil).Once()

	rootCmd.SetArgs([]string{"license", "upgrade", "analytics", "LIC-12345"})
	err := rootCmd.Execute()

	require.NoError(t, err)
	mockProvider.AssertExpectations(t)
}
