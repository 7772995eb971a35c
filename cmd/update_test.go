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

func TestUpdateCommand_UpdatesThenWatches(t *testing.T) {
	mockProvider := &provider.MockProvider{}
	SetProvider(mockProvider)
	defer SetProvider(nil)

	mockProvider.On("UpdateService", mock.Anything, mock.MatchedBy(func(cfg provider.DeployConfig) bool {
		// No flags set: everything stays "keep previous".
		return cfg.Name == "analytics" && cfg.Version == "" && cfg.ReaderMemory == nil
	})).Return(nil).Once()
	mockProvider.On("WatchService", mock.Anything, "analytics", provider.ActionUpdate).Return(nil).Once()

	rootCmd.SetArgs([]string{"update", "analytics"})
	err := rootCmd.Execute()

	require.NoError(t, err)
	mockProvider.AssertExpectations(t)
}

func TestUpdateCommand_UpdateFailureSkipsWatch(t *testing.T) {
	mockProvider := &provider.MockProvider{}
	SetProvider(mockProvider)
	defer SetProvider(nil)

	mockProvider.On("UpdateService", mock.Anything, mock.Anything).
		Return(&provider.ArtifactNotFoundError{Version: "v9", Arch: provider.ArchX8664, Bucket: "b"}).Once()

	rootCmd.SetArgs([]string{"update", "analytics"})
	err := rootCmd.Execute()

	require.Error(t, err)
	mockProvider.AssertNotCalled(t, "WatchService", mock.Anything, mock.Anything, mock.Anything)
}
