/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "aws", settings.Provider)
	assert.Empty(t, settings.Profile)
	assert.Empty(t, settings.Bucket)
}

func TestLoad_FullDocument(t *testing.T) {
	path := writeConfig(t, `
provider: aws
profile: staging
bucket: my-release-bucket
defaults:
  architecture: arm64
  readerMemorySize: 4096
  writerMemorySize: 2048
  compactorMemorySize: 1024
  gatewayMemorySize: 512
`)

	settings, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "staging", settings.Profile)
	assert.Equal(t, "my-release-bucket", settings.Bucket)
	assert.Equal(t, "arm64", settings.Defaults.Architecture)
	assert.Equal(t, int32(4096), settings.Defaults.ReaderMemorySize)
	assert.Equal(t, int32(512), settings.Defaults.GatewayMemorySize)
}

func TestLoad_EmptyProviderDefaultsToAWS(t *testing.T) {
	path := writeConfig(t, "profile: staging\n")

	settings, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "aws", settings.Provider)
	assert.Equal(t, "staging", settings.Profile)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "provider: [unclosed\n")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
