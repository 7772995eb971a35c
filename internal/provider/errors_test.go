/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package provider

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "stack analytics not found",
		(&StackNotFoundError{Name: "analytics"}).Error())

	assert.Equal(t, "invalid version v9.9.9: no x86_64 artifact in bucket clapdb-release-us-east-1",
		(&InvalidVersionError{Version: "v9.9.9", Arch: ArchX8664, Bucket: "clapdb-release-us-east-1"}).Error())

	assert.Equal(t, "artifact for version v9.9.9 (arm64) not found in bucket clapdb-release-us-east-1",
		(&ArtifactNotFoundError{Version: "v9.9.9", Arch: ArchARM64, Bucket: "clapdb-release-us-east-1"}).Error())

	assert.Equal(t, "deploy service failed, you should check deploy detail",
		(&DeploymentFailedError{Action: ActionDeploy, Status: "ROLLBACK_COMPLETE"}).Error())
}

func TestInvalidCredentialsWrapping(t *testing.T) {
	err := fmt.Errorf("%w: token expired", ErrInvalidCredentials)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDeployAndUpdateResolutionFailuresAreDistinct(t *testing.T) {
	var deployErr error = &InvalidVersionError{Version: "v1", Arch: ArchX8664, Bucket: "b"}
	var updateErr error = &ArtifactNotFoundError{Version: "v1", Arch: ArchX8664, Bucket: "b"}

	var invalid *InvalidVersionError
	assert.False(t, errors.As(updateErr, &invalid))

	var missing *ArtifactNotFoundError
	assert.False(t, errors.As(deployErr, &missing))
}
