/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package provider

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials indicates the vendor rejected the caller's
// credentials during provider construction
var ErrInvalidCredentials = errors.New("invalid credentials")

// StackNotFoundError indicates a name-scoped status query matched no stacks
type StackNotFoundError struct {
	Name string
}

func (e *StackNotFoundError) Error() string {
	return fmt.Sprintf("stack %s not found", e.Name)
}

// InvalidVersionError is the deploy-path version resolution failure: the
// requested version has no artifact for the given architecture
type InvalidVersionError struct {
	Version string
	Arch    Architecture
	Bucket  string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version %s: no %s artifact in bucket %s", e.Version, e.Arch, e.Bucket)
}

// ArtifactNotFoundError is the update-path flavour of the same failure
// condition. The two call sites surface different user-facing messages, so
// the types stay distinct.
type ArtifactNotFoundError struct {
	Version string
	Arch    Architecture
	Bucket  string
}

func (e *ArtifactNotFoundError) Error() string {
	return fmt.Sprintf("artifact for version %s (%s) not found in bucket %s", e.Version, e.Arch, e.Bucket)
}

// DeploymentFailedError indicates the watcher observed a terminal failure
// status for the given action
type DeploymentFailedError struct {
	Action Action
	Status string
}

func (e *DeploymentFailedError) Error() string {
	return fmt.Sprintf("%s service failed, you should check %s detail", e.Action, e.Action)
}
