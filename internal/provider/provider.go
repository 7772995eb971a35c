/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package provider

import (
	"context"
	"fmt"
	"time"
)

// Architecture identifies the CPU architecture of the service artifact
type Architecture string

const (
	ArchX8664 Architecture = "x86_64"
	ArchARM64 Architecture = "arm64"
)

// Memory size bounds in megabytes, matching the engine's Lambda limits
const (
	MinMemorySize     = 128
	MaxMemorySize     = 10240
	DefaultMemorySize = 3008
)

// Action identifies which lifecycle operation a watch or version resolution
// is running on behalf of
type Action string

const (
	ActionDeploy Action = "deploy"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// DeployConfig is the desired state for a deployment, built by the caller per
// invocation and immutable once passed in.
//
// Pointer fields distinguish "not specified" from an explicit value: on deploy
// an unset field takes its default, on update an unset field is submitted to
// the engine as "use previous value" so partial updates never reset unrelated
// settings.
type DeployConfig struct {
	Name         string
	Architecture Architecture // empty means default (deploy) or keep previous (update)

	ReaderMemory    *int32 // MB
	WriterMemory    *int32 // MB
	CompactorMemory *int32 // MB
	GatewayMemory   *int32 // MB

	EnablePrivateVPC      *bool
	EnablePrivateEndpoint *bool
	EnableLogging         *bool

	// Version is the user-supplied version token: "", "latest", or an opaque
	// version identifier. It must be resolved against the artifact store
	// before any mutating call.
	Version string

	// Bucket overrides the artifact bucket; empty means the provider derives
	// the default release bucket for its region.
	Bucket string

	// TemplateBody overrides the built-in service template when non-empty.
	TemplateBody string
}

// Validate checks field constraints that hold for every action
func (c *DeployConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("deployment name must not be empty")
	}
	if c.Architecture != "" && c.Architecture != ArchX8664 && c.Architecture != ArchARM64 {
		return fmt.Errorf("unsupported architecture %q, expected %s or %s", c.Architecture, ArchX8664, ArchARM64)
	}
	for _, m := range []struct {
		name  string
		value *int32
	}{
		{"reader", c.ReaderMemory},
		{"writer", c.WriterMemory},
		{"compactor", c.CompactorMemory},
		{"gateway", c.GatewayMemory},
	} {
		if m.value != nil && (*m.value < MinMemorySize || *m.value > MaxMemorySize) {
			return fmt.Errorf("%s memory size %d MB out of range [%d, %d]", m.name, *m.value, MinMemorySize, MaxMemorySize)
		}
	}
	if c.EnablePrivateEndpoint != nil && *c.EnablePrivateEndpoint {
		if c.EnablePrivateVPC == nil || !*c.EnablePrivateVPC {
			return fmt.Errorf("private endpoint requires private VPC to be enabled")
		}
	}
	return nil
}

// StackInfo is a read-only snapshot of a deployment's observed state
type StackInfo struct {
	Name      string
	Status    string
	CreatedAt *time.Time
}

// ArtifactInfo describes a resolved build artifact
type ArtifactInfo struct {
	LatestTag  string
	LatestHash string
	Exists     bool
}

// License describes the service license reported by the license API
type License struct {
	Type      string `json:"type"`
	ExpiresAt string `json:"expiresAt"`
	MaxBytes  int64  `json:"maxBytes"`
}

// Provider is the vendor-abstracted deployment orchestration contract. One
// implementation exists per cloud vendor; instances are constructed through
// the Registry by name.
type Provider interface {
	// DeployService resolves the version token and creates the stack. It
	// returns once the create request is accepted; use WatchService to block
	// until the operation reaches a terminal state.
	DeployService(ctx context.Context, cfg DeployConfig) error

	// UpdateService resolves an explicit version token (if any) and updates
	// the stack, submitting "use previous value" for unset fields.
	UpdateService(ctx context.Context, cfg DeployConfig) error

	// DeleteService requests stack deletion. Completion is observed only
	// through WatchService.
	DeleteService(ctx context.Context, name string) error

	// WatchService polls the stack until it reaches a terminal state for the
	// given action. A vanished stack counts as success when deleting.
	WatchService(ctx context.Context, name string, action Action) error

	ListStacks(ctx context.Context) ([]StackInfo, error)
	HasStack(ctx context.Context, name string) (bool, error)
	GetStackStatus(ctx context.Context, name string) (StackInfo, error)

	GetConsoleURL(ctx context.Context, name string) (string, error)
	GetDataAPIURL(ctx context.Context, name string) (string, error)
	GetLicenseAPIURL(ctx context.Context, name string) (string, error)
	GetStorageBucket(ctx context.Context, name string) (string, error)

	AddUser(ctx context.Context, name, user, password string) error
	GetServiceLicense(ctx context.Context, name string) (*License, error)
	UpgradeServiceLicense(ctx context.Context, name, licenseKey string) error

	GetComputeQuota(ctx context.Context) (float64, error)
	RequestComputeQuotaIncrease(ctx context.Context, value float64) error

	GetArtifactInfo(ctx context.Context, bucket, version string, arch Architecture) (ArtifactInfo, error)
}
