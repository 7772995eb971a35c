/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"
	"os"

	"github.com/clapdb/clapctl/internal/prompt"
	"github.com/clapdb/clapctl/internal/provider"
)

// Stack output keys exposed by the service template
const (
	OutputConsoleURL    = "ConsoleUrl"
	OutputDataAPIURL    = "DataApiUrl"
	OutputLicenseAPIURL = "LicenseApiUrl"
	OutputStorageBucket = "StorageBucket"
)

// ProviderName is the registry key for this vendor
const ProviderName = "aws"

// Provider implements the deployment orchestration contract on AWS:
// CloudFormation for stack lifecycle, S3 for artifact resolution, Service
// Quotas for compute quota operations.
type Provider struct {
	region   string
	ops      *StackOperations
	store    ArtifactStore
	resolver *VersionResolver
	quotas   *QuotaOperations
	api      *ServiceAPI

	// newProgress builds the progress resource a watch releases on exit;
	// injectable for tests
	newProgress func() prompt.Progress
}

var _ provider.Provider = (*Provider)(nil)

// NewProvider constructs the AWS provider, validating credentials before any
// operation can run
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := client.CheckCredentials(ctx); err != nil {
		return nil, err
	}

	return newProvider(client.Region(), client.cfn, client.s3, client.quotas), nil
}

// NewProviderWithClients constructs a provider over explicit service clients
// (for testing)
func NewProviderWithClients(region string, cfn CloudFormationClient, s3c S3Client, quotas ServiceQuotasClient) *Provider {
	return newProvider(region, cfn, s3c, quotas)
}

func newProvider(region string, cfn CloudFormationClient, s3c S3Client, quotas ServiceQuotasClient) *Provider {
	store := NewBucketArtifactStore(s3c)
	return &Provider{
		region:   region,
		ops:      NewStackOperations(cfn),
		store:    store,
		resolver: NewVersionResolver(store),
		quotas:   NewQuotaOperations(quotas),
		api:      NewServiceAPI(),
		newProgress: func() prompt.Progress {
			return prompt.NewSpinner(os.Stdout)
		},
	}
}

// Register adds this vendor to the given registry
func Register(reg *provider.Registry) {
	reg.Register(ProviderName, func(ctx context.Context, profile string) (provider.Provider, error) {
		return NewProvider(ctx, Config{Profile: profile})
	})
}

// SetProgressFactory overrides how watch progress is reported (for testing)
func (p *Provider) SetProgressFactory(factory func() prompt.Progress) {
	p.newProgress = factory
}

// bucketFor returns the artifact bucket for a config, deriving the default
// release bucket from the region when no override is given
func (p *Provider) bucketFor(override string) string {
	if override != "" {
		return override
	}
	return DefaultBucket(p.region)
}

func archOrDefault(arch provider.Architecture) provider.Architecture {
	if arch == "" {
		return provider.ArchX8664
	}
	return arch
}

// DeployService resolves the version token and creates the service stack.
// Resolution always runs first: no create request is submitted with an
// unresolved token.
func (p *Provider) DeployService(ctx context.Context, cfg provider.DeployConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	bucket := p.bucketFor(cfg.Bucket)
	version, err := p.resolver.Resolve(ctx, bucket, cfg.Version, archOrDefault(cfg.Architecture), provider.ActionDeploy)
	if err != nil {
		return err
	}
	cfg.Version = version

	if _, err := p.ops.CreateStack(ctx, cfg); err != nil {
		return err
	}
	return nil
}

// UpdateService updates the service stack. An empty version token keeps the
// currently deployed version; an explicit token (including "latest") is
// resolved and verified before the update request goes out.
func (p *Provider) UpdateService(ctx context.Context, cfg provider.DeployConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Version != "" {
		bucket := p.bucketFor(cfg.Bucket)
		version, err := p.resolver.Resolve(ctx, bucket, cfg.Version, archOrDefault(cfg.Architecture), provider.ActionUpdate)
		if err != nil {
			return err
		}
		cfg.Version = version
	}

	return p.ops.UpdateStack(ctx, cfg)
}

// DeleteService requests stack deletion; watch the delete action to observe
// completion
func (p *Provider) DeleteService(ctx context.Context, name string) error {
	return p.ops.DeleteStack(ctx, name)
}

// WatchService blocks until the stack reaches a terminal state for action
func (p *Provider) WatchService(ctx context.Context, name string, action provider.Action) error {
	return NewWatcher(p.ops, p.newProgress()).Watch(ctx, name, action)
}

func (p *Provider) ListStacks(ctx context.Context) ([]provider.StackInfo, error) {
	return p.ops.ListStacks(ctx)
}

func (p *Provider) HasStack(ctx context.Context, name string) (bool, error) {
	return p.ops.HasStack(ctx, name)
}

func (p *Provider) GetStackStatus(ctx context.Context, name string) (provider.StackInfo, error) {
	return p.ops.GetStatus(ctx, name)
}

// output looks up a single stack output by key
func (p *Provider) output(ctx context.Context, name, key string) (string, error) {
	outputs, err := p.ops.GetOutputs(ctx, name)
	if err != nil {
		return "", err
	}
	value, ok := outputs[key]
	if !ok {
		return "", fmt.Errorf("stack %s has no %s output", name, key)
	}
	return value, nil
}

func (p *Provider) GetConsoleURL(ctx context.Context, name string) (string, error) {
	return p.output(ctx, name, OutputConsoleURL)
}

func (p *Provider) GetDataAPIURL(ctx context.Context, name string) (string, error) {
	return p.output(ctx, name, OutputDataAPIURL)
}

func (p *Provider) GetLicenseAPIURL(ctx context.Context, name string) (string, error) {
	return p.output(ctx, name, OutputLicenseAPIURL)
}

func (p *Provider) GetStorageBucket(ctx context.Context, name string) (string, error) {
	return p.output(ctx, name, OutputStorageBucket)
}

func (p *Provider) AddUser(ctx context.Context, name, user, password string) error {
	dataAPI, err := p.GetDataAPIURL(ctx, name)
	if err != nil {
		return err
	}
	return p.api.AddUser(ctx, dataAPI, user, password)
}

func (p *Provider) GetServiceLicense(ctx context.Context, name string) (*provider.License, error) {
	licenseAPI, err := p.GetLicenseAPIURL(ctx, name)
	if err != nil {
		return nil, err
	}
	return p.api.GetLicense(ctx, licenseAPI)
}

func (p *Provider) UpgradeServiceLicense(ctx context.Context, name, licenseKey string) error {
	licenseAPI, err := p.GetLicenseAPIURL(ctx, name)
	if err != nil {
		return err
	}
	return p.api.UpgradeLicense(ctx, licenseAPI, licenseKey)
}

func (p *Provider) GetComputeQuota(ctx context.Context) (float64, error) {
	return p.quotas.GetComputeQuota(ctx)
}

func (p *Provider) RequestComputeQuotaIncrease(ctx context.Context, value float64) error {
	return p.quotas.RequestComputeQuotaIncrease(ctx, value)
}

// GetArtifactInfo reports the bucket's latest tag and hash plus whether an
// artifact exists for the version/architecture pair. An empty version checks
// the latest tag.
func (p *Provider) GetArtifactInfo(ctx context.Context, bucket, version string, arch provider.Architecture) (provider.ArtifactInfo, error) {
	bucket = p.bucketFor(bucket)

	tag, err := p.store.LatestTag(ctx, bucket)
	if err != nil {
		return provider.ArtifactInfo{}, err
	}
	hash, err := p.store.LatestHash(ctx, bucket)
	if err != nil {
		return provider.ArtifactInfo{}, err
	}

	if version == "" {
		version = tag
	}
	exists, err := p.store.HasArtifact(ctx, bucket, version, archOrDefault(arch))
	if err != nil {
		return provider.ArtifactInfo{}, err
	}

	return provider.ArtifactInfo{
		LatestTag:  tag,
		LatestHash: hash,
		Exists:     exists,
	}, nil
}
