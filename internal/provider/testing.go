/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package provider

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProvider implements Provider for testing
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) DeployService(ctx context.Context, cfg DeployConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockProvider) UpdateService(ctx context.Context, cfg DeployConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockProvider) DeleteService(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockProvider) WatchService(ctx context.Context, name string, action Action) error {
	args := m.Called(ctx, name, action)
	return args.Error(0)
}

func (m *MockProvider) ListStacks(ctx context.Context) ([]StackInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]StackInfo), args.Error(1)
}

func (m *MockProvider) HasStack(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockProvider) GetStackStatus(ctx context.Context, name string) (StackInfo, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(StackInfo), args.Error(1)
}

func (m *MockProvider) GetConsoleURL(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) GetDataAPIURL(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) GetLicenseAPIURL(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) GetStorageBucket(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) AddUser(ctx context.Context, name, user, password string) error {
	args := m.Called(ctx, name, user, password)
	return args.Error(0)
}

func (m *MockProvider) GetServiceLicense(ctx context.Context, name string) (*License, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*License), args.Error(1)
}

func (m *MockProvider) UpgradeServiceLicense(ctx context.Context, name, licenseKey string) error {
	args := m.Called(ctx, name, licenseKey)
	return args.Error(0)
}

func (m *MockProvider) GetComputeQuota(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockProvider) RequestComputeQuotaIncrease(ctx context.Context, value float64) error {
	args := m.Called(ctx, value)
	return args.Error(0)
}

func (m *MockProvider) GetArtifactInfo(ctx context.Context, bucket, version string, arch Architecture) (ArtifactInfo, error) {
	args := m.Called(ctx, bucket, version, arch)
	return args.Get(0).(ArtifactInfo), args.Error(1)
}
