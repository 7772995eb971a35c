/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"io"
	"strings"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cfntypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clapdb/clapctl/internal/provider"
)

func markerObject(content string) *s3.GetObjectOutput {
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(content))}
}

func stackWithOutputs(name string, outputs map[string]string) []cfntypes.Stack {
	stack := cfntypes.Stack{StackName: awssdk.String(name)}
	for key, value := range outputs {
		stack.Outputs = append(stack.Outputs, cfntypes.Output{
			OutputKey:   awssdk.String(key),
			OutputValue: awssdk.String(value),
		})
	}
	return []cfntypes.Stack{stack}
}

func TestDeployService_ResolvesLatestTagBeforeCreate(t *testing.T) {
	ctx := context.Background()
	cfn := &MockCloudFormationClient{}
	s3c := &MockS3Client{}

	s3c.On("GetObject", ctx, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
		return awssdk.ToString(input.Bucket) == "clapdb-release-us-east-1" &&
			awssdk.ToString(input.Key) == "latest_tag"
	})).Return(markerObject("v3.2.1\n"), nil).Once()

	cfn.On("CreateStack", ctx, mock.MatchedBy(func(input *cloudformation.CreateStackInput) bool {
		params := paramMap(input.Parameters)
		return params[ParamVersion] == "v3.2.1"
	})).Return(&cloudformation.CreateStackOutput{
		StackId: awssdk.String("arn:aws:cloudformation:us-east-1:123456789012:stack/analytics/guid"),
	}, nil).Once()

	p := NewProviderWithClients("us-east-1", cfn, s3c, &MockServiceQuotasClient{})
	err := p.DeployService(ctx, provider.DeployConfig{Name: "analytics"})

	require.NoError(t, err)
	cfn.AssertExpectations(t)
	s3c.AssertExpectations(t)
}

func TestDeployService_InvalidVersionStopsBeforeCreate(t *testing.T) {
	ctx := context.Background()
	cfn := &MockCloudFormationClient{}
	s3c := &MockS3Client{}

	s3c.On("HeadObject", ctx, mock.Anything).Return(nil, &s3types.NotFound{})

	p := NewProviderWithClients("us-east-1", cfn, s3c, &MockServiceQuotasClient{})
	err := p.DeployService(ctx, provider.DeployConfig{Name: "analytics", Version: "v9.9.9"})

	var invalid *provider.InvalidVersionError
	require.ErrorAs(t, err, &invalid)
	cfn.AssertNotCalled(t, "CreateStack", mock.Anything, mock.Anything)
}

func TestDeployService_InvalidConfigStopsBeforeResolution(t *testing.T) {
	ctx := context.Background()
	cfn := &MockCloudFormationClient{}
	s3c := &MockS3Client{}

	p := NewProviderWithClients("us-east-1", cfn, s3c, &MockServiceQuotasClient{})
	err := p.DeployService(ctx, provider.DeployConfig{
		Name:         "analytics",
		ReaderMemory: int32Ptr(64),
	})

	require.Error(t, err)
	s3c.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything)
	s3c.AssertNotCalled(t, "HeadObject", mock.Anything, mock.Anything)
	cfn.AssertNotCalled(t, "CreateStack", mock.Anything, mock.Anything)
}

func TestUpdateService_EmptyVersionSkipsResolution(t *testing.T) {
	ctx := context.Background()
	cfn := &MockCloudFormationClient{}
	s3c := &MockS3Client{}

	cfn.On("GetTemplate", ctx, mock.Anything).Return(&cloudformation.GetTemplateOutput{
		TemplateBody: awssdk.String("current template"),
	}, nil)
	cfn.On("UpdateStack", ctx, mock.MatchedBy(func(input *cloudformation.UpdateStackInput) bool {
		return paramMap(input.Parameters)[ParamVersion] == "<previous>"
	})).Return(&cloudformation.UpdateStackOutput{}, nil)

	p := NewProviderWithClients("us-east-1", cfn, s3c, &MockServiceQuotasClient{})
	err := p.UpdateService(ctx, provider.DeployConfig{Name: "analytics", GatewayMemory: int32Ptr(4096)})

	require.NoError(t, err)
	s3c.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything)
	s3c.AssertNotCalled(t, "HeadObject", mock.Anything, mock.Anything)
}

func TestUpdateService_MissingArtifactFailsBeforeUpdate(t *testing.T) {
	ctx := context.Background()
	cfn := &MockCloudFormationClient{}
	s3c := &MockS3Client{}

	s3c.On("HeadObject", ctx, mock.Anything).Return(nil, &s3types.NotFound{})

	p := NewProviderWithClients("us-east-1", cfn, s3c, &MockServiceQuotasClient{})
	err := p.UpdateService(ctx, provider.DeployConfig{Name: "analytics", Version: "v9.9.9"})

	var missing *provider.ArtifactNotFoundError
	require.ErrorAs(t, err, &missing)
	cfn.AssertNotCalled(t, "UpdateStack", mock.Anything, mock.Anything)
}

func TestUpdateService_LatestResolvesToHash(t *testing.T) {
	ctx := context.Background()
	cfn := &MockCloudFormationClient{}
	s3c := &MockS3Client{}

	s3c.On("GetObject", ctx, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
		return awssdk.ToString(input.Key) == "latest_hash"
	})).Return(markerObject("8f14e45f\n"), nil).Once()

	cfn.On("GetTemplate", ctx, mock.Anything).Return(&cloudformation.GetTemplateOutput{
		TemplateBody: awssdk.String("current template"),
	}, nil)
	cfn.On("UpdateStack", ctx, mock.MatchedBy(func(input *cloudformation.UpdateStackInput) bool {
		return paramMap(input.Parameters)[ParamVersion] == "8f14e45f"
	})).Return(&cloudformation.UpdateStackOutput{}, nil)

	p := NewProviderWithClients("us-east-1", cfn, s3c, &MockServiceQuotasClient{})
	err := p.UpdateService(ctx, provider.DeployConfig{Name: "analytics", Version: "latest"})

	require.NoError(t, err)
	cfn.AssertExpectations(t)
}

func TestGetEndpointURLs(t *testing.T) {
	ctx := context.Background()
	cfn := &MockCloudFormationClient{}
	cfn.On("DescribeStacks", ctx, mock.Anything).Return(&cloudformation.DescribeStacksOutput{
		Stacks: stackWithOutputs("analytics", map[string]string{
			OutputConsoleURL:    "https://console.example.com",
			OutputDataAPIURL:    "https://data.example.com",
			OutputLicenseAPIURL: "https://license.example.com",
			OutputStorageBucket: "analytics-storage",
		}),
	}, nil)

	p := NewProviderWithClients("us-east-1", cfn, &MockS3Client{}, &MockServiceQuotasClient{})

	console, err := p.GetConsoleURL(ctx, "analytics")
	require.NoError(t, err)
	assert.Equal(t, "https://console.example.com", console)

	dataAPI, err := p.GetDataAPIURL(ctx, "analytics")
	require.NoError(t, err)
	assert.Equal(t, "https://data.example.com", dataAPI)

	bucket, err := p.GetStorageBucket(ctx, "analytics")
	require.NoError(t, err)
	assert.Equal(t, "analytics-storage", bucket)

	// All three lookups ride the outputs cache.
	cfn.AssertNumberOfCalls(t, "DescribeStacks", 1)
}

func TestGetEndpointURLs_MissingOutput(t *testing.T) {
	ctx := context.Background()
	cfn := &MockCloudFormationClient{}
	cfn.On("DescribeStacks", ctx, mock.Anything).Return(&cloudformation.DescribeStacksOutput{
		Stacks: stackWithOutputs("analytics", map[string]string{
			OutputConsoleURL: "https://console.example.com",
		}),
	}, nil)

	p := NewProviderWithClients("us-east-1", cfn, &MockS3Client{}, &MockServiceQuotasClient{})
	_, err := p.GetLicenseAPIURL(ctx, "analytics")

	require.Error(t, err)
	assert.Equal(t, "stack analytics has no LicenseApiUrl output", err.Error())
}

func TestGetArtifactInfo_EmptyVersionChecksLatestTag(t *testing.T) {
	ctx := context.Background()
	s3c := &MockS3Client{}

	s3c.On("GetObject", ctx, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
		return awssdk.ToString(input.Key) == "latest_tag"
	})).Return(markerObject("v3.2.1\n"), nil).Once()
	s3c.On("GetObject", ctx, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
		return awssdk.ToString(input.Key) == "latest_hash"
	})).Return(markerObject("8f14e45f\n"), nil).Once()
	s3c.On("HeadObject", ctx, mock.MatchedBy(func(input *s3.HeadObjectInput) bool {
		return awssdk.ToString(input.Key) == "v3.2.1/x86_64/clapdb.tar.gz"
	})).Return(&s3.HeadObjectOutput{}, nil).Once()

	p := NewProviderWithClients("us-east-1", &MockCloudFormationClient{}, s3c, &MockServiceQuotasClient{})
	info, err := p.GetArtifactInfo(ctx, "", "", "")

	require.NoError(t, err)
	assert.Equal(t, "v3.2.1", info.LatestTag)
	assert.Equal(t, "8f14e45f", info.LatestHash)
	assert.True(t, info.Exists)
	s3c.AssertExpectations(t)
}
