/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/servicequotas"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/clapdb/clapctl/internal/provider"
)

// Config holds configuration for creating an AWS client
type Config struct {
	Region  string
	Profile string
}

// Client provides the AWS service clients the provider needs
type Client struct {
	config aws.Config
	cfn    *cloudformation.Client
	s3     *s3.Client
	quotas *servicequotas.Client
	sts    *sts.Client
}

// NewClient creates a new AWS client with the specified configuration
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var opts []func(*config.LoadOptions) error

	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &Client{
		config: awsCfg,
		cfn:    cloudformation.NewFromConfig(awsCfg),
		s3:     s3.NewFromConfig(awsCfg),
		quotas: servicequotas.NewFromConfig(awsCfg),
		sts:    sts.NewFromConfig(awsCfg),
	}, nil
}

// Region returns the configured AWS region
func (c *Client) Region() string {
	return c.config.Region
}

// CheckCredentials verifies the loaded credentials are usable by calling STS
// GetCallerIdentity. A failure maps to provider.ErrInvalidCredentials so the
// vendor-neutral layers can classify it.
func (c *Client) CheckCredentials(ctx context.Context) error {
	if _, err := c.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{}); err != nil {
		return fmt.Errorf("%w: %v", provider.ErrInvalidCredentials, err)
	}
	return nil
}
