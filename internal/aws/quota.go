/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/servicequotas"
)

// The service compute ceiling is the Lambda concurrent executions quota
const (
	lambdaServiceCode        = "lambda"
	concurrentExecutionsCode = "L-B99A9384"
)

// QuotaOperations queries and requests increases for the vendor's compute
// quota
type QuotaOperations struct {
	client ServiceQuotasClient
}

// NewQuotaOperations creates a quota operations wrapper around the given
// Service Quotas client
func NewQuotaOperations(client ServiceQuotasClient) *QuotaOperations {
	return &QuotaOperations{client: client}
}

// GetComputeQuota returns the current concurrent execution ceiling
func (q *QuotaOperations) GetComputeQuota(ctx context.Context) (float64, error) {
	result, err := q.client.GetServiceQuota(ctx, &servicequotas.GetServiceQuotaInput{
		ServiceCode: aws.String(lambdaServiceCode),
		QuotaCode:   aws.String(concurrentExecutionsCode),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get compute quota: %w", err)
	}
	if result.Quota == nil || result.Quota.Value == nil {
		return 0, fmt.Errorf("compute quota has no value")
	}

	return *result.Quota.Value, nil
}

// RequestComputeQuotaIncrease files a quota increase request for the
// concurrent execution ceiling. Approval is asynchronous on the vendor side.
func (q *QuotaOperations) RequestComputeQuotaIncrease(ctx context.Context, value float64) error {
	_, err := q.client.RequestServiceQuotaIncrease(ctx, &servicequotas.RequestServiceQuotaIncreaseInput{
		ServiceCode:  aws.String(lambdaServiceCode),
		QuotaCode:    aws.String(concurrentExecutionsCode),
		DesiredValue: aws.Float64(value),
	})
	if err != nil {
		return fmt.Errorf("failed to request compute quota increase to %.0f: %w", value, err)
	}

	return nil
}
