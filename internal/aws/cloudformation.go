/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"

	"github.com/clapdb/clapctl/internal/provider"
)

// StackStatus represents the status of a CloudFormation stack
type StackStatus string

const (
	StackStatusCreateInProgress         StackStatus = "CREATE_IN_PROGRESS"
	StackStatusCreateComplete           StackStatus = "CREATE_COMPLETE"
	StackStatusCreateFailed             StackStatus = "CREATE_FAILED"
	StackStatusDeleteInProgress         StackStatus = "DELETE_IN_PROGRESS"
	StackStatusDeleteComplete           StackStatus = "DELETE_COMPLETE"
	StackStatusDeleteFailed             StackStatus = "DELETE_FAILED"
	StackStatusUpdateInProgress         StackStatus = "UPDATE_IN_PROGRESS"
	StackStatusUpdateComplete           StackStatus = "UPDATE_COMPLETE"
	StackStatusUpdateFailed             StackStatus = "UPDATE_FAILED"
	StackStatusUpdateRollbackInProgress StackStatus = "UPDATE_ROLLBACK_IN_PROGRESS"
	StackStatusUpdateRollbackComplete   StackStatus = "UPDATE_ROLLBACK_COMPLETE"
	StackStatusUpdateRollbackFailed     StackStatus = "UPDATE_ROLLBACK_FAILED"
	StackStatusRollbackInProgress       StackStatus = "ROLLBACK_IN_PROGRESS"
	StackStatusRollbackComplete         StackStatus = "ROLLBACK_COMPLETE"
	StackStatusRollbackFailed           StackStatus = "ROLLBACK_FAILED"
)

// Engine parameter keys for the service template
const (
	ParamVersion               = "clapdbVersion"
	ParamArchitecture          = "architecture"
	ParamReaderMemorySize      = "readerMemorySize"
	ParamWriterMemorySize      = "writerMemorySize"
	ParamCompactorMemorySize   = "compactorMemorySize"
	ParamGatewayMemorySize     = "gatewayMemorySize"
	ParamEnablePrivateVPC      = "enablePrivateVpc"
	ParamEnablePrivateEndpoint = "enablePrivateEndpoint"
	ParamEnableLogging         = "enableLogging"
)

// Every stack created by clapctl carries this tag
const (
	vendorTagKey   = "clapdb"
	vendorTagValue = "true"
)

// StackOperations issues lifecycle requests against CloudFormation for
// clapdb service stacks
type StackOperations struct {
	client CloudFormationClient

	// outputs caches stack outputs per stack name after the first successful
	// fetch. See GetOutputs.
	outputs map[string]map[string]string
}

// NewStackOperations creates a stack operations wrapper around the given
// CloudFormation client
func NewStackOperations(client CloudFormationClient) *StackOperations {
	return &StackOperations{
		client:  client,
		outputs: make(map[string]map[string]string),
	}
}

// CreateStack creates the service stack from the deployment configuration and
// returns the opaque stack identifier. cfg.Version must already be resolved
// to a concrete version.
func (so *StackOperations) CreateStack(ctx context.Context, cfg provider.DeployConfig) (string, error) {
	templateBody := cfg.TemplateBody
	if templateBody == "" {
		rendered, err := RenderDefaultTemplate(cfg.Name)
		if err != nil {
			return "", err
		}
		templateBody = rendered
	}

	result, err := so.client.CreateStack(ctx, &cloudformation.CreateStackInput{
		StackName:    aws.String(cfg.Name),
		TemplateBody: aws.String(templateBody),
		Parameters:   createParameters(cfg),
		Capabilities: []types.Capability{types.CapabilityCapabilityIam},
		Tags: []types.Tag{
			{Key: aws.String(vendorTagKey), Value: aws.String(vendorTagValue)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create stack %s: %w", cfg.Name, err)
	}

	return aws.ToString(result.StackId), nil
}

// UpdateStack updates the service stack. Fields left unset in cfg are
// submitted as "use previous value" so partial updates never reset unrelated
// settings. When cfg carries no template body the currently applied template
// is fetched and resubmitted unchanged.
func (so *StackOperations) UpdateStack(ctx context.Context, cfg provider.DeployConfig) error {
	templateBody := cfg.TemplateBody
	if templateBody == "" {
		current, err := so.GetTemplate(ctx, cfg.Name)
		if err != nil {
			return err
		}
		templateBody = current
	}

	_, err := so.client.UpdateStack(ctx, &cloudformation.UpdateStackInput{
		StackName:    aws.String(cfg.Name),
		TemplateBody: aws.String(templateBody),
		Parameters:   updateParameters(cfg),
		Capabilities: []types.Capability{types.CapabilityCapabilityIam},
	})
	if err != nil {
		return fmt.Errorf("failed to update stack %s: %w", cfg.Name, err)
	}

	return nil
}

// DeleteStack requests stack deletion. The request is fire-and-forget;
// completion is observed through the watcher.
func (so *StackOperations) DeleteStack(ctx context.Context, name string) error {
	_, err := so.client.DeleteStack(ctx, &cloudformation.DeleteStackInput{
		StackName: aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("failed to delete stack %s: %w", name, err)
	}

	return nil
}

// GetStatus returns a snapshot of the stack's observed state
func (so *StackOperations) GetStatus(ctx context.Context, name string) (provider.StackInfo, error) {
	result, err := so.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if err != nil {
		return provider.StackInfo{}, fmt.Errorf("failed to describe stack %s: %w", name, err)
	}

	if len(result.Stacks) == 0 {
		return provider.StackInfo{}, &provider.StackNotFoundError{Name: name}
	}

	stack := result.Stacks[0]
	return provider.StackInfo{
		Name:      aws.ToString(stack.StackName),
		Status:    string(stack.StackStatus),
		CreatedAt: stack.CreationTime,
	}, nil
}

// GetParameters returns the stack's currently applied parameters
func (so *StackOperations) GetParameters(ctx context.Context, name string) (map[string]string, error) {
	result, err := so.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe stack %s: %w", name, err)
	}
	if len(result.Stacks) == 0 {
		return nil, &provider.StackNotFoundError{Name: name}
	}

	params := make(map[string]string)
	for _, p := range result.Stacks[0].Parameters {
		params[aws.ToString(p.ParameterKey)] = aws.ToString(p.ParameterValue)
	}
	return params, nil
}

// GetOutputs returns the stack's outputs as a key/value map.
//
// Outputs are cached on this StackOperations instance and only refreshed when
// the cache is empty. A caller that updates a stack and needs its new outputs
// must construct a fresh StackOperations.
func (so *StackOperations) GetOutputs(ctx context.Context, name string) (map[string]string, error) {
	if cached, ok := so.outputs[name]; ok && len(cached) > 0 {
		return cached, nil
	}

	result, err := so.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe stack %s: %w", name, err)
	}
	if len(result.Stacks) == 0 {
		return nil, &provider.StackNotFoundError{Name: name}
	}

	outputs := make(map[string]string)
	for _, o := range result.Stacks[0].Outputs {
		outputs[aws.ToString(o.OutputKey)] = aws.ToString(o.OutputValue)
	}

	so.outputs[name] = outputs
	return outputs, nil
}

// GetResourceStatuses returns the status of each stack resource keyed by
// logical resource ID
func (so *StackOperations) GetResourceStatuses(ctx context.Context, name string) (map[string]string, error) {
	result, err := so.client.DescribeStackResources(ctx, &cloudformation.DescribeStackResourcesInput{
		StackName: aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe resources of stack %s: %w", name, err)
	}

	statuses := make(map[string]string)
	for _, r := range result.StackResources {
		statuses[aws.ToString(r.LogicalResourceId)] = string(r.ResourceStatus)
	}
	return statuses, nil
}

// GetTemplate retrieves the currently applied template body for a stack
func (so *StackOperations) GetTemplate(ctx context.Context, name string) (string, error) {
	result, err := so.client.GetTemplate(ctx, &cloudformation.GetTemplateInput{
		StackName: aws.String(name),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get template for stack %s: %w", name, err)
	}

	return aws.ToString(result.TemplateBody), nil
}

// HasStack checks whether a stack with the given name exists. The engine
// reports a missing name as a validation error, which maps to false rather
// than an error; any other error class propagates.
func (so *StackOperations) HasStack(ctx context.Context, name string) (bool, error) {
	_, err := so.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if err != nil {
		if isStackNotFoundError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check if stack exists: %w", err)
	}

	return true, nil
}

// ListStacks returns all stacks visible in the region, skipping deleted ones
func (so *StackOperations) ListStacks(ctx context.Context) ([]provider.StackInfo, error) {
	var stacks []provider.StackInfo
	paginator := cloudformation.NewListStacksPaginator(so.client, &cloudformation.ListStacksInput{})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list stacks: %w", err)
		}

		for _, summary := range page.StackSummaries {
			if summary.StackStatus == types.StackStatusDeleteComplete {
				continue
			}
			stacks = append(stacks, provider.StackInfo{
				Name:      aws.ToString(summary.StackName),
				Status:    string(summary.StackStatus),
				CreatedAt: summary.CreationTime,
			})
		}
	}

	return stacks, nil
}

// isStackNotFoundError checks if the error indicates the stack doesn't exist
func isStackNotFoundError(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ValidationError" {
		return true
	}
	return err != nil && (strings.Contains(err.Error(), "does not exist") ||
		strings.Contains(err.Error(), "ValidationError"))
}

// createParameters maps the deployment configuration into the engine's named
// parameter list, applying defaults for unset fields
func createParameters(cfg provider.DeployConfig) []types.Parameter {
	arch := cfg.Architecture
	if arch == "" {
		arch = provider.ArchX8664
	}

	params := []types.Parameter{
		param(ParamVersion, cfg.Version),
		param(ParamArchitecture, string(arch)),
		param(ParamReaderMemorySize, memoryValue(cfg.ReaderMemory)),
		param(ParamWriterMemorySize, memoryValue(cfg.WriterMemory)),
		param(ParamCompactorMemorySize, memoryValue(cfg.CompactorMemory)),
		param(ParamGatewayMemorySize, memoryValue(cfg.GatewayMemory)),
		param(ParamEnablePrivateVPC, boolValue(cfg.EnablePrivateVPC)),
		param(ParamEnablePrivateEndpoint, boolValue(cfg.EnablePrivateEndpoint)),
		param(ParamEnableLogging, boolValue(cfg.EnableLogging)),
	}
	return params
}

// updateParameters maps the deployment configuration for an update: any field
// the caller did not specify is submitted with the UsePreviousValue sentinel
func updateParameters(cfg provider.DeployConfig) []types.Parameter {
	params := make([]types.Parameter, 0, 9)

	if cfg.Version != "" {
		params = append(params, param(ParamVersion, cfg.Version))
	} else {
		params = append(params, previous(ParamVersion))
	}

	if cfg.Architecture != "" {
		params = append(params, param(ParamArchitecture, string(cfg.Architecture)))
	} else {
		params = append(params, previous(ParamArchitecture))
	}

	for _, m := range []struct {
		key   string
		value *int32
	}{
		{ParamReaderMemorySize, cfg.ReaderMemory},
		{ParamWriterMemorySize, cfg.WriterMemory},
		{ParamCompactorMemorySize, cfg.CompactorMemory},
		{ParamGatewayMemorySize, cfg.GatewayMemory},
	} {
		if m.value != nil {
			params = append(params, param(m.key, strconv.Itoa(int(*m.value))))
		} else {
			params = append(params, previous(m.key))
		}
	}

	for _, b := range []struct {
		key   string
		value *bool
	}{
		{ParamEnablePrivateVPC, cfg.EnablePrivateVPC},
		{ParamEnablePrivateEndpoint, cfg.EnablePrivateEndpoint},
		{ParamEnableLogging, cfg.EnableLogging},
	} {
		if b.value != nil {
			params = append(params, param(b.key, strconv.FormatBool(*b.value)))
		} else {
			params = append(params, previous(b.key))
		}
	}

	return params
}

func param(key, value string) types.Parameter {
	return types.Parameter{
		ParameterKey:   aws.String(key),
		ParameterValue: aws.String(value),
	}
}

func previous(key string) types.Parameter {
	return types.Parameter{
		ParameterKey:     aws.String(key),
		UsePreviousValue: aws.Bool(true),
	}
}

func memoryValue(size *int32) string {
	if size == nil {
		return strconv.Itoa(provider.DefaultMemorySize)
	}
	return strconv.Itoa(int(*size))
}

func boolValue(b *bool) string {
	if b == nil {
		return "false"
	}
	return strconv.FormatBool(*b)
}
