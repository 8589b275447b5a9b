package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/smithy-go"

	"github.com/iamkjn/WordPress-AWS-Serverless-Automation/scheduler"
)

// stateConflictCode is the one EC2 error code reported when the instance is
// already in the requested state. Other codes (already terminated, not found)
// are deliberately not special-cased.
const stateConflictCode = "IncorrectInstanceState"

// EC2API is the subset of the EC2 SDK client used by this service.
type EC2API interface {
	StartInstances(ctx context.Context, params *ec2.StartInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error)
	StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
}

// EC2Client implements scheduler.InstanceAPI against the EC2 control plane.
type EC2Client struct {
	api EC2API
}

// NewEC2Client builds an EC2Client from the default AWS credential chain.
// Region resolution follows the execution environment unless the config
// carries an override.
func NewEC2Client(ctx context.Context, cfg *Config) (*EC2Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &EC2Client{api: ec2.NewFromConfig(awsCfg)}, nil
}

// NewEC2ClientFromAPI wraps an existing EC2 API client.
func NewEC2ClientFromAPI(api EC2API) *EC2Client {
	return &EC2Client{api: api}
}

// StartInstance issues a real (non dry-run) start for one instance.
func (c *EC2Client) StartInstance(ctx context.Context, instanceID string) error {
	_, err := c.api.StartInstances(ctx, &ec2.StartInstancesInput{
		InstanceIds: []string{instanceID},
		DryRun:      aws.Bool(false),
	})
	return classifyEC2Error(instanceID, err)
}

// StopInstance issues a real (non dry-run) stop for one instance.
func (c *EC2Client) StopInstance(ctx context.Context, instanceID string) error {
	_, err := c.api.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: []string{instanceID},
		DryRun:      aws.Bool(false),
	})
	return classifyEC2Error(instanceID, err)
}

// classifyEC2Error translates SDK errors into the scheduler's error taxonomy.
func classifyEC2Error(instanceID string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if apiErr.ErrorCode() == stateConflictCode {
			return &scheduler.StateConflictError{
				InstanceID: instanceID,
				Code:       apiErr.ErrorCode(),
			}
		}
		return &scheduler.ProviderError{
			Code:    apiErr.ErrorCode(),
			Message: apiErr.ErrorMessage(),
		}
	}

	return fmt.Errorf("calling EC2: %w", err)
}
