package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"

	"github.com/syslinkats/ats-harness/internal/models"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

// Client faults that still resolve on a later attempt. An instance that has
// just booted is not registered with SSM yet.
var transientCodes = map[string]bool{
	"InvalidInstanceId":   true,
	"ThrottlingException": true,
	"Throttling":          true,
}

// CommandService runs shell documents on instances through Systems Manager.
type CommandService struct {
	client SSMAPI
}

func NewCommandService(client SSMAPI) *CommandService {
	return &CommandService{client: client}
}

func (s *CommandService) Submit(ctx context.Context, hostIDs []string, commands []string, document string) (string, error) {
	out, err := s.client.SendCommand(ctx, &ssm.SendCommandInput{
		InstanceIds:  hostIDs,
		DocumentName: aws.String(document),
		Parameters:   map[string][]string{"commands": commands},
	})
	if err != nil {
		return "", classify(err)
	}
	if out.Command == nil || out.Command.CommandId == nil {
		return "", fmt.Errorf("send command returned no command id")
	}
	return aws.ToString(out.Command.CommandId), nil
}

// Status reports the state of one host. An invocation SSM has not
// registered yet is reported as Pending.
func (s *CommandService) Status(ctx context.Context, invocationID, hostID string) (models.HostOutput, error) {
	out, err := s.client.GetCommandInvocation(ctx, &ssm.GetCommandInvocationInput{
		CommandId:  aws.String(invocationID),
		InstanceId: aws.String(hostID),
	})
	if err != nil {
		var notYet *ssmtypes.InvocationDoesNotExist
		if errors.As(err, &notYet) {
			return models.HostOutput{Status: models.HostStatePending}, nil
		}
		return models.HostOutput{}, classify(err)
	}

	return models.HostOutput{
		Status: models.HostState(out.Status),
		Stdout: aws.ToString(out.StandardOutputContent),
		Stderr: aws.ToString(out.StandardErrorContent),
	}, nil
}

func classify(err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	if apiErr.ErrorFault() != smithy.FaultClient || transientCodes[apiErr.ErrorCode()] {
		return err
	}
	return srvErrors.NewClientError(apiErr.ErrorCode(), apiErr.ErrorMessage(), err)
}
