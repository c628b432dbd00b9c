package aws_test

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/syslinkats/ats-harness/internal/models"
	atsaws "github.com/syslinkats/ats-harness/pkg/aws"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

var _ = Describe("CommandService", func() {
	var (
		ctx     context.Context
		client  *fakeSSM
		service *atsaws.CommandService
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = &fakeSSM{}
		service = atsaws.NewCommandService(client)
	})

	It("should submit the commands as a document parameter", func() {
		id, err := service.Submit(ctx, []string{"i-1"}, []string{"hostname"}, models.PlatformWindows.DocumentName())

		Expect(err).NotTo(HaveOccurred())
		Expect(id).To(Equal("cmd-1"))
		Expect(aws.ToString(client.sendInput.DocumentName)).To(Equal("AWS-RunPowerShellScript"))
		Expect(client.sendInput.Parameters).To(HaveKeyWithValue("commands", []string{"hostname"}))
	})

	It("should mark client faults as client errors", func() {
		client.sendErr = &smithy.GenericAPIError{Code: "InvalidDocument", Message: "bad document", Fault: smithy.FaultClient}

		_, err := service.Submit(ctx, []string{"i-1"}, []string{"hostname"}, "doc")

		Expect(srvErrors.IsClientError(err)).To(BeTrue())
	})

	It("should keep unregistered instances retryable", func() {
		client.sendErr = &smithy.GenericAPIError{Code: "InvalidInstanceId", Message: "not registered", Fault: smithy.FaultClient}

		_, err := service.Submit(ctx, []string{"i-1"}, []string{"hostname"}, "doc")

		Expect(err).To(HaveOccurred())
		Expect(srvErrors.IsClientError(err)).To(BeFalse())
	})

	It("should keep server faults retryable", func() {
		client.sendErr = &smithy.GenericAPIError{Code: "InternalServerError", Fault: smithy.FaultServer}

		_, err := service.Submit(ctx, []string{"i-1"}, []string{"hostname"}, "doc")

		Expect(srvErrors.IsClientError(err)).To(BeFalse())
	})

	It("should report an unknown invocation as pending", func() {
		client.invErr = &ssmtypes.InvocationDoesNotExist{}

		out, err := service.Status(ctx, "cmd-1", "i-1")

		Expect(err).NotTo(HaveOccurred())
		Expect(out.Status).To(Equal(models.HostStatePending))
	})

	It("should map the invocation output", func() {
		client.invOut = &ssm.GetCommandInvocationOutput{
			Status:                ssmtypes.CommandInvocationStatusFailed,
			StandardOutputContent: aws.String("out"),
			StandardErrorContent:  aws.String("err"),
		}

		out, err := service.Status(ctx, "cmd-1", "i-1")

		Expect(err).NotTo(HaveOccurred())
		Expect(out.Status).To(Equal(models.HostStateFailed))
		Expect(out.Stdout).To(Equal("out"))
		Expect(out.Stderr).To(Equal("err"))
	})

	It("should pass through other errors", func() {
		client.invErr = errors.New("connection reset")

		_, err := service.Status(ctx, "cmd-1", "i-1")

		Expect(err).To(MatchError("connection reset"))
	})
})
