package aws_test

import (
	"context"
	"net"
	"strconv"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	atsaws "github.com/syslinkats/ats-harness/pkg/aws"
)

var _ = Describe("WaitForSocket", func() {
	hostPort := func(addr net.Addr) (string, int) {
		host, port, err := net.SplitHostPort(addr.String())
		Expect(err).NotTo(HaveOccurred())
		p, err := strconv.Atoi(port)
		Expect(err).NotTo(HaveOccurred())
		return host, p
	}

	It("should return once the port accepts connections", func() {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(ln.Close)
		host, port := hostPort(ln.Addr())

		Expect(atsaws.WaitForSocket(context.Background(), host, port, 3, time.Millisecond)).To(Succeed())
	})

	// Given a port nothing listens on
	// When three attempts are allowed
	// Then the error should report the attempts used
	It("should give up after the retries run out", func() {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		host, port := hostPort(ln.Addr())
		Expect(ln.Close()).To(Succeed())

		err = atsaws.WaitForSocket(context.Background(), host, port, 3, time.Millisecond)

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("after 3 attempts"))
	})

	It("should stop when the context is cancelled", func() {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		host, port := hostPort(ln.Addr())
		Expect(ln.Close()).To(Succeed())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err = atsaws.WaitForSocket(ctx, host, port, 100, time.Hour)

		Expect(err).To(MatchError(context.Canceled))
	})
})
