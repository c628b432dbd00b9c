package server_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/syslinkats/ats-harness/internal/config"
	"github.com/syslinkats/ats-harness/internal/server"
)

var _ = Describe("Server", func() {
	var cfg *config.Configuration

	BeforeEach(func() {
		c, err := config.NewConfigurationWithDefaults()
		Expect(err).NotTo(HaveOccurred())
		cfg = c
	})

	It("should mount handlers under /api/v1", func() {
		srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
			router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
		})
		Expect(err).NotTo(HaveOccurred())

		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(Equal("pong"))
	})

	It("should answer unknown routes with a JSON 404", func() {
		srv, err := server.NewServer(cfg, func(*gin.RouterGroup) {})
		Expect(err).NotTo(HaveOccurred())

		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring(`"error"`))
	})

	It("should recover from a panicking handler", func() {
		srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
			router.GET("/boom", func(*gin.Context) { panic("boom") })
		})
		Expect(err).NotTo(HaveOccurred())

		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})

	It("should reject an invalid port", func() {
		cfg.API.Port = 0

		_, err := server.NewServer(cfg, func(*gin.RouterGroup) {})

		Expect(err).To(HaveOccurred())
	})

	// Given a server listening on a free port
	// When the context is cancelled
	// Then Start should return without error
	It("should shut down when the context is cancelled", func() {
		// Arrange
		l, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		cfg.API.Port = l.Addr().(*net.TCPAddr).Port
		Expect(l.Close()).To(Succeed())

		srv, err := server.NewServer(cfg, func(*gin.RouterGroup) {})
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)

		// Act
		go func() { done <- srv.Start(ctx) }()
		time.Sleep(100 * time.Millisecond)
		cancel()

		// Assert
		Eventually(done, 5*time.Second).Should(Receive(BeNil()))
	})
})
