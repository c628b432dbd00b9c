package httpverb_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
	"github.com/syslinkats/ats-harness/pkg/httpverb"
)

var _ = Describe("Client", func() {
	var (
		ctx    context.Context
		srv    *httptest.Server
		client *httpverb.Client
		calls  atomic.Int32
	)

	newServer := func(h http.HandlerFunc) {
		srv = httptest.NewServer(h)
	}

	BeforeEach(func() {
		ctx = context.Background()
		calls.Store(0)
		client = httpverb.NewClient("admin", "secret", httpverb.WithRetryDelay(time.Millisecond), httpverb.WithDebug(true))
	})

	AfterEach(func() {
		if srv != nil {
			srv.Close()
		}
	})

	Context("expected status", func() {
		// Given a server answering 403
		// When we expect 201
		// Then ExpectedResponseError should carry both the code and the body
		It("should return ExpectedResponseError with status code and body", func() {
			newServer(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte("denied"))
			})

			// Act
			_, err := client.Post(ctx, srv.URL, []byte(`{}`), httpverb.ExpectStatus(http.StatusCreated))

			// Assert
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsExpectedResponseError(err)).To(BeTrue())
			var e *srvErrors.ExpectedResponseError
			Expect(err).To(BeAssignableToTypeOf(e))
			e = err.(*srvErrors.ExpectedResponseError)
			Expect(e.StatusCode).To(Equal(http.StatusForbidden))
			Expect(e.Body).To(Equal("denied"))
			Expect(err.Error()).To(ContainSubstring("403"))
		})

		It("should return the response when the status matches", func() {
			newServer(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":"1"}`))
			})

			resp, err := client.PostJSON(ctx, srv.URL, map[string]string{"a": "b"}, httpverb.ExpectStatus(http.StatusCreated))

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))
			var body map[string]string
			Expect(resp.JSON(&body)).To(Succeed())
			Expect(body["id"]).To(Equal("1"))
		})

		It("should not retry an unexpected status", func() {
			newServer(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(http.StatusServiceUnavailable)
			})

			_, err := client.Get(ctx, srv.URL, httpverb.ExpectStatus(http.StatusOK), httpverb.RetryCount(5))

			Expect(srvErrors.IsExpectedResponseError(err)).To(BeTrue())
			Expect(calls.Load()).To(BeEquivalentTo(1))
		})
	})

	Context("json error key", func() {
		// Given a 200 response whose body holds an error object
		// When the error key is checked
		// Then ErrorObjectInRequest should report code and name
		It("should return ErrorObjectInRequest", func() {
			newServer(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"error":{"code":5,"name":"Bad","message":"nope"}}`))
			})

			_, err := client.Get(ctx, srv.URL, httpverb.CheckJSONErrorKey())

			Expect(srvErrors.IsErrorObjectInRequest(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("(5) Bad"))
			Expect(err.Error()).To(ContainSubstring("nope"))
		})

		It("should accept an empty error object", func() {
			newServer(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"error":null,"data":[]}`))
			})

			_, err := client.Get(ctx, srv.URL, httpverb.CheckJSONErrorKey())

			Expect(err).NotTo(HaveOccurred())
		})

		It("should check the error object after a matching status", func() {
			newServer(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"error":{"code":7,"name":"Partial","message":"half done"}}`))
			})

			_, err := client.Post(ctx, srv.URL, []byte(`{}`), httpverb.ExpectStatus(http.StatusCreated), httpverb.CheckJSONErrorKey())

			Expect(srvErrors.IsErrorObjectInRequest(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("(7) Partial"))
		})

		It("should report a status mismatch before the error object", func() {
			newServer(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"error":{"code":7,"name":"Partial","message":"half done"}}`))
			})

			_, err := client.Post(ctx, srv.URL, []byte(`{}`), httpverb.ExpectStatus(http.StatusCreated), httpverb.CheckJSONErrorKey())

			Expect(srvErrors.IsExpectedResponseError(err)).To(BeTrue())
		})

		It("should reject expected status combined with expected success before sending", func() {
			newServer(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
			})

			_, err := client.Get(ctx, srv.URL, httpverb.ExpectStatus(http.StatusOK), httpverb.ExpectSuccess(true))

			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
			Expect(calls.Load()).To(BeZero())
		})
	})

	Context("retry", func() {
		// Given a server that answers 503 twice then 200
		// When success is expected
		// Then the call should be retried until it succeeds
		It("should retry on 503 until success", func() {
			newServer(func(w http.ResponseWriter, r *http.Request) {
				if calls.Add(1) < 3 {
					w.WriteHeader(http.StatusServiceUnavailable)
					return
				}
				w.WriteHeader(http.StatusOK)
			})

			resp, err := client.Get(ctx, srv.URL, httpverb.ExpectSuccess(true))

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(calls.Load()).To(BeEquivalentTo(3))
		})

		It("should return the final error once retries are exhausted", func() {
			newServer(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(http.StatusServiceUnavailable)
			})

			_, err := client.Get(ctx, srv.URL, httpverb.ExpectSuccess(true), httpverb.RetryCount(4))

			Expect(srvErrors.IsHTTPStatusError(err)).To(BeTrue())
			Expect(calls.Load()).To(BeEquivalentTo(4))
		})

		It("should use the client retry count unless the call sets one", func() {
			newServer(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(http.StatusServiceUnavailable)
			})
			client = httpverb.NewClient("admin", "secret", httpverb.WithRetryDelay(time.Millisecond), httpverb.WithRetryCount(2))

			_, err := client.Get(ctx, srv.URL, httpverb.ExpectSuccess(true))
			Expect(srvErrors.IsHTTPStatusError(err)).To(BeTrue())
			Expect(calls.Load()).To(BeEquivalentTo(2))

			calls.Store(0)
			_, err = client.Get(ctx, srv.URL, httpverb.ExpectSuccess(true), httpverb.RetryCount(3))
			Expect(err).To(HaveOccurred())
			Expect(calls.Load()).To(BeEquivalentTo(3))
		})

		It("should not retry codes outside the retry set", func() {
			newServer(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(http.StatusInternalServerError)
			})

			_, err := client.Get(ctx, srv.URL, httpverb.ExpectSuccess(true))

			Expect(srvErrors.IsHTTPStatusError(err)).To(BeTrue())
			Expect(calls.Load()).To(BeEquivalentTo(1))
		})

		It("should honour a custom retry set", func() {
			newServer(func(w http.ResponseWriter, r *http.Request) {
				if calls.Add(1) == 1 {
					w.WriteHeader(http.StatusBadGateway)
					return
				}
				w.WriteHeader(http.StatusOK)
			})

			_, err := client.Get(ctx, srv.URL, httpverb.ExpectSuccess(true), httpverb.RetryOn(http.StatusBadGateway))

			Expect(err).NotTo(HaveOccurred())
			Expect(calls.Load()).To(BeEquivalentTo(2))
		})
	})

	Context("custom handler", func() {
		It("should skip built-in validation and use the handler result", func() {
			newServer(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			})

			var seen int
			_, err := client.Get(ctx, srv.URL, httpverb.WithCustomHandler(func(resp *httpverb.Response) error {
				seen = resp.StatusCode
				return nil
			}))

			Expect(err).NotTo(HaveOccurred())
			Expect(seen).To(Equal(http.StatusNotFound))
		})

		It("should reject a handler combined with built-in validation", func() {
			_, err := client.Get(ctx, "http://127.0.0.1:1",
				httpverb.ExpectStatus(http.StatusOK),
				httpverb.WithCustomHandler(func(*httpverb.Response) error { return nil }))

			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})
	})

	Context("debug logging", func() {
		// Given a client in debug mode and a server answering 403
		// When the call expects 201
		// Then the exchange should be logged before validation fails
		It("should log the request and response even when validation fails", func() {
			core, logs := observer.New(zapcore.DebugLevel)
			DeferCleanup(zap.ReplaceGlobals(zap.New(core)))
			newServer(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"reason":"denied"}`))
			})

			_, err := client.Post(ctx, srv.URL+"/items", []byte(`{"a":"b"}`), httpverb.ExpectStatus(http.StatusCreated))

			Expect(srvErrors.IsExpectedResponseError(err)).To(BeTrue())
			debug := logs.FilterLevelExact(zapcore.DebugLevel)
			Expect(debug.FilterMessage("POST: " + srv.URL + "/items").Len()).To(Equal(1))
			Expect(debug.FilterMessage(`Body: {"a":"b"}`).Len()).To(Equal(1))
			Expect(debug.FilterMessageSnippet("Response: 403").Len()).To(Equal(1))
			Expect(debug.FilterMessageSnippet(`"reason": "denied"`).Len()).To(Equal(1))
		})

		It("should stay quiet when debug is off", func() {
			core, logs := observer.New(zapcore.DebugLevel)
			DeferCleanup(zap.ReplaceGlobals(zap.New(core)))
			newServer(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			quiet := httpverb.NewClient("admin", "secret")

			_, err := quiet.Get(ctx, srv.URL)

			Expect(err).NotTo(HaveOccurred())
			Expect(logs.FilterLevelExact(zapcore.DebugLevel).Len()).To(BeZero())
		})
	})

	Context("auth and headers", func() {
		It("should send basic auth and the default content type", func() {
			newServer(func(w http.ResponseWriter, r *http.Request) {
				user, pass, ok := r.BasicAuth()
				Expect(ok).To(BeTrue())
				Expect(user).To(Equal("admin"))
				Expect(pass).To(Equal("secret"))
				Expect(r.Header.Get("Content-Type")).To(Equal("application/json"))
				w.WriteHeader(http.StatusOK)
			})

			_, err := client.Get(ctx, srv.URL, httpverb.ExpectStatus(http.StatusOK))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should let a call override auth", func() {
			newServer(func(w http.ResponseWriter, r *http.Request) {
				user, _, _ := r.BasicAuth()
				Expect(user).To(Equal("other"))
				w.WriteHeader(http.StatusOK)
			})

			_, err := client.Delete(ctx, srv.URL, httpverb.WithAuth("other", "pw"), httpverb.ExpectStatus(http.StatusOK))
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("uploads", func() {
		It("should post files as multipart form data", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "results.xml")
			Expect(os.WriteFile(path, []byte("<xml/>"), 0o600)).To(Succeed())

			newServer(func(w http.ResponseWriter, r *http.Request) {
				f, hdr, err := r.FormFile("file")
				Expect(err).NotTo(HaveOccurred())
				defer f.Close()
				data, _ := io.ReadAll(f)
				Expect(hdr.Filename).To(Equal("results.xml"))
				Expect(string(data)).To(Equal("<xml/>"))
				Expect(r.FormValue("workspace")).To(Equal("ws"))
				w.WriteHeader(http.StatusCreated)
				_ = json.NewEncoder(w).Encode(map[string]string{"uri": "/files/1"})
			})

			resp, err := client.PostFiles(ctx, srv.URL, map[string]string{"file": path}, map[string]string{"workspace": "ws"}, httpverb.ExpectStatus(http.StatusCreated))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Text()).To(ContainSubstring("/files/1"))
		})

		It("should read file urls", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "data.json")
			Expect(os.WriteFile(path, []byte(`{"k":"v"}`), 0o600)).To(Succeed())

			resp, err := client.Get(ctx, "file://"+path, httpverb.ExpectSuccess(true))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Text()).To(Equal(`{"k":"v"}`))
		})
	})
})
