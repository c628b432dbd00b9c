package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/syslinkats/ats-harness/api/v1"
	"github.com/syslinkats/ats-harness/internal/store"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

// ListInstances returns the instance ledger with filtering and pagination
// (GET /instances)
func (h *Handler) ListInstances(c *gin.Context, params v1.ListInstancesParams) {
	p, err := parsePage(params.PageParams)
	if err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	filters := []store.ListOption{store.ByStates(params.State...)}

	total, err := h.store.Instances().Count(ctx, filters...)
	if err != nil {
		internalError(c, "failed to count instances", err)
		return
	}
	records, err := h.store.Instances().List(ctx, append(filters, p.options()...)...)
	if err != nil {
		internalError(c, "failed to list instances", err)
		return
	}

	out := make([]v1.Instance, 0, len(records))
	for _, r := range records {
		out = append(out, v1.NewInstanceFromModel(r))
	}

	c.JSON(http.StatusOK, v1.InstanceListResponse{
		Page:      p.number,
		PageCount: p.count(total),
		Total:     total,
		Instances: out,
	})
}

// GetInstance returns one ledger instance
// (GET /instances/:id)
func (h *Handler) GetInstance(c *gin.Context, id string) {
	rec, err := h.store.Instances().Get(c.Request.Context(), id)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			c.JSON(http.StatusNotFound, v1.ErrorResponse{Error: err.Error()})
			return
		}
		internalError(c, "failed to get instance", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewInstanceFromModel(*rec))
}

// ListInvocations returns submitted remote commands
// (GET /invocations)
func (h *Handler) ListInvocations(c *gin.Context, params v1.ListInvocationsParams) {
	p, err := parsePage(params.PageParams)
	if err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	filters := []store.ListOption{store.ByOutcomes(params.Outcome...)}

	total, err := h.store.Invocations().Count(ctx, filters...)
	if err != nil {
		internalError(c, "failed to count invocations", err)
		return
	}
	records, err := h.store.Invocations().List(ctx, append(filters, p.options()...)...)
	if err != nil {
		internalError(c, "failed to list invocations", err)
		return
	}

	out := make([]v1.Invocation, 0, len(records))
	for _, r := range records {
		out = append(out, v1.NewInvocationFromModel(r))
	}

	c.JSON(http.StatusOK, v1.InvocationListResponse{
		Page:        p.number,
		PageCount:   p.count(total),
		Total:       total,
		Invocations: out,
	})
}

// ListTestRuns returns reported result files
// (GET /testruns)
func (h *Handler) ListTestRuns(c *gin.Context, params v1.ListTestRunsParams) {
	p, err := parsePage(params.PageParams)
	if err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	filters := []store.ListOption{store.BySuites(params.Suite...)}
	if params.Since != "" {
		since, err := time.Parse(time.DateOnly, params.Since)
		if err != nil {
			c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "since must be a YYYY-MM-DD date"})
			return
		}
		filters = append(filters, store.CreatedSince(since))
	}

	total, err := h.store.TestRuns().Count(ctx, filters...)
	if err != nil {
		internalError(c, "failed to count test runs", err)
		return
	}
	records, err := h.store.TestRuns().List(ctx, append(filters, p.options()...)...)
	if err != nil {
		internalError(c, "failed to list test runs", err)
		return
	}

	out := make([]v1.TestRun, 0, len(records))
	for _, r := range records {
		out = append(out, v1.NewTestRunFromModel(r))
	}

	c.JSON(http.StatusOK, v1.TestRunListResponse{
		Page:      p.number,
		PageCount: p.count(total),
		Total:     total,
		TestRuns:  out,
	})
}

func internalError(c *gin.Context, msg string, err error) {
	zap.S().Named("ledger_handler").Errorw(msg, "error", err)
	c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: msg})
}
