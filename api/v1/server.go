package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServerInterface is implemented by the ledger handlers.
type ServerInterface interface {
	// (GET /health)
	GetHealth(c *gin.Context)
	// (GET /instances)
	ListInstances(c *gin.Context, params ListInstancesParams)
	// (GET /instances/:id)
	GetInstance(c *gin.Context, id string)
	// (GET /invocations)
	ListInvocations(c *gin.Context, params ListInvocationsParams)
	// (GET /testruns)
	ListTestRuns(c *gin.Context, params ListTestRunsParams)
}

// RegisterHandlers binds query parameters and routes requests to si.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	router.GET("/health", si.GetHealth)

	router.GET("/instances", func(c *gin.Context) {
		var params ListInstancesParams
		if !bindQuery(c, &params) {
			return
		}
		si.ListInstances(c, params)
	})

	router.GET("/instances/:id", func(c *gin.Context) {
		si.GetInstance(c, c.Param("id"))
	})

	router.GET("/invocations", func(c *gin.Context) {
		var params ListInvocationsParams
		if !bindQuery(c, &params) {
			return
		}
		si.ListInvocations(c, params)
	})

	router.GET("/testruns", func(c *gin.Context) {
		var params ListTestRunsParams
		if !bindQuery(c, &params) {
			return
		}
		si.ListTestRuns(c, params)
	})
}

func bindQuery(c *gin.Context, params any) bool {
	if err := c.ShouldBindQuery(params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query parameters: " + err.Error()})
		return false
	}
	return true
}
