package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	v1 "github.com/syslinkats/ats-harness/api/v1"
	"github.com/syslinkats/ats-harness/internal/handlers"
	"github.com/syslinkats/ats-harness/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ledger of instances, invocations and test runs over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.API.Port = port
			}

			ledger, err := a.Ledger(cmd.Context())
			if err != nil {
				return err
			}

			h := handlers.New(ledger)
			srv, err := server.NewServer(a.cfg, func(router *gin.RouterGroup) {
				v1.RegisterHandlers(router, h)
			})
			if err != nil {
				return err
			}
			return srv.Start(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port (default: api.port)")
	return cmd
}
