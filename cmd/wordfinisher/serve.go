package main

import (
	"github.com/bastiangx/wordfinisher/pkg/server"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve completions over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext()
		defer stop()

		env, err := bootstrap(ctx, log.InfoLevel)
		if err != nil {
			return err
		}
		startReloads(ctx, env)

		addr := env.cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}
		return server.NewHTTPServer(addr, env.completer, env.cfg.Server.AllowedOrigins).ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides [server].addr)")
}
