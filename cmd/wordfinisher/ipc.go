package main

import (
	"fmt"
	"os"

	"github.com/bastiangx/wordfinisher/pkg/server"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var ipcCmd = &cobra.Command{
	Use:   "ipc",
	Short: "Serve completions as MessagePack over stdin/stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext()
		defer stop()

		// stdout carries the protocol, keep the logs quiet unless asked
		env, err := bootstrap(ctx, log.WarnLevel)
		if err != nil {
			return err
		}
		startReloads(ctx, env)

		log.Debug("spawning IPC")
		errCh := make(chan error, 1)
		go func() { errCh <- server.NewServer(env.completer).Start() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			fmt.Fprintf(os.Stderr, "\nExiting...\n")
			return nil
		}
	},
}
