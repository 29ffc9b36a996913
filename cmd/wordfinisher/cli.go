package main

import (
	"context"

	"github.com/bastiangx/wordfinisher/internal/cli"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var noFilter bool

// CLI would be mainly used for testing and dbg purposes.
var cliCmd = &cobra.Command{
	Use:   "cli",
	Short: "Complete prefixes typed on stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		// no signal context: Ctrl+C ends the REPL directly
		env, err := bootstrap(context.Background(), log.WarnLevel)
		if err != nil {
			return err
		}
		log.SetReportTimestamp(false)

		c := env.cfg.CLI
		if cmd.Flags().Changed("no-filter") {
			c.NoFilter = noFilter
		}
		log.Debug("Input info:", "minLen", c.MinLen, "maxLen", c.MaxLen, "noFilter", c.NoFilter)
		return cli.NewInputHandler(env.completer, c.MinLen, c.MaxLen, c.NoFilter).Start()
	},
}

func init() {
	cliCmd.Flags().BoolVar(&noFilter, "no-filter", false, "Disable input filtering (DBG only)")
}
