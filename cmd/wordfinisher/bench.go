package main

import (
	"fmt"

	"github.com/bastiangx/wordfinisher/internal/bench"
	"github.com/bastiangx/wordfinisher/internal/logger"
	"github.com/bastiangx/wordfinisher/internal/utils"
	"github.com/bastiangx/wordfinisher/pkg/config"
	"github.com/bastiangx/wordfinisher/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var benchRounds int

var benchCmd = &cobra.Command{
	Use:   "bench [prefix...]",
	Short: "Compare prefix search times against other structures",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Setup(debugMode, log.InfoLevel)

		resolver, err := utils.NewPathResolver()
		if err != nil {
			return fmt.Errorf("resolving paths: %w", err)
		}
		cfg, _ := config.LoadConfigWithPriority(configPath, resolver.GetConfigPath(config.FileName))
		path := cfg.Dict.Path
		if dictPath != "" {
			path = dictPath
		}

		words, err := dictionary.ReadWords(resolver.GetDictPath(path))
		if err != nil {
			return err
		}

		report := bench.Run(words, args, benchRounds)
		for _, r := range report.Results {
			log.Info(r.Name, "avg", r.Average, "matches", r.Matches)
		}
		if len(report.Mismatch) > 0 {
			log.Warn("Result sets differ", "at", report.Mismatch)
		}
		log.Infof("Reduction in search time using the prefix index vs hashmap: %.2f%%", report.Reduction)
		return nil
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchRounds, "rounds", 10, "Searches per prefix and structure")
}
