package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordfinisher/internal/logger"
	"github.com/bastiangx/wordfinisher/internal/utils"
	"github.com/bastiangx/wordfinisher/pkg/config"
	"github.com/bastiangx/wordfinisher/pkg/dictionary"
	"github.com/bastiangx/wordfinisher/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	AppName = "wordfinisher"
	gh      = "https://github.com/bastiangx/wordfinisher"
)

var (
	configPath  string
	dictPath    string
	debugMode   bool
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:           AppName,
	Short:         "Finishes partial words from a dictionary",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			printVersion()
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&dictPath, "dict", "", "Word list to load (overrides [dict].path)")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "Toggle debug mode")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show current version")

	rootCmd.AddCommand(serveCmd, ipcCmd, cliCmd, benchCmd)
}

// printVersion shows the styled version banner.
func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ WordFinisher ] finishes your words")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("Github Repo", "gh", gh)
}

// environment is what every subcommand needs after startup.
type environment struct {
	cfg       *config.Config
	dictPath  string
	completer *suggest.Completer
}

// bootstrap sets up logging, loads config and builds the dictionary.
// A missing word list is fatal to startup.
func bootstrap(ctx context.Context, fallbackLevel log.Level) (*environment, error) {
	logger.Setup(debugMode, fallbackLevel)

	resolver, err := utils.NewPathResolver()
	if err != nil {
		return nil, fmt.Errorf("resolving paths: %w", err)
	}

	cfg, usedPath := config.LoadConfigWithPriority(configPath, resolver.GetConfigPath(config.FileName))
	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(usedPath))
	log.Debugf("Config directory: %s", resolver.ConfigDir())

	path := cfg.Dict.Path
	if dictPath != "" {
		path = dictPath
	}
	path = resolver.GetDictPath(path)
	log.Debugf("Using word list at: %s", path)

	idx, stats, err := dictionary.Build(ctx, path, cfg.Dict.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary: %w", err)
	}
	log.Info("Dictionary loaded", "words", stats.Words, "nodes", stats.Nodes, "took", stats.Took)

	return &environment{
		cfg:       cfg,
		dictPath:  path,
		completer: suggest.NewCompleter(idx, cfg.Server.MaxPrefix),
	}, nil
}

// signalContext is cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// startReloads rebuilds the dictionary on SIGHUP and, when configured, on file changes.
func startReloads(ctx context.Context, env *environment) {
	reloader := dictionary.NewReloader(env.dictPath, env.cfg.Dict.BatchSize, env.completer)
	reloadOnHangup(ctx, reloader)

	if !env.cfg.Dict.Watch {
		return
	}
	go func() {
		if err := reloader.Run(ctx); err != nil {
			log.Errorf("Word list watcher stopped: %v", err)
		}
	}()
}
