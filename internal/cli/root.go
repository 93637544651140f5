// Package cli implements the vimfocus command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/vimfocus/internal/app"
	"github.com/dshills/vimfocus/internal/config"
	"github.com/dshills/vimfocus/internal/page"
)

// Version is the vimfocus release, set via ldflags.
var Version = "dev"

// globals holds the persistent flags.
type globals struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   "vimfocus",
		Short: "VIM-style modal keyboard navigation for web pages",
		Long: `vimfocus moves focus between the interactive elements of a page with
h/j/k/l, switches between normal and insert mode, and lets a config file
or a Lua script rebind every key.

Pages are HTML files whose elements carry geometry in a data-rect="x,y,w,h"
attribute or in inline left/top/width/height styles.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "config file (default: $VIMFOCUS_CONFIG or the user config dir)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error or off (overrides the config)")

	cmd.AddCommand(newRunCommand(g))
	cmd.AddCommand(newGraphCommand(g))
	cmd.AddCommand(newReplayCommand(g))
	cmd.AddCommand(newKeysCommand(g))
	cmd.AddCommand(newConfigCommand(g))

	return cmd
}

// loadConfig loads the explicit or discovered config file. It also
// returns the path it loaded, "" for built-in defaults.
func (g *globals) loadConfig() (*config.Config, string, error) {
	path := g.configPath
	if path == "" {
		path = config.Discover()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	return cfg, path, nil
}

// session is an application built from the command line.
type session struct {
	app    *app.Application
	logger *zap.Logger
}

func (s *session) Close() {
	_ = s.app.Close()
	_ = s.logger.Sync()
}

// openSession loads the config and the page and assembles an application.
// logger may be nil to log to stderr at the configured level.
func (g *globals) openSession(pagePath, script string, logger *zap.Logger) (*session, error) {
	cfg, cfgPath, err := g.loadConfig()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger, err = app.NewLogger(cfg.Log.Level)
		if err != nil {
			return nil, err
		}
	}

	var pg *page.Page
	if pagePath == "" {
		pg, err = page.Parse("<html><body></body></html>", logger)
	} else {
		pg, err = page.LoadFile(pagePath, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("loading page: %w", err)
	}

	a, err := app.New(pg, app.Options{
		Config:     cfg,
		ConfigPath: cfgPath,
		ScriptPath: script,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}
	return &session{app: a, logger: logger}, nil
}
