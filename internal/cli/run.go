package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/vimfocus/internal/app"
	"github.com/dshills/vimfocus/internal/config"
	"github.com/dshills/vimfocus/internal/input/macro"
	"github.com/dshills/vimfocus/internal/renderer/terminal"
)

func newRunCommand(g *globals) *cobra.Command {
	var (
		script  string
		record  string
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "run <page.html>",
		Short: "Navigate a page interactively in the terminal",
		Long: `Draw the page's focusable elements in the terminal and navigate them with
the configured keymap. Ctrl-C quits.

The config file is watched; saving it swaps in the new keymap without a
restart. Logs go to --log-file since the terminal is in use.

Examples:
  vimfocus run form.html
  vimfocus run form.html --script init.lua --record session.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if logFile != "" {
				level := g.logLevel
				if level == "" {
					level = "info"
				}
				l, closeLog, err := app.NewFileLogger(logFile, level)
				if err != nil {
					return err
				}
				defer closeLog()
				logger = l
			}

			s, err := g.openSession(args[0], script, logger)
			if err != nil {
				return err
			}
			defer s.Close()

			reloads, err := s.app.Watch()
			if err != nil && !errors.Is(err, app.ErrNoConfigPath) {
				return err
			}

			if record != "" {
				s.app.Recorder().Start(sessionName(record))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := runTerminal(ctx, s.app, reloads, logger); err != nil {
				return err
			}

			if record != "" {
				return saveRecording(cmd, s.app, record)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&script, "script", "", "Lua script to run at startup (overrides plugin.script)")
	cmd.Flags().StringVar(&record, "record", "", "save the keys pressed to this macro file on exit")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")

	return cmd
}

func runTerminal(ctx context.Context, a *app.Application, reloads <-chan config.Reload, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	err = terminal.New(screen, a, logger).Run(ctx, reloads)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// sessionName names a recording after its file plus a unique suffix.
func sessionName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return base + "-" + uuid.NewString()[:8]
}

func saveRecording(cmd *cobra.Command, a *app.Application, path string) error {
	m := a.Recorder().Stop()
	if m.Len() == 0 {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "no keys recorded")
		return nil
	}
	if err := macro.Save(path, m); err != nil {
		return fmt.Errorf("saving recording: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %d keys to %s\n", m.Len(), path)
	return nil
}
