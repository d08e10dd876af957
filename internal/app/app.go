// Package app ties the pieces together: it makes sure a configuration
// exists, authenticates, resolves the configured user and dispatches the
// requested command. The first failure wins; nothing is retried.
package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/peer-tools/intra/internal/command"
	"github.com/peer-tools/intra/internal/config"
	"github.com/peer-tools/intra/internal/intra"
	"github.com/peer-tools/intra/internal/logger"
	"github.com/peer-tools/intra/internal/session"
)

// setupFunc is the one-shot interactive configuration capture.
type setupFunc func(path string, in io.Reader, out io.Writer) error

// sessionFunc builds the authenticated session.
type sessionFunc func(ctx context.Context, clientID, clientSecret, login string) (intra.Caller, error)

// App is the entry orchestrator. The interactive setup and the session
// constructor are injected capabilities so tests can run the whole flow
// without a terminal or a network.
type App struct {
	configPath string
	in         io.Reader
	out        io.Writer

	setup      setupFunc
	newSession sessionFunc
}

// New returns an orchestrator reading interactive input from in and writing
// all output to out. configPath is the resolved configuration file location.
func New(configPath string, in io.Reader, out io.Writer) *App {
	return &App{
		configPath: configPath,
		in:         in,
		out:        out,
		setup:      config.Setup,
		newSession: func(ctx context.Context, clientID, clientSecret, login string) (intra.Caller, error) {
			return session.New(ctx, clientID, clientSecret, login)
		},
	}
}

// Run executes one invocation: parse the command token, ensure the
// configuration, authenticate, resolve the user and render. Both user
// lookups run regardless of which command was requested.
func (a *App) Run(ctx context.Context, token string) error {
	cmd, err := command.Parse(token)
	if err != nil {
		return err
	}

	if !config.Exists(a.configPath) {
		logger.Info("no configuration found, starting setup", zap.String("path", a.configPath))
		if err := a.setup(a.configPath, a.in, a.out); err != nil {
			return fmt.Errorf("configuration setup failed: %w", err)
		}
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	sess, err := a.newSession(ctx, cfg.ClientID, cfg.ClientSecret, cfg.Login)
	if err != nil {
		return err
	}

	summary, profile, err := intra.NewResolver(sess).Resolve(ctx)
	if err != nil {
		return err
	}

	return command.NewDispatcher(a.out, cfg.Cursus).Dispatch(cmd, summary, profile)
}
