package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"vandar/client/internal/api"
	"vandar/client/internal/config"
	"vandar/client/internal/credentials"
	"vandar/client/internal/log"
	"vandar/client/internal/state"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	cfg   *config.AppConfig
	log   zerolog.Logger
	creds *credentials.Store
	store *state.Store
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "vandar",
		Short:         "Command-line client for the vandar blogging platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.AddCommand(
		newLoginCommand(a),
		newSignupCommand(a),
		newVerifyEmailCommand(a),
		newForgotPasswordCommand(a),
		newResetPasswordCommand(a),
		newWhoamiCommand(a),
		newLogoutCommand(a),
		newPostsCommand(a),
	)

	return root
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.New(cfg.Environment)
	creds := credentials.NewStore(cfg.Credentials.File)

	client, err := api.NewClient(cfg, creds, logger)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := state.NewStore(api.NewAuthService(client), api.NewPostService(client), creds, logger)
	store.SetTheme(cfg.UI.Theme)
	store.SetSidebarCollapsed(cfg.UI.SidebarCollapsed)

	a.cfg = cfg
	a.log = logger
	a.creds = creds
	a.store = store
	return nil
}

// requireAuth restores the session from the stored credential and runs the
// guard before a protected command executes.
func (a *app) requireAuth(cmd *cobra.Command) error {
	_ = a.store.RestoreSession(cmd.Context())

	switch state.EvaluateGuard(a.store.Session()) {
	case state.GuardRender:
		return nil
	default:
		return fmt.Errorf("not logged in; run 'vandar login' first")
	}
}

// flushNotifications prints and drains whatever the state machines queued
// while the command ran.
func (a *app) flushNotifications(cmd *cobra.Command) {
	for _, n := range a.store.UI().Notifications {
		switch n.Severity {
		case state.SeverityError, state.SeverityWarning:
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", n.Severity, n.Message)
		default:
			fmt.Fprintln(cmd.OutOrStdout(), n.Message)
		}
		a.store.RemoveNotification(n.ID)
	}
}
