// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface of the wall client.
// Every subcommand is one screen: it runs a wall API query through the query
// executor, shows a spinner while the call is in flight and renders the
// resulting state.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"wall/cli/internal/auth"
	"wall/cli/internal/backend"
	"wall/cli/internal/config"
	clierrors "wall/cli/internal/errors"
	"wall/cli/internal/keychain"
	"wall/cli/internal/logging"
	"wall/cli/internal/session"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
	verbose     bool
	apiURL      string
	timeout     time.Duration
)

// app holds what PersistentPreRunE resolved for the running command.
var app struct {
	cfg config.Config
	log logging.Logger
	be  backend.API

	storeOnce sync.Once
	store     session.Store
	storeErr  error
}

// errReported marks a failure the command already printed.
var errReported = errors.New("reported")

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "wall",
	Short:         "Read and write the wall from your terminal",
	Long:          `wall is a command-line client for the wall API: sign up, log in, read the latest posts, post and comment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return clierrors.Wrap(clierrors.Config, "could not load configuration", err)
		}
		cfg = applyFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return clierrors.Wrap(clierrors.Config, "invalid configuration", err)
		}

		app.cfg = cfg
		app.log = logging.New(os.Stderr, cfg.LogLevel)
		app.be = backend.New(cfg.APIBaseURL, cfg.Endpoints,
			backend.WithTimeout(time.Duration(cfg.Timeout)),
			backend.WithLogger(app.log),
			backend.WithUserAgent("wall-cli/"+Version),
			backend.WithPageSize(cfg.PageSize, cfg.MaxPageSize),
		)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			printVersion(cmd.OutOrStdout())
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// applyFlags layers the command-line flags over cfg. Flags win over every
// other source, so an invalid file or environment value can be repaired here.
func applyFlags(cmd *cobra.Command, cfg config.Config) config.Config {
	if cmd.Flags().Changed("api-url") {
		cfg.APIBaseURL = strings.TrimSpace(apiURL)
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = config.Duration(timeout)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg
}

// sessionStore opens the OS keyring on first use. Commands that never touch
// the session do not trigger a keyring unlock prompt.
func sessionStore() (session.Store, error) {
	app.storeOnce.Do(func() {
		m, err := keychain.GetManager()
		if err != nil {
			app.storeErr = clierrors.Wrap(clierrors.SessionStore, "could not open the OS keyring", err)
			return
		}
		app.store = m
	})
	return app.store, app.storeErr
}

// authService builds the auth service over the session store.
func authService() (*auth.Service, error) {
	store, err := sessionStore()
	if err != nil {
		return nil, err
	}
	return auth.NewService(app.be, store, app.log), nil
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, logging.PresentError("Error", err))
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the wall API (overrides WALL_API_BASE_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "HTTP request timeout (overrides WALL_TIMEOUT)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests and explain network errors")
}
