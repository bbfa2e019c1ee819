package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts serveOptions

	root := &cobra.Command{
		Use:   "taskboard",
		Short: "Task board API and single-page app server",
		Long: `taskboard serves a small task board: a JSON API under /api backed by
SQLite (tasks) and SQLite or Redis (theme setting), a summarization
endpoint backed by Workers AI, and the static single-page app.

Configuration is read from the environment, optionally seeded from a .env file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	root.PersistentFlags().StringVar(&opts.addr, "addr", "", "listen address (overrides HTTP_ADDR)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	root.AddCommand(serve)

	return root
}
