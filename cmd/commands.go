package main

import (
	"github.com/spf13/cobra"
)

var (
	migrationsDir string
	downSteps     int

	rootCmd = &cobra.Command{
		Use:          "dispatch-feed-sync",
		Short:        "Synchronizes a live dispatch incident feed into PostgreSQL",
		SilenceUsage: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run migrations, the feed scheduler, the staleness resolver and the ops API",
		RunE:  runServe, // serve.go
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	migrateUpCmd = &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE:  runMigrateUp, // migrate.go
	}
	migrateDownCmd = &cobra.Command{
		Use:   "down",
		Short: "Roll back the given number of migrations",
		RunE:  runMigrateDown, // migrate.go
	}

	resolveStaleCmd = &cobra.Command{
		Use:   "resolve-stale",
		Short: "Run a single staleness resolver pass and exit",
		RunE:  runResolveStale, // resolve.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&migrationsDir, "migrations", "migrations", "Path to the SQL migrations directory")
	migrateDownCmd.Flags().IntVar(&downSteps, "steps", 1, "Number of migrations to roll back")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd, resolveStaleCmd)
}
