package main

import (
	"fmt"

	"github.com/jonathan/job-board/internal/db"
	"github.com/spf13/cobra"
)

var (
	migrateList bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded database migrations",
	Long:  "Apply the embedded SQL migrations in order. Every migration is idempotent, so running it again is safe.",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateList, "list", false, "List embedded migrations without applying them")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	if migrateList {
		names, err := db.MigrationNames()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	database, err := connectDB(cmd.Context())
	if err != nil {
		return err
	}
	defer database.Close()

	applied, err := database.Migrate(cmd.Context())
	if err != nil {
		return err
	}
	for _, name := range applied {
		logger.Info("migration applied", "name", name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migrations\n", len(applied))
	return nil
}
