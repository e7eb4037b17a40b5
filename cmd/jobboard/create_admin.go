package main

import (
	"fmt"

	"github.com/jonathan/job-board/internal/config"
	"github.com/jonathan/job-board/internal/server"
	"github.com/jonathan/job-board/internal/types"
	"github.com/spf13/cobra"
)

var (
	adminEmail    string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account",
	Long:  "Create an admin account directly in the database, applying the same password policy as the signup endpoint.",
	RunE:  runCreateAdmin,
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Admin email (required)")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password (required)")

	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createAdminCmd)
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	// Reject weak passwords before touching the database.
	if err := config.CheckPasswordPolicy(adminPassword); err != nil {
		return err
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return err
	}

	database, err := connectDB(cmd.Context())
	if err != nil {
		return err
	}
	defer database.Close()

	if _, err := database.Migrate(cmd.Context()); err != nil {
		return err
	}

	admin, err := server.NewAdminService(database, passwordConfig).Signup(cmd.Context(), &types.SignupRequest{
		Email:           adminEmail,
		Password:        adminPassword,
		ConfirmPassword: adminPassword,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (%s)\n", admin.Email, admin.ID)
	return nil
}
