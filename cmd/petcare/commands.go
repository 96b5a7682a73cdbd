package main

import (
	"context"
	"fmt"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/app"
	"github.com/riquelima/SandyPetShop-v3/internal/auth"
	"github.com/riquelima/SandyPetShop-v3/internal/config"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the maintenance scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustLoad()

		application, err := app.New(cfg)
		if err != nil {
			return fmt.Errorf("app init: %w", err)
		}

		if err = application.Run(); err != nil {
			return fmt.Errorf("app run: %w", err)
		}
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustLoad()

		if err := app.Migrate(cfg); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the shared slot index from the reservation log",
	Long: `Rebuild reloads every active reservation into the slot index.

Only meaningful with the redis driver: the in-memory index lives inside the
serve process and is rebuilt on every start.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustLoad()

		application, err := app.New(cfg)
		if err != nil {
			return fmt.Errorf("app init: %w", err)
		}
		defer application.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		n, err := application.RebuildOccupancy(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "rebuilt occupancy from %d reservations (%s)\n", n, cfg.SlotIndex.Driver)
		return nil
	},
}

var (
	tokenSubject string
	tokenEmail   string
	tokenRole    string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a signed access token for local use",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustLoad()

		role := tokenRole
		if role == "" {
			role = cfg.Auth.AdminRole
		}

		token, err := auth.Issue([]byte(cfg.Auth.JWTSecret), tokenSubject, auth.Claims{
			Email: tokenEmail,
			Role:  domain.Role(role),
		}, tokenTTL)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "admin", "token subject")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email claim")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "", "role claim (defaults to the configured admin role)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 12*time.Hour, "token lifetime")
}
