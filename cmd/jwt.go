package main

import (
	"context"
	"fmt"
	"time"

	"breachwatch/internal/auth"
	"breachwatch/internal/config"
	"breachwatch/pkg/domain"
	"breachwatch/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed session
// token for a given user ID and TTL using the configured signing secret.
// Useful for debugging protected endpoints without going through /login.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates a session token for given user ID",
		Run: func(cmd *cobra.Command, _ []string) {
			subject, _ := cmd.Flags().GetString("subject")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			userID, err := domain.ParseUserID(subject)
			if err != nil {
				logger.Fatal(context.Background(), "subject is not a valid user ID", zap.Error(err))
			}

			signed, err := auth.NewTokenManager(cfg.JWT.Secret, TTL).Issue(userID)
			if err != nil {
				logger.Fatal(context.Background(), "could not sign token", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "Token subject (user ID)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
