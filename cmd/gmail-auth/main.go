// Command gmail-auth runs the one-time OAuth consent flow and saves the
// token the API server uses to send mail.
package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/justsurfingit/amp-job-portal/internal/auth"
	"github.com/justsurfingit/amp-job-portal/internal/config"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	oauthCfg, err := auth.LoadConfig(cfg.GmailCredentialsFile)
	if err != nil {
		logger.Fatal("Unable to read client secret file", zap.String("path", cfg.GmailCredentialsFile), zap.Error(err))
	}

	tok, err := auth.Authorize(context.Background(), oauthCfg, os.Stdin, os.Stdout)
	if err != nil {
		logger.Fatal("Authorization failed", zap.Error(err))
	}

	if err := auth.SaveToken(cfg.GmailTokenFile, tok); err != nil {
		logger.Fatal("Unable to save token", zap.Error(err))
	}
	logger.Info("Token saved", zap.String("path", cfg.GmailTokenFile))
}
