// Command desktop launches the backend server for the desktop shell. The
// server runs as a child process on a local sqlite database kept in the
// user's configuration directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/finstatements/backend/internal/infrastructure/config"
	"github.com/finstatements/backend/internal/infrastructure/logger"
	"github.com/finstatements/backend/internal/infrastructure/supervisor"
	"go.uber.org/zap"
)

func main() {
	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	dataDir, err := userDataDir()
	if err != nil {
		log.Fatal("Failed to prepare data directory", zap.Error(err))
	}
	secrets, err := supervisor.LoadOrCreateSecrets(dataDir)
	if err != nil {
		log.Fatal("Failed to prepare desktop secrets", zap.Error(err))
	}
	log.Info("Desktop backend",
		zap.String("data_dir", dataDir),
		zap.String("admin_credentials", supervisor.SecretsPath(dataDir)))

	opts := supervisor.OptionsFromConfig(cfg.Supervisor)
	opts.Output = os.Stdout
	opts.Env = supervisor.DesktopEnv(dataDir, secrets)
	sup := supervisor.New(opts, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port, err := sup.Start(ctx)
	if err != nil {
		log.Fatal("Backend server failed to start", zap.Error(err))
	}
	log.Info("Backend server available", zap.String("url", fmt.Sprintf("http://localhost:%d", port)))

	select {
	case <-ctx.Done():
		log.Info("Shutting down backend server")
	case <-sup.Done():
		log.Warn("Backend server exited unexpectedly")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 2*cfg.Supervisor.StopGrace+time.Second)
	defer cancel()
	if err := sup.Stop(stopCtx); err != nil {
		log.Error("Failed to stop backend server", zap.Error(err))
	}
}

func userDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "finstatements")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
