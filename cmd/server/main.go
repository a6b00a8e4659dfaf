// @title GitHub Webhook Events API
// @version 1.0.0
// @description Receives GitHub push and pull request webhooks, normalizes them into event records and lists the latest activity.
// @BasePath /

// @Tag.name Webhooks
// @Tag.description GitHub webhook ingestion.

// @Tag.name Events
// @Tag.description Recent repository activity recorded from webhooks.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"webhookrepo/internal"
	"webhookrepo/internal/env"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

func main() {
	deployment := flag.String("deployment", "", "deployment profile (dev|test|prod)")
	portFlag := flag.String("port", "", "port to listen on")
	envRoot := flag.String("env-root", "", "directory containing environment files")
	appVersion := flag.String("app-version", "", "application version override")

	flag.Parse()

	deploy := strings.TrimSpace(*deployment)
	if deploy == "" {
		args := flag.Args()
		if len(args) == 0 {
			fmt.Println("Usage: server --deployment <type> --port <port> [--env-root <dir>] [--app-version <version>]")
			os.Exit(1)
		}
		deploy = strings.TrimSpace(args[0])
	}

	port := strings.TrimSpace(*portFlag)
	if port == "" {
		log.Fatal("port is required")
	}

	srv, err := internal.SetupApp(deploy, *envRoot, *appVersion)
	if err != nil {
		log.Fatalf("setup failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.App.ShutdownWithContext(shutdownCtx); err != nil {
			srv.Logger.Warn("shutdown failed", zap.Error(err))
		}
	}()

	srv.Logger.Info("listening", zap.String("port", port), zap.String("version", env.VERSION))

	if err := srv.App.Listen(fmt.Sprintf(":%s", port), fiber.ListenConfig{
		EnablePrefork:         env.PREFORK,
		DisableStartupMessage: true,
	}); err != nil {
		srv.Logger.Error("listen failed", zap.String("port", port), zap.Error(err))
	}

	srv.Close(context.Background())
}
