package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jptrading/proxytrader/internal/broker"
	"github.com/jptrading/proxytrader/internal/config"
	"github.com/jptrading/proxytrader/internal/logger"
	"github.com/jptrading/proxytrader/internal/trading"
	"github.com/jptrading/proxytrader/internal/version"
	"github.com/jptrading/proxytrader/internal/webhook"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// serveAction wires configuration, broker client, resolver, and webhook
// server, then blocks until a termination signal arrives.
func serveAction(ctx context.Context, cmd *cli.Command) error {
	// Credentials can live in a local .env file during development.
	_ = godotenv.Load()

	appLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer appLogger.Sync()

	cfg := config.DefaultConfig()

	if path := cmd.String("config"); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	} else if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration, set TRADIER_TOKEN and TRADIER_ACCOUNT_ID: %w", err)
	}

	if addr := cmd.String("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	symbolResolver, err := cfg.BuildResolver()
	if err != nil {
		return fmt.Errorf("failed to build symbol resolver: %w", err)
	}

	client := broker.NewTradierClient(cfg.BrokerConfig())
	system := trading.NewSystem(symbolResolver, client, appLogger)

	probeCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := system.CheckConnection(probeCtx); err != nil {
		appLogger.Warn("brokerage connection test failed, serving anyway", zap.Error(err))
	} else {
		appLogger.Info("brokerage connection verified")
	}

	server := webhook.NewServer(cfg.Server.Addr, system, cfg.Webhook, appLogger)

	errCh := make(chan error, 1)

	go func() {
		errCh <- server.ListenAndServe()
	}()

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-signalCtx.Done():
		appLogger.Info("shutting down")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	return server.Shutdown(shutdownCtx)
}

func main() {
	cmd := &cli.Command{
		Name:    "proxytrader",
		Usage:   "Webhook server that routes trade alerts to the Tradier sandbox with index-to-ETF proxying",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "Listen address, overrides the configured one",
			},
		},
		Action: serveAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
