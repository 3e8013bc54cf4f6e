// The analytics binary folds client events into per-product view
// counters and serves them on a small operator endpoint.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/twmb/franz-go/pkg/sr"

	"github.com/chronolux/storefront/config"
	"github.com/chronolux/storefront/internal/adapter/kafka"
	"github.com/chronolux/storefront/pkg/schema"
	"github.com/chronolux/storefront/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	initLogger(cfg.LogLevel)
	slog.Info("analytics is running")

	serde := createSerde(sigCtx, cfg)

	proc := createProcessor(cfg, serde)
	go proc.Run(sigCtx)
	defer proc.Close()

	view := createView(cfg)
	go view.Run(sigCtx)

	httpServer := createHTTPServer(cfg.HTTPServerAddr, view)
	go runHTTPServer(httpServer, closeApp)

	<-sigCtx.Done()
	slog.Info("analytics is closing...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown http server gracefully", "err", err)
	}

	slog.Info("analytics is closed")
}

func initLogger(level slog.Leveler) {
	opts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func createSerde(ctx context.Context, cfg config.Config) schema.Serde {
	const op = "main.createSerde"

	srClient, err := sr.NewClient(sr.URLs(cfg.Broker.SchemaRegistryURLs...))
	if err != nil {
		die(op, err)
	}

	serde, err := schema.NewSerdeClientEventV1(
		ctx,
		schema.SubjectOpt(cfg.Broker.Topics.ClientEvents+"-value"),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreator(srClient)),
	)
	if err != nil {
		die(op, err)
	}
	return serde
}

func createProcessor(cfg config.Config, serde schema.Serde) kafka.ProductViewsProcessor {
	const op = "main.createProcessor"

	proc, err := kafka.NewProductViewsProcessor(
		cfg.Broker.SeedBrokers,
		cfg.Broker.Topics.ClientEvents,
		cfg.Broker.Consumers.ProductViewsGroup,
		serde,
	)
	if err != nil {
		die(op, err)
	}
	return proc
}

func createView(cfg config.Config) kafka.ProductViewsView {
	const op = "main.createView"

	view, err := kafka.NewProductViewsView(
		cfg.Broker.SeedBrokers,
		cfg.Broker.Consumers.ProductViewsGroup,
	)
	if err != nil {
		die(op, err)
	}
	return view
}

func createHTTPServer(addr string, view kafka.ProductViewsView) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/products/{id}/views", func(w http.ResponseWriter, r *http.Request) {
		count, err := view.Views(r.PathValue("id"))
		if err != nil {
			http.Error(w, "failed to read views", http.StatusInternalServerError)
			slog.Error("failed to read views", "err", err)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprintln(w, strconv.FormatInt(count, 10))
	})

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       2 * time.Second,
	}
}

func runHTTPServer(s *http.Server, stopFn context.CancelFunc) {
	const op = "main.runHTTPServer"

	defer stopFn()
	if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("unexpected server shutdown", "op", op, "err", err)
	}
}

func die(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
