package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/twmb/franz-go/pkg/sr"

	"github.com/chronolux/storefront/config"
	"github.com/chronolux/storefront/internal/adapter/gateway"
	"github.com/chronolux/storefront/internal/adapter/httphandler"
	"github.com/chronolux/storefront/internal/adapter/kafka"
	"github.com/chronolux/storefront/internal/adapter/storage"
	"github.com/chronolux/storefront/internal/adapter/vault"
	"github.com/chronolux/storefront/internal/core/port"
	"github.com/chronolux/storefront/internal/core/service"
	pkgschema "github.com/chronolux/storefront/pkg/schema"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	events     port.EventsProducer
	eventsProd kafka.ClientEventsProducer
	archiver   port.OrderArchiver
	sqldb      storage.SQLDB
	hasSQLDB   bool
	hasEvents  bool
	sessions   *service.SessionRegistry
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initOutboundAdapters()
	app.initCoreServices()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	app.initOrdersArchive()
	app.initEventsProducer()
}

// initOrdersArchive connects the SQL archive. An empty DSN disables
// archiving, orders then live only in the confirmation response.
func (app *App) initOrdersArchive() {
	const op = "App.initOrdersArchive"

	if app.cfg.SQLDB == "" {
		slog.Warn("orders archive is disabled: no sql_db configured", "op", op)
		return
	}

	sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.sqldb = sqldb
	app.hasSQLDB = true
	app.archiver = storage.NewOrdersRepository(sqldb)
}

// initEventsProducer wires the client-events stream. No seed brokers
// disables event producing.
func (app *App) initEventsProducer() {
	const op = "App.initEventsProducer"

	seedBrokers := app.cfg.Broker.SeedBrokers
	if len(seedBrokers) == 0 {
		slog.Warn("client events are disabled: no seed_brokers configured", "op", op)
		return
	}

	srClient, err := sr.NewClient(sr.URLs(app.cfg.Broker.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}
	schemaCreator := pkgschema.NewSchemaCreator(srClient)

	topic := app.cfg.Broker.Topics.ClientEvents
	serde, err := pkgschema.NewSerdeClientEventV1(
		app.ctx,
		pkgschema.SubjectOpt(topic+"-value"),
		pkgschema.SchemaIdentifierOpt(schemaCreator),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewClientEventsProducer(
		kafka.ProducerClientOpt(app.ctx, seedBrokers, topic),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.eventsProd = producer
	app.events = producer
	app.hasEvents = true
}

func (app *App) initCoreServices() {
	const op = "App.initCoreServices"

	userVault, err := vault.NewUserVault(app.cfg.StateDir)
	if err != nil {
		app.fallDown(op, err)
	}

	submitter := gateway.NewSimulated(app.cfg.Checkout.ProcessingDelay)
	app.sessions = service.NewSessionRegistry(
		userVault, submitter, app.archiver, app.events,
	)
}

func (app *App) initInboundAdapters() {
	catalog := service.NewCatalog()

	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, catalog, app.events)
	httphandler.RegisterCart(mux, app.sessions, catalog)
	httphandler.RegisterCheckout(mux, app.sessions)
	httphandler.RegisterAuth(mux, app.sessions)
	mux.Handle("GET /metrics", httphandler.MetricsHandler())

	metrics := httphandler.NewServerMetrics()
	handler := httphandler.AllowJSON(httphandler.WithSession(metrics.Observe(mux)))

	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.hasEvents {
		app.eventsProd.Close()
	}
	if app.hasSQLDB {
		app.sqldb.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
