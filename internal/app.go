package internal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"webhookrepo/internal/db"
	"webhookrepo/internal/env"
	"webhookrepo/internal/events"
	"webhookrepo/internal/eventsapi"
	"webhookrepo/internal/eventstore"
	"webhookrepo/internal/githubhooks"
	"webhookrepo/internal/ingest"
	"webhookrepo/internal/logger"
	"webhookrepo/internal/metrics"
	"webhookrepo/internal/swagger"
	"webhookrepo/internal/utils"
	"webhookrepo/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"
)

// Deps are the collaborators NewApp wires into the routes. Only Store is
// required; nil Audit, Metrics and Hub switch their features off.
type Deps struct {
	Store       eventstore.Gateway
	Audit       *events.Emitter
	Metrics     *metrics.Metrics
	Hub         *ws.Hub
	Logger      *zap.Logger
	Clock       func() time.Time
	CORSOrigins []string
}

// NewApp builds the Fiber application around deps.
func NewApp(deps Deps) *fiber.App {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:      "webhookrepo",
		ErrorHandler: utils.ErrorHandler,
	})

	app.Use(recoverer.New())

	origins := deps.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	app.Use(cors.New(cors.Config{AllowOrigins: origins}))

	app.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("PONG")
	})

	app.Get("/version", func(c fiber.Ctx) error {
		return c.SendString("v" + env.VERSION)
	})

	opts := []ingest.Option{
		ingest.WithLogger(deps.Logger),
		ingest.WithMetrics(deps.Metrics),
	}
	if deps.Clock != nil {
		opts = append(opts, ingest.WithClock(deps.Clock))
	}
	if deps.Hub != nil {
		opts = append(opts, ingest.WithListener(deps.Hub))
	}

	dispatcher := ingest.New(deps.Store, opts...)

	githubhooks.NewHandler(dispatcher, deps.Audit, deps.Logger).Routes(app)
	eventsapi.NewHandler(deps.Store, deps.Hub, deps.Metrics, deps.Logger).Routes(app)
	deps.Metrics.Routes(app)
	swagger.Register(app)

	return app
}

// Server is a configured app plus the resources to release on shutdown.
type Server struct {
	App    *fiber.App
	Logger *zap.Logger

	closers []func(context.Context) error
}

// Close releases every resource opened by SetupApp, newest first.
func (s *Server) Close(ctx context.Context) {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			s.Logger.Warn("shutdown step failed", zap.Error(err))
		}
	}
	_ = s.Logger.Sync()
}

// SetupApp loads configuration, connects the backing services for the
// deployment profile and returns the ready-to-listen server.
func SetupApp(deployment string, envRoot string, appVersion string) (*Server, error) {
	deploy := strings.TrimSpace(deployment)

	if err := env.Init(envRoot, appVersion); err != nil {
		return nil, err
	}

	log, err := logger.New(deploy, env.LOG_LEVEL)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	srv := &Server{Logger: log}
	ctx := context.Background()

	var store eventstore.Gateway
	var audit *events.Emitter

	switch env.STORE {
	case env.StoreMemory:
		log.Warn("using in-memory event store; records are lost on restart")
		store = eventstore.NewMemoryStore()
	default:
		client, err := db.Connect(ctx, env.MONGO_URI)
		if err != nil {
			return nil, err
		}
		srv.closers = append(srv.closers, client.Disconnect)

		mongoStore := eventstore.NewMongoStore(db.GetCollection(env.MONGO_DATABASE, db.EventsCollection, client))
		if err := mongoStore.EnsureIndexes(ctx); err != nil {
			srv.Close(ctx)
			return nil, err
		}
		store = mongoStore

		audit = events.NewEmitter(db.GetCollection(env.MONGO_DATABASE, db.DeliveriesCollection, client), deploy, log)
		srv.closers = append(srv.closers, func(context.Context) error {
			audit.Close()
			return nil
		})
	}

	if env.REDIS_ADDR != "" {
		rdb, err := db.ConnectCache(ctx, env.REDIS_ADDR, env.REDIS_PASSWORD, env.REDIS_DB)
		if err != nil {
			srv.Close(ctx)
			return nil, err
		}
		srv.closers = append(srv.closers, func(context.Context) error { return rdb.Close() })

		store = eventstore.NewCachedStore(store, rdb, env.CACHE_TTL, log)
	}

	srv.App = NewApp(Deps{
		Store:       store,
		Audit:       audit,
		Metrics:     metrics.New(),
		Hub:         ws.NewHub(log),
		Logger:      log,
		CORSOrigins: env.CORS_ORIGINS,
	})

	log.Info("app configured",
		zap.String("version", env.VERSION),
		zap.String("store", env.STORE),
		zap.Bool("cache", env.REDIS_ADDR != ""),
	)

	return srv, nil
}
