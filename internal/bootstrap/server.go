package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/Domenick1991/airdesk/api"
	"github.com/Domenick1991/airdesk/config"
	"github.com/Domenick1991/airdesk/internal/client"
	"github.com/Domenick1991/airdesk/internal/kafka"
	"github.com/Domenick1991/airdesk/internal/query"
	"github.com/Domenick1991/airdesk/internal/resource/airports"
	"github.com/Domenick1991/airdesk/internal/resource/bookings"
	"github.com/Domenick1991/airdesk/internal/resource/external"
	"github.com/Domenick1991/airdesk/internal/resource/flights"
	"github.com/Domenick1991/airdesk/internal/resource/passengers"
	"github.com/Domenick1991/airdesk/internal/theme"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"
)

type invalidationConsumer interface {
	Consume(ctx context.Context, handler func(context.Context, kafkaGo.Message) error) error
}

// App is one dashboard instance: the HTTP surface, its query cache and the
// optional invalidation bus.
type App struct {
	ID         string
	Cache      *query.Cache
	Theme      *theme.State
	httpServer *http.Server
	consumer   invalidationConsumer
	closers    []func() error
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{
		ID:    uuid.NewString(),
		Cache: query.New(),
	}
	app.closers = append(app.closers, func() error { app.Cache.Close(); return nil })

	store, err := app.themeStore(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Theme = theme.NewState(store, cfg.Theme.SystemDark)
	log.Printf("theme: %s", app.Theme.Init(ctx))

	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.InvalidationTopic, app.ID)
		app.Cache.OnInvalidate(producer)
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, groupID(cfg.Kafka.GroupID, app.ID), cfg.Kafka.InvalidationTopic)
		app.consumer = consumer
		app.closers = append(app.closers, producer.Close, consumer.Close)
	}

	backend := client.New(cfg.API.BaseURL, cfg.API.Timeout())
	log.Printf("backend api: %s (timeout %s)", backend.BaseURL(), cfg.API.Timeout())

	router := api.NewRouter(api.Handlers{
		Airports:   api.NewAirportHandler(airports.New(backend), app.Cache),
		Flights:    api.NewFlightHandler(flights.New(backend), app.Cache),
		Bookings:   api.NewBookingHandler(bookings.New(backend), app.Cache),
		Passengers: api.NewPassengerHandler(passengers.New(backend), app.Cache),
		Offers:     api.NewOfferHandler(external.New(backend), app.Cache),
		Theme:      api.NewThemeHandler(app.Theme),
	})

	app.httpServer = &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return app, nil
}

// groupID gives every instance its own consumer group so each one sees every
// invalidation.
func groupID(prefix, instance string) string {
	if prefix == "" {
		prefix = "airdesk"
	}
	return prefix + "-" + instance
}

func (a *App) themeStore(ctx context.Context, cfg *config.Config) (theme.Store, error) {
	switch cfg.Theme.Store {
	case "redis":
		store := theme.NewRedisStore(cfg.Redis)
		a.closers = append(a.closers, store.Close)
		return store, nil
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.closers = append(a.closers, func() error { pool.Close(); return nil })
		store := theme.NewPGStore(pool)
		if err := store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate preferences: %w", err)
		}
		return store, nil
	default:
		return theme.NewFileStore(cfg.Theme.FilePath), nil
	}
}

// Run serves HTTP and consumes invalidations until ctx is canceled or the
// server fails. A failed consumer does not stop the server: the instance keeps
// serving with only its own writes invalidating its cache. Run returns after
// the consumer has stopped.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer wg.Wait()
	defer cancel()

	errCh := make(chan error, 1)

	if a.consumer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := a.consumer.Consume(ctx, kafka.InvalidationHandler(a.ID, a.Cache))
			if err != nil && ctx.Err() == nil {
				log.Printf("WARNING: invalidation consumer stopped, other instances' writes will not reach this cache: %v", err)
			}
		}()
	}

	go func() {
		log.Printf("dashboard listening on %s (instance %s)", a.httpServer.Addr, a.ID)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Printf("close: %v", err)
		}
	}
}
