package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/adarshpandey515/etaverse-orders/internal/dal/interfaces/iorderrepo"
	"github.com/adarshpandey515/etaverse-orders/internal/dal/postgres"
	"github.com/adarshpandey515/etaverse-orders/internal/dal/rabbitmq"
	"github.com/adarshpandey515/etaverse-orders/internal/dal/redis"
	"github.com/adarshpandey515/etaverse-orders/internal/dal/repositories/alerts"
	"github.com/adarshpandey515/etaverse-orders/internal/dal/repositories/changefeed"
	menufile "github.com/adarshpandey515/etaverse-orders/internal/dal/repositories/menu/file"
	filerepo "github.com/adarshpandey515/etaverse-orders/internal/dal/repositories/order/file"
	postgresrepo "github.com/adarshpandey515/etaverse-orders/internal/dal/repositories/order/postgres"
	"github.com/adarshpandey515/etaverse-orders/internal/otel"
	"github.com/adarshpandey515/etaverse-orders/internal/payment"
	"github.com/adarshpandey515/etaverse-orders/internal/service/services/menusvc"
	"github.com/adarshpandey515/etaverse-orders/internal/service/services/ordersvc"
	httptransport "github.com/adarshpandey515/etaverse-orders/internal/transport/http"
	"github.com/adarshpandey515/etaverse-orders/internal/worker/notifier"
)

// App represents the application.
type App struct {
	orderSvc       *ordersvc.OrderService
	transport      *httptransport.HTTPTransport
	notifyWorker   *notifier.Worker
	postgresClient *postgres.Client
	rabbitClient   *rabbitmq.Client
	redisClient    *redis.Client
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel()

	var rabbitClient *rabbitmq.Client
	if viper.GetBool("rabbitmq.enabled") {
		rabbitClient = rabbitmq.MustNewClient()
	}

	var broadcaster iorderrepo.IBroadcaster
	var alertPub *alerts.RabbitMQAlertPublisher
	if rabbitClient != nil {
		broadcaster = changefeed.MustNewRabbitMQBroadcaster(rabbitClient)
		alertPub = alerts.MustNewRabbitMQAlertPublisher(rabbitClient)
	}

	var postgresClient *postgres.Client
	var orderRepo iorderrepo.IOrderRepository
	switch driver := viper.GetString("storage.driver"); driver {
	case "postgres":
		postgresClient = postgres.MustNewClient()
		if broadcaster != nil {
			orderRepo = postgresrepo.NewPostgresOrderRepository(postgresClient, postgresrepo.WithBroadcaster(broadcaster))
		} else {
			orderRepo = postgresrepo.NewPostgresOrderRepository(postgresClient)
		}
	default:
		path := viper.GetString("storage.file.path")
		if path == "" {
			path = "orders.json"
		}
		if broadcaster != nil {
			orderRepo = filerepo.NewFileOrderRepository(path, filerepo.WithBroadcaster(broadcaster))
		} else {
			orderRepo = filerepo.NewFileOrderRepository(path)
		}
	}

	orderSvc := ordersvc.MustNewOrderService(
		ordersvc.WithRepository(orderRepo),
	)

	menuPath := viper.GetString("menu.path")
	if menuPath == "" {
		menuPath = "menulist.json"
	}
	menuSvc := menusvc.MustNewMenuService(
		menusvc.WithRepository(menufile.NewFileMenuRepository(menuPath)),
	)

	var redisClient *redis.Client
	var notifierState notifier.State
	if viper.GetBool("redis.enabled") {
		redisClient = redis.MustNewClient()
		notifierState = notifier.NewRedisState(redisClient.Redis())
	} else {
		notifierState = notifier.NewMemoryState()
	}

	notificationLog := notifier.NewLog(viper.GetInt("notifier.log_size"))

	var notifyWorker *notifier.Worker
	if alertPub != nil {
		notifyWorker = notifier.NewWorker(orderSvc, notifierState, notificationLog, alertPub)
	} else {
		notifyWorker = notifier.NewWorker(orderSvc, notifierState, notificationLog, nil)
	}

	transport := httptransport.NewHTTPTransport(
		orderSvc,
		menuSvc,
		notificationLog,
		payment.NewLinkBuilder(),
	)
	transport.RegisterRoutes()

	return &App{
		orderSvc:       orderSvc,
		transport:      transport,
		notifyWorker:   notifyWorker,
		postgresClient: postgresClient,
		rabbitClient:   rabbitClient,
		redisClient:    redisClient,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	// Create a channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil && err != http.ErrServerClosed {
			return err
		}

		return nil
	})

	g.Go(func() error {
		slog.Info("Starting notification worker")
		a.notifyWorker.Start(gctx)

		return nil
	})

	<-stop
	slog.Info("Shutdown signal received")
	cancel()

	a.gracefulShutdown()

	if err := g.Wait(); err != nil {
		slog.Error("Application error", "error", err)
	}
}

// gracefulShutdown performs graceful shutdown of all application
// components.
func (a *App) gracefulShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.notifyWorker.Stop()
	slog.Info("Notification worker stopped gracefully")

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	if a.rabbitClient != nil {
		if err := a.rabbitClient.Close(); err != nil {
			slog.Error("RabbitMQ connection close error", "error", err)
		} else {
			slog.Info("RabbitMQ connection closed gracefully")
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			slog.Error("Redis connection close error", "error", err)
		} else {
			slog.Info("Redis connection closed gracefully")
		}
	}

	if a.postgresClient != nil {
		a.postgresClient.Close()
		slog.Info("Database connection closed gracefully")
	}

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Otel trace provider shutdown error", "error", err)
	} else {
		slog.Info("Otel trace provider closed gracefully")
	}

	slog.Info("Application shutdown complete")
}
