package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/notification"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/order"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/status"
)

// service is the order service surface the worker polls.
type service interface {
	RecentOrders(ctx context.Context, window time.Duration) []order.Order
}

// alertPublisher is the platform-level delivery channel used for
// ready-for-pickup alerts. Optional.
type alertPublisher interface {
	PublishReady(ctx context.Context, ord order.Order) error
}

// Worker converts store-observed status changes into at-most-once
// user-facing notifications, purely by polling and diffing.
type Worker struct {
	svc          service
	state        State
	log          *Log
	alerts       alertPublisher
	pollInterval time.Duration
	window       time.Duration
	stopCh       chan struct{}
}

// NewWorker creates a new notification worker.
func NewWorker(svc service, state State, log *Log, alerts alertPublisher) *Worker {
	pollIntervalSeconds := viper.GetInt("notifier.poll_interval_seconds")
	if pollIntervalSeconds == 0 {
		pollIntervalSeconds = 10
	}

	windowHours := viper.GetInt("notifier.window_hours")
	if windowHours == 0 {
		windowHours = 2
	}

	return &Worker{
		svc:          svc,
		state:        state,
		log:          log,
		alerts:       alerts,
		pollInterval: time.Duration(pollIntervalSeconds) * time.Second,
		window:       time.Duration(windowHours) * time.Hour,
		stopCh:       make(chan struct{}),
	}
}

// Start begins polling for status changes. It checks once immediately
// and then on every tick.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	slog.Info("Notification worker started", "poll_interval", w.pollInterval, "window", w.window)

	w.checkOrders(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Notification worker shutting down")

			return
		case <-w.stopCh:
			slog.Info("Notification worker stopped")

			return
		case <-ticker.C:
			w.checkOrders(ctx)
		}
	}
}

// Stop stops the worker.
func (w *Worker) Stop() {
	close(w.stopCh)
}

// checkOrders diffs the recent orders against the last-notified state
// and emits a notification for each newly observed transition.
func (w *Worker) checkOrders(ctx context.Context) {
	for _, ord := range w.svc.RecentOrders(ctx, w.window) {
		last, seen := w.state.Get(ctx, ord.ID)
		if seen && last == ord.Status {
			continue
		}

		switch ord.Status {
		case status.StatusPreparing:
			if last != status.StatusPreparing {
				w.log.Add(
					"Order Being Prepared!",
					preparingMessage(ord),
					notification.TypeInfo,
					ord.ID,
				)
			}
		case status.StatusReady:
			if last != status.StatusReady {
				w.log.Add(
					"Order Ready!",
					fmt.Sprintf("Order #%s is ready for pickup! Please collect from the counter.", ord.ShortID()),
					notification.TypeSuccess,
					ord.ID,
				)

				if w.alerts != nil {
					if err := w.alerts.PublishReady(ctx, ord); err != nil {
						slog.Warn("Failed to publish ready alert", "order_id", ord.ID, "error", err)
					}
				}
			}
		}

		// Record the observed status even when no notification was
		// issued, so re-observing it stays a no-op.
		w.state.Set(ctx, ord.ID, ord.Status)
	}
}

func preparingMessage(ord order.Order) string {
	if ord.EstimatedTime > 0 {
		return fmt.Sprintf(
			"Order #%s is now being prepared by our chef. Estimated time: %d minutes.",
			ord.ShortID(), ord.EstimatedTime,
		)
	}

	return fmt.Sprintf("Order #%s is now being prepared by our chef.", ord.ShortID())
}
