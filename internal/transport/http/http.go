package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"

	"github.com/adarshpandey515/etaverse-orders/internal/service/models/menuitem"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/order"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/orderitem"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/status"
	"github.com/adarshpandey515/etaverse-orders/internal/service/services/ordersvc"
	listorders "github.com/adarshpandey515/etaverse-orders/internal/transport/http/v1/list_orders"
	marknotified "github.com/adarshpandey515/etaverse-orders/internal/transport/http/v1/mark_notified"
	menuhandler "github.com/adarshpandey515/etaverse-orders/internal/transport/http/v1/menu"
	"github.com/adarshpandey515/etaverse-orders/internal/transport/http/v1/notifications"
	orderstats "github.com/adarshpandey515/etaverse-orders/internal/transport/http/v1/order_stats"
	placeorder "github.com/adarshpandey515/etaverse-orders/internal/transport/http/v1/place_order"
	recentorders "github.com/adarshpandey515/etaverse-orders/internal/transport/http/v1/recent_orders"
	removeorder "github.com/adarshpandey515/etaverse-orders/internal/transport/http/v1/remove_order"
	updatestatus "github.com/adarshpandey515/etaverse-orders/internal/transport/http/v1/update_status"
	"github.com/adarshpandey515/etaverse-orders/internal/worker/notifier"
	"github.com/adarshpandey515/etaverse-orders/pkg/http/middleware/trace"
	"github.com/adarshpandey515/etaverse-orders/pkg/logger"
)

type service interface {
	Create(ctx context.Context, tableNo string, items []orderitem.OrderItem, totalPrice float64) (string, error)
	ListAll(ctx context.Context) []order.Order
	UpdateStatus(ctx context.Context, orderID string, newStatus status.Status, estimatedTime *int) error
	MarkNotified(ctx context.Context, orderID string) error
	Remove(ctx context.Context, orderID string) error
	Stats(ctx context.Context) ordersvc.Stats
	RecentOrders(ctx context.Context, window time.Duration) []order.Order
}

type menuService interface {
	Items(ctx context.Context) []menuitem.MenuItem
}

type paymentLinks interface {
	Link(amount float64) string
}

type HTTPTransport struct {
	server        *http.Server
	router        *chi.Mux
	service       service
	menu          menuService
	notifications *notifier.Log
	payments      paymentLinks
}

func NewHTTPTransport(
	service service,
	menu menuService,
	notificationLog *notifier.Log,
	payments paymentLinks,
) *HTTPTransport {
	router := newRouter()
	server := newServer(router)

	return &HTTPTransport{
		server:        server,
		router:        router,
		service:       service,
		menu:          menu,
		notifications: notificationLog,
		payments:      payments,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.placeOrder)
			r.Get("/", h.listOrders)
			r.Get("/stats", h.orderStats)
			r.Get("/recent", h.recentOrders)
			r.Patch("/{orderID}/status", h.updateStatus)
			r.Post("/{orderID}/notified", h.markNotified)
			r.Delete("/{orderID}", h.removeOrder)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.listNotifications)
			r.Post("/read-all", h.markAllNotificationsRead)
			r.Post("/{notificationID}/read", h.markNotificationRead)
			r.Delete("/{notificationID}", h.clearNotification)
			r.Delete("/", h.clearNotifications)
		})

		r.Get("/menu", h.menuItems)
	})
}

func (h *HTTPTransport) placeOrder(w http.ResponseWriter, r *http.Request) {
	placeorder.PlaceOrder(w, r, h.service, h.payments)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.service)
}

func (h *HTTPTransport) orderStats(w http.ResponseWriter, r *http.Request) {
	orderstats.OrderStats(w, r, h.service)
}

func (h *HTTPTransport) recentOrders(w http.ResponseWriter, r *http.Request) {
	recentorders.RecentOrders(w, r, h.service)
}

func (h *HTTPTransport) updateStatus(w http.ResponseWriter, r *http.Request) {
	updatestatus.UpdateStatus(w, r, h.service)
}

func (h *HTTPTransport) markNotified(w http.ResponseWriter, r *http.Request) {
	marknotified.MarkNotified(w, r, h.service)
}

func (h *HTTPTransport) removeOrder(w http.ResponseWriter, r *http.Request) {
	removeorder.RemoveOrder(w, r, h.service)
}

func (h *HTTPTransport) listNotifications(w http.ResponseWriter, r *http.Request) {
	notifications.List(w, r, h.notifications)
}

func (h *HTTPTransport) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	notifications.MarkRead(w, r, h.notifications)
}

func (h *HTTPTransport) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	notifications.MarkAllRead(w, r, h.notifications)
}

func (h *HTTPTransport) clearNotification(w http.ResponseWriter, r *http.Request) {
	notifications.Clear(w, r, h.notifications)
}

func (h *HTTPTransport) clearNotifications(w http.ResponseWriter, r *http.Request) {
	notifications.ClearAll(w, r, h.notifications)
}

func (h *HTTPTransport) menuItems(w http.ResponseWriter, r *http.Request) {
	menuhandler.ListItems(w, r, h.menu)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
