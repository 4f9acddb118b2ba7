package postgresrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/adarshpandey515/etaverse-orders/internal/dal/interfaces/iorderrepo"
	"github.com/adarshpandey515/etaverse-orders/internal/dal/postgres"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/order"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/orderitem"
	"github.com/adarshpandey515/etaverse-orders/internal/service/models/status"
)

// OrderDal represents the order data access layer model. Items are
// stored as a JSONB document because the collection is replaced
// wholesale on every write.
type OrderDal struct {
	ID               string    `db:"id"`
	TableNo          string    `db:"table_no"`
	Items            []byte    `db:"items"`
	TotalPrice       float64   `db:"total_price"`
	TotalAmount      float64   `db:"total_amount"`
	Status           string    `db:"status"`
	Timestamp        time.Time `db:"timestamp"`
	EstimatedTime    int       `db:"estimated_time"`
	CustomerNotified bool      `db:"customer_notified"`
}

// ToModel converts OrderDal to the service layer Order model.
func (o *OrderDal) ToModel() (*order.Order, error) {
	st, err := status.ParseStatus(o.Status)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", o.ID, err)
	}

	var items []orderitem.OrderItem
	if len(o.Items) > 0 {
		if err := json.Unmarshal(o.Items, &items); err != nil {
			return nil, fmt.Errorf("order %s: failed to decode items: %w", o.ID, err)
		}
	}

	return &order.Order{
		ID:               o.ID,
		TableNo:          o.TableNo,
		Items:            items,
		TotalPrice:       o.TotalPrice,
		TotalAmount:      o.TotalAmount,
		Status:           st,
		Timestamp:        o.Timestamp,
		EstimatedTime:    o.EstimatedTime,
		CustomerNotified: o.CustomerNotified,
	}, nil
}

// OrderDalFromModel converts the service layer Order model to OrderDal.
func OrderDalFromModel(o *order.Order) (*OrderDal, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("order %s: failed to encode items: %w", o.ID, err)
	}

	return &OrderDal{
		ID:               o.ID,
		TableNo:          o.TableNo,
		Items:            items,
		TotalPrice:       o.TotalPrice,
		TotalAmount:      o.TotalAmount,
		Status:           o.Status.String(),
		Timestamp:        o.Timestamp,
		EstimatedTime:    o.EstimatedTime,
		CustomerNotified: o.CustomerNotified,
	}, nil
}

type PostgresOrderRepository struct {
	client      *postgres.Client
	broadcaster iorderrepo.IBroadcaster
}

// option is a function that configures the repository.
type option func(*PostgresOrderRepository)

func NewPostgresOrderRepository(client *postgres.Client, opts ...option) *PostgresOrderRepository {
	r := &PostgresOrderRepository{client: client}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithBroadcaster sets the change broadcaster fired after every save.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithBroadcaster(b iorderrepo.IBroadcaster) option {
	return func(r *PostgresOrderRepository) {
		r.broadcaster = b
	}
}

// LoadAll retrieves all persisted orders, newest first.
func (r *PostgresOrderRepository) LoadAll(ctx context.Context) ([]order.Order, error) {
	query, args, err := sq.
		Select(
			"id",
			"table_no",
			"items",
			"total_price",
			"total_amount",
			"status",
			"timestamp",
			"estimated_time",
			"customer_notified",
		).
		From("orders").
		OrderBy("timestamp DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build orders query: %w", err)
	}

	rows, err := r.client.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	result := []order.Order{}
	for rows.Next() {
		var dal OrderDal
		err := rows.Scan(
			&dal.ID,
			&dal.TableNo,
			&dal.Items,
			&dal.TotalPrice,
			&dal.TotalAmount,
			&dal.Status,
			&dal.Timestamp,
			&dal.EstimatedTime,
			&dal.CustomerNotified,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
		}
		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// SaveAll replaces the whole collection in one transaction.
func (r *PostgresOrderRepository) SaveAll(ctx context.Context, orders []order.Order) error {
	tx, err := r.client.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM orders"); err != nil {
		return fmt.Errorf("failed to clear orders: %w", err)
	}

	if len(orders) > 0 {
		builder := sq.
			Insert("orders").
			Columns(
				"id",
				"table_no",
				"items",
				"total_price",
				"total_amount",
				"status",
				"timestamp",
				"estimated_time",
				"customer_notified",
			).
			PlaceholderFormat(sq.Dollar)

		for i := range orders {
			dal, err := OrderDalFromModel(&orders[i])
			if err != nil {
				return err
			}

			builder = builder.Values(
				dal.ID,
				dal.TableNo,
				dal.Items,
				dal.TotalPrice,
				dal.TotalAmount,
				dal.Status,
				dal.Timestamp,
				dal.EstimatedTime,
				dal.CustomerNotified,
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build orders insert: %w", err)
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert orders: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if r.broadcaster != nil {
		if err := r.broadcaster.Broadcast(ctx, orders); err != nil {
			slog.Warn("Failed to broadcast order collection change", "error", err)
		}
	}

	return nil
}
