package repository

import (
	"context"
	"fmt"

	"github.com/christine-ng23/bookstore-backend/internal/data/entity"
	"github.com/christine-ng23/bookstore-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	AddItem(ctx context.Context, item *entity.OrderItem) error
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	FindAll(ctx context.Context) ([]*entity.Order, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error
	ItemsByOrderID(ctx context.Context, orderID int64) ([]entity.OrderItem, error)
}

type orderRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewOrderRepository(db database.Querier, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log,
	}
}

func (or *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (user_id, status, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := or.db.QueryRow(ctx, query,
		order.UserID,
		order.Status,
		order.CreatedAt,
	).Scan(&order.ID)

	if err != nil {
		or.log.Error("Failed to create order",
			zap.Error(err),
			zap.Int64("user_id", order.UserID),
		)
		return fmt.Errorf("create order for user %d: %w", order.UserID, err)
	}

	return nil
}

func (or *orderRepository) AddItem(ctx context.Context, item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, book_id, quantity, price_each)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := or.db.QueryRow(ctx, query,
		item.OrderID,
		item.BookID,
		item.Quantity,
		item.PriceEach,
	).Scan(&item.ID)

	if err != nil {
		or.log.Error("Failed to add order item",
			zap.Error(err),
			zap.Int64("order_id", item.OrderID),
			zap.Int64("book_id", item.BookID),
		)
		return fmt.Errorf("add item to order %d: %w", item.OrderID, err)
	}

	return nil
}

func (or *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `
		SELECT id, user_id, status, created_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := or.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.Status,
		&order.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		or.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return nil, fmt.Errorf("find order by ID %d: %w", id, err)
	}

	order.Items, err = or.ItemsByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (or *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, status, created_at
		FROM orders
		ORDER BY id
	`
	return or.findMany(ctx, query)
}

func (or *orderRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY id
	`
	return or.findMany(ctx, query, userID)
}

func (or *orderRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := or.db.Query(ctx, query, args...)
	if err != nil {
		or.log.Error("Failed to get orders", zap.Error(err))
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			or.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		or.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	for _, order := range orders {
		order.Items, err = or.ItemsByOrderID(ctx, order.ID)
		if err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func (or *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	query := `UPDATE orders SET status = $2 WHERE id = $1`

	result, err := or.db.Exec(ctx, query, id, status)
	if err != nil {
		or.log.Error("Failed to update order status",
			zap.Error(err),
			zap.Int64("order_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order %d status: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %d not found", id)
	}

	return nil
}

func (or *orderRepository) ItemsByOrderID(ctx context.Context, orderID int64) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, book_id, quantity, price_each
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := or.db.Query(ctx, query, orderID)
	if err != nil {
		or.log.Error("Failed to get order items",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return nil, fmt.Errorf("find items of order %d: %w", orderID, err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.BookID,
			&item.Quantity,
			&item.PriceEach,
		)
		if err != nil {
			or.log.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		or.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order items rows: %w", err)
	}

	return items, nil
}
