package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkargin/shop-registry/internal/domain"
	"github.com/mkargin/shop-registry/internal/ports"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу ports.OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — реализация репозитория заказов на Postgres (pgxpool).
// FK-ограничения на user_id в схеме нет: ссылка проверяется
// один раз при создании через user-сервис.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository — конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Create — вставка нового заказа; id и статус по умолчанию назначает база.
func (r *OrderRepository) Create(ctx context.Context, in *domain.NewOrder) (*domain.Order, error) {
	if in == nil {
		return nil, errors.New("new order is nil")
	}

	order := domain.Order{UserID: in.UserID, ItemName: in.ItemName, Quantity: in.Quantity}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO orders (user_id, item_name, quantity) VALUES ($1, $2, $3)
		RETURNING id, status
	`, in.UserID, in.ItemName, in.Quantity).Scan(&order.ID, &order.Status)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return &order, nil
}

// GetByID — заказ по id; domain.ErrNotFound, если записи нет.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, item_name, quantity, status FROM orders WHERE id = $1
	`, id).Scan(&order.ID, &order.UserID, &order.ItemName, &order.Quantity, &order.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	return &order, nil
}

// List — все заказы в порядке создания.
func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, item_name, quantity, status FROM orders ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.ItemName, &order.Quantity, &order.Status); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}
	return orders, nil
}

// Update — частичное обновление item_name/quantity/status; user_id неизменяем.
// NULL-аргумент оставляет колонку нетронутой за счёт COALESCE.
func (r *OrderRepository) Update(ctx context.Context, id int64, patch *domain.OrderPatch) (*domain.Order, error) {
	if patch == nil {
		patch = &domain.OrderPatch{}
	}

	var order domain.Order
	err := r.pool.QueryRow(ctx, `
		UPDATE orders
		SET item_name = COALESCE($2, item_name),
		    quantity  = COALESCE($3, quantity),
		    status    = COALESCE($4, status)
		WHERE id = $1
		RETURNING id, user_id, item_name, quantity, status
	`, id, patch.ItemName, patch.Quantity, patch.Status).
		Scan(&order.ID, &order.UserID, &order.ItemName, &order.Quantity, &order.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return &order, nil
}

// Delete — удаление по id; отсутствие строки определяем по счётчику затронутых.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
