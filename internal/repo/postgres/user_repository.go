package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkargin/shop-registry/internal/domain"
	"github.com/mkargin/shop-registry/internal/ports"
)

// Код ошибки Postgres: нарушение уникального ограничения.
const uniqueViolation = "23505"

// Проверка, что UserRepository удовлетворяет интерфейсу ports.UserRepository.
var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository — реализация репозитория пользователей на Postgres (pgxpool).
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository — конструктор UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository { return &UserRepository{pool: pool} }

// Create — вставка нового пользователя; id назначает база.
// Дубликат email превращаем в domain.ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, in *domain.NewUser) (*domain.User, error) {
	if in == nil {
		return nil, errors.New("new user is nil")
	}

	user := domain.User{Name: in.Name, Email: in.Email}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email) VALUES ($1, $2)
		RETURNING id
	`, in.Name, in.Email).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

// GetByID — пользователь по id; domain.ErrNotFound, если записи нет.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Name, &user.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &user, nil
}

// List — все пользователи в порядке создания.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email FROM users ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("users rows: %w", err)
	}
	return users, nil
}

// Update — частичное обновление: NULL-аргумент (отсутствующее поле патча)
// оставляет колонку нетронутой за счёт COALESCE.
func (r *UserRepository) Update(ctx context.Context, id int64, patch *domain.UserPatch) (*domain.User, error) {
	if patch == nil {
		patch = &domain.UserPatch{}
	}

	var user domain.User
	err := r.pool.QueryRow(ctx, `
		UPDATE users
		SET name  = COALESCE($2, name),
		    email = COALESCE($3, email)
		WHERE id = $1
		RETURNING id, name, email
	`, id, patch.Name, patch.Email).Scan(&user.ID, &user.Name, &user.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &user, nil
}

// Delete — удаление по id; отсутствие строки определяем по счётчику затронутых.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// isUniqueViolation — true для ошибки нарушения unique-ограничения.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
