// Пакет userapi — HTTP-клиент user-сервиса для проверки существования
// пользователя при создании заказа. Один блокирующий GET без ретраев и
// circuit breaker'а; результат не кэшируется (кэш на стороне user-сервиса
// и так обслужит повторные проверки).
package userapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mkargin/shop-registry/internal/domain"
	"github.com/mkargin/shop-registry/internal/ports"
	"github.com/mkargin/shop-registry/pkg/metrics"
)

// Проверка, что Client удовлетворяет интерфейсу ports.UserChecker.
var _ ports.UserChecker = (*Client)(nil)

// Client — клиент user-сервиса.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     ports.Logger
}

// New — конструктор. timeout ограничивает весь вызов, включая чтение тела.
func New(baseURL string, timeout time.Duration, log ports.Logger) *Client {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// CheckUser — GET /users/{id} у user-сервиса.
// Классификация ответа:
//   - 200 с валидным телом — пользователь существует;
//   - любой другой статус — domain.ErrInvalidUserRef (сервис ответил, ссылки нет);
//   - транспортная ошибка / битое тело — domain.ErrUserServiceUnavailable.
func (c *Client) CheckUser(ctx context.Context, userID int64) error {
	url := fmt.Sprintf("%s/users/%d", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrUserServiceUnavailable, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.UserLookups.WithLabelValues("unreachable").Inc()
		return fmt.Errorf("%w: %v", domain.ErrUserServiceUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		metrics.UserLookups.WithLabelValues("invalid").Inc()
		c.log.Warnf(ctx, "user lookup id=%d status=%d", userID, resp.StatusCode)
		return fmt.Errorf("%w: user_id=%d", domain.ErrInvalidUserRef, userID)
	}

	// Битое тело при 200 трактуем как недоступность: полагаться на такой ответ нельзя.
	var user domain.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		metrics.UserLookups.WithLabelValues("unreachable").Inc()
		return fmt.Errorf("%w: malformed response: %v", domain.ErrUserServiceUnavailable, err)
	}

	metrics.UserLookups.WithLabelValues("ok").Inc()
	return nil
}
