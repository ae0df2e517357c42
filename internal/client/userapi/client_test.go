package userapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mkargin/shop-registry/internal/client/userapi"
	"github.com/mkargin/shop-registry/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func TestCheckUser_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/7" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"name":"Ivan","email":"ivan@example.com"}`))
	}))
	defer srv.Close()

	c := userapi.New(srv.URL, time.Second, noopLogger{})
	if err := c.CheckUser(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckUser_NotFound_InvalidRef(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"user not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := userapi.New(srv.URL, time.Second, noopLogger{})
	err := c.CheckUser(context.Background(), 404)
	if !errors.Is(err, domain.ErrInvalidUserRef) {
		t.Fatalf("want ErrInvalidUserRef, got %v", err)
	}
}

func TestCheckUser_ServerError_InvalidRef(t *testing.T) {
	// Любой не-200 ответ означает «сервис ответил, ссылку не подтвердил».
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := userapi.New(srv.URL, time.Second, noopLogger{})
	err := c.CheckUser(context.Background(), 7)
	if !errors.Is(err, domain.ErrInvalidUserRef) {
		t.Fatalf("want ErrInvalidUserRef, got %v", err)
	}
}

func TestCheckUser_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // сервер уже остановлен — транспортная ошибка

	c := userapi.New(srv.URL, time.Second, noopLogger{})
	err := c.CheckUser(context.Background(), 7)
	if !errors.Is(err, domain.ErrUserServiceUnavailable) {
		t.Fatalf("want ErrUserServiceUnavailable, got %v", err)
	}
}

func TestCheckUser_Timeout_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := userapi.New(srv.URL, 50*time.Millisecond, noopLogger{})
	err := c.CheckUser(context.Background(), 7)
	if !errors.Is(err, domain.ErrUserServiceUnavailable) {
		t.Fatalf("want ErrUserServiceUnavailable, got %v", err)
	}
}

func TestCheckUser_MalformedBody_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := userapi.New(srv.URL, time.Second, noopLogger{})
	err := c.CheckUser(context.Background(), 7)
	if !errors.Is(err, domain.ErrUserServiceUnavailable) {
		t.Fatalf("want ErrUserServiceUnavailable, got %v", err)
	}
}
