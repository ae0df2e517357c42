package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/mkargin/shop-registry/internal/domain"
	"github.com/mkargin/shop-registry/internal/ports/mocks"
	rest "github.com/mkargin/shop-registry/internal/transport/http"
	"github.com/mkargin/shop-registry/pkg/validate"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newUserRouter(t *testing.T) (*mocks.MockUserService, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockUserService(ctrl)
	h := rest.NewUserHandler(svc, noopLogger{})
	return svc, rest.NewUserRouter(h, "")
}

func TestGetUser_Found(t *testing.T) {
	svc, r := newUserRouter(t)

	want := &domain.User{ID: 7, Name: "Ivan", Email: "ivan@example.com"}
	svc.EXPECT().GetUser(gomock.Any(), int64(7)).Return(want, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/7", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.User
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != 7 || got.Email != want.Email {
		t.Fatalf("wrong user: %+v", got)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	svc, r := newUserRouter(t)

	svc.EXPECT().GetUser(gomock.Any(), int64(99)).Return(nil, domain.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/users/99", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetUser_BadID(t *testing.T) {
	svc, r := newUserRouter(t)

	svc.EXPECT().GetUser(gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodGet, "/users/abc", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListUsers_All(t *testing.T) {
	svc, r := newUserRouter(t)

	svc.EXPECT().ListUsers(gomock.Any()).
		Return([]domain.User{{ID: 1, Name: "a", Email: "a@a"}, {ID: 2, Name: "b", Email: "b@b"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/all", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got []domain.User
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || len(got) != 2 {
		t.Fatalf("want 2 users, got err=%v, body=%s", err, w.Body.String())
	}
}

func TestCreateUser_Created(t *testing.T) {
	svc, r := newUserRouter(t)

	svc.EXPECT().CreateUser(gomock.Any(), &domain.NewUser{Name: "Ivan", Email: "ivan@example.com"}).
		Return(&domain.User{ID: 7, Name: "Ivan", Email: "ivan@example.com"}, nil)

	body := strings.NewReader(`{"name":"Ivan","email":"ivan@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateUser_InvalidBody(t *testing.T) {
	svc, r := newUserRouter(t)

	svc.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateUser_ValidationError(t *testing.T) {
	svc, r := newUserRouter(t)

	svc.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, validate.ErrInvalidUser)

	body := strings.NewReader(`{"name":"Ivan","email":"bad"}`)
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateUser_EmailConflict(t *testing.T) {
	svc, r := newUserRouter(t)

	svc.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, domain.ErrEmailTaken)

	body := strings.NewReader(`{"name":"Ivan","email":"taken@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateUser_Partial(t *testing.T) {
	svc, r := newUserRouter(t)

	name := "Pyotr"
	svc.EXPECT().UpdateUser(gomock.Any(), int64(7), &domain.UserPatch{Name: &name}).
		Return(&domain.User{ID: 7, Name: name, Email: "ivan@example.com"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/users/7", strings.NewReader(`{"name":"Pyotr"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.User
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || got.Name != name {
		t.Fatalf("wrong user: err=%v, body=%s", err, w.Body.String())
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, r := newUserRouter(t)

	svc.EXPECT().UpdateUser(gomock.Any(), int64(99), gomock.Any()).Return(nil, domain.ErrNotFound)

	req := httptest.NewRequest(http.MethodPut, "/users/99", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestDeleteUser_NoContent(t *testing.T) {
	svc, r := newUserRouter(t)

	svc.EXPECT().DeleteUser(gomock.Any(), int64(7)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/users/7", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, r := newUserRouter(t)

	svc.EXPECT().DeleteUser(gomock.Any(), int64(99)).Return(domain.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/users/99", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestUsers_InternalError(t *testing.T) {
	svc, r := newUserRouter(t)

	svc.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("db down"))

	req := httptest.NewRequest(http.MethodGet, "/users/all", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestUsers_Ping(t *testing.T) {
	_, r := newUserRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("want pong, got %d, body=%s", w.Code, w.Body.String())
	}
}
