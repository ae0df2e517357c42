package validate

import (
	"context"
	"strings"
	"testing"

	"github.com/mkargin/shop-registry/internal/domain"
)

func TestUserFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	record := UserFromJSON(NewUserValidator())

	got, err := record(ctx, []byte(`{"name":"Ivan","email":"ivan@example.com"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in, ok := got.(*domain.NewUser)
	if !ok || in.Email != "ivan@example.com" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestUserFromJSON_UnknownField(t *testing.T) {
	ctx := context.Background()
	record := UserFromJSON(NewUserValidator())

	_, err := record(ctx, []byte(`{"name":"Ivan","email":"ivan@example.com","role":"admin"}`))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got: %v", err)
	}
}

func TestUserFromJSON_TrailingData(t *testing.T) {
	ctx := context.Background()
	record := UserFromJSON(NewUserValidator())

	_, err := record(ctx, []byte(`{"name":"Ivan","email":"ivan@example.com"}{}`))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
}

func TestUserFromJSON_DomainError(t *testing.T) {
	ctx := context.Background()
	record := UserFromJSON(NewUserValidator())

	_, err := record(ctx, []byte(`{"name":"Ivan","email":"broken"}`))
	if err == nil {
		t.Fatalf("expected domain validation error, got nil")
	}
}

func TestOrderFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	record := OrderFromJSON(NewOrderValidator())

	got, err := record(ctx, []byte(`{"user_id":7,"item_name":"book","quantity":2}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in, ok := got.(*domain.NewOrder)
	if !ok || in.UserID != 7 || in.Quantity != 2 {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestOrderFromJSON_DomainError(t *testing.T) {
	ctx := context.Background()
	record := OrderFromJSON(NewOrderValidator())

	_, err := record(ctx, []byte(`{"user_id":7,"item_name":"book","quantity":0}`))
	if err == nil {
		t.Fatalf("expected domain validation error, got nil")
	}
}
