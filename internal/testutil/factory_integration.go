//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/mkargin/shop-registry/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного пользователя. Email уникален между вызовами —
// безопасно сеять несколько пользователей в одну базу.
func MakeNewUser(opts ...func(*domain.NewUser)) domain.NewUser {
	u := domain.NewUser{
		Name:  "user-" + UniqSuffix(),
		Email: "u-" + UniqSuffix() + "@example.com",
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

func WithEmail(email string) func(*domain.NewUser) {
	return func(u *domain.NewUser) { u.Email = email }
}

// Мини-генератор валидного заказа для заданного пользователя.
func MakeNewOrder(userID int64, opts ...func(*domain.NewOrder)) domain.NewOrder {
	o := domain.NewOrder{
		UserID:   userID,
		ItemName: "item-" + UniqSuffix(),
		Quantity: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithQuantity(q int) func(*domain.NewOrder) {
	return func(o *domain.NewOrder) { o.Quantity = q }
}
