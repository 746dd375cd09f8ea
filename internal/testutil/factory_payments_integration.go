//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/kakeibo/expenses/internal/domain"
	"github.com/shopspring/decimal"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного платежа
func MakePayment(opts ...func(*domain.Payment)) domain.Payment {
	p := domain.Payment{
		AccountCategory: domain.CategoryVariable,
		Payee:           "payee-" + UniqSuffix(),
		Amount:          decimal.RequireFromString("1234.56"),
		PaymentMonth:    "2024-01",
		PaymentMethod:   domain.MethodCreditCard,
	}

	for _, fn := range opts {
		fn(&p)
	}
	return p
}

func WithAmount(s string) func(*domain.Payment) {
	return func(p *domain.Payment) { p.Amount = decimal.RequireFromString(s) }
}

func WithMonth(month string) func(*domain.Payment) {
	return func(p *domain.Payment) { p.PaymentMonth = month }
}

func WithCategory(c domain.AccountCategory) func(*domain.Payment) {
	return func(p *domain.Payment) { p.AccountCategory = c }
}

func WithMethod(m domain.PaymentMethod) func(*domain.Payment) {
	return func(p *domain.Payment) { p.PaymentMethod = m }
}
