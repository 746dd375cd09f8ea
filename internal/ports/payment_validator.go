package ports

import (
	"context"

	"github.com/kakeibo/expenses/internal/domain"
)

// PaymentValidator — проверка сырого ввода формы.
// Все правила выполняются независимо (без short-circuit), ошибки собираются
// в порядке правил. Пустой список ошибок означает успех и типизированную запись.
type PaymentValidator interface {
	Validate(ctx context.Context, raw map[string]string) (domain.Payment, []domain.FieldError)
}
