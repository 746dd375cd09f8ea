package ports

import (
	"context"

	"github.com/kakeibo/expenses/internal/domain"
)

// PaymentService — прикладные операции над платежами для транспортного слоя.
// Единый путь записи: сначала валидация, затем хранилище.
type PaymentService interface {
	// Register — валидирует и сохраняет. При ошибках валидации запись не создаётся.
	Register(ctx context.Context, raw map[string]string) (*domain.Payment, []domain.FieldError, error)

	// Check — только валидация, без записи (dry-run).
	Check(ctx context.Context, raw map[string]string) []domain.FieldError

	// Aggregated — итоги по (месяц, категория).
	Aggregated(ctx context.Context) ([]domain.AggregatedTotal, error)

	// List — все платежи, новые первыми.
	List(ctx context.Context) ([]domain.Payment, error)

	// Get — платёж по id; (nil, nil), если записи нет.
	Get(ctx context.Context, id int64) (*domain.Payment, error)

	// Update — валидирует и заменяет все поля кроме id.
	Update(ctx context.Context, id int64, raw map[string]string) ([]domain.FieldError, error)

	// Delete — удаляет по id; отсутствие записи не считается ошибкой.
	Delete(ctx context.Context, id int64) error
}
