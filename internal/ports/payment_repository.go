package ports

import (
	"context"

	"github.com/kakeibo/expenses/internal/domain"
)

// PaymentRepository — контракт хранилища платежей.
// Каждый вызов — один SQL-оператор; транзакций между вызовами нет.
type PaymentRepository interface {
	// Create — вставляет запись и проставляет назначенный ID в переданную структуру.
	Create(ctx context.Context, payment *domain.Payment) error

	// ListAggregated — суммы по группам (payment_month, account_category).
	ListAggregated(ctx context.Context) ([]domain.AggregatedTotal, error)

	// ListAll — все записи, новые первыми (id DESC).
	ListAll(ctx context.Context) ([]domain.Payment, error)

	// GetByID — запись по id. Если не нашли, возвращает (nil, nil):
	// отсутствие строки не считается ошибкой хранилища.
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)

	// Update — полная замена всех полей кроме id.
	// Возвращает false, если строки с таким id нет (тихий no-op).
	Update(ctx context.Context, id int64, payment *domain.Payment) (bool, error)

	// Delete — удаляет строку; false — если её не было (тоже no-op, не ошибка).
	Delete(ctx context.Context, id int64) (bool, error)
}
