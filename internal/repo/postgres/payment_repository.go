package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kakeibo/expenses/internal/domain"
	"github.com/kakeibo/expenses/internal/ports"
)

// Проверка, что PaymentRepository удовлетворяет интерфейсу PaymentRepository.
var _ ports.PaymentRepository = (*PaymentRepository)(nil)

// PaymentRepository — реализация хранилища платежей на Postgres (pgxpool).
// Каждый метод — ровно один SQL-оператор; транзакций между вызовами нет,
// повторов при ошибках нет.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository - конструктор PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// Create — вставляет запись; id назначается базой и проставляется в payment.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if payment == nil {
		return errors.New("payment is nil")
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO payments (account_category, payee, amount, payment_month, payment_method)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		payment.AccountCategory, payment.Payee, payment.Amount, payment.PaymentMonth, payment.PaymentMethod,
	).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListAggregated — суммы по группам (payment_month, account_category).
// Контракт требует семантику группировки; порядок выбран детерминированным
// для стабильного вывода.
func (r *PaymentRepository) ListAggregated(ctx context.Context) ([]domain.AggregatedTotal, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT account_category, payment_month, SUM(amount) AS total_amount
		FROM payments
		GROUP BY payment_month, account_category
		ORDER BY payment_month, account_category
	`)
	if err != nil {
		return nil, fmt.Errorf("select aggregated: %w", err)
	}
	defer rows.Close()

	var totals []domain.AggregatedTotal
	for rows.Next() {
		var t domain.AggregatedTotal
		if err := rows.Scan(&t.AccountCategory, &t.PaymentMonth, &t.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan aggregated row: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("aggregated rows: %w", err)
	}
	return totals, nil
}

// ListAll — все записи, новые первыми.
func (r *PaymentRepository) ListAll(ctx context.Context) ([]domain.Payment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, account_category, payee, amount, payment_month, payment_method
		FROM payments
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("select payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.AccountCategory, &p.Payee, &p.Amount, &p.PaymentMonth, &p.PaymentMethod); err != nil {
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("payment rows: %w", err)
	}
	return payments, nil
}

// GetByID — запись по id. Если не нашли, возвращает (nil, nil):
// так отсутствие строки отличимо от ошибки соединения.
func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var p domain.Payment

	err := r.pool.QueryRow(ctx, `
		SELECT id, account_category, payee, amount, payment_month, payment_method
		FROM payments
		WHERE id = $1
	`, id).Scan(&p.ID, &p.AccountCategory, &p.Payee, &p.Amount, &p.PaymentMonth, &p.PaymentMethod)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select payment: %w", err)
	}
	return &p, nil
}

// Update — заменяет все поля кроме id. Отсутствие строки — тихий no-op,
// вызывающая сторона узнаёт об этом по returned=false.
func (r *PaymentRepository) Update(ctx context.Context, id int64, payment *domain.Payment) (bool, error) {
	if payment == nil {
		return false, errors.New("payment is nil")
	}

	ct, err := r.pool.Exec(ctx, `
		UPDATE payments
		SET account_category = $1, payee = $2, amount = $3, payment_month = $4, payment_method = $5
		WHERE id = $6
	`,
		payment.AccountCategory, payment.Payee, payment.Amount, payment.PaymentMonth, payment.PaymentMethod, id,
	)
	if err != nil {
		return false, fmt.Errorf("update payment: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete — удаляет строку; отсутствие строки не ошибка.
func (r *PaymentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.pool.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete payment: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}
