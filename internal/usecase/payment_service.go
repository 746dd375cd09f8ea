package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kakeibo/expenses/internal/domain"
	"github.com/kakeibo/expenses/internal/ports"
	"github.com/kakeibo/expenses/pkg/metrics"
	"github.com/kakeibo/expenses/pkg/validate"
)

// Проверка, что PaymentService удовлетворяет порту PaymentService.
var _ ports.PaymentService = (*PaymentService)(nil)

// PaymentService — прикладная логика работы с платежами (без знаний о транспорте).
// Единый путь записи: валидация всегда выполняется до обращения к хранилищу.
// В исходной системе /register писал в базу без валидации, а /expenses
// валидировал без записи — здесь оба маршрута сведены к одному пути
// (dry-run отдельной операцией), расхождение оригинала считаем дефектом.
type PaymentService struct {
	repo      ports.PaymentRepository // прямой доступ к хранилищу
	log       ports.Logger            // прямой доступ к логгеру
	validator ports.PaymentValidator  // прямой доступ к валидатору
}

// NewPaymentService — DI-конструктор.
func NewPaymentService(
	repo ports.PaymentRepository,
	log ports.Logger,
	validator ports.PaymentValidator,
) *PaymentService {
	return &PaymentService{
		repo:      repo,
		log:       log,
		validator: validator,
	}
}

// Register — валидирует и сохраняет платёж.
// Возвращает либо созданную запись, либо список нарушений, либо ошибку хранилища.
func (s *PaymentService) Register(ctx context.Context, raw map[string]string) (*domain.Payment, []domain.FieldError, error) {
	payment, fieldErrs := s.validator.Validate(ctx, raw)
	if len(fieldErrs) > 0 {
		metrics.PaymentsValidated.WithLabelValues("invalid").Inc()
		s.log.Warnf(ctx, "validation failed: %d violation(s)", len(fieldErrs))
		return nil, fieldErrs, nil
	}
	metrics.PaymentsValidated.WithLabelValues("ok").Inc()

	if err := s.repo.Create(ctx, &payment); err != nil {
		metrics.StorageOps.WithLabelValues("create", "error").Inc()
		s.log.Errorf(ctx, "repo.Create failed payee=%s err=%v", payment.Payee, err)
		return nil, nil, fmt.Errorf("failed to create payment: %w", err)
	}
	metrics.StorageOps.WithLabelValues("create", "ok").Inc()

	s.log.Infof(ctx, "payment created id=%d month=%s category=%s", payment.ID, payment.PaymentMonth, payment.AccountCategory)
	return &payment, nil, nil
}

// Check — только валидация, без записи. Чистая операция без побочных эффектов
// в хранилище.
func (s *PaymentService) Check(ctx context.Context, raw map[string]string) []domain.FieldError {
	_, fieldErrs := s.validator.Validate(ctx, raw)
	if len(fieldErrs) > 0 {
		metrics.PaymentsValidated.WithLabelValues("invalid").Inc()
		return fieldErrs
	}
	metrics.PaymentsValidated.WithLabelValues("ok").Inc()
	return nil
}

// Aggregated — итоги по (месяц, категория).
func (s *PaymentService) Aggregated(ctx context.Context) ([]domain.AggregatedTotal, error) {
	totals, err := s.repo.ListAggregated(ctx)
	if err != nil {
		metrics.StorageOps.WithLabelValues("aggregate", "error").Inc()
		s.log.Errorf(ctx, "repo.ListAggregated failed err=%v", err)
		return nil, err
	}
	metrics.StorageOps.WithLabelValues("aggregate", "ok").Inc()
	return totals, nil
}

// List — все платежи, новые первыми.
func (s *PaymentService) List(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.repo.ListAll(ctx)
	if err != nil {
		metrics.StorageOps.WithLabelValues("list", "error").Inc()
		s.log.Errorf(ctx, "repo.ListAll failed err=%v", err)
		return nil, err
	}
	metrics.StorageOps.WithLabelValues("list", "ok").Inc()
	return payments, nil
}

// Get — платёж по id. Возвращает (nil, nil), если записи нет.
func (s *PaymentService) Get(ctx context.Context, id int64) (*domain.Payment, error) {
	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		metrics.StorageOps.WithLabelValues("get", "error").Inc()
		s.log.Errorf(ctx, "repo.GetByID failed id=%d err=%v", id, err)
		return nil, err
	}
	metrics.StorageOps.WithLabelValues("get", "ok").Inc()
	return payment, nil
}

// Update — валидирует и заменяет все поля кроме id.
// Отсутствие записи — тихий no-op на уровне хранилища; фиксируем его в логе.
func (s *PaymentService) Update(ctx context.Context, id int64, raw map[string]string) ([]domain.FieldError, error) {
	payment, fieldErrs := s.validator.Validate(ctx, raw)
	if len(fieldErrs) > 0 {
		metrics.PaymentsValidated.WithLabelValues("invalid").Inc()
		return fieldErrs, nil
	}
	metrics.PaymentsValidated.WithLabelValues("ok").Inc()

	found, err := s.repo.Update(ctx, id, &payment)
	if err != nil {
		metrics.StorageOps.WithLabelValues("update", "error").Inc()
		s.log.Errorf(ctx, "repo.Update failed id=%d err=%v", id, err)
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	metrics.StorageOps.WithLabelValues("update", "ok").Inc()

	if !found {
		s.log.Warnf(ctx, "update of missing payment id=%d (no-op)", id)
	}
	return nil, nil
}

// Delete — удаляет по id; отсутствие записи не считается ошибкой.
func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		metrics.StorageOps.WithLabelValues("delete", "error").Inc()
		s.log.Errorf(ctx, "repo.Delete failed id=%d err=%v", id, err)
		return err
	}
	metrics.StorageOps.WithLabelValues("delete", "ok").Inc()

	if !found {
		s.log.Warnf(ctx, "delete of missing payment id=%d (no-op)", id)
	}
	return nil
}

// SaveFromMessage — сохранить платёж, пришедший из брокера (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields);
//  2. валидация (validate.ErrInvalidPayment в цепочке при нарушениях);
//  3. запись в БД одним оператором.
func (s *PaymentService) SaveFromMessage(ctx context.Context, raw []byte) error {
	// Строгое декодирование: запрещаем неизвестные поля.
	var sub validate.Submission
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sub); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("invalid json: %w", err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("invalid json: trailing data")
	}

	payment, fieldErrs := s.validator.Validate(ctx, sub.Map())
	if err := validate.WrapFieldErrors(fieldErrs); err != nil {
		metrics.PaymentsValidated.WithLabelValues("invalid").Inc()
		s.log.Warnf(ctx, "validation failed payee=%q err=%v", sub.Payee, err)
		return err
	}
	metrics.PaymentsValidated.WithLabelValues("ok").Inc()

	if err := s.repo.Create(ctx, &payment); err != nil {
		metrics.StorageOps.WithLabelValues("create", "error").Inc()
		s.log.Errorf(ctx, "repo.Create failed payee=%s err=%v", payment.Payee, err)
		return fmt.Errorf("failed to create payment: %w", err)
	}
	metrics.StorageOps.WithLabelValues("create", "ok").Inc()

	s.log.Infof(ctx, "payment saved id=%d month=%s", payment.ID, payment.PaymentMonth)
	return nil
}
