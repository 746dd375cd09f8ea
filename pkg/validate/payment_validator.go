package validate

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/kakeibo/expenses/internal/domain"
	"github.com/kakeibo/expenses/internal/ports"
	"github.com/shopspring/decimal"
)

// Проверка, что PaymentValidator удовлетворяет интерфейсу PaymentValidator.
var _ ports.PaymentValidator = (*PaymentValidator)(nil)

// ErrInvalidPayment — базовая (sentinel error) ошибка валидации.
var ErrInvalidPayment = errors.New("payment validation failed")

// Имена полей формы.
const (
	FieldAccountCategory = "account_category"
	FieldPayee           = "payee"
	FieldAmount          = "amount"
	FieldPaymentMonth    = "payment_month"
	FieldPaymentMethod   = "payment_method"
)

// monthPattern — фиксированный формат YYYY-MM.
var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// PaymentValidator — проверка сырого ввода формы платежа.
// Правила независимы: каждое выполняется всегда, ошибки собираются в порядке
// правил (на одно поле может прийтись несколько записей).
type PaymentValidator struct{}

// NewPaymentValidator — конструктор PaymentValidator.
func NewPaymentValidator() *PaymentValidator { return &PaymentValidator{} }

// Validate — прогоняет все правила и возвращает типизированную запись
// либо упорядоченный список нарушений. Побочных эффектов нет.
func (v *PaymentValidator) Validate(_ context.Context, raw map[string]string) (domain.Payment, []domain.FieldError) {
	var (
		payment domain.Payment
		errs    []domain.FieldError
	)

	fail := func(field, message string) {
		errs = append(errs, domain.FieldError{Field: field, Message: message})
	}

	// account_category: обязательность и принадлежность множеству — отдельные правила.
	category := strings.TrimSpace(raw[FieldAccountCategory])
	if category == "" {
		fail(FieldAccountCategory, "account_category is required")
	}
	if c, ok := domain.ParseAccountCategory(category); ok {
		payment.AccountCategory = c
	} else {
		fail(FieldAccountCategory, "account_category has an invalid value")
	}

	// payee: непустое после trim.
	payee := strings.TrimSpace(raw[FieldPayee])
	if payee == "" {
		fail(FieldPayee, "payee is required")
	}
	payment.Payee = payee

	// amount: обязательность и лексическая корректность десятичного числа.
	amount := strings.TrimSpace(raw[FieldAmount])
	if amount == "" {
		fail(FieldAmount, "amount is required")
	}
	if d, err := decimal.NewFromString(amount); err != nil {
		fail(FieldAmount, "amount must be numeric")
	} else {
		payment.Amount = d
	}

	// payment_month: обязательность и формат YYYY-MM.
	month := strings.TrimSpace(raw[FieldPaymentMonth])
	if month == "" {
		fail(FieldPaymentMonth, "payment_month is required")
	}
	if !monthPattern.MatchString(month) {
		fail(FieldPaymentMonth, "payment_month must be in YYYY-MM format")
	}
	payment.PaymentMonth = month

	// payment_method: обязательность и принадлежность множеству.
	method := strings.TrimSpace(raw[FieldPaymentMethod])
	if method == "" {
		fail(FieldPaymentMethod, "payment_method is required")
	}
	if m, ok := domain.ParsePaymentMethod(method); ok {
		payment.PaymentMethod = m
	} else {
		fail(FieldPaymentMethod, "payment_method has an invalid value")
	}

	if len(errs) > 0 {
		return domain.Payment{}, errs
	}
	return payment, nil
}

// WrapFieldErrors — сворачивает список нарушений в одну ошибку с ErrInvalidPayment
// в цепочке (для путей, где нужен error: consumer, файловая валидация).
func WrapFieldErrors(errs []domain.FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	return fmt.Errorf("%w: %s", ErrInvalidPayment, strings.Join(messages, "; "))
}
