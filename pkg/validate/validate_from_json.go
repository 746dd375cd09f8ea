package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kakeibo/expenses/internal/domain"
	"github.com/kakeibo/expenses/internal/ports"
)

// Submission — сырой ввод платежа: все значения строковые, как в форме.
type Submission struct {
	AccountCategory string `json:"account_category"`
	Payee           string `json:"payee"`
	Amount          string `json:"amount"`
	PaymentMonth    string `json:"payment_month"`
	PaymentMethod   string `json:"payment_method"`
}

// Map — представление для валидатора (контракт ждёт mapping строк).
func (s Submission) Map() map[string]string {
	return map[string]string{
		FieldAccountCategory: s.AccountCategory,
		FieldPayee:           s.Payee,
		FieldAmount:          s.Amount,
		FieldPaymentMonth:    s.PaymentMonth,
		FieldPaymentMethod:   s.PaymentMethod,
	}
}

// ValidatePaymentFromJSON — валидация платежа из JSON.
func ValidatePaymentFromJSON(ctx context.Context, validator ports.PaymentValidator, raw []byte) (*domain.Payment, error) {
	var sub Submission
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sub); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	payment, fieldErrs := validator.Validate(ctx, sub.Map())
	if err := WrapFieldErrors(fieldErrs); err != nil {
		return nil, err
	}
	return &payment, nil
}
