package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/expenses/internal/domain"
	"github.com/kakeibo/expenses/internal/ports/mocks"
	"github.com/kakeibo/expenses/internal/usecase"
	"github.com/kakeibo/expenses/pkg/validate"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func someRaw() map[string]string {
	return map[string]string{
		"account_category": "variable cost",
		"payee":            "ACME",
		"amount":           "100",
		"payment_month":    "2024-01",
		"payment_method":   "credit card",
	}
}

func somePayment() domain.Payment {
	return domain.Payment{
		AccountCategory: domain.CategoryVariable,
		Payee:           "ACME",
		Amount:          decimal.RequireFromString("100"),
		PaymentMonth:    "2024-01",
		PaymentMethod:   domain.MethodCreditCard,
	}
}

func TestRegister_ValidInput_Persists(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPaymentRepository(ctrl)
	validator := mocks.NewMockPaymentValidator(ctrl)
	log := noopLogger{}

	raw := someRaw()
	normalized := somePayment()

	gomock.InOrder(
		validator.EXPECT().Validate(gomock.Any(), raw).Return(normalized, nil),
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(&domain.Payment{})).
			DoAndReturn(func(_ context.Context, p *domain.Payment) error {
				p.ID = 7
				return nil
			}),
	)

	svc := usecase.NewPaymentService(repo, log, validator)

	created, fieldErrs, err := svc.Register(context.Background(), raw)
	if err != nil || len(fieldErrs) != 0 {
		t.Fatalf("unexpected result: errs=%v err=%v", fieldErrs, err)
	}
	if created == nil || created.ID != 7 {
		t.Fatalf("id not assigned: %+v", created)
	}
}

func TestRegister_InvalidInput_NoStorageCall(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPaymentRepository(ctrl)
	validator := mocks.NewMockPaymentValidator(ctrl)
	log := noopLogger{}

	violations := []domain.FieldError{{Field: "payee", Message: "payee is required"}}
	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(domain.Payment{}, violations)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewPaymentService(repo, log, validator)

	created, fieldErrs, err := svc.Register(context.Background(), map[string]string{})
	if err != nil {
		t.Fatalf("validation failure must not be a storage error: %v", err)
	}
	if created != nil {
		t.Fatalf("nothing must be created, got %+v", created)
	}
	if len(fieldErrs) != 1 || fieldErrs[0].Field != "payee" {
		t.Fatalf("violations lost: %v", fieldErrs)
	}
}

func TestRegister_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPaymentRepository(ctrl)
	validator := mocks.NewMockPaymentValidator(ctrl)
	log := noopLogger{}

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(somePayment(), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	svc := usecase.NewPaymentService(repo, log, validator)

	_, _, err := svc.Register(context.Background(), someRaw())
	if err == nil || !strings.Contains(err.Error(), "failed to create payment") {
		t.Fatalf("want wrapped storage error, got %v", err)
	}
}

func TestCheck_DoesNotPersist(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPaymentRepository(ctrl)
	validator := mocks.NewMockPaymentValidator(ctrl)
	log := noopLogger{}

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(somePayment(), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewPaymentService(repo, log, validator)

	if fieldErrs := svc.Check(context.Background(), someRaw()); len(fieldErrs) != 0 {
		t.Fatalf("unexpected violations: %v", fieldErrs)
	}
}

func TestUpdate_MissingID_SilentNoop(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPaymentRepository(ctrl)
	validator := mocks.NewMockPaymentValidator(ctrl)
	log := noopLogger{}

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(somePayment(), nil)
	repo.EXPECT().Update(gomock.Any(), int64(404), gomock.Any()).Return(false, nil)

	svc := usecase.NewPaymentService(repo, log, validator)

	fieldErrs, err := svc.Update(context.Background(), 404, someRaw())
	if err != nil || len(fieldErrs) != 0 {
		t.Fatalf("no-op update must succeed: errs=%v err=%v", fieldErrs, err)
	}
}

func TestDelete_MissingID_NotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPaymentRepository(ctrl)
	validator := mocks.NewMockPaymentValidator(ctrl)
	log := noopLogger{}

	repo.EXPECT().Delete(gomock.Any(), int64(404)).Return(false, nil)

	svc := usecase.NewPaymentService(repo, log, validator)

	if err := svc.Delete(context.Background(), 404); err != nil {
		t.Fatalf("delete of missing id must be silent: %v", err)
	}
}

func TestGet_Passthrough(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPaymentRepository(ctrl)
	validator := mocks.NewMockPaymentValidator(ctrl)
	log := noopLogger{}

	want := somePayment()
	want.ID = 3
	repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&want, nil)

	svc := usecase.NewPaymentService(repo, log, validator)

	got, err := svc.Get(context.Background(), 3)
	if err != nil || got == nil || got.ID != 3 {
		t.Fatalf("unexpected result: %+v err=%v", got, err)
	}
}

func TestSaveFromMessage_InvalidJson(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPaymentRepository(ctrl)
	validator := mocks.NewMockPaymentValidator(ctrl)
	log := noopLogger{}

	svc := usecase.NewPaymentService(repo, log, validator)

	err := svc.SaveFromMessage(context.Background(), []byte("{"))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got err=%v", err)
	}
}

func TestSaveFromMessage_ValidationFailed(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPaymentRepository(ctrl)
	validator := mocks.NewMockPaymentValidator(ctrl)
	log := noopLogger{}

	violations := []domain.FieldError{{Field: "amount", Message: "amount must be numeric"}}
	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(domain.Payment{}, violations)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewPaymentService(repo, log, validator)

	raw := []byte(`{"account_category":"variable cost","payee":"x","amount":"abc","payment_month":"2024-01","payment_method":"credit card"}`)
	err := svc.SaveFromMessage(context.Background(), raw)
	if !errors.Is(err, validate.ErrInvalidPayment) {
		t.Fatalf("want wrapped ErrInvalidPayment, got %v", err)
	}
}

func TestSaveFromMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockPaymentRepository(ctrl)
	validator := mocks.NewMockPaymentValidator(ctrl)
	log := noopLogger{}

	gomock.InOrder(
		validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(somePayment(), nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
	)

	svc := usecase.NewPaymentService(repo, log, validator)

	raw := []byte(`{"account_category":"variable cost","payee":"ACME","amount":"100","payment_month":"2024-01","payment_method":"credit card"}`)
	if err := svc.SaveFromMessage(context.Background(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
