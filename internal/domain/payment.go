package domain

import "github.com/shopspring/decimal"

// AccountCategory — закрытое множество категорий учёта.
type AccountCategory string

// PaymentMethod — закрытое множество способов оплаты.
type PaymentMethod string

const (
	CategoryAdministrative AccountCategory = "administrative expense" // 販管費
	CategoryVariable       AccountCategory = "variable cost"          // 変動費

	MethodBankTransfer PaymentMethod = "bank transfer" // 振込
	MethodCreditCard   PaymentMethod = "credit card"   // クレジットカード
	MethodDirectDebit  PaymentMethod = "direct debit"  // 口座振替
)

// accountCategories — канонические значения + исходные японские метки формы.
var accountCategories = map[string]AccountCategory{
	string(CategoryAdministrative): CategoryAdministrative,
	string(CategoryVariable):       CategoryVariable,
	"販管費":                           CategoryAdministrative,
	"変動費":                           CategoryVariable,
}

var paymentMethods = map[string]PaymentMethod{
	string(MethodBankTransfer): MethodBankTransfer,
	string(MethodCreditCard):   MethodCreditCard,
	string(MethodDirectDebit):  MethodDirectDebit,
	"振込":                       MethodBankTransfer,
	"クレジットカード":                 MethodCreditCard,
	"口座振替":                     MethodDirectDebit,
}

// ParseAccountCategory — нормализует строку в AccountCategory.
// Любое значение вне множества отклоняется, не приводится.
func ParseAccountCategory(s string) (AccountCategory, bool) {
	c, ok := accountCategories[s]
	return c, ok
}

// ParsePaymentMethod — нормализует строку в PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	m, ok := paymentMethods[s]
	return m, ok
}

// AccountCategories — канонические значения категорий (для схемы формы).
func AccountCategories() []AccountCategory {
	return []AccountCategory{CategoryAdministrative, CategoryVariable}
}

// PaymentMethods — канонические значения способов оплаты.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{MethodBankTransfer, MethodCreditCard, MethodDirectDebit}
}

// Payment — одна запись расхода. После валидации поля типизированы:
// категория/способ — закрытые перечисления, сумма — decimal без потери точности.
type Payment struct {
	ID              int64           `json:"id"`
	AccountCategory AccountCategory `json:"account_category"`
	Payee           string          `json:"payee"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMonth    string          `json:"payment_month"` // формат YYYY-MM
	PaymentMethod   PaymentMethod   `json:"payment_method"`
}

// AggregatedTotal — сумма расходов по группе (месяц, категория).
type AggregatedTotal struct {
	AccountCategory AccountCategory `json:"account_category"`
	PaymentMonth    string          `json:"payment_month"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

// FieldError — одно нарушение правила валидации конкретного поля.
// Порядок ошибок в списке соответствует порядку правил.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
