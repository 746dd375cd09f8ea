package validate_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kakeibo/expenses/pkg/validate"
)

func TestValidateJSONLStream_MixedLines(t *testing.T) {
	v := validate.NewPaymentValidator()

	input := strings.Join([]string{
		`{"account_category":"variable cost","payee":"A","amount":"10","payment_month":"2024-01","payment_method":"credit card"}`,
		``,
		`{"account_category":"nope","payee":"B","amount":"20","payment_month":"2024-01","payment_method":"credit card"}`,
		`not json`,
		`{"account_category":"販管費","payee":"C","amount":"30.50","payment_month":"2024-02","payment_method":"振込"}`,
	}, "\n")

	var out bytes.Buffer
	res, err := validate.ValidateJSONLStream(context.Background(), v, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 2 {
		t.Fatalf("want 2 valid / 2 invalid, got %d/%d", res.ValidLinesCount, res.InvalidLinesCount)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 output lines, got %d: %q", len(lines), out.String())
	}
	// японские метки нормализованы в канонические значения
	if !strings.Contains(lines[1], `"administrative expense"`) || !strings.Contains(lines[1], `"bank transfer"`) {
		t.Fatalf("labels not normalized in output: %s", lines[1])
	}
}

func TestValidateJSONLStream_EmptyInput(t *testing.T) {
	v := validate.NewPaymentValidator()

	var out bytes.Buffer
	res, err := validate.ValidateJSONLStream(context.Background(), v, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 0 || res.InvalidLinesCount != 0 {
		t.Fatalf("want 0/0, got %d/%d", res.ValidLinesCount, res.InvalidLinesCount)
	}
	if out.Len() != 0 {
		t.Fatalf("no output expected, got %q", out.String())
	}
}
