package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kakeibo/expenses/pkg/validate"
)

// CLI-приложение для пакетной валидации платежей.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx := context.Background()
	paymentValidator := validate.NewPaymentValidator()

	format := validate.InputFormat(*formatStr)

	// stdin вариант: считаем, что jsonl
	path := *inputPath
	if path == "" {
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
		path = "/dev/stdin"
	}

	summary, err := validate.ValidateFile(ctx, paymentValidator, path, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
