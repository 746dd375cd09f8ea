//go:build integration

package testutil

import (
	"fmt"

	"github.com/kakeibo/expenses/internal/repo/postgres"
)

// ApplyMigrations — применяет встроенные миграции репозитория к базе по DSN.
// Миграции живут внутри пакета postgres (embed), поэтому путь вычислять не нужно.
func ApplyMigrations(dsn string) error {
	if err := postgres.RunMigrations(dsn); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
