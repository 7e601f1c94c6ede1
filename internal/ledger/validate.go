package ledger

import (
	"strings"

	apperrors "moneymanager/internal/errors"
)

// ValidateCategory checks a category name and returns it trimmed.
func ValidateCategory(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apperrors.ErrEmptyName
	}
	return trimmed, nil
}

// ValidateNewTransaction checks a transaction that is about to be inserted.
func ValidateNewTransaction(amount float64) error {
	if !(amount > 0) {
		return apperrors.ErrNonPositiveAmount
	}
	return nil
}

// ValidateTransactionUpdate checks a transaction that replaces a stored one.
// The amount is checked first.
func ValidateTransactionUpdate(id int64, amount float64) error {
	if err := ValidateNewTransaction(amount); err != nil {
		return err
	}
	if id == 0 {
		return apperrors.ErrUnsavedID
	}
	return nil
}
