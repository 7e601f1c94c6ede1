package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/models"
)

func tx(t models.TransactionType, amount float64) models.Transaction {
	return models.Transaction{Type: t, Amount: amount}
}

func TestBalance(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0.0, Balance(nil))
		assert.Equal(t, 0.0, Balance([]models.Transaction{}))
	})

	t.Run("income minus expense", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeIncome, 200),
			tx(models.TransactionTypeExpense, 100),
			tx(models.TransactionTypeExpense, 50),
			tx(models.TransactionTypeIncome, 12.5),
		}
		assert.Equal(t, 62.5, Balance(txs))
	})

	t.Run("negative balance", func(t *testing.T) {
		txs := []models.Transaction{tx(models.TransactionTypeExpense, 30)}
		assert.Equal(t, -30.0, Balance(txs))
	})

	t.Run("cents do not drift", func(t *testing.T) {
		var txs []models.Transaction
		for i := 0; i < 10; i++ {
			txs = append(txs, tx(models.TransactionTypeIncome, 0.1))
		}
		assert.Equal(t, 1.0, Balance(txs))
	})
}

func TestValidateCategory(t *testing.T) {
	_, err := ValidateCategory("   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrEmptyName)

	_, err = ValidateCategory("")
	assert.ErrorIs(t, err, apperrors.ErrEmptyName)

	name, err := ValidateCategory(" Food ")
	require.NoError(t, err)
	assert.Equal(t, "Food", name)
}

func TestValidateNewTransaction(t *testing.T) {
	assert.ErrorIs(t, ValidateNewTransaction(0), apperrors.ErrNonPositiveAmount)
	assert.ErrorIs(t, ValidateNewTransaction(-5), apperrors.ErrNonPositiveAmount)
	assert.NoError(t, ValidateNewTransaction(0.01))
}

func TestValidateTransactionUpdate(t *testing.T) {
	assert.ErrorIs(t, ValidateTransactionUpdate(3, 0), apperrors.ErrNonPositiveAmount)
	assert.ErrorIs(t, ValidateTransactionUpdate(0, 10), apperrors.ErrUnsavedID)
	// amount is checked before the id
	assert.ErrorIs(t, ValidateTransactionUpdate(0, -1), apperrors.ErrNonPositiveAmount)
	assert.NoError(t, ValidateTransactionUpdate(7, 10))
}
