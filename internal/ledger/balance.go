// Package ledger holds the pure bookkeeping rules of the application: the
// running balance and the checks applied before anything is persisted.
package ledger

import (
	"github.com/shopspring/decimal"

	"moneymanager/internal/models"
)

// Balance reduces transactions to a signed total: income adds, expense
// subtracts. An empty slice yields 0.
func Balance(transactions []models.Transaction) float64 {
	total := decimal.Zero
	for _, tx := range transactions {
		amount := decimal.NewFromFloat(tx.Amount)
		if tx.Type == models.TransactionTypeIncome {
			total = total.Add(amount)
		} else {
			total = total.Sub(amount)
		}
	}
	f, _ := total.Float64()
	return f
}
