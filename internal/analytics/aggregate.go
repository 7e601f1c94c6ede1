package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"moneymanager/internal/models"
)

// ChartSlice is the aggregate of one category over a period.
type ChartSlice struct {
	Category   models.Category `json:"category"`
	Amount     float64         `json:"amount"`
	Percentage float64         `json:"percentage"`
	Color      string          `json:"color"`
}

// Summary is the result of one aggregation.
type Summary struct {
	Slices      []ChartSlice `json:"slices"`
	TotalAmount float64      `json:"total_amount"`
}

// IndexCategories builds the id lookup Aggregate expects.
func IndexCategories(categories []models.Category) map[int64]models.Category {
	index := make(map[int64]models.Category, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}
	return index
}

// Aggregate groups the transactions of type filter that fall inside r by
// category and returns one slice per category, largest amount first.
// Categories missing from the lookup are replaced by an unnamed placeholder.
// The inputs are not modified.
func Aggregate(transactions []models.Transaction, categories map[int64]models.Category, filter models.TransactionType, r Range) Summary {
	sums := make(map[int64]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type != filter || !r.Contains(tx.Date) {
			continue
		}
		sums[tx.CategoryID] = sums[tx.CategoryID].Add(decimal.NewFromFloat(tx.Amount))
	}

	total := decimal.Zero
	for _, sum := range sums {
		total = total.Add(sum)
	}
	totalAmount, _ := total.Float64()

	slices := make([]ChartSlice, 0, len(sums))
	for categoryID, sum := range sums {
		category, ok := categories[categoryID]
		if !ok {
			category = models.Category{Base: models.Base{ID: categoryID}, IsExpense: true}
		}

		amount, _ := sum.Float64()
		var percentage float64
		if totalAmount > 0 {
			percentage = amount / totalAmount * 100
		}

		slices = append(slices, ChartSlice{
			Category:   category,
			Amount:     amount,
			Percentage: percentage,
			Color:      ColorFor(categoryID),
		})
	}

	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Amount != slices[j].Amount {
			return slices[i].Amount > slices[j].Amount
		}
		return slices[i].Category.ID < slices[j].Category.ID
	})

	return Summary{Slices: slices, TotalAmount: totalAmount}
}
