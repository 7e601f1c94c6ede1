package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneymanager/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func january2024() Range {
	return Range{Start: date(2024, time.January, 1), End: date(2024, time.January, 31)}
}

func newTx(id int64, amount float64, t models.TransactionType, categoryID int64, when time.Time) models.Transaction {
	return models.Transaction{
		Base:       models.Base{ID: id},
		Amount:     amount,
		Type:       t,
		CategoryID: categoryID,
		Date:       when,
	}
}

func sampleCategories() map[int64]models.Category {
	return IndexCategories([]models.Category{
		{Base: models.Base{ID: 1}, Name: "Other", IsExpense: true},
		{Base: models.Base{ID: 2}, Name: "Food", IsExpense: true},
		{Base: models.Base{ID: 3}, Name: "Salary", IsExpense: false},
	})
}

func TestAggregate_Example(t *testing.T) {
	txs := []models.Transaction{
		newTx(1, 100, models.TransactionTypeExpense, 1, date(2024, time.January, 5)),
		newTx(2, 50, models.TransactionTypeExpense, 2, date(2024, time.January, 10)),
		newTx(3, 200, models.TransactionTypeIncome, 3, date(2024, time.January, 15)),
	}

	summary := Aggregate(txs, sampleCategories(), models.TransactionTypeExpense, january2024())

	require.Len(t, summary.Slices, 2)
	assert.Equal(t, 150.0, summary.TotalAmount)

	assert.Equal(t, int64(1), summary.Slices[0].Category.ID)
	assert.Equal(t, "Other", summary.Slices[0].Category.Name)
	assert.Equal(t, 100.0, summary.Slices[0].Amount)
	assert.InDelta(t, 66.7, summary.Slices[0].Percentage, 0.05)
	assert.Equal(t, "#E57373", summary.Slices[0].Color)

	assert.Equal(t, int64(2), summary.Slices[1].Category.ID)
	assert.Equal(t, 50.0, summary.Slices[1].Amount)
	assert.InDelta(t, 33.3, summary.Slices[1].Percentage, 0.05)
	assert.Equal(t, "#FFB74D", summary.Slices[1].Color)
}

func TestAggregate_InclusiveBoundaries(t *testing.T) {
	txs := []models.Transaction{
		newTx(1, 10, models.TransactionTypeExpense, 1, date(2024, time.January, 1)),
		newTx(2, 20, models.TransactionTypeExpense, 1, time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC)),
		newTx(3, 40, models.TransactionTypeExpense, 1, time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC)),
		newTx(4, 80, models.TransactionTypeExpense, 1, date(2024, time.February, 1)),
	}

	summary := Aggregate(txs, sampleCategories(), models.TransactionTypeExpense, january2024())

	require.Len(t, summary.Slices, 1)
	assert.Equal(t, 30.0, summary.Slices[0].Amount)
	assert.Equal(t, 30.0, summary.TotalAmount)
}

func TestAggregate_PercentagesSumToHundred(t *testing.T) {
	var txs []models.Transaction
	for i := int64(1); i <= 12; i++ {
		txs = append(txs, newTx(i, float64(i)*3.33, models.TransactionTypeExpense, i%5+1, date(2024, time.January, int(i))))
	}

	summary := Aggregate(txs, sampleCategories(), models.TransactionTypeExpense, january2024())

	var sum float64
	for _, s := range summary.Slices {
		sum += s.Percentage
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestAggregate_SkipsCategoriesWithoutMatches(t *testing.T) {
	txs := []models.Transaction{
		newTx(1, 10, models.TransactionTypeExpense, 1, date(2024, time.January, 3)),
		newTx(2, 10, models.TransactionTypeIncome, 2, date(2024, time.January, 3)),
		newTx(3, 10, models.TransactionTypeExpense, 3, date(2024, time.March, 3)),
	}

	summary := Aggregate(txs, sampleCategories(), models.TransactionTypeExpense, january2024())

	require.Len(t, summary.Slices, 1)
	assert.Equal(t, int64(1), summary.Slices[0].Category.ID)
}

func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate(nil, nil, models.TransactionTypeExpense, january2024())
	assert.Empty(t, summary.Slices)
	assert.NotNil(t, summary.Slices)
	assert.Equal(t, 0.0, summary.TotalAmount)
}

func TestAggregate_MissingCategoryPlaceholder(t *testing.T) {
	txs := []models.Transaction{
		newTx(1, 10, models.TransactionTypeExpense, 42, date(2024, time.January, 3)),
	}

	summary := Aggregate(txs, sampleCategories(), models.TransactionTypeExpense, january2024())

	require.Len(t, summary.Slices, 1)
	slice := summary.Slices[0]
	assert.Equal(t, int64(42), slice.Category.ID)
	assert.Equal(t, "", slice.Category.Name)
	assert.Equal(t, 100.0, slice.Percentage)
	assert.Equal(t, ColorFor(42), slice.Color)
}

func TestAggregate_Idempotent(t *testing.T) {
	txs := []models.Transaction{
		newTx(1, 5, models.TransactionTypeExpense, 1, date(2024, time.January, 9)),
		newTx(2, 5, models.TransactionTypeExpense, 2, date(2024, time.January, 9)),
		newTx(3, 7, models.TransactionTypeExpense, 3, date(2024, time.January, 9)),
	}
	day := Range{Start: date(2024, time.January, 9), End: date(2024, time.January, 9)}
	cats := sampleCategories()

	first := Aggregate(txs, cats, models.TransactionTypeExpense, day)
	second := Aggregate(txs, cats, models.TransactionTypeExpense, day)

	assert.Equal(t, first, second)
	// equal amounts are ordered by category id
	assert.Equal(t, int64(3), first.Slices[0].Category.ID)
	assert.Equal(t, int64(1), first.Slices[1].Category.ID)
	assert.Equal(t, int64(2), first.Slices[2].Category.ID)
}

func TestAggregate_ConvertsToRangeLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	r := Range{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, tokyo),
		End:   time.Date(2024, time.January, 31, 0, 0, 0, 0, tokyo),
	}
	// 2023-12-31 20:00 UTC is already January 1st in Tokyo.
	txs := []models.Transaction{
		newTx(1, 10, models.TransactionTypeExpense, 1, time.Date(2023, time.December, 31, 20, 0, 0, 0, time.UTC)),
	}

	summary := Aggregate(txs, sampleCategories(), models.TransactionTypeExpense, r)
	assert.Len(t, summary.Slices, 1)
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, "#E57373", ColorFor(1))
	assert.Equal(t, "#90A4AE", ColorFor(8))
	assert.Equal(t, "#90A4AE", ColorFor(16))
	assert.Equal(t, "#E57373", ColorFor(9))
	assert.Equal(t, "#90A4AE", ColorFor(0))
	assert.Equal(t, NeutralColor, ColorFor(-3))
}
