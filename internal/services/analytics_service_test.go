package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"moneymanager/internal/analytics"
	"moneymanager/internal/events"
	"moneymanager/internal/models"
	"moneymanager/internal/testutil"

	"gorm.io/gorm"
)

var analyticsNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func newAnalyticsService(db *gorm.DB, changes events.ChangePublisher) (AnalyticsServicer, TransactionServicer) {
	categories := NewCategoryService(db, changes)
	transactions := NewTransactionService(db, categories, changes)
	analyticsSvc := NewAnalyticsService(categories, transactions,
		WithClock(func() time.Time { return analyticsNow }),
		WithLocation(time.UTC),
	)
	return analyticsSvc, transactions
}

// blockingTransactions holds the first GetAllTransactions call until release
// is closed.
type blockingTransactions struct {
	TransactionServicer
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func (b *blockingTransactions) GetAllTransactions() ([]models.Transaction, error) {
	first := false
	b.once.Do(func() { first = true })
	if first {
		close(b.started)
		<-b.release
	}
	return b.TransactionServicer.GetAllTransactions()
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAnalyticsSummary(t *testing.T) {
	t.Run("example", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _ := newAnalyticsService(db, nil)
		food := testutil.CreateTestCategory(t, db, true)
		transport := testutil.CreateTestCategory(t, db, true)
		testutil.CreateTestTransactionOn(t, db, food.ID, models.TransactionTypeExpense, 30, day(2024, 1, 3))
		testutil.CreateTestTransactionOn(t, db, food.ID, models.TransactionTypeExpense, 20, day(2024, 1, 31))
		testutil.CreateTestTransactionOn(t, db, transport.ID, models.TransactionTypeExpense, 50, day(2024, 1, 1))
		testutil.CreateTestTransactionOn(t, db, transport.ID, models.TransactionTypeExpense, 70, day(2024, 2, 1))

		period := analytics.Period{Granularity: analytics.GranularityMonth, Range: analytics.Range{Start: day(2024, 1, 1), End: day(2024, 1, 31)}}
		summary, err := svc.Summary(models.TransactionTypeExpense, period)
		testutil.AssertNoError(t, err)

		if summary.TotalAmount != 100 {
			t.Errorf("expected total 100, got %v", summary.TotalAmount)
		}
		if len(summary.Slices) != 2 {
			t.Fatalf("expected 2 slices, got %d", len(summary.Slices))
		}
		if summary.Slices[0].Category.ID != food.ID || summary.Slices[0].Percentage != 50 {
			t.Errorf("expected food at 50%%, got %+v", summary.Slices[0])
		}
	})

	t.Run("invalid_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _ := newAnalyticsService(db, nil)

		_, err := svc.Summary("transfer", svc.CurrentPeriod(analytics.GranularityMonth))
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})
}

func TestAnalyticsView(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _ := newAnalyticsService(db, nil)

		view := svc.View()
		if view.SelectedType != models.TransactionTypeExpense {
			t.Errorf("expected expense by default, got %s", view.SelectedType)
		}
		if view.Period.Granularity != analytics.GranularityMonth ||
			!view.Period.Start.Equal(day(2024, 1, 1)) || !view.Period.End.Equal(day(2024, 1, 15)) {
			t.Errorf("expected month to date, got %+v", view.Period)
		}
	})

	t.Run("selection_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _ := newAnalyticsService(db, nil)
		salary := testutil.CreateTestCategory(t, db, false)
		testutil.CreateTestTransactionOn(t, db, salary.ID, models.TransactionTypeIncome, 500, day(2024, 1, 10))
		testutil.CreateTestTransactionOn(t, db, salary.ID, models.TransactionTypeIncome, 300, day(2023, 12, 10))

		view, err := svc.SetTransactionType(models.TransactionTypeIncome)
		testutil.AssertNoError(t, err)
		if view.IsLoading || view.TotalAmount != 500 {
			t.Errorf("expected loaded income total 500, got %+v", view)
		}

		view, err = svc.NavigatePeriod(-1)
		testutil.AssertNoError(t, err)
		if !view.Period.Start.Equal(day(2023, 12, 1)) || !view.Period.End.Equal(day(2023, 12, 31)) {
			t.Errorf("expected December 2023, got %+v", view.Period)
		}
		if view.TotalAmount != 300 {
			t.Errorf("expected December total 300, got %v", view.TotalAmount)
		}

		view = svc.SetPeriod(analytics.GranularityYear)
		if !view.Period.Start.Equal(day(2024, 1, 1)) || view.TotalAmount != 500 {
			t.Errorf("expected 2024 to date with 500, got %+v", view)
		}

		view, err = svc.SetCustomRange(day(2023, 12, 1), day(2024, 1, 31))
		testutil.AssertNoError(t, err)
		if view.Period.Granularity != analytics.GranularityCustom || view.TotalAmount != 800 {
			t.Errorf("expected custom range with 800, got %+v", view)
		}

		view = svc.SetPeriod(analytics.GranularityCustom)
		if !view.Period.Start.Equal(day(2023, 12, 1)) || !view.Period.End.Equal(day(2024, 1, 31)) {
			t.Errorf("expected custom range to be kept, got %+v", view.Period)
		}
	})

	t.Run("invalid_input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _ := newAnalyticsService(db, nil)
		before := svc.View()

		_, err := svc.SetTransactionType("transfer")
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")

		_, err = svc.NavigatePeriod(2)
		testutil.AssertAppError(t, err, "INVALID_DIRECTION")

		_, err = svc.SetCustomRange(day(2024, 2, 1), day(2024, 1, 1))
		testutil.AssertAppError(t, err, "INVALID_PERIOD")

		if svc.View().Version != before.Version {
			t.Error("expected rejected input to leave the view untouched")
		}
	})

	t.Run("load_failure", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc, _ := newAnalyticsService(db, nil)
		testutil.TeardownTestDB(t, db)

		view := svc.Refresh()
		if view.Error != "load failed" {
			t.Errorf("expected load failed, got %q", view.Error)
		}
		if view.IsLoading || len(view.Slices) != 0 {
			t.Errorf("expected an empty settled view, got %+v", view)
		}
	})
}

func TestAnalyticsViewConcurrency(t *testing.T) {
	t.Run("stale_result_dropped", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		categories := NewCategoryService(db, nil)
		blocking := &blockingTransactions{
			TransactionServicer: NewTransactionService(db, categories, nil),
			started:             make(chan struct{}),
			release:             make(chan struct{}),
		}
		svc := NewAnalyticsService(categories, blocking,
			WithClock(func() time.Time { return analyticsNow }),
			WithLocation(time.UTC),
		)
		food := testutil.CreateTestCategory(t, db, true)
		salary := testutil.CreateTestCategory(t, db, false)
		testutil.CreateTestTransactionOn(t, db, food.ID, models.TransactionTypeExpense, 25, day(2024, 1, 3))
		testutil.CreateTestTransactionOn(t, db, salary.ID, models.TransactionTypeIncome, 40, day(2024, 1, 5))

		refreshed := make(chan AnalysisView, 1)
		go func() { refreshed <- svc.Refresh() }()
		<-blocking.started

		view, err := svc.SetTransactionType(models.TransactionTypeIncome)
		testutil.AssertNoError(t, err)
		if view.Version != 2 || view.TotalAmount != 40 {
			t.Fatalf("expected income view at version 2, got %+v", view)
		}

		close(blocking.release)
		stale := <-refreshed
		if stale.SelectedType != models.TransactionTypeIncome || stale.TotalAmount != 40 {
			t.Errorf("expected the older refresh to return the newer view, got %+v", stale)
		}

		final := svc.View()
		if final.SelectedType != models.TransactionTypeIncome || final.TotalAmount != 40 ||
			final.IsLoading || final.Version != 2 {
			t.Errorf("expected settled income view with total 40, got %+v", final)
		}
	})

	t.Run("concurrent_navigation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc, _ := newAnalyticsService(db, nil)

		const steps = 12
		var wg sync.WaitGroup
		for i := 0; i < steps; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := svc.NavigatePeriod(-1); err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		view := svc.View()
		if !view.Period.Start.Equal(day(2023, 1, 1)) || !view.Period.End.Equal(day(2023, 1, 31)) {
			t.Errorf("expected January 2023 after %d steps back, got %+v", steps, view.Period)
		}
		if view.Version != steps {
			t.Errorf("expected version %d, got %d", steps, view.Version)
		}
	})
}

func TestAnalyticsRun(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	changes := events.NewTopic[events.Change]()
	svc, transactions := newAnalyticsService(db, changes)
	food := testutil.CreateTestCategory(t, db, true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	views := svc.Subscribe(ctx)

	done := make(chan struct{})
	go func() {
		svc.Run(ctx, changes)
		close(done)
	}()

	_, err := transactions.AddTransaction(models.Transaction{
		Amount:     25,
		Date:       day(2024, 1, 12),
		Type:       models.TransactionTypeExpense,
		CategoryID: food.ID,
	})
	testutil.AssertNoError(t, err)

	deadline := time.After(5 * time.Second)
	for {
		select {
		case view := <-views:
			if !view.IsLoading && view.TotalAmount == 25 {
				cancel()
				<-done
				return
			}
		case <-deadline:
			t.Fatalf("view never reflected the new transaction, last: %+v", svc.View())
		}
	}
}
