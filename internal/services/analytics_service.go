package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"moneymanager/internal/analytics"
	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/events"
	"moneymanager/internal/logger"
	"moneymanager/internal/models"
)

// AnalyticsOption configures an analytics service.
type AnalyticsOption func(*analyticsService)

// WithClock overrides the time source used to compute current periods.
func WithClock(now func() time.Time) AnalyticsOption {
	return func(s *analyticsService) { s.now = now }
}

// WithLocation sets the location calendar days are computed in.
func WithLocation(loc *time.Location) AnalyticsOption {
	return func(s *analyticsService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithWeekStart sets the first day of a WEEK period.
func WithWeekStart(day time.Weekday) AnalyticsOption {
	return func(s *analyticsService) { s.weekStart = day }
}

// analyticsService owns the analysis view state and recomputes it whenever
// the selection or the underlying data changes.
type analyticsService struct {
	categoryService    CategoryServicer
	transactionService TransactionServicer

	now       func() time.Time
	loc       *time.Location
	weekStart time.Weekday

	mu    sync.Mutex
	view  AnalysisView
	views *events.Topic[AnalysisView]
}

// NewAnalyticsService creates an AnalyticsServicer whose view starts on
// expenses for the current month. The first computation happens on the
// first call to Refresh or any setter.
func NewAnalyticsService(categoryService CategoryServicer, transactionService TransactionServicer, opts ...AnalyticsOption) AnalyticsServicer {
	s := &analyticsService{
		categoryService:    categoryService,
		transactionService: transactionService,
		now:                time.Now,
		loc:                time.Local,
		weekStart:          time.Monday,
		views:              events.NewTopic[AnalysisView](),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.view = AnalysisView{
		SelectedType: models.TransactionTypeExpense,
		Period:       s.CurrentPeriod(analytics.GranularityMonth),
		Slices:       []analytics.ChartSlice{},
	}
	return s
}

// Location returns the location calendar days are computed in.
func (s *analyticsService) Location() *time.Location {
	return s.loc
}

// CurrentPeriod returns the period of the given granularity containing today.
// CUSTOM keeps the range currently selected in the view.
func (s *analyticsService) CurrentPeriod(granularity analytics.Granularity) analytics.Period {
	s.mu.Lock()
	previous := s.view.Period
	s.mu.Unlock()
	return analytics.CurrentPeriod(granularity, s.now().In(s.loc), s.weekStart, previous)
}

// Summary aggregates a fresh snapshot of the stores for the given selection.
func (s *analyticsService) Summary(transactionType models.TransactionType, period analytics.Period) (*analytics.Summary, error) {
	if !transactionType.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}

	transactions, categories, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	summary := analytics.Aggregate(transactions, analytics.IndexCategories(categories), transactionType, period.Range)
	return &summary, nil
}

// snapshot loads transactions and categories concurrently.
func (s *analyticsService) snapshot() ([]models.Transaction, []models.Category, error) {
	var (
		transactions []models.Transaction
		categories   []models.Category
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		transactions, err = s.transactionService.GetAllTransactions()
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryService.GetAllCategories()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return transactions, categories, nil
}

// View returns the current analysis view.
func (s *analyticsService) View() AnalysisView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Subscribe streams the view, starting with the latest published one.
func (s *analyticsService) Subscribe(ctx context.Context) <-chan AnalysisView {
	return s.views.Subscribe(ctx)
}

// Refresh recomputes the view for the current selection.
func (s *analyticsService) Refresh() AnalysisView {
	view, _ := s.update(func(*AnalysisView) error { return nil })
	return view
}

// SetTransactionType switches the view between income and expense.
func (s *analyticsService) SetTransactionType(transactionType models.TransactionType) (AnalysisView, error) {
	if !transactionType.Valid() {
		return s.View(), apperrors.ErrInvalidTransactionType
	}
	return s.update(func(v *AnalysisView) error {
		v.SelectedType = transactionType
		return nil
	})
}

// SetPeriod moves the view to the current period of the given granularity.
func (s *analyticsService) SetPeriod(granularity analytics.Granularity) AnalysisView {
	view, _ := s.update(func(v *AnalysisView) error {
		v.Period = analytics.CurrentPeriod(granularity, s.now().In(s.loc), s.weekStart, v.Period)
		return nil
	})
	return view
}

// SetCustomRange selects an explicit range of days.
func (s *analyticsService) SetCustomRange(start, end time.Time) (AnalysisView, error) {
	period, err := analytics.NewCustomPeriod(start.In(s.loc), end.In(s.loc))
	if err != nil {
		return s.View(), apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error())
	}
	return s.update(func(v *AnalysisView) error {
		v.Period = period
		return nil
	})
}

// NavigatePeriod moves the selected period one step back (-1) or forward (1).
func (s *analyticsService) NavigatePeriod(direction int) (AnalysisView, error) {
	return s.update(func(v *AnalysisView) error {
		period, err := v.Period.Navigate(direction)
		if err != nil {
			return apperrors.ErrInvalidDirection
		}
		v.Period = period
		return nil
	})
}

// update applies change to the selection under the view lock, publishes a
// loading view and then the recomputed one. A rejected change leaves the view
// untouched. A result is dropped when a newer update started while it was
// being computed.
func (s *analyticsService) update(change func(*AnalysisView) error) (AnalysisView, error) {
	s.mu.Lock()
	next := s.view
	if err := change(&next); err != nil {
		view := s.view
		s.mu.Unlock()
		return view, err
	}
	s.view = next
	s.view.Version++
	s.view.IsLoading = true
	version := s.view.Version
	selectedType := s.view.SelectedType
	period := s.view.Period
	loading := s.view
	s.mu.Unlock()
	s.views.Publish(loading)

	summary, err := s.Summary(selectedType, period)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view.Version != version {
		return s.view, nil
	}

	s.view.IsLoading = false
	if err != nil {
		logger.Get().Warnw("analysis view recompute failed", "error", err)
		s.view.Slices = []analytics.ChartSlice{}
		s.view.TotalAmount = 0
		s.view.Error = apperrors.ErrLoadFailed.Message
	} else {
		s.view.Slices = summary.Slices
		s.view.TotalAmount = summary.TotalAmount
		s.view.Error = ""
	}
	s.views.Publish(s.view)
	return s.view, nil
}

// Run recomputes the view on every data change until ctx is done.
func (s *analyticsService) Run(ctx context.Context, changes *events.Topic[events.Change]) {
	log := logger.Named("analytics")
	s.Refresh()

	for change := range changes.Subscribe(ctx) {
		log.Debugw("data changed", "entity", change.Entity, "action", change.Action, "id", change.ID)
		s.Refresh()
	}
}
