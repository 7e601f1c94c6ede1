package services

import (
	"context"
	"time"

	"moneymanager/internal/analytics"
	"moneymanager/internal/events"
	"moneymanager/internal/models"
	"moneymanager/internal/pagination"
)

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	SaveCategory(category models.Category) (*models.Category, error)
	GetCategories(isExpense *bool, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetAllCategories() ([]models.Category, error)
	GetCategoryByID(categoryID int64) (*models.Category, error)
	DeleteCategory(categoryID int64) error
	SeedDefaults() error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *int64
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	AddTransaction(transaction models.Transaction) (*models.TransactionDetail, error)
	UpdateTransaction(transaction models.Transaction) (*models.TransactionDetail, error)
	SaveTransaction(transaction models.Transaction) (*models.TransactionDetail, error)
	DeleteTransaction(transactionID int64) error
	GetTransactionByID(transactionID int64) (*models.TransactionDetail, error)
	GetTransactions(filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.TransactionDetail], error)
	GetAllTransactions() ([]models.Transaction, error)
	GetBalance() (float64, error)
}

// AnalysisView is the server-side state of the analysis screen.
type AnalysisView struct {
	Version      uint64                 `json:"version"`
	SelectedType models.TransactionType `json:"selected_type"`
	Period       analytics.Period       `json:"period"`
	Slices       []analytics.ChartSlice `json:"slices"`
	TotalAmount  float64                `json:"total_amount"`
	IsLoading    bool                   `json:"is_loading"`
	Error        string                 `json:"error,omitempty"`
}

// AnalyticsServicer defines the contract for the analysis view and ad-hoc summaries.
type AnalyticsServicer interface {
	Summary(transactionType models.TransactionType, period analytics.Period) (*analytics.Summary, error)
	CurrentPeriod(granularity analytics.Granularity) analytics.Period
	Location() *time.Location

	View() AnalysisView
	Refresh() AnalysisView
	SetTransactionType(transactionType models.TransactionType) (AnalysisView, error)
	SetPeriod(granularity analytics.Granularity) AnalysisView
	SetCustomRange(start, end time.Time) (AnalysisView, error)
	NavigatePeriod(direction int) (AnalysisView, error)
	Subscribe(ctx context.Context) <-chan AnalysisView
	Run(ctx context.Context, changes *events.Topic[events.Change])
}
