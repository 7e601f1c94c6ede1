package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/events"
	"moneymanager/internal/ledger"
	"moneymanager/internal/models"
	"moneymanager/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db              *gorm.DB
	categoryService CategoryServicer
	changes         events.ChangePublisher
}

// NewTransactionService creates a new TransactionServicer. changes may be nil.
func NewTransactionService(db *gorm.DB, categoryService CategoryServicer, changes events.ChangePublisher) TransactionServicer {
	if changes == nil {
		changes = events.Discard
	}
	return &transactionService{
		db:              db,
		categoryService: categoryService,
		changes:         changes,
	}
}

// AddTransaction inserts a new transaction. Any ID on the input is ignored.
func (s *transactionService) AddTransaction(transaction models.Transaction) (*models.TransactionDetail, error) {
	if err := ledger.ValidateNewTransaction(transaction.Amount); err != nil {
		return nil, err
	}
	category, err := s.checkReferences(&transaction)
	if err != nil {
		return nil, err
	}

	transaction.ID = 0
	if err := s.db.Create(&transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSaveFailed, err)
	}

	s.changes.Publish(events.NewChange(events.EntityTransaction, events.ActionSaved, transaction.ID))
	return &models.TransactionDetail{Transaction: transaction, Category: *category}, nil
}

// UpdateTransaction replaces a stored transaction.
func (s *transactionService) UpdateTransaction(transaction models.Transaction) (*models.TransactionDetail, error) {
	if err := ledger.ValidateTransactionUpdate(transaction.ID, transaction.Amount); err != nil {
		return nil, err
	}
	existing, err := s.findTransaction(transaction.ID)
	if err != nil {
		return nil, err
	}
	category, err := s.checkReferences(&transaction)
	if err != nil {
		return nil, err
	}

	transaction.CreatedAt = existing.CreatedAt
	if err := s.db.Save(&transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSaveFailed, err)
	}

	s.changes.Publish(events.NewChange(events.EntityTransaction, events.ActionSaved, transaction.ID))
	return &models.TransactionDetail{Transaction: transaction, Category: *category}, nil
}

// SaveTransaction adds the transaction when its ID is zero and updates it otherwise.
func (s *transactionService) SaveTransaction(transaction models.Transaction) (*models.TransactionDetail, error) {
	if transaction.IsNew() {
		return s.AddTransaction(transaction)
	}
	return s.UpdateTransaction(transaction)
}

// checkReferences validates the type, resolves the category and normalizes
// the date to UTC (zero means now).
func (s *transactionService) checkReferences(transaction *models.Transaction) (*models.Category, error) {
	if !transaction.Type.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}

	category, err := s.categoryService.GetCategoryByID(transaction.CategoryID)
	if err != nil {
		return nil, err
	}

	if transaction.Date.IsZero() {
		transaction.Date = time.Now()
	}
	transaction.Date = transaction.Date.UTC()
	return category, nil
}

// DeleteTransaction deletes a transaction by ID
func (s *transactionService) DeleteTransaction(transactionID int64) error {
	transaction, err := s.findTransaction(transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrSaveFailed, err)
	}

	s.changes.Publish(events.NewChange(events.EntityTransaction, events.ActionDeleted, transactionID))
	return nil
}

// GetTransactionByID retrieves a transaction joined with its category.
func (s *transactionService) GetTransactionByID(transactionID int64) (*models.TransactionDetail, error) {
	transaction, err := s.findTransaction(transactionID)
	if err != nil {
		return nil, err
	}

	details, err := s.withCategories([]models.Transaction{*transaction})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *transactionService) findTransaction(transactionID int64) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}
	return &transaction, nil
}

// GetTransactions retrieves a filtered page of transactions, newest first.
func (s *transactionService) GetTransactions(filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.TransactionDetail], error) {
	page = page.Normalize()

	base := applyTransactionFilters(s.db.Model(&models.Transaction{}), filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}

	var transactions []models.Transaction
	if err := base.Order("date DESC, id DESC").Scopes(pagination.Paginate(page)).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}

	details, err := s.withCategories(transactions)
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResponse(details, page, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", f.FromDate.UTC())
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", f.ToDate.UTC())
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	return q
}

// withCategories joins transactions with their categories in one lookup.
// A category that cannot be found is replaced by an unnamed placeholder.
func (s *transactionService) withCategories(transactions []models.Transaction) ([]models.TransactionDetail, error) {
	ids := make([]int64, 0, len(transactions))
	seen := make(map[int64]bool, len(transactions))
	for _, tx := range transactions {
		if !seen[tx.CategoryID] {
			seen[tx.CategoryID] = true
			ids = append(ids, tx.CategoryID)
		}
	}

	byID := make(map[int64]models.Category, len(ids))
	if len(ids) > 0 {
		var categories []models.Category
		if err := s.db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrLoadFailed, err)
		}
		for _, c := range categories {
			byID[c.ID] = c
		}
	}

	details := make([]models.TransactionDetail, 0, len(transactions))
	for _, tx := range transactions {
		category, ok := byID[tx.CategoryID]
		if !ok {
			category = models.Category{Base: models.Base{ID: tx.CategoryID}, IsExpense: true}
		}
		details = append(details, models.TransactionDetail{Transaction: tx, Category: category})
	}
	return details, nil
}

// GetAllTransactions returns every transaction, newest first.
func (s *transactionService) GetAllTransactions() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Order("date DESC, id DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}
	return transactions, nil
}

// GetBalance returns income minus expenses over all transactions.
func (s *transactionService) GetBalance() (float64, error) {
	transactions, err := s.GetAllTransactions()
	if err != nil {
		return 0, err
	}
	return ledger.Balance(transactions), nil
}
