package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/events"
	"moneymanager/internal/ledger"
	"moneymanager/internal/logger"
	"moneymanager/internal/models"
	"moneymanager/internal/pagination"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db      *gorm.DB
	changes events.ChangePublisher
}

// NewCategoryService creates a new CategoryServicer. changes may be nil.
func NewCategoryService(db *gorm.DB, changes events.ChangePublisher) CategoryServicer {
	if changes == nil {
		changes = events.Discard
	}
	return &categoryService{db: db, changes: changes}
}

// SaveCategory inserts the category when its ID is zero and replaces the
// stored one otherwise.
func (s *categoryService) SaveCategory(category models.Category) (*models.Category, error) {
	name, err := ledger.ValidateCategory(category.Name)
	if err != nil {
		return nil, err
	}
	category.Name = name

	if category.IsNew() {
		if err := s.db.Create(&category).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrSaveFailed, err)
		}
	} else {
		existing, err := s.GetCategoryByID(category.ID)
		if err != nil {
			return nil, err
		}
		category.CreatedAt = existing.CreatedAt
		if err := s.db.Save(&category).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrSaveFailed, err)
		}
	}

	s.changes.Publish(events.NewChange(events.EntityCategory, events.ActionSaved, category.ID))
	return &category, nil
}

// GetCategories retrieves a page of categories, optionally only expense or
// only income ones.
func (s *categoryService) GetCategories(isExpense *bool, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	page = page.Normalize()

	base := s.db.Model(&models.Category{})
	if isExpense != nil {
		base = base.Where("is_expense = ?", *isExpense)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}

	var categories []models.Category
	if err := base.Order("id ASC").Scopes(pagination.Paginate(page)).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}

	result := pagination.NewPageResponse(categories, page, totalItems)
	return &result, nil
}

// GetAllCategories returns every category ordered by id.
func (s *categoryService) GetAllCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by ID
func (s *categoryService) GetCategoryByID(categoryID int64) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}
	return &category, nil
}

// DeleteCategory deletes a category that no transaction refers to.
func (s *categoryService) DeleteCategory(categoryID int64) error {
	category, err := s.GetCategoryByID(categoryID)
	if err != nil {
		return err
	}

	var inUse int64
	if err := s.db.Model(&models.Transaction{}).Where("category_id = ?", categoryID).Count(&inUse).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}
	if inUse > 0 {
		return apperrors.ErrCategoryInUse
	}

	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrSaveFailed, err)
	}

	s.changes.Publish(events.NewChange(events.EntityCategory, events.ActionDeleted, categoryID))
	return nil
}

// SeedDefaults inserts the default categories when the store is empty.
func (s *categoryService) SeedDefaults() error {
	var count int64
	if err := s.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrLoadFailed, err)
	}
	if count > 0 {
		return nil
	}

	defaults := models.DefaultCategories()
	if err := s.db.Create(&defaults).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrSaveFailed, err)
	}

	logger.Get().Infow("seeded default categories", "count", len(defaults))
	s.changes.Publish(events.NewChange(events.EntityCategory, events.ActionSaved, 0))
	return nil
}
