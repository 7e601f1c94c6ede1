package services

import (
	"testing"

	"moneymanager/internal/events"
	"moneymanager/internal/models"
	"moneymanager/internal/pagination"
	"moneymanager/internal/testutil"
)

func TestSaveCategory(t *testing.T) {
	t.Run("insert", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		rec := &changeRecorder{}
		svc := NewCategoryService(db, rec)

		cat, err := svc.SaveCategory(models.Category{Name: "  Groceries  ", IsExpense: true, ColorHex: "#FF0000"})
		testutil.AssertNoError(t, err)

		if cat.ID == 0 {
			t.Fatal("expected non-zero category ID")
		}
		if cat.Name != "Groceries" {
			t.Errorf("expected trimmed name Groceries, got %q", cat.Name)
		}
		changes := rec.all()
		if len(changes) != 1 || changes[0].Entity != events.EntityCategory || changes[0].Action != events.ActionSaved {
			t.Errorf("expected one category saved change, got %+v", changes)
		}
	})

	t.Run("replace", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db, nil)
		existing := testutil.CreateTestCategory(t, db, true)

		updated, err := svc.SaveCategory(models.Category{Base: models.Base{ID: existing.ID}, Name: "Rent", IsExpense: true})
		testutil.AssertNoError(t, err)

		if updated.Name != "Rent" {
			t.Errorf("expected name Rent, got %s", updated.Name)
		}
		if !updated.CreatedAt.Equal(existing.CreatedAt) {
			t.Errorf("expected CreatedAt to be kept, got %v want %v", updated.CreatedAt, existing.CreatedAt)
		}

		stored, err := svc.GetCategoryByID(existing.ID)
		testutil.AssertNoError(t, err)
		if stored.Name != "Rent" {
			t.Errorf("expected stored name Rent, got %s", stored.Name)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		rec := &changeRecorder{}
		svc := NewCategoryService(db, rec)

		_, err := svc.SaveCategory(models.Category{Name: "   "})
		testutil.AssertAppError(t, err, "EMPTY_NAME")

		all, err := svc.GetAllCategories()
		testutil.AssertNoError(t, err)
		if len(all) != 0 {
			t.Errorf("expected nothing stored, got %d categories", len(all))
		}
		if len(rec.all()) != 0 {
			t.Error("expected no change to be published")
		}
	})

	t.Run("unknown_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db, nil)

		_, err := svc.SaveCategory(models.Category{Base: models.Base{ID: 99999}, Name: "Ghost"})
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestGetCategories(t *testing.T) {
	t.Run("filter_by_kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db, nil)
		testutil.CreateTestCategory(t, db, true)
		testutil.CreateTestCategory(t, db, true)
		testutil.CreateTestCategory(t, db, false)

		expense := true
		page, err := svc.GetCategories(&expense, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 2 {
			t.Errorf("expected 2 expense categories, got %d", page.TotalItems)
		}

		all, err := svc.GetCategories(nil, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if all.TotalItems != 3 {
			t.Errorf("expected 3 categories, got %d", all.TotalItems)
		}
	})

	t.Run("paginated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db, nil)
		for i := 0; i < 5; i++ {
			testutil.CreateTestCategory(t, db, true)
		}

		page, err := svc.GetCategories(nil, pagination.PageRequest{Page: 2, PageSize: 2})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 2 {
			t.Errorf("expected 2 categories on page 2, got %d", len(page.Data))
		}
		if page.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", page.TotalPages)
		}
	})
}

func TestGetCategoryByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db, nil)
		cat := testutil.CreateTestCategory(t, db, false)

		got, err := svc.GetCategoryByID(cat.ID)
		testutil.AssertNoError(t, err)
		if got.Name != cat.Name {
			t.Errorf("expected name %s, got %s", cat.Name, got.Name)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db, nil)

		_, err := svc.GetCategoryByID(99999)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("unused", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		rec := &changeRecorder{}
		svc := NewCategoryService(db, rec)
		cat := testutil.CreateTestCategory(t, db, true)

		testutil.AssertNoError(t, svc.DeleteCategory(cat.ID))

		_, err := svc.GetCategoryByID(cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")

		changes := rec.all()
		if len(changes) != 1 || changes[0].Action != events.ActionDeleted || changes[0].ID != cat.ID {
			t.Errorf("expected one delete change for %d, got %+v", cat.ID, changes)
		}
	})

	t.Run("in_use", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db, nil)
		cat := testutil.CreateTestCategory(t, db, true)
		testutil.CreateTestTransaction(t, db, cat.ID, models.TransactionTypeExpense, 10)

		err := svc.DeleteCategory(cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_IN_USE")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db, nil)

		err := svc.DeleteCategory(99999)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestSeedDefaults(t *testing.T) {
	t.Run("empty_store", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db, nil)

		testutil.AssertNoError(t, svc.SeedDefaults())

		all, err := svc.GetAllCategories()
		testutil.AssertNoError(t, err)
		if len(all) != len(models.DefaultCategories()) {
			t.Fatalf("expected %d default categories, got %d", len(models.DefaultCategories()), len(all))
		}
		if all[0].Name != "Other" || !all[0].IsExpense {
			t.Errorf("expected first default to be expense category Other, got %+v", all[0])
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db, nil)

		testutil.AssertNoError(t, svc.SeedDefaults())
		testutil.AssertNoError(t, svc.SeedDefaults())

		all, err := svc.GetAllCategories()
		testutil.AssertNoError(t, err)
		if len(all) != len(models.DefaultCategories()) {
			t.Errorf("expected seeding twice to keep %d categories, got %d", len(models.DefaultCategories()), len(all))
		}
	})

	t.Run("non_empty_store", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db, nil)
		testutil.CreateTestCategory(t, db, true)

		testutil.AssertNoError(t, svc.SeedDefaults())

		all, err := svc.GetAllCategories()
		testutil.AssertNoError(t, err)
		if len(all) != 1 {
			t.Errorf("expected existing categories to be left alone, got %d", len(all))
		}
	})
}
