package services

import (
	"testing"

	"budgetbuddy/internal/models"
	"budgetbuddy/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	t.Run("creates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		category, err := svc.CreateCategory("Groceries", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)
		if category.ID == 0 {
			t.Fatal("expected non-zero category ID")
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("Groceries", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory("Groceries", models.CategoryTypeExpense)
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("", models.CategoryTypeExpense)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("invalid_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("Groceries", "transfer")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)

	_, err := svc.CreateCategory("Salary", models.CategoryTypeIncome)
	testutil.AssertNoError(t, err)
	_, err = svc.CreateCategory("Dining", models.CategoryTypeExpense)
	testutil.AssertNoError(t, err)

	categories, err := svc.GetCategories()
	testutil.AssertNoError(t, err)
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	// Ordered by name.
	if categories[0].Name != "Dining" {
		t.Errorf("expected Dining first, got %q", categories[0].Name)
	}
}

func TestGetCategoryByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		category, err := svc.CreateCategory("Groceries", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)

		got, err := svc.GetCategoryByID(category.ID)
		testutil.AssertNoError(t, err)
		if got.Name != "Groceries" {
			t.Errorf("expected Groceries, got %q", got.Name)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.GetCategoryByID(99999)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}
