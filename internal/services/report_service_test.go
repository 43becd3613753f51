package services

import (
	"testing"
	"time"

	"budgetbuddy/internal/models"
	"budgetbuddy/internal/testutil"
)

func TestGetMonthlySummary(t *testing.T) {
	t.Run("buckets_by_month_newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		march := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
		april := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

		tx1 := testutil.CreateTestTransaction(t, db, user.ID, account.ID, cat.ID, models.TransactionTypeIncome, 50000)
		db.Model(tx1).Update("date", march)
		tx2 := testutil.CreateTestTransaction(t, db, user.ID, account.ID, cat.ID, models.TransactionTypeExpense, 20000)
		db.Model(tx2).Update("date", march)
		tx3 := testutil.CreateTestTransaction(t, db, user.ID, account.ID, cat.ID, models.TransactionTypeExpense, 7000)
		db.Model(tx3).Update("date", april)

		summaries, err := svc.GetMonthlySummary(user.ID)
		testutil.AssertNoError(t, err)
		if len(summaries) != 2 {
			t.Fatalf("expected 2 months, got %d", len(summaries))
		}

		if summaries[0].MonthStart != "2026-04-01" {
			t.Errorf("expected newest month first, got %s", summaries[0].MonthStart)
		}
		if summaries[0].TotalExpense != 7000 || summaries[0].NetChange != -7000 {
			t.Errorf("unexpected April totals: %+v", summaries[0])
		}

		if summaries[1].MonthStart != "2026-03-01" {
			t.Errorf("expected 2026-03-01, got %s", summaries[1].MonthStart)
		}
		if summaries[1].TotalIncome != 50000 || summaries[1].TotalExpense != 20000 || summaries[1].NetChange != 30000 {
			t.Errorf("unexpected March totals: %+v", summaries[1])
		}
	})

	t.Run("scoped_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		account1 := testutil.CreateTestAccount(t, db, user1.ID)
		account2 := testutil.CreateTestAccount(t, db, user2.ID)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		testutil.CreateTestTransaction(t, db, user1.ID, account1.ID, cat.ID, models.TransactionTypeExpense, 1000)
		testutil.CreateTestTransaction(t, db, user2.ID, account2.ID, cat.ID, models.TransactionTypeExpense, 9000)

		summaries, err := svc.GetMonthlySummary(user1.ID)
		testutil.AssertNoError(t, err)
		if len(summaries) != 1 {
			t.Fatalf("expected 1 month, got %d", len(summaries))
		}
		if summaries[0].TotalExpense != 1000 {
			t.Errorf("expected expense 1000, got %d", summaries[0].TotalExpense)
		}
	})

	t.Run("no_transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)

		summaries, err := svc.GetMonthlySummary(user.ID)
		testutil.AssertNoError(t, err)
		if len(summaries) != 0 {
			t.Errorf("expected empty summary, got %d rows", len(summaries))
		}
	})
}

func TestGetSpendingByCategory(t *testing.T) {
	t.Run("groups_expenses_largest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)
		groceries := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
		dining := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
		salary := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)

		testutil.CreateTestTransaction(t, db, user.ID, account.ID, groceries.ID, models.TransactionTypeExpense, 12000)
		testutil.CreateTestTransaction(t, db, user.ID, account.ID, groceries.ID, models.TransactionTypeExpense, 8000)
		testutil.CreateTestTransaction(t, db, user.ID, account.ID, dining.ID, models.TransactionTypeExpense, 4500)
		// Income is excluded from spending.
		testutil.CreateTestTransaction(t, db, user.ID, account.ID, salary.ID, models.TransactionTypeIncome, 500000)

		rows, err := svc.GetSpendingByCategory(user.ID)
		testutil.AssertNoError(t, err)
		if len(rows) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(rows))
		}

		if rows[0].CategoryName != groceries.Name {
			t.Errorf("expected largest category first, got %q", rows[0].CategoryName)
		}
		if rows[0].TotalSpent != 20000 || rows[0].TransactionCount != 2 {
			t.Errorf("unexpected groceries totals: %+v", rows[0])
		}
		if rows[1].TotalSpent != 4500 || rows[1].TransactionCount != 1 {
			t.Errorf("unexpected dining totals: %+v", rows[1])
		}
	})

	t.Run("no_expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(db)
		user := testutil.CreateTestUser(t, db)

		rows, err := svc.GetSpendingByCategory(user.ID)
		testutil.AssertNoError(t, err)
		if len(rows) != 0 {
			t.Errorf("expected no rows, got %d", len(rows))
		}
	})
}
