package services

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"budgetbuddy/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("hashes_password_and_lowercases_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("alice", "Alice@Example.com", "supersecret")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.Email != "alice@example.com" {
			t.Errorf("expected lowercase email, got %q", user.Email)
		}
		if user.Password == "supersecret" {
			t.Error("password stored in plaintext")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersecret")); err != nil {
			t.Errorf("stored hash does not match password: %v", err)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("alice", "alice@example.com", "supersecret")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("alice2", "Alice@example.com", "supersecret")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "alice@example.com", "supersecret")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("alice", "", "supersecret")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("alice", "alice@example.com", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUsers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	testutil.CreateTestUser(t, db)
	testutil.CreateTestUser(t, db)

	users, err := svc.GetUsers()
	testutil.AssertNoError(t, err)
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestGetUserByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		got, err := svc.GetUserByID(user.ID)
		testutil.AssertNoError(t, err)
		if got.Email != user.Email {
			t.Errorf("expected email %q, got %q", user.Email, got.Email)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByID(99999)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		username := "newname"
		updated, err := svc.UpdateUser(user.ID, UserUpdateFields{Username: &username})
		testutil.AssertNoError(t, err)
		if updated.Username != "newname" {
			t.Errorf("expected username newname, got %q", updated.Username)
		}
		if updated.Email != user.Email {
			t.Errorf("expected email unchanged, got %q", updated.Email)
		}
	})

	t.Run("rehashes_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		password := "newpassword123"
		updated, err := svc.UpdateUser(user.ID, UserUpdateFields{Password: &password})
		testutil.AssertNoError(t, err)
		if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte(password)); err != nil {
			t.Errorf("stored hash does not match new password: %v", err)
		}
	})

	t.Run("empty_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateUser(user.ID, UserUpdateFields{})
		testutil.AssertAppError(t, err, "NO_FIELDS_TO_UPDATE")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		username := "ghost"
		_, err := svc.UpdateUser(99999, UserUpdateFields{Username: &username})
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.AssertNoError(t, svc.DeleteUser(user.ID))

		_, err := svc.GetUserByID(user.ID)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		err := svc.DeleteUser(99999)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
