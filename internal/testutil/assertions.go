package testutil

import (
	"errors"
	"testing"

	apperrors "budgetapp/internal/errors"
	"budgetapp/internal/models"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertTransactionEqual compares two transactions field by field, using
// numeric equality for amounts so 12.50 and 12.5 match.
func AssertTransactionEqual(t *testing.T, want, got models.Transaction) {
	t.Helper()

	if !want.Amount.Equal(got.Amount) {
		t.Errorf("amount: want %s, got %s", want.Amount, got.Amount)
	}
	want.Amount = got.Amount
	if want != got {
		t.Errorf("transaction mismatch:\nwant %+v\n got %+v", want, got)
	}
}
