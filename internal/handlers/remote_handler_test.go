package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetapp/internal/errors"
	"budgetapp/internal/models"
	"budgetapp/internal/pagination"
	"budgetapp/internal/services"
	"budgetapp/internal/testutil"
)

func setupRemoteRouter(handler *RemoteHandler) *gin.Engine {
	handler.now = func() time.Time { return fixedNow }
	r := gin.New()
	r.POST("/remote/transactions", handler.CreateTransaction)
	r.GET("/remote/transactions", handler.ListTransactions)
	r.GET("/remote/transactions/page", handler.ListTransactionsPage)
	r.PUT("/remote/transactions/:id", handler.UpdateTransaction)
	r.DELETE("/remote/transactions/:id", handler.DeleteTransaction)
	return r
}

func TestRemoteHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var inserted models.Transaction
		remote := &mockRemoteService{
			createTransactionFn: func(_ context.Context, tx models.Transaction) (*models.Transaction, error) {
				inserted = tx
				return &tx, nil
			},
		}
		r := setupRemoteRouter(NewRemoteHandler(remote))

		rec := doRequest(r, "POST", "/remote/transactions", `{"amount":9.99,"type":"expense","category":"entertainment","title":"Movie"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if inserted.ID == "" || inserted.Category != models.CategoryEntertainment {
			t.Errorf("unexpected inserted transaction %+v", inserted)
		}
	})

	t.Run("returns 502 on backend failure", func(t *testing.T) {
		remote := &mockRemoteService{
			createTransactionFn: func(context.Context, models.Transaction) (*models.Transaction, error) {
				return nil, apperrors.Wrap(apperrors.ErrRemote, fmt.Errorf("connection refused"))
			},
		}
		r := setupRemoteRouter(NewRemoteHandler(remote))

		rec := doRequest(r, "POST", "/remote/transactions", `{"amount":1,"type":"expense","category":"food","title":"X"}`)

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "REMOTE_ERROR")
	})

	t.Run("returns 404 when remote disabled", func(t *testing.T) {
		r := setupRemoteRouter(NewRemoteHandler(services.NewDisabledRemoteService()))

		rec := doRequest(r, "POST", "/remote/transactions", `{"amount":1,"type":"expense","category":"food","title":"X"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "REMOTE_DISABLED")
	})
}

func TestRemoteHandler_ListTransactions(t *testing.T) {
	t.Run("returns all", func(t *testing.T) {
		remote := &mockRemoteService{
			listTransactionsFn: func(context.Context) ([]models.Transaction, error) {
				return []models.Transaction{testutil.Income(5, "2024-05-01")}, nil
			},
		}
		r := setupRemoteRouter(NewRemoteHandler(remote))

		rec := doRequest(r, "GET", "/remote/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if n := len(parseJSON(t, rec)["transactions"].([]interface{})); n != 1 {
			t.Errorf("expected 1 transaction, got %d", n)
		}
	})

	t.Run("page passes parameters", func(t *testing.T) {
		var got pagination.PageRequest
		remote := &mockRemoteService{
			listTransactionsPageFn: func(_ context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
				got = page
				resp := pagination.NewPageResponse([]models.Transaction{}, page.Page, page.PageSize, 0)
				return &resp, nil
			},
		}
		r := setupRemoteRouter(NewRemoteHandler(remote))

		rec := doRequest(r, "GET", "/remote/transactions/page?page=3&page_size=10", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.Page != 3 || got.PageSize != 10 {
			t.Errorf("unexpected page request %+v", got)
		}
	})

	t.Run("page rejects negative page", func(t *testing.T) {
		r := setupRemoteRouter(NewRemoteHandler(&mockRemoteService{}))

		rec := doRequest(r, "GET", "/remote/transactions/page?page=-1", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestRemoteHandler_UpdateTransaction(t *testing.T) {
	var updated models.Transaction
	remote := &mockRemoteService{
		updateTransactionFn: func(_ context.Context, tx models.Transaction) (*models.Transaction, error) {
			updated = tx
			return &tx, nil
		},
	}
	r := setupRemoteRouter(NewRemoteHandler(remote))

	rec := doRequest(r, "PUT", "/remote/transactions/abc-123", `{"amount":3,"type":"expense","category":"bills","title":"Water","date":"2024-05-01","time":"07:15"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if updated.ID != "abc-123" || updated.Title != "Water" {
		t.Errorf("expected path id to win, got %+v", updated)
	}
}

func TestRemoteHandler_DeleteTransaction(t *testing.T) {
	var deleted string
	remote := &mockRemoteService{
		deleteTransactionFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	r := setupRemoteRouter(NewRemoteHandler(remote))

	rec := doRequest(r, "DELETE", "/remote/transactions/abc-123", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "abc-123" {
		t.Errorf("expected abc-123 deleted, got %q", deleted)
	}
}
