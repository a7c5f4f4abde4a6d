// Package storage holds the two persistence tiers of the ledger: a local
// key-value store holding the whole collection as one JSON blob, and a remote
// relational table. The tiers are independent; nothing here keeps them in sync.
package storage

import (
	"context"

	"budgetapp/internal/models"
	"budgetapp/internal/pagination"
)

// TransactionsKey is the key the local tier stores the collection under.
const TransactionsKey = "@budgetapp_transactions"

// KeyValue is a minimal durable string store.
type KeyValue interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// LocalStore persists the full transaction list on-device.
type LocalStore interface {
	// LoadAll returns the persisted collection, or an empty slice if nothing
	// has been stored yet. Errors are ErrStorageRead.
	LoadAll(ctx context.Context) ([]models.Transaction, error)
	// AppendOne adds tx to the end of the persisted collection. Errors are
	// ErrStorageWrite.
	AppendOne(ctx context.Context, tx models.Transaction) error
	// ClearAll deletes the persisted collection. Errors are ErrStorageWrite.
	ClearAll(ctx context.Context) error
}

// RemoteStore is CRUD against the remote transactions table. Errors are
// ErrRemote wrapping the backend's error.
type RemoteStore interface {
	Insert(ctx context.Context, tx models.Transaction) error
	// SelectAll returns every row ordered by date, newest first.
	SelectAll(ctx context.Context) ([]models.Transaction, error)
	SelectPage(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	UpdateByID(ctx context.Context, tx models.Transaction) error
	DeleteByID(ctx context.Context, id string) error
}
