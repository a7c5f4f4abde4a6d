package storage

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "budgetapp/internal/errors"
	"budgetapp/internal/models"
)

// kvTransactionStore keeps the whole collection as one JSON array under
// TransactionsKey.
//
// AppendOne is a read-modify-write with no atomicity across the two steps:
// concurrent appends can overwrite each other and the last write wins. Wrap
// the store in a SerialStore when more than one goroutine writes.
type kvTransactionStore struct {
	kv  KeyValue
	key string
}

// NewLocalStore returns a LocalStore over kv using TransactionsKey.
func NewLocalStore(kv KeyValue) LocalStore {
	return &kvTransactionStore{kv: kv, key: TransactionsKey}
}

func (s *kvTransactionStore) LoadAll(ctx context.Context) ([]models.Transaction, error) {
	txs, err := s.read(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageRead, err)
	}
	return txs, nil
}

func (s *kvTransactionStore) AppendOne(ctx context.Context, tx models.Transaction) error {
	txs, err := s.read(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorageWrite, err)
	}

	txs = append(txs, tx)

	payload, err := json.Marshal(txs)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorageWrite, fmt.Errorf("encoding transactions: %w", err))
	}
	if err := s.kv.Set(ctx, s.key, string(payload)); err != nil {
		return apperrors.Wrap(apperrors.ErrStorageWrite, err)
	}
	return nil
}

func (s *kvTransactionStore) ClearAll(ctx context.Context) error {
	if err := s.kv.Remove(ctx, s.key); err != nil {
		return apperrors.Wrap(apperrors.ErrStorageClear, err)
	}
	return nil
}

func (s *kvTransactionStore) read(ctx context.Context) ([]models.Transaction, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	txs := []models.Transaction{}
	if !ok || raw == "" {
		return txs, nil
	}
	if err := json.Unmarshal([]byte(raw), &txs); err != nil {
		return nil, fmt.Errorf("decoding stored transactions: %w", err)
	}
	if txs == nil {
		// A stored JSON null decodes to nil.
		txs = []models.Transaction{}
	}
	return txs, nil
}
