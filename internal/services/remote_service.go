package services

import (
	"context"

	"go.uber.org/zap"

	apperrors "budgetapp/internal/errors"
	"budgetapp/internal/models"
	"budgetapp/internal/pagination"
	"budgetapp/internal/storage"
)

// remoteService validates transactions and forwards them to the remote
// store. It never touches the local ledger.
type remoteService struct {
	store storage.RemoteStore
	log   *zap.SugaredLogger
}

// NewRemoteService creates a new RemoteServicer over the given remote store.
func NewRemoteService(store storage.RemoteStore, log *zap.SugaredLogger) RemoteServicer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &remoteService{store: store, log: log}
}

// CreateTransaction inserts tx remotely.
func (s *remoteService) CreateTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Insert(ctx, tx); err != nil {
		s.log.Errorw("remote insert failed", "error", err, "transaction_id", tx.ID)
		return nil, err
	}
	return &tx, nil
}

// ListTransactions returns every remote transaction, newest date first.
func (s *remoteService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	txs, err := s.store.SelectAll(ctx)
	if err != nil {
		s.log.Errorw("remote select failed", "error", err)
		return nil, err
	}
	return txs, nil
}

// ListTransactionsPage returns one page of remote transactions.
func (s *remoteService) ListTransactionsPage(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()
	result, err := s.store.SelectPage(ctx, page)
	if err != nil {
		s.log.Errorw("remote page select failed", "error", err, "page", page.Page)
		return nil, err
	}
	return result, nil
}

// UpdateTransaction overwrites the remote row with tx's id. A missing row is
// not an error.
func (s *remoteService) UpdateTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.UpdateByID(ctx, tx); err != nil {
		s.log.Errorw("remote update failed", "error", err, "transaction_id", tx.ID)
		return nil, err
	}
	return &tx, nil
}

// DeleteTransaction removes the remote row with id. A missing row is not an
// error.
func (s *remoteService) DeleteTransaction(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.Validation("id", "id is required")
	}
	if err := s.store.DeleteByID(ctx, id); err != nil {
		s.log.Errorw("remote delete failed", "error", err, "transaction_id", id)
		return err
	}
	return nil
}

// disabledRemoteService answers every call with ErrRemoteDisabled.
type disabledRemoteService struct{}

// NewDisabledRemoteService returns a RemoteServicer for deployments without a
// remote backend.
func NewDisabledRemoteService() RemoteServicer { return disabledRemoteService{} }

func (disabledRemoteService) CreateTransaction(context.Context, models.Transaction) (*models.Transaction, error) {
	return nil, apperrors.ErrRemoteDisabled
}

func (disabledRemoteService) ListTransactions(context.Context) ([]models.Transaction, error) {
	return nil, apperrors.ErrRemoteDisabled
}

func (disabledRemoteService) ListTransactionsPage(context.Context, pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	return nil, apperrors.ErrRemoteDisabled
}

func (disabledRemoteService) UpdateTransaction(context.Context, models.Transaction) (*models.Transaction, error) {
	return nil, apperrors.ErrRemoteDisabled
}

func (disabledRemoteService) DeleteTransaction(context.Context, string) error {
	return apperrors.ErrRemoteDisabled
}
