package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"budgetapp/internal/models"
	"budgetapp/internal/storage"
)

// Messages recorded in the ledger's error slot.
const (
	LoadFailedMessage  = "Failed to load transactions"
	AddFailedMessage   = "Failed to add transaction"
	ClearFailedMessage = "Failed to clear transactions"
)

// ledgerService holds the authoritative in-memory transaction list. Every
// admitted transaction has been persisted first, and the in-memory order is
// the persisted order.
type ledgerService struct {
	store storage.LocalStore
	log   *zap.SugaredLogger

	initOnce sync.Once
	initErr  error

	// addMu serializes persist-then-append so concurrent adds cannot land in
	// memory in a different order than in the store.
	addMu sync.Mutex

	mu           sync.RWMutex
	transactions []models.Transaction
	loading      bool
	lastErr      string
}

// NewLedgerService creates a new LedgerServicer over the given local store.
// The ledger starts empty; call Initialize to load persisted transactions.
func NewLedgerService(store storage.LocalStore, log *zap.SugaredLogger) LedgerServicer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ledgerService{
		store:        store,
		log:          log,
		transactions: []models.Transaction{},
	}
}

// Initialize loads the persisted collection. It runs once per ledger; later
// calls return the first call's result without touching the store.
func (s *ledgerService) Initialize(ctx context.Context) error {
	s.initOnce.Do(func() {
		s.mu.Lock()
		s.loading = true
		s.mu.Unlock()

		txs, err := s.store.LoadAll(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.loading = false
		if err != nil {
			s.initErr = err
			s.lastErr = LoadFailedMessage
			s.log.Errorw("failed to load transactions", "error", err)
			return
		}
		s.transactions = txs
		s.log.Infow("ledger loaded", "count", len(txs))
	})
	return s.initErr
}

// AddTransaction persists tx and, only once that succeeds, appends it to the
// in-memory list. On failure the list is left as it was.
func (s *ledgerService) AddTransaction(ctx context.Context, tx models.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	s.addMu.Lock()
	defer s.addMu.Unlock()

	if err := s.store.AppendOne(ctx, tx); err != nil {
		s.mu.Lock()
		s.lastErr = AddFailedMessage
		s.mu.Unlock()
		s.log.Errorw("failed to add transaction", "error", err, "transaction_id", tx.ID)
		return err
	}

	s.mu.Lock()
	s.transactions = append(s.transactions, tx)
	s.mu.Unlock()
	s.log.Debugw("transaction added", "transaction_id", tx.ID, "type", tx.Type, "category", tx.Category)
	return nil
}

// ClearTransactions deletes the persisted collection and empties the ledger.
func (s *ledgerService) ClearTransactions(ctx context.Context) error {
	s.addMu.Lock()
	defer s.addMu.Unlock()

	if err := s.store.ClearAll(ctx); err != nil {
		s.mu.Lock()
		s.lastErr = ClearFailedMessage
		s.mu.Unlock()
		s.log.Errorw("failed to clear transactions", "error", err)
		return err
	}

	s.mu.Lock()
	s.transactions = []models.Transaction{}
	s.mu.Unlock()
	s.log.Infow("ledger cleared")
	return nil
}

// CurrentState returns a copy of the ledger. The error slot keeps the last
// failure until a later one replaces it.
func (s *ledgerService) CurrentState() LedgerState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txs := make([]models.Transaction, len(s.transactions))
	copy(txs, s.transactions)
	return LedgerState{
		Transactions: txs,
		Loading:      s.loading,
		Error:        s.lastErr,
	}
}
