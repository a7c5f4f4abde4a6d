package storage

import (
	"context"
	"sync"

	apperrors "budgetapp/internal/errors"
	"budgetapp/internal/models"
)

type request struct {
	run  func() error
	done chan error
}

// SerialStore funnels every operation of an inner LocalStore through one
// goroutine in FIFO order, so read-modify-write appends from concurrent
// callers cannot drop each other. Once an operation is queued it runs to
// completion even if the caller's context ends.
type SerialStore struct {
	inner LocalStore
	queue chan request

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewSerialStore starts the writer goroutine. Call Close to stop it.
func NewSerialStore(inner LocalStore) *SerialStore {
	s := &SerialStore{
		inner: inner,
		queue: make(chan request, 64),
	}
	s.wg.Add(1)
	go s.loop()
	return s
}

func (s *SerialStore) loop() {
	defer s.wg.Done()
	for req := range s.queue {
		req.done <- req.run()
	}
}

func (s *SerialStore) submit(run func() error) error {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return apperrors.ErrStoreClosed
	}
	req := request{run: run, done: make(chan error, 1)}
	s.queue <- req
	s.mu.RUnlock()
	return <-req.done
}

// LoadAll implements LocalStore.
func (s *SerialStore) LoadAll(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.submit(func() error {
		var err error
		txs, err = s.inner.LoadAll(context.WithoutCancel(ctx))
		return err
	})
	return txs, err
}

// AppendOne implements LocalStore.
func (s *SerialStore) AppendOne(ctx context.Context, tx models.Transaction) error {
	return s.submit(func() error {
		return s.inner.AppendOne(context.WithoutCancel(ctx), tx)
	})
}

// ClearAll implements LocalStore.
func (s *SerialStore) ClearAll(ctx context.Context) error {
	return s.submit(func() error {
		return s.inner.ClearAll(context.WithoutCancel(ctx))
	})
}

// Close drains queued operations and stops the writer. Later calls fail
// with ErrStoreClosed.
func (s *SerialStore) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()
	s.wg.Wait()
}
